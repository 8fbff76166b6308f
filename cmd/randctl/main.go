// randctl 是 randkit 随机流的命令行前端。
//
// 用法:
//
//	randctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-r, --reason   随机流审计 reason (默认: randctl)
//
// 命令:
//
//	bytes <n>      输出 n 个随机字节（十六进制）
//	uint32         输出 32 位无符号整数，可选 --bound 限界
//	float          输出 (0,1] 均匀浮点数
//	gauss          输出正态偏差，--mean/--stddev 可调
//	pick           从 YAML/JSON 文件描述的（加权）条目集中抽取
//	uuid           输出由本随机流驱动的 RFC 4122 v4 UUID
//	some <text>    对文本逐字符做 1/2 概率过滤
//	help           显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败
//	2: 参数错误（无效数值、缺少必需参数、未知命令等）
//
// 示例:
//
//	randctl bytes 16                      # 16 字节随机十六进制
//	randctl uint32 --bound 100 --count 5  # 5 个 [0,100) 整数
//	randctl gauss --mean 50 --stddev 10   # 一个 N(50,10) 偏差
//	randctl pick --file loot.yaml         # 从加权条目集抽取
//	randctl -r "deploy canary" uuid       # 带审计 reason 的 UUID
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "randctl",
		Usage:   "randkit 随机流命令行前端",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "reason",
				Aliases: []string{"r"},
				Usage:   "随机流审计 reason",
				Value:   "randctl",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"randkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// isCLIUsageError 识别 urfave/cli 框架自身产生的参数解析错误。
// 框架没有导出错误类型，只能按消息特征匹配。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for") ||
		strings.Contains(msg, "invalid value")
}
