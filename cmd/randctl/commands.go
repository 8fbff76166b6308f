package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	koanfjson "github.com/knadh/koanf/parsers/json"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/randkit/pkg/random/xrand"
)

// usageError 表示调用方的参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// newSource 创建默认随机流（crypto/rand 字节源）。
func newSource() (*xrand.Source, error) {
	return xrand.New()
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createBytesCommand(),
		createUint32Command(),
		createFloatCommand(),
		createGaussCommand(),
		createPickCommand(),
		createUUIDCommand(),
		createSomeCommand(),
	}
}

// countFlag 各命令共用的 --count 选项。
func countFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"c"},
		Usage:   "生成数量",
		Value:   1,
	}
}

// repeat 执行 count 次生成并逐行输出。
func repeat(count int, gen func() (string, error)) error {
	if count < 1 {
		return &usageError{msg: fmt.Sprintf("count 必须 >= 1，收到 %d", count)}
	}
	for i := 0; i < count; i++ {
		line, err := gen()
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}

// createBytesCommand 创建 bytes 子命令。
func createBytesCommand() *cli.Command {
	return &cli.Command{
		Name:      "bytes",
		Aliases:   []string{"b"},
		Usage:     "输出 n 个随机字节（十六进制）",
		ArgsUsage: "<n>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "bytes 命令需要一个字节数参数"}
			}
			n, err := strconv.Atoi(cmd.Args().First())
			if err != nil || n < 0 {
				return &usageError{msg: fmt.Sprintf("无效的字节数 %q", cmd.Args().First())}
			}

			src, err := newSource()
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(src.Bytes(n, cmd.String("reason"))))
			return nil
		},
	}
}

// createUint32Command 创建 uint32 子命令。
func createUint32Command() *cli.Command {
	return &cli.Command{
		Name:  "uint32",
		Usage: "输出 32 位无符号整数",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bound",
				Aliases: []string{"b"},
				Usage:   "限界为 [0, bound)，0 表示不限界",
			},
			countFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			bound := cmd.Int("bound")
			if bound < 0 || int64(bound) > math.MaxUint32 {
				return &usageError{msg: fmt.Sprintf("bound 超出 uint32 范围: %d", bound)}
			}

			src, err := newSource()
			if err != nil {
				return err
			}
			reason := cmd.String("reason")
			return repeat(cmd.Int("count"), func() (string, error) {
				if bound > 0 {
					return strconv.FormatUint(uint64(src.Uint32N(uint32(bound), reason)), 10), nil
				}
				return strconv.FormatUint(uint64(src.Uint32(reason)), 10), nil
			})
		},
	}
}

// createFloatCommand 创建 float 子命令。
func createFloatCommand() *cli.Command {
	return &cli.Command{
		Name:  "float",
		Usage: "输出 (0,1] 均匀浮点数",
		Flags: []cli.Flag{countFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			src, err := newSource()
			if err != nil {
				return err
			}
			reason := cmd.String("reason")
			return repeat(cmd.Int("count"), func() (string, error) {
				return strconv.FormatFloat(src.Open01(reason), 'g', -1, 64), nil
			})
		},
	}
}

// createGaussCommand 创建 gauss 子命令。
func createGaussCommand() *cli.Command {
	return &cli.Command{
		Name:  "gauss",
		Usage: "输出正态偏差",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "mean",
				Usage: "均值",
				Value: 0,
			},
			&cli.FloatFlag{
				Name:  "stddev",
				Usage: "标准差",
				Value: 1,
			},
			countFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			stdDev := cmd.Float("stddev")
			if stdDev < 0 || math.IsNaN(stdDev) {
				return &usageError{msg: fmt.Sprintf("stddev 必须是非负数，收到 %v", stdDev)}
			}

			src, err := newSource()
			if err != nil {
				return err
			}
			mean := cmd.Float("mean")
			reason := cmd.String("reason")
			return repeat(cmd.Int("count"), func() (string, error) {
				return strconv.FormatFloat(src.Gaussian(mean, stdDev, reason), 'g', -1, 64), nil
			})
		},
	}
}

// pickConfig 是 pick 命令的条目集文件结构。
type pickConfig struct {
	Items   []string  `koanf:"items"`
	Weights []float64 `koanf:"weights"`
}

// createPickCommand 创建 pick 子命令。
func createPickCommand() *cli.Command {
	return &cli.Command{
		Name:  "pick",
		Usage: "从 YAML/JSON 文件描述的条目集中抽取（weights 缺省为均匀抽取）",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "条目集文件（.yaml/.yml/.json）",
				Required: true,
			},
			countFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadPickConfig(cmd.String("file"))
			if err != nil {
				return err
			}

			src, err := newSource()
			if err != nil {
				return err
			}
			reason := cmd.String("reason")

			// weights 缺省时退化为均匀抽取
			if len(cfg.Weights) == 0 {
				return repeat(cmd.Int("count"), func() (string, error) {
					return xrand.Pick(src, cfg.Items, reason)
				})
			}

			w, err := xrand.NewWeighted(cfg.Items, cfg.Weights)
			if err != nil {
				return err
			}
			return repeat(cmd.Int("count"), func() (string, error) {
				return xrand.PickWeighted(src, w, reason)
			})
		},
	}
}

// createUUIDCommand 创建 uuid 子命令。
func createUUIDCommand() *cli.Command {
	return &cli.Command{
		Name:  "uuid",
		Usage: "输出由本随机流驱动的 RFC 4122 v4 UUID",
		Flags: []cli.Flag{countFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			src, err := newSource()
			if err != nil {
				return err
			}
			r := src.Reader(cmd.String("reason"))
			return repeat(cmd.Int("count"), func() (string, error) {
				id, err := uuid.NewRandomFromReader(r)
				if err != nil {
					return "", err
				}
				return id.String(), nil
			})
		},
	}
}

// createSomeCommand 创建 some 子命令。
func createSomeCommand() *cli.Command {
	return &cli.Command{
		Name:      "some",
		Usage:     "对文本逐字符做 1/2 概率过滤",
		ArgsUsage: "<text>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "some 命令需要一个文本参数"}
			}

			src, err := newSource()
			if err != nil {
				return err
			}
			fmt.Println(src.SomeString(cmd.Args().First(), cmd.String("reason")))
			return nil
		},
	}
}

// loadPickConfig 读取并解析条目集文件，按扩展名选择 YAML/JSON 解析器。
func loadPickConfig(path string) (*pickConfig, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = koanfyaml.Parser()
	case ".json":
		parser = koanfjson.Parser()
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的条目集文件格式: %s", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取条目集文件失败: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("解析条目集文件失败: %w", err)
	}

	var cfg pickConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("条目集文件结构不合法: %w", err)
	}
	if len(cfg.Items) == 0 {
		return nil, &usageError{msg: "条目集文件必须包含非空的 items 列表"}
	}
	return &cfg, nil
}
