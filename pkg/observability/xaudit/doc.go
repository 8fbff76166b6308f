// Package xaudit 为随机流提供基于 OpenTelemetry 的熵消耗审计。
//
// Instrument 将一个 xrand.ByteFunc 包装为带指标的字节源：
// 每次抽取记录一次 draw 计数和对应的字节数。指标按 reason 的
// 首段操作标签归因（xrand 逐层拼接 "op: " 前缀，取第一个冒号前
// 的部分），保证标签基数有界。
//
// # 指标
//
//   - randkit.entropy.draws: 抽取次数计数器
//   - randkit.entropy.bytes: 抽取字节数计数器
//
// 两者都带 operation 属性。
//
// # 使用方式
//
// 包装后的 ByteFunc 通过 xrand.WithByteFunc 注入 Source，
// 对派生层完全透明，reason 语义不变。
package xaudit
