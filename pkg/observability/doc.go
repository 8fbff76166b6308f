// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xaudit: 随机流熵消耗审计，基于 OpenTelemetry 指标
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 对被装饰的字节源完全透明，不改变随机流语义
//   - 指标属性保持有界基数
package observability
