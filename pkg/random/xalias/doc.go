// Package xalias 提供 Vose 别名法（Alias Method）的 O(1) 加权抽样器。
//
// 别名法将任意离散分布预处理为 prob/alias 两张等长表，
// 之后每次抽样只需两个均匀随机数：一个槽位索引和一个 (0,1] 浮点数。
//
// # 核心类型
//
// Sampler 由 New 从权重向量构造，构造后只读：
//
//   - New(weights): O(N) 建表，校验负权重、非有限权重和全零分布
//   - Pick(i, flip): O(1) 抽样，i 为均匀槽位索引，flip 为均匀浮点数
//
// # 设计边界
//
// Sampler 自身不持有随机数源。两个均匀随机数由调用方提供
// （通常来自 xrand.Source），这使得抽样逻辑是纯函数，
// 可以用固定输入做位级精确的单元测试。
//
// # 正确性不变量
//
// 对任意槽位 i，Pick 返回 i 的概率为
// prob[i]/N + Σ_{alias[j]==i} (1-prob[j])/N，等于归一化后的输入权重。
// 权重为 0 的槽位 prob 被置为 0，永远不会被返回。
//
// # 并发安全
//
// Sampler 构造后不可变，可以在多个 goroutine 中同时使用。
package xalias
