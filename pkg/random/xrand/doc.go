// Package xrand 提供密码学种子的确定性接口随机值派生层。
//
// Source 包装一个原始字节源（ByteFunc），在其之上派生所有数值分布；
// 每次生成调用都携带一个人类可读的 reason 字符串，逐层拼接操作标签后
// 透传给字节源，用于随机流的审计与测试。reason 是不透明元数据，
// 本包从不解析它。
//
// # 派生操作
//
//   - Bytes(n, reason): 原样委托给字节源
//   - Uint32(reason): 4 字节大端序无符号整数
//   - Uint32N(bound, reason): [0, bound) 有界整数（取模，见下文偏差说明）
//   - BigUint(byteCount, reason): 大端序累积的非负大整数
//   - Open01(reason): (0,1] 均匀浮点数，IEEE-754 位级构造
//   - Gaussian(mean, stdDev, reason): Marsaglia 极坐标法正态偏差
//   - Bool(reason): 均匀布尔值
//   - Reader(reason): io.Reader 适配器（如喂给 uuid.NewRandomFromReader）
//
// 泛型入口（Go 方法不支持类型参数，故为包级函数）：
//
//   - Pick(s, items, reason): 均匀抽取
//   - PickWeighted(s, w, reason): 别名法加权抽取（O(1)，懒建表并缓存）
//   - Some(s, items, reason) / (*Source).SomeString: 独立 1/2 概率过滤
//
// # 取模偏差
//
// Uint32N 对 2^32 不能整除的 bound 存在统计偏差。这是有意保留的
// 文档化近似（不做拒绝采样），调用方接受该偏差。
//
// # 加权抽取与缓存
//
// 权重通过 Weighted 组合类型与条目显式配对（而非向共享集合类型注入
// 隐藏属性）。Source 以 Weighted 实例的指针身份为键，在有界 LRU 中
// 懒缓存构造好的 xalias.Sampler：两个权重相同的不同实例会得到独立的
// 采样表；实例被丢弃后其缓存项随 LRU 淘汰回收，缓存不拥有实例。
//
// # 错误与不变量
//
// 所有错误在触发调用处同步返回，内部从不重试或修正输入
// （负权重不会被钳制为 0）。reason 为空串属于调用方程序性错误，
// 直接 panic，不可恢复。
//
// # 并发安全
//
// Source 的全部方法并发安全：高斯备用偏差槽由互斥锁保护，
// 采样表缓存自身即为并发安全结构。
package xrand
