// Package random 提供随机值生成相关的子包。
//
// 子包列表：
//   - xrand: 密码学种子的随机值派生层（整数、浮点、正态、抽取）
//   - xalias: Vose 别名法 O(1) 加权抽样器
//
// 设计原则：
//   - 所有派生都建立在单一的原始字节源之上，字节源可替换
//   - 每次生成调用携带可审计的 reason 字符串
//   - 位级精确的数值构造，测试可用脚本化字节源复现
package random
