package xrand

import "errors"

// 构造与抽取相关的错误
var (
	// ErrEmptyPickTarget 表示对空目标执行了 Pick/PickWeighted
	ErrEmptyPickTarget = errors.New("xrand: pick target is empty")

	// ErrSparseWeights 表示权重向量与条目数量不一致。
	// Go 切片不存在"空洞"，原始语义中的稀疏向量在这里表现为长度不匹配。
	ErrSparseWeights = errors.New("xrand: weight vector does not match item count")

	// ErrInvalidCacheSize 表示采样表缓存容量不合法（必须 >= 1）
	ErrInvalidCacheSize = errors.New("xrand: sampler cache size must be >= 1")
)
