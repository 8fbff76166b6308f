package xalias

import (
	"errors"
	"strconv"
)

// 建表阶段的错误
var (
	// ErrNegativeWeight 表示权重向量中存在负值
	ErrNegativeWeight = errors.New("xalias: weight must not be negative")

	// ErrNonFiniteWeight 表示权重向量中存在 NaN 或 ±Inf
	ErrNonFiniteWeight = errors.New("xalias: weight must be finite")

	// ErrZeroTotalProbability 表示非空权重向量的总和为 0，分布退化
	ErrZeroTotalProbability = errors.New("xalias: total weight is zero")
)

// NegativeWeightError 携带具体的非法权重值。
//
// 错误消息包含权重的字符串形式，便于调用方定位配置错误。
// errors.Is(err, ErrNegativeWeight) 对该类型成立。
type NegativeWeightError struct {
	// Index 非法权重在向量中的下标
	Index int
	// Weight 非法权重值
	Weight float64
}

func (e *NegativeWeightError) Error() string {
	return "xalias: negative weight " + strconv.FormatFloat(e.Weight, 'g', -1, 64) +
		" at index " + strconv.Itoa(e.Index)
}

// Is 使 errors.Is 能够将具体错误匹配到 ErrNegativeWeight 哨兵。
func (e *NegativeWeightError) Is(target error) bool {
	return target == ErrNegativeWeight
}
