package xalias

import "math"

// Sampler 是构造后只读的别名法抽样表。
// 必须通过 [New] 创建；零值表示空分布，Pick 会 panic。
type Sampler struct {
	prob  []float64
	alias []int
}

// New 从权重向量构造 Sampler。
//
// weights 中每个元素必须是非负的有限浮点数：
//   - 出现负值时返回 *NegativeWeightError（errors.Is 匹配 ErrNegativeWeight）
//   - 出现 NaN/±Inf 时返回 ErrNonFiniteWeight
//   - 非空向量总和为 0 时返回 ErrZeroTotalProbability
//
// 空向量是合法输入，返回一个空 Sampler；按调用方契约它永远不会被
// 用于抽样（xrand 在进入抽样前已拒绝空目标）。
//
// 建表为 Vose 两队列算法：权重按 N/total 缩放使其总和为 N，
// 缩放值 < 1 的下标进 small 队列，其余进 large 队列（FIFO，保持原始
// 下标顺序）；每轮从两队列各取一个配对，直到一侧耗尽。
func New(weights []float64) (*Sampler, error) {
	n := len(weights)

	total := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrNonFiniteWeight
		}
		if w < 0 {
			return nil, &NegativeWeightError{Index: i, Weight: w}
		}
		total += w
	}
	if n > 0 && total == 0 {
		return nil, ErrZeroTotalProbability
	}

	s := &Sampler{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}
	if n == 0 {
		return s, nil
	}

	// 缩放到期望值 1：scaled 总和恰为 N
	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
	}

	// FIFO 队列，保持原始下标顺序入队
	small := make(queue, 0, n)
	large := make(queue, 0, n)
	for i, v := range scaled {
		if v < 1 {
			small.push(i)
		} else {
			large.push(i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small.pop()
		g := large.pop()

		s.prob[l] = scaled[l]
		s.alias[l] = g

		// g 让出 (1 - scaled[l]) 的概率质量给 l，按新值重新分类
		scaled[g] = scaled[g] + scaled[l] - 1
		if scaled[g] < 1 {
			small.push(g)
		} else {
			large.push(g)
		}
	}

	for len(large) > 0 {
		s.prob[large.pop()] = 1
	}
	// small 残留只会由浮点舍入产生（理论值恰为 1 却被分到 small），
	// 但有限精度下必须处理，否则对应槽位 prob 恒为 0。
	for len(small) > 0 {
		s.prob[small.pop()] = 1
	}

	return s, nil
}

// Pick 执行一次 O(1) 抽样。
//
// i 必须是 [0, N) 内的均匀随机下标，flip 必须是 (0,1] 内的均匀随机
// 浮点数；两者由调用方的随机数源提供。flip < prob[i] 时返回 i，
// 否则返回 alias[i]。
//
// i 越界（含空 Sampler）会 panic：这是调用方的程序性错误。
func (s *Sampler) Pick(i int, flip float64) int {
	if i < 0 || i >= len(s.prob) {
		panic("xalias: pick index out of range")
	}
	if flip < s.prob[i] {
		return i
	}
	return s.alias[i]
}

// N 返回分布的槽位数量。
func (s *Sampler) N() int {
	return len(s.prob)
}

// Prob 返回下标 i 的保留概率（调试/测试用途）。
func (s *Sampler) Prob(i int) float64 {
	return s.prob[i]
}

// Alias 返回下标 i 的别名下标（调试/测试用途）。
func (s *Sampler) Alias(i int) int {
	return s.alias[i]
}

// queue 是基于切片的 FIFO 队列。
//
// 设计决策: pop 通过切片头偏移实现而非搬移元素；建表期间两队列的
// 总入队次数为 O(N)，无需环形缓冲。
type queue []int

func (q *queue) push(i int) {
	*q = append(*q, i)
}

func (q *queue) pop() int {
	i := (*q)[0]
	*q = (*q)[1:]
	return i
}
