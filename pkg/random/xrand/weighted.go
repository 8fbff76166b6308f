package xrand

// Weighted 将条目与权重显式配对的组合类型。
//
// 原始语义中权重以隐藏属性附着在数组上；这里重设计为独立的
// 组合类型，条目与权重在构造时一次性绑定，构造后不可变。
// 采样表以 Weighted 实例的指针身份为缓存键：两个权重值相同的
// 不同实例会得到各自独立的采样表。
type Weighted[T any] struct {
	items   []T
	weights []float64
}

// NewWeighted 创建加权条目集。
//
// weights 必须与 items 等长且按下标一一对应；长度不匹配返回
// ErrSparseWeights（Go 切片没有"空洞"，稀疏向量在这里表现为
// 长度不足；多余的权重同样视为配置错误）。
//
// 权重值本身（负值、非有限值、全零）在首次抽取懒构造采样表时
// 校验，错误由 PickWeighted 同步返回。
func NewWeighted[T any](items []T, weights []float64) (*Weighted[T], error) {
	if len(weights) != len(items) {
		return nil, ErrSparseWeights
	}

	// 防御性拷贝：构造后外部修改原切片不影响已缓存的采样表
	w := &Weighted[T]{
		items:   make([]T, len(items)),
		weights: make([]float64, len(weights)),
	}
	copy(w.items, items)
	copy(w.weights, weights)
	return w, nil
}

// Len 返回条目数量。
func (w *Weighted[T]) Len() int {
	return len(w.items)
}

// Pick 从 items 中均匀抽取一个元素。
// items 为空时返回 ErrEmptyPickTarget。
func Pick[T any](s *Source, items []T, reason string) (T, error) {
	mustReason(reason)
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyPickTarget
	}
	i := s.Uint32N(uint32(len(items)), "pick: "+reason)
	return items[i], nil
}

// PickWeighted 从加权条目集中抽取一个元素。
//
// 首次抽取时懒构造别名采样表并以 w 的指针身份缓存；之后每次抽取
// 只消耗两个均匀随机数：一个 [0,N) 槽位索引和一个 Open01 浮点数。
// w 为 nil 或空时返回 ErrEmptyPickTarget；权重校验失败时返回
// xalias 的构造错误。
func PickWeighted[T any](s *Source, w *Weighted[T], reason string) (T, error) {
	mustReason(reason)
	var zero T
	if w == nil || len(w.items) == 0 {
		return zero, ErrEmptyPickTarget
	}

	smp, err := s.samplerFor(w, w.weights)
	if err != nil {
		return zero, err
	}

	i := int(s.Uint32N(uint32(smp.N()), "weighted pick index: "+reason))
	flip := s.Open01("weighted pick flip: " + reason)
	return w.items[smp.Pick(i, flip)], nil
}
