package xrand

// Some 对每个元素独立地以 1/2 概率决定是否保留，保持原始顺序。
//
// 与 SomeString 共享同一过滤算法，是面向任意元素序列的入口。
func Some[T any](s *Source, items []T, reason string) []T {
	mustReason(reason)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.Bool("some: " + reason) {
			out = append(out, item)
		}
	}
	return out
}

// SomeString 对字符串中每个字符独立地以 1/2 概率决定是否保留，
// 保持原始顺序。是 Some 面向字符序列的入口，按 rune 过滤。
func (s *Source) SomeString(str, reason string) string {
	mustReason(reason)
	return string(Some(s, []rune(str), reason))
}
