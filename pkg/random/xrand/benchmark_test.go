package xrand

import (
	"testing"
)

func benchSource(b *testing.B) *Source {
	b.Helper()
	src, err := New()
	if err != nil {
		b.Fatal(err)
	}
	return src
}

func BenchmarkUint32(b *testing.B) {
	src := benchSource(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = src.Uint32("bench")
	}
}

func BenchmarkOpen01(b *testing.B) {
	src := benchSource(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = src.Open01("bench")
	}
}

func BenchmarkGaussian(b *testing.B) {
	src := benchSource(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = src.Gaussian(0, 1, "bench")
	}
}

func BenchmarkPickWeighted(b *testing.B) {
	src := benchSource(b)
	items := make([]int, 1024)
	weights := make([]float64, 1024)
	for i := range items {
		items[i] = i
		weights[i] = float64(i + 1)
	}
	w, err := NewWeighted(items, weights)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PickWeighted(src, w, "bench"); err != nil {
			b.Fatal(err)
		}
	}
}
