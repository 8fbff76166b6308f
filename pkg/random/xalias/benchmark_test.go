package xalias

import (
	"math/rand/v2"
	"testing"
)

func benchWeights(n int) []float64 {
	rng := rand.New(rand.NewPCG(1, 1))
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = rng.Float64() * 100
	}
	return weights
}

func BenchmarkNew(b *testing.B) {
	for _, n := range []int{8, 64, 1024} {
		weights := benchWeights(n)
		b.Run(sizeName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := New(weights); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPick(b *testing.B) {
	s, err := New(benchWeights(1024))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(2, 2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Pick(rng.IntN(s.N()), rng.Float64())
	}
}

func sizeName(n int) string {
	switch n {
	case 8:
		return "n=8"
	case 64:
		return "n=64"
	default:
		return "n=1024"
	}
}
