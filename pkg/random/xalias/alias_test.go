package xalias

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.N())

	s, err = New([]float64{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.N())
}

func TestNew_NegativeWeight(t *testing.T) {
	s, err := New([]float64{-1})
	require.Error(t, err)
	assert.Nil(t, s)

	// 哨兵匹配
	assert.True(t, errors.Is(err, ErrNegativeWeight))

	// 错误消息必须包含非法权重的字符串形式
	assert.True(t, strings.Contains(err.Error(), "-1"))

	// 具体类型携带下标和权重值
	var nwe *NegativeWeightError
	require.True(t, errors.As(err, &nwe))
	assert.Equal(t, 0, nwe.Index)
	assert.Equal(t, -1.0, nwe.Weight)
}

func TestNew_NegativeWeightInMiddle(t *testing.T) {
	_, err := New([]float64{1, 2, -0.5, 3})
	require.Error(t, err)

	var nwe *NegativeWeightError
	require.True(t, errors.As(err, &nwe))
	assert.Equal(t, 2, nwe.Index)
	assert.Equal(t, -0.5, nwe.Weight)
	assert.Contains(t, err.Error(), "-0.5")
}

func TestNew_NonFiniteWeight(t *testing.T) {
	cases := [][]float64{
		{math.NaN()},
		{1, math.Inf(1)},
		{math.Inf(-1), 2},
	}
	for _, weights := range cases {
		_, err := New(weights)
		assert.ErrorIs(t, err, ErrNonFiniteWeight)
	}
}

func TestNew_ZeroTotal(t *testing.T) {
	_, err := New([]float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrZeroTotalProbability)

	_, err = New([]float64{0})
	assert.ErrorIs(t, err, ErrZeroTotalProbability)
}

func TestNew_SingleElement(t *testing.T) {
	s, err := New([]float64{42})
	require.NoError(t, err)
	require.Equal(t, 1, s.N())

	// 单元素分布：prob 恒为 1，任何 flip 都返回 0
	assert.Equal(t, 1.0, s.Prob(0))
	for _, flip := range []float64{0, 0.25, 0.5, 0.999999, 1} {
		assert.Equal(t, 0, s.Pick(0, flip))
	}
}

func TestNew_AllEqualWeights(t *testing.T) {
	s, err := New([]float64{3, 3, 3, 3})
	require.NoError(t, err)

	// 所有缩放权重恰为 1，全部进 large 队列，残留 prob 置 1
	for i := 0; i < s.N(); i++ {
		assert.Equal(t, 1.0, s.Prob(i), "slot %d", i)
		for _, flip := range []float64{0, 0.5, 1} {
			assert.Equal(t, i, s.Pick(i, flip))
		}
	}
}

// effectiveProb 从 prob/alias 表重建下标 i 的实际命中概率。
func effectiveProb(s *Sampler, i int) float64 {
	n := float64(s.N())
	p := s.Prob(i) / n
	for j := 0; j < s.N(); j++ {
		if j != i && s.Alias(j) == i && s.Prob(j) < 1 {
			p += (1 - s.Prob(j)) / n
		}
	}
	return p
}

func TestTableInvariant(t *testing.T) {
	cases := [][]float64{
		{1, 2, 3, 4},
		{10, 0, 5},
		{0.1, 0.9},
		{1e-9, 1, 1e9},
		{7},
		{2, 2, 2, 2, 2},
		{0, 0, 1, 0},
	}

	for _, weights := range cases {
		s, err := New(weights)
		require.NoError(t, err)

		total := 0.0
		for _, w := range weights {
			total += w
		}
		for i, w := range weights {
			want := w / total
			got := effectiveProb(s, i)
			assert.InDelta(t, want, got, 1e-9,
				"weights %v slot %d", weights, i)
		}
	}
}

func TestPick_ZeroWeightNeverReturned(t *testing.T) {
	s, err := New([]float64{1, 0, 3})
	require.NoError(t, err)

	// 零权重槽位 prob 为 0，flip < 0 永假；alias 也不可能指向它
	assert.Equal(t, 0.0, s.Prob(1))
	for i := 0; i < s.N(); i++ {
		for _, flip := range []float64{0, 0.001, 0.25, 0.5, 0.75, 0.999, 1} {
			assert.NotEqual(t, 1, s.Pick(i, flip),
				"zero-weight slot returned for i=%d flip=%v", i, flip)
		}
	}
}

func TestPick_OutOfRangePanics(t *testing.T) {
	s, err := New([]float64{1, 1})
	require.NoError(t, err)

	assert.Panics(t, func() { s.Pick(-1, 0.5) })
	assert.Panics(t, func() { s.Pick(2, 0.5) })

	empty, err := New(nil)
	require.NoError(t, err)
	assert.Panics(t, func() { empty.Pick(0, 0.5) })
}

func TestPick_Statistical(t *testing.T) {
	weights := []float64{1, 2, 3, 4}
	s, err := New(weights)
	require.NoError(t, err)

	// 固定种子保证可复现
	rng := rand.New(rand.NewPCG(2024, 1))
	const draws = 200000

	counts := make([]int, len(weights))
	for d := 0; d < draws; d++ {
		i := rng.IntN(s.N())
		flip := rng.Float64()
		counts[s.Pick(i, flip)]++
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	for i, w := range weights {
		want := w / total
		got := float64(counts[i]) / draws
		// 2e5 次抽样下 1.5% 容差足够稳健
		assert.InDelta(t, want, got, 0.015, "slot %d", i)
	}
}

func TestNew_RoundingResidue(t *testing.T) {
	// 构造大量微小差异的权重，诱发浮点舍入残留；
	// 不论残留落在哪个队列，所有 prob 必须在 [0,1] 且不变量成立。
	rng := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 50; trial++ {
		n := 3 + rng.IntN(64)
		weights := make([]float64, n)
		total := 0.0
		for i := range weights {
			weights[i] = rng.Float64() * math.Pow(10, float64(rng.IntN(7)-3))
			total += weights[i]
		}

		s, err := New(weights)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			p := s.Prob(i)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			assert.InDelta(t, weights[i]/total, effectiveProb(s, i), 1e-9)
		}
	}
}

func TestNew_DistinctSamplersFromEqualWeights(t *testing.T) {
	weights := []float64{1, 2, 3}
	s1, err := New(weights)
	require.NoError(t, err)
	s2, err := New(weights)
	require.NoError(t, err)

	// 同值权重得到独立实例，统计行为等价
	require.NotSame(t, s1, s2)
	for i := 0; i < s1.N(); i++ {
		assert.Equal(t, s1.Prob(i), s2.Prob(i))
		assert.Equal(t, s1.Alias(i), s2.Alias(i))
	}
}
