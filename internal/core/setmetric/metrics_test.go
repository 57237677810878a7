package setmetric

import (
	"testing"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator(t *testing.T) *Calculator[int] {
	t.Helper()
	return NewCalculator[int](logger.NewNopLogger())
}

func TestJaccard(t *testing.T) {
	calc := newCalculator(t)

	tests := []struct {
		name       string
		a          Set[int]
		b          Set[int]
		similarity float64
	}{
		{
			name:       "Half overlap",
			a:          FromSlice([]int{1, 2, 3}),
			b:          FromSlice([]int{2, 3, 4}),
			similarity: 0.5,
		},
		{
			name:       "Identical sets",
			a:          FromSlice([]int{1, 2, 3}),
			b:          FromSlice([]int{1, 2, 3}),
			similarity: 1,
		},
		{
			name:       "Disjoint sets",
			a:          FromSlice([]int{1, 2}),
			b:          FromSlice([]int{3, 4}),
			similarity: 0,
		},
		{
			name:       "One empty set",
			a:          NewSet[int](0),
			b:          FromSlice([]int{1, 2}),
			similarity: 0,
		},
		{
			name:       "Both sets empty",
			a:          NewSet[int](0),
			b:          NewSet[int](0),
			similarity: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Jaccard(tc.a, tc.b)
			assert.InDelta(t, tc.similarity, result.Similarity, 1e-6)
			assert.InDelta(t, 1-tc.similarity, result.Distance, 1e-6)
			assert.Equal(t, "jaccard", result.Name)
		})
	}
}

func TestJaccardSymmetry(t *testing.T) {
	calc := newCalculator(t)

	a := FromSlice([]int{1, 2, 3, 5, 8})
	b := FromSlice([]int{2, 3, 5, 7, 11, 13})

	ab := calc.Jaccard(a, b)
	ba := calc.Jaccard(b, a)
	assert.Equal(t, ab.Similarity, ba.Similarity)
	assert.Equal(t, ab.Distance, ba.Distance)
}

func TestTversky(t *testing.T) {
	calc := newCalculator(t)

	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{2, 3, 4})

	t.Run("Unit weights reduce to Jaccard", func(t *testing.T) {
		tversky := calc.Tversky(a, b, 1, 1)
		jaccard := calc.Jaccard(a, b)
		assert.InDelta(t, jaccard.Similarity, tversky.Similarity, 1e-6)
	})

	t.Run("Default weights reduce to Dice", func(t *testing.T) {
		// Dice = 2i / (|A|+|B|) = 4/6 for these sets.
		tversky := calc.Tversky(a, b, DefaultAlpha, DefaultBeta)
		assert.InDelta(t, 2.0/3.0, tversky.Similarity, 1e-6)
	})

	t.Run("Asymmetric weights favor the reference set", func(t *testing.T) {
		reference := FromSlice([]int{1, 2, 3, 4})
		variant := FromSlice([]int{3, 4})

		// With alpha 0 the elements unique to the reference cost nothing.
		forgiving := calc.Tversky(reference, variant, 0, 1)
		strict := calc.Tversky(reference, variant, 1, 0)
		assert.InDelta(t, 1, forgiving.Similarity, 1e-6)
		assert.InDelta(t, 0.5, strict.Similarity, 1e-6)
	})

	t.Run("Negative weights propagate unclamped", func(t *testing.T) {
		// i=2, dA=1, dB=1: 2 / (2 - 1 + 0.5) = 4/3, above 1 by design.
		result := calc.Tversky(a, b, -1, 0.5)
		assert.InDelta(t, 4.0/3.0, result.Similarity, 1e-6)
	})

	t.Run("Both sets empty", func(t *testing.T) {
		result := calc.Tversky(NewSet[int](0), NewSet[int](0), 0.5, 0.5)
		assert.Equal(t, 1.0, result.Similarity)
		assert.Equal(t, 0.0, result.Distance)
	})
}

func TestSetOperations(t *testing.T) {
	s := NewSet[int](4)
	require.Equal(t, 0, s.Len())

	s.Add(1)
	s.Add(2)
	s.Add(2)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(3))
}
