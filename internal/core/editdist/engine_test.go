package editdist

import (
	"sync"
	"testing"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(t *testing.T, maxLen int) *Engine {
	t.Helper()
	engine, err := NewEngine(maxLen, logger.NewNopLogger())
	require.NoError(t, err)
	return engine
}

func TestNewEngineRejectsNegativeCapacity(t *testing.T) {
	_, err := NewEngine(-1, logger.NewNopLogger())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDistance(t *testing.T) {
	engine := newEngine(t, DefaultMaxLength)

	tests := []struct {
		name     string
		s1       string
		s2       string
		distance float64
	}{
		{name: "Identical strings", s1: "cat", s2: "cat", distance: 0},
		{name: "Single substitution", s1: "cat", s2: "car", distance: 1},
		{name: "Classic Levenshtein triple edit", s1: "kitten", s2: "sitting", distance: 3},
		{name: "Adjacent swap counts once", s1: "ab", s2: "ba", distance: 1},
		{name: "Swap then insert between", s1: "ca", s2: "abc", distance: 2},
		{name: "Transposed interior pair", s1: "jellyfish", s2: "jellyfihs", distance: 1},
		{name: "Pure insertion", s1: "cat", s2: "cats", distance: 1},
		{name: "Pure deletion", s1: "cats", s2: "cat", distance: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Distance(tc.s1, tc.s2)
			require.NoError(t, err)
			assert.Equal(t, tc.distance, result.Distance)

			maxLen := len([]rune(tc.s1))
			if n := len([]rune(tc.s2)); n > maxLen {
				maxLen = n
			}
			assert.InDelta(t, 1-tc.distance/float64(maxLen), result.Similarity, 1e-9)
		})
	}
}

func TestDistanceEmptyInputs(t *testing.T) {
	engine := newEngine(t, DefaultMaxLength)

	t.Run("First empty", func(t *testing.T) {
		result, err := engine.Distance("", "abc")
		require.NoError(t, err)
		assert.Equal(t, 3.0, result.Distance)
		assert.Equal(t, 0.0, result.Similarity)
	})

	t.Run("Second empty", func(t *testing.T) {
		result, err := engine.Distance("abc", "")
		require.NoError(t, err)
		assert.Equal(t, 3.0, result.Distance)
		assert.Equal(t, 0.0, result.Similarity)
	})

	t.Run("Both empty are maximally dissimilar", func(t *testing.T) {
		result, err := engine.Distance("", "")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Distance)
		assert.Equal(t, 0.0, result.Similarity)
	})
}

func TestDistanceSymmetry(t *testing.T) {
	engine := newEngine(t, DefaultMaxLength)

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"ca", "abc"},
		{"martha", "marhta"},
		{"appointment", "disappointment"},
	}
	for _, pair := range pairs {
		ab, err := engine.Distance(pair[0], pair[1])
		require.NoError(t, err)
		ba, err := engine.Distance(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, ab.Distance, ba.Distance)
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	engine := newEngine(t, DefaultMaxLength)

	triples := [][3]string{
		{"ca", "ac", "abc"},
		{"kitten", "sitting", "mitten"},
		{"martha", "marhta", "marsha"},
		{"abcde", "edcba", "bacde"},
	}
	for _, triple := range triples {
		for _, perm := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}} {
			s1, s2, s3 := triple[perm[0]], triple[perm[1]], triple[perm[2]]

			d12, err := engine.Distance(s1, s2)
			require.NoError(t, err)
			d13, err := engine.Distance(s1, s3)
			require.NoError(t, err)
			d32, err := engine.Distance(s3, s2)
			require.NoError(t, err)

			assert.LessOrEqual(t, d12.Distance, d13.Distance+d32.Distance,
				"triangle inequality violated for %q %q %q", s1, s2, s3)
		}
	}
}

func TestDistanceCapacity(t *testing.T) {
	engine := newEngine(t, 5)

	t.Run("Inputs at capacity succeed", func(t *testing.T) {
		result, err := engine.Distance("abcde", "vwxyz")
		require.NoError(t, err)
		assert.Equal(t, 5.0, result.Distance)
	})

	t.Run("First input over capacity", func(t *testing.T) {
		_, err := engine.Distance("abcdef", "ab")
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})

	t.Run("Second input over capacity", func(t *testing.T) {
		_, err := engine.Distance("ab", "abcdef")
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})
}

func TestDistanceMatrixReuse(t *testing.T) {
	engine := newEngine(t, DefaultMaxLength)

	// A long computation must not leave residue that skews a short one.
	_, err := engine.Distance("disappointment", "appointment")
	require.NoError(t, err)

	result, err := engine.Distance("ab", "ba")
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Distance)
}

func TestDistanceConcurrentCalls(t *testing.T) {
	engine := newEngine(t, DefaultMaxLength)

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"ca", "abc"},
		{"martha", "marhta"},
		{"ab", "ba"},
	}
	expected := []float64{3, 2, 1, 1}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				idx := i % len(pairs)
				result, err := engine.Distance(pairs[idx][0], pairs[idx][1])
				assert.NoError(t, err)
				assert.Equal(t, expected[idx], result.Distance)
			}
		}()
	}
	wg.Wait()
}
