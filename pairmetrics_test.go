// pairmetrics_test.go
package pairmetrics

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_pair_metrics/pkg/bow"
	"github.com/baditaflorin/go_pair_metrics/pkg/set"
	"github.com/baditaflorin/go_pair_metrics/pkg/stringsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJaccard(t *testing.T) {
	result := Jaccard(set.New(1, 2, 3), set.New(2, 3, 4))
	assert.InDelta(t, 0.5, result.Similarity, 1e-6)
	assert.InDelta(t, 0.5, result.Distance, 1e-6)
}

func TestTverskyUnitWeightsMatchJaccard(t *testing.T) {
	a := set.New(1, 2, 3)
	b := set.New(2, 3, 4)

	tversky := Tversky(a, b, 1, 1)
	jaccard := Jaccard(a, b)
	assert.InDelta(t, jaccard.Similarity, tversky.Similarity, 1e-6)
}

func TestExact(t *testing.T) {
	match := Exact("cat", "cat")
	assert.Equal(t, 0.0, match.Distance)
	assert.Equal(t, 1.0, match.Similarity)

	mismatch := Exact("cat", "car")
	assert.Equal(t, 1.0, mismatch.Distance)
	assert.Equal(t, 0.0, mismatch.Similarity)
}

func TestJaroWinkler(t *testing.T) {
	identical := JaroWinkler("cat", "cat")
	assert.Equal(t, 1.0, identical.Similarity)

	boosted := JaroWinkler("martha", "marhta")
	assert.InDelta(t, 0.961111, boosted.Similarity, 1e-6)
}

func TestNewDistanceEngine(t *testing.T) {
	engine, err := NewDistanceEngine(stringsim.WithMaxLength(5))
	require.NoError(t, err)

	result, err := engine.Distance(context.Background(), "ca", "abc")
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.Distance)

	swap, err := engine.Distance(context.Background(), "ab", "ba")
	require.NoError(t, err)
	assert.Equal(t, 1.0, swap.Distance)
}

func TestCosine(t *testing.T) {
	result, err := Cosine(bow.Vector{"the": 1, "cat": 1}, bow.Vector{"the": 1, "dog": 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Similarity, 1e-6)
}
