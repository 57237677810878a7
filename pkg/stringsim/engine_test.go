package stringsim

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistanceEngineDefaults(t *testing.T) {
	engine, err := NewDistanceEngine()
	require.NoError(t, err)
	assert.Equal(t, 60, engine.MaxLength())
}

func TestNewDistanceEngineRejectsNegativeCapacity(t *testing.T) {
	_, err := NewDistanceEngine(WithMaxLength(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDistanceEngineComputes(t *testing.T) {
	engine, err := NewDistanceEngine(WithMaxLength(10))
	require.NoError(t, err)

	result, err := engine.Distance(context.Background(), "ca", "abc")
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.Distance)
	assert.InDelta(t, 1-2.0/3.0, result.Similarity, 1e-9)

	_, err = engine.Distance(context.Background(), "unreasonable", "ab")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestDistanceEngineResultCache(t *testing.T) {
	engine, err := NewDistanceEngine(WithResultCache(16))
	require.NoError(t, err)

	first, err := engine.Distance(context.Background(), "kitten", "sitting")
	require.NoError(t, err)

	// Second call is served from the cache and must be identical.
	second, err := engine.Distance(context.Background(), "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Length-prefixed keys keep shifted pairs distinct.
	ab, err := engine.Distance(context.Background(), "ab", "c")
	require.NoError(t, err)
	a, err := engine.Distance(context.Background(), "a", "bc")
	require.NoError(t, err)
	assert.Equal(t, 2.0, ab.Distance)
	assert.Equal(t, 2.0, a.Distance)
}

func TestDistanceEngineCancelledContext(t *testing.T) {
	engine, err := NewDistanceEngine()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = engine.Distance(ctx, "cat", "car")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPairKeyFraming(t *testing.T) {
	assert.NotEqual(t, pairKey("ab", "c"), pairKey("a", "bc"))
	assert.NotEqual(t, pairKey("ab", ""), pairKey("", "ab"))
	assert.Equal(t, pairKey("cat", "dog"), pairKey("cat", "dog"))
}
