package stringsim

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/warmup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparatorJaroWinkler(t *testing.T) {
	c, err := NewComparator()
	require.NoError(t, err)

	result := c.JaroWinkler(context.Background(), "martha", "marhta")
	assert.InDelta(t, 0.961111, result.Similarity, 1e-6)

	// Per-call overrides take precedence over the comparator defaults.
	unboosted := c.JaroWinkler(context.Background(), "martha", "marhta", BoostThreshold(0.99))
	assert.InDelta(t, 0.944444, unboosted.Similarity, 1e-6)
}

func TestComparatorDefaultsFromOptions(t *testing.T) {
	c, err := NewComparator(WithScalingFactor(0.25), WithBoostThreshold(0.5))
	require.NoError(t, err)

	result := c.JaroWinkler(context.Background(), "martha", "marhta")
	// Base 0.944444 boosted with prefix 3 at the capped factor.
	assert.InDelta(t, 0.944444+3*0.25*(1-0.944444), result.Similarity, 1e-6)
}

// constantBase always reports the same base similarity.
type constantBase struct {
	similarity float64
}

func (b constantBase) Compare(s1, s2 []rune) domain.Result {
	return domain.Result{Name: "jaro", Distance: 1 - b.similarity, Similarity: b.similarity}
}

func TestComparatorCustomBaseMetric(t *testing.T) {
	c, err := NewComparator(WithBaseMetric(constantBase{similarity: 0.8}))
	require.NoError(t, err)

	// Prefix "ca" boosts the injected base similarity.
	result := c.JaroWinkler(context.Background(), "cat", "car")
	assert.InDelta(t, 0.8+2*0.1*0.2, result.Similarity, 1e-6)
}

func TestComparatorExact(t *testing.T) {
	c, err := NewComparator()
	require.NoError(t, err)

	assert.Equal(t, 1.0, c.Exact(context.Background(), "cat", "cat").Similarity)
	assert.Equal(t, 0.0, c.Exact(context.Background(), "cat", "car").Similarity)
}

func TestComparatorWarmUp(t *testing.T) {
	cfg := warmup.DefaultConfig()
	cfg.Concurrency = 2
	cfg.Iterations = 10

	c, err := NewComparator(WithWarmUpConfig(cfg))
	require.NoError(t, err)

	result := c.JaroWinkler(context.Background(), "martha", "marhta")
	assert.InDelta(t, 0.961111, result.Similarity, 1e-6)
}

// countingBase counts base metric invocations across goroutines.
type countingBase struct {
	calls atomic.Int64
}

func (b *countingBase) Compare(s1, s2 []rune) domain.Result {
	b.calls.Add(1)
	return domain.Result{Name: "jaro"}
}

func TestComparatorWarmUpRunsOnce(t *testing.T) {
	base := &countingBase{}
	c, err := NewComparator(WithBaseMetric(base))
	require.NoError(t, err)

	cfg := warmup.Config{Concurrency: 1, Iterations: 4}

	// Concurrent callers must agree on a single warm-up run.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.WarmUp(context.Background(), cfg)
		}()
	}
	wg.Wait()

	after := base.calls.Load()
	assert.Positive(t, after)

	// A later call is a no-op: the base metric is not exercised again.
	c.WarmUp(context.Background(), cfg)
	assert.Equal(t, after, base.calls.Load())
}
