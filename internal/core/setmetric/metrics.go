// Package setmetric computes overlap indices between two finite sets:
// the Jaccard index and its asymmetric generalization, the Tversky index.
package setmetric

import (
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
)

// Default Tversky weights; alpha = beta = 0.5 reduces Tversky to the Dice
// coefficient, alpha = beta = 1 reduces it to Jaccard.
const (
	DefaultAlpha = 0.5
	DefaultBeta  = 0.5
)

// Calculator computes set overlap metrics. It holds no per-call state and is
// safe for concurrent use.
type Calculator[T comparable] struct {
	logger ports.Logger
}

// NewCalculator creates a new set metric calculator.
func NewCalculator[T comparable](logger ports.Logger) *Calculator[T] {
	return &Calculator[T]{logger: logger}
}

// Jaccard computes the Jaccard index |A∩B| / |A∪B| between two sets.
//
// When both sets are empty the quotient is 0/0; by convention the sets are
// treated as vacuously identical and the similarity is 1.
func (c *Calculator[T]) Jaccard(a, b Set[T]) domain.Result {
	if len(a) == 0 && len(b) == 0 {
		c.logger.Debug("Both input sets empty, treating as identical", "metric", "jaccard")
		return domain.Result{Name: "jaccard", Distance: 0, Similarity: 1}
	}

	i := intersectionCount(a, b)
	union := len(a) + len(b) - i
	similarity := float64(i) / float64(union)

	c.logger.Debug("Computed Jaccard index",
		"size_a", len(a),
		"size_b", len(b),
		"intersection", i,
		"similarity", similarity,
	)

	return domain.Result{Name: "jaccard", Distance: 1 - similarity, Similarity: similarity}
}

// Tversky computes the Tversky index between a reference set a and a
// candidate set b:
//
//	i / (i + alpha*(|a|-i) + beta*(|b|-i))
//
// The weights are not clamped; out-of-range values propagate into the
// formula unchanged. Two empty sets follow the same vacuously-identical
// convention as Jaccard.
func (c *Calculator[T]) Tversky(a, b Set[T], alpha, beta float64) domain.Result {
	if len(a) == 0 && len(b) == 0 {
		c.logger.Debug("Both input sets empty, treating as identical", "metric", "tversky")
		return domain.Result{Name: "tversky", Distance: 0, Similarity: 1}
	}

	i := intersectionCount(a, b)
	distinctA := float64(len(a) - i)
	distinctB := float64(len(b) - i)
	similarity := float64(i) / (float64(i) + alpha*distinctA + beta*distinctB)

	c.logger.Debug("Computed Tversky index",
		"size_a", len(a),
		"size_b", len(b),
		"intersection", i,
		"alpha", alpha,
		"beta", beta,
		"similarity", similarity,
	)

	return domain.Result{Name: "tversky", Distance: 1 - similarity, Similarity: similarity}
}
