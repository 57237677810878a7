// Package bow computes bag-of-words cosine similarity between two sparse
// frequency vectors keyed by token.
package bow

import (
	"fmt"
	"math"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
)

// Vector is a sparse mapping from token to a non-negative weight, typically
// an integer frequency count. Absent tokens have weight 0.
type Vector map[string]float64

// Calculator computes bag-of-words metrics. It holds no per-call state and
// is safe for concurrent use.
type Calculator struct {
	logger ports.Logger
}

// NewCalculator creates a new bag-of-words calculator.
func NewCalculator(logger ports.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// Cosine computes the cosine similarity between two sparse vectors without
// mutating either. When either vector has a zero magnitude the similarity is
// 0 rather than an undefined quotient. Non-finite weights are rejected with
// ErrInvalidArgument.
func (c *Calculator) Cosine(a, b Vector) (domain.Result, error) {
	var sumA, sumB, dot float64

	for token, weight := range a {
		if !isFinite(weight) {
			return domain.Result{}, fmt.Errorf("%w: non-finite weight %v for token %q", domain.ErrInvalidArgument, weight, token)
		}
		sumA += weight * weight
		if other, ok := b[token]; ok {
			dot += weight * other
		}
	}
	for token, weight := range b {
		if !isFinite(weight) {
			return domain.Result{}, fmt.Errorf("%w: non-finite weight %v for token %q", domain.ErrInvalidArgument, weight, token)
		}
		sumB += weight * weight
	}

	var similarity float64
	if sumA != 0 && sumB != 0 {
		similarity = dot / (math.Sqrt(sumA) * math.Sqrt(sumB))
	}

	c.logger.Debug("Computed cosine similarity",
		"tokens_a", len(a),
		"tokens_b", len(b),
		"similarity", similarity,
	)

	return domain.Result{Name: "cosine", Distance: 1 - similarity, Similarity: similarity}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
