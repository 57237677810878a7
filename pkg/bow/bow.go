// Package bow provides the public facade for bag-of-words cosine similarity
// between sparse token-frequency vectors.
package bow

import (
	"context"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	bowcore "github.com/baditaflorin/go_pair_metrics/internal/core/bow"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
	"github.com/baditaflorin/l"
)

// Vector is a sparse mapping from token to a non-negative weight. Absent
// tokens have weight 0.
type Vector map[string]float64

// Comparator computes bag-of-words metrics between pairs of vectors.
type Comparator struct {
	calc   *bowcore.Calculator
	logger ports.Logger
}

// Option defines a functional option for configuring a Comparator.
type Option func(*config)

type config struct {
	Logger ports.Logger
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// NewComparator creates a new bag-of-words comparator with the provided
// options. If no logger is provided, a default logger is created.
func NewComparator(opts ...Option) (*Comparator, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	return &Comparator{
		calc:   bowcore.NewCalculator(cfg.Logger),
		logger: cfg.Logger,
	}, nil
}

// Cosine computes the cosine similarity between the two vectors. A vector
// with zero magnitude yields similarity 0; non-finite weights are rejected
// with ErrInvalidArgument.
func (c *Comparator) Cosine(ctx context.Context, a, b Vector) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		c.logger.Error("Computation cancelled", "metric", "cosine", "error", err)
		return domain.Result{}, err
	}
	return c.calc.Cosine(bowcore.Vector(a), bowcore.Vector(b))
}
