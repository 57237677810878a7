// Package set provides the public facade for set-based similarity metrics:
// the Jaccard index and the Tversky index.
package set

import (
	"context"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/core/setmetric"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
	"github.com/baditaflorin/l"
)

// Set is an unordered collection of unique comparable elements.
type Set[T comparable] map[T]struct{}

// New builds a set from the given elements, discarding duplicates.
func New[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element into the set.
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Has reports whether the set contains the element.
func (s Set[T]) Has(e T) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Comparator computes set overlap metrics between pairs of sets.
type Comparator[T comparable] struct {
	calc   *setmetric.Calculator[T]
	logger ports.Logger
	alpha  float64
	beta   float64
}

// Option defines a functional option for configuring a Comparator.
type Option func(*config)

type config struct {
	Logger ports.Logger
	Alpha  float64
	Beta   float64
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithAlpha sets the default Tversky weight for elements unique to the
// reference set.
func WithAlpha(alpha float64) Option {
	return func(cfg *config) {
		cfg.Alpha = alpha
	}
}

// WithBeta sets the default Tversky weight for elements unique to the
// candidate set.
func WithBeta(beta float64) Option {
	return func(cfg *config) {
		cfg.Beta = beta
	}
}

// NewComparator creates a new set comparator with the provided options.
// If no logger is provided, a default logger is created.
func NewComparator[T comparable](opts ...Option) (*Comparator[T], error) {
	cfg := &config{
		Alpha: setmetric.DefaultAlpha,
		Beta:  setmetric.DefaultBeta,
	}
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

	return &Comparator[T]{
		calc:   setmetric.NewCalculator[T](cfg.Logger),
		logger: cfg.Logger,
		alpha:  cfg.Alpha,
		beta:   cfg.Beta,
	}, nil
}

// Jaccard computes the Jaccard index |A∩B| / |A∪B| between the two sets.
func (c *Comparator[T]) Jaccard(ctx context.Context, a, b Set[T]) domain.Result {
	if err := ctx.Err(); err != nil {
		c.logger.Error("Computation cancelled", "metric", "jaccard", "error", err)
		return domain.Result{Name: "jaccard"}
	}
	return c.calc.Jaccard(setmetric.Set[T](a), setmetric.Set[T](b))
}

// TverskyOption overrides a Tversky weight for a single call.
type TverskyOption func(*tverskyParams)

type tverskyParams struct {
	alpha float64
	beta  float64
}

// Alpha overrides the weight for elements unique to the reference set.
func Alpha(alpha float64) TverskyOption {
	return func(p *tverskyParams) {
		p.alpha = alpha
	}
}

// Beta overrides the weight for elements unique to the candidate set.
func Beta(beta float64) TverskyOption {
	return func(p *tverskyParams) {
		p.beta = beta
	}
}

// Tversky computes the Tversky index between a reference set a and a
// candidate set b. The comparator's weights apply unless overridden per call;
// either weight may be overridden independently.
func (c *Comparator[T]) Tversky(ctx context.Context, a, b Set[T], opts ...TverskyOption) domain.Result {
	if err := ctx.Err(); err != nil {
		c.logger.Error("Computation cancelled", "metric", "tversky", "error", err)
		return domain.Result{Name: "tversky"}
	}

	params := tverskyParams{alpha: c.alpha, beta: c.beta}
	for _, opt := range opts {
		opt(&params)
	}
	return c.calc.Tversky(setmetric.Set[T](a), setmetric.Set[T](b), params.alpha, params.beta)
}
