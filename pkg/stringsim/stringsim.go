// Package stringsim provides the public facade for string similarity
// metrics: exact equality, Jaro-Winkler, and the cached Damerau-Levenshtein
// edit distance engine.
package stringsim

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/jaro"
	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/core/stringmetric"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
	"github.com/baditaflorin/go_pair_metrics/internal/warmup"
	"github.com/baditaflorin/l"
)

// Comparator computes string similarity metrics between pairs of strings.
type Comparator struct {
	calc     *stringmetric.Calculator
	logger   ports.Logger
	cfg      stringmetric.JaroWinklerConfig
	warmOnce sync.Once
}

// Option defines a functional option for configuring a Comparator.
type Option func(*config)

type config struct {
	Logger         ports.Logger
	Base           ports.BaseSimilarity
	ScalingFactor  float64
	BoostThreshold float64
	WarmUp         bool
	WarmUpConfig   warmup.Config
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithBaseMetric replaces the default Jaro base metric consumed by the
// Jaro-Winkler boost.
func WithBaseMetric(base ports.BaseSimilarity) Option {
	return func(cfg *config) {
		cfg.Base = base
	}
}

// WithScalingFactor sets the default Jaro-Winkler prefix scaling factor.
func WithScalingFactor(sf float64) Option {
	return func(cfg *config) {
		cfg.ScalingFactor = sf
	}
}

// WithBoostThreshold sets the default Jaro-Winkler boost threshold.
func WithBoostThreshold(bt float64) Option {
	return func(cfg *config) {
		cfg.BoostThreshold = bt
	}
}

// WithWarmUp enables metric warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.Config) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// NewComparator creates a new string comparator with the provided options.
// If no logger is provided, a default logger is created; if no base metric
// is provided, the classical Jaro metric is used.
func NewComparator(opts ...Option) (*Comparator, error) {
	defaults := stringmetric.DefaultJaroWinklerConfig()

	cfg := &config{
		ScalingFactor:  defaults.ScalingFactor,
		BoostThreshold: defaults.BoostThreshold,
		WarmUpConfig:   warmup.DefaultConfig(),
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
	if cfg.Base == nil {
		cfg.Base = jaro.New()
	}

	c := &Comparator{
		calc:   stringmetric.NewCalculator(cfg.Base, cfg.Logger),
		logger: cfg.Logger,
		cfg: stringmetric.JaroWinklerConfig{
			ScalingFactor:  cfg.ScalingFactor,
			BoostThreshold: cfg.BoostThreshold,
		},
	}

	if cfg.WarmUp {
		c.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return c, nil
}

// Exact computes the equality-based similarity between the two strings:
// (0,1) when identical, (1,0) otherwise.
func (c *Comparator) Exact(ctx context.Context, s1, s2 string) domain.Result {
	if err := ctx.Err(); err != nil {
		c.logger.Error("Computation cancelled", "metric", "exact", "error", err)
		return domain.Result{Name: "exact"}
	}
	return c.calc.Exact(s1, s2)
}

// JaroWinklerOption overrides a Jaro-Winkler tunable for a single call.
type JaroWinklerOption func(*stringmetric.JaroWinklerConfig)

// ScalingFactor overrides the prefix scaling factor. Negative values are
// coerced to their absolute value and the factor is capped at 0.25.
func ScalingFactor(sf float64) JaroWinklerOption {
	return func(cfg *stringmetric.JaroWinklerConfig) {
		cfg.ScalingFactor = sf
	}
}

// BoostThreshold overrides the boost threshold. Negative values are coerced
// to their absolute value and the threshold is capped at 1.
func BoostThreshold(bt float64) JaroWinklerOption {
	return func(cfg *stringmetric.JaroWinklerConfig) {
		cfg.BoostThreshold = bt
	}
}

// JaroWinkler computes the Jaro-Winkler similarity between the two strings.
// The comparator's tunables apply unless overridden per call.
func (c *Comparator) JaroWinkler(ctx context.Context, s1, s2 string, opts ...JaroWinklerOption) domain.Result {
	if err := ctx.Err(); err != nil {
		c.logger.Error("Computation cancelled", "metric", "jaro_winkler", "error", err)
		return domain.Result{Name: "jaro_winkler"}
	}

	cfg := c.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	return c.calc.JaroWinkler(s1, s2, cfg)
}

// WarmUp pre-exercises the comparator so pooled buffers are hot. It runs at
// most once per comparator and is safe to call from concurrent goroutines.
func (c *Comparator) WarmUp(ctx context.Context, cfg warmup.Config) {
	c.warmOnce.Do(func() {
		mgr := warmup.NewManager(c.logger, cfg)
		mgr.RegisterMetric(metricFunc(func(ctx context.Context, s1, s2 string) domain.Result {
			return c.JaroWinkler(ctx, s1, s2)
		}))
		mgr.RegisterMetric(metricFunc(func(ctx context.Context, s1, s2 string) domain.Result {
			return c.Exact(ctx, s1, s2)
		}))

		mgr.WarmUp(ctx)
	})
}

// metricFunc adapts a function to the ports.PairMetric interface.
type metricFunc func(ctx context.Context, s1, s2 string) domain.Result

func (f metricFunc) Compute(ctx context.Context, s1, s2 string) domain.Result {
	return f(ctx, s1, s2)
}
