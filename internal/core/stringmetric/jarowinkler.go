// Package stringmetric computes character-sequence similarity metrics: exact
// equality and the Jaro-Winkler index, which boosts a base Jaro score for
// strings sharing a short common prefix.
package stringmetric

import (
	"math"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/pool"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
)

// Default Jaro-Winkler parameters and their hard caps.
const (
	DefaultScalingFactor  = 0.1
	DefaultBoostThreshold = 0.7
	MaxScalingFactor      = 0.25
	MaxBoostThreshold     = 1.0
	maxPrefixLength       = 4
)

// JaroWinklerConfig holds the tunables of the Jaro-Winkler boost.
type JaroWinklerConfig struct {
	// ScalingFactor controls how strongly a common prefix is rewarded.
	ScalingFactor float64
	// BoostThreshold is the minimum base similarity required before the
	// prefix boost is applied.
	BoostThreshold float64
}

// DefaultJaroWinklerConfig returns the default configuration.
func DefaultJaroWinklerConfig() JaroWinklerConfig {
	return JaroWinklerConfig{
		ScalingFactor:  DefaultScalingFactor,
		BoostThreshold: DefaultBoostThreshold,
	}
}

// Sanitize coerces the tunables into their accepted ranges: negative values
// are replaced with their absolute value, the scaling factor is capped at
// 0.25 and the boost threshold at 1.
func (cfg JaroWinklerConfig) Sanitize() JaroWinklerConfig {
	cfg.ScalingFactor = math.Abs(cfg.ScalingFactor)
	if cfg.ScalingFactor > MaxScalingFactor {
		cfg.ScalingFactor = MaxScalingFactor
	}
	cfg.BoostThreshold = math.Abs(cfg.BoostThreshold)
	if cfg.BoostThreshold > MaxBoostThreshold {
		cfg.BoostThreshold = MaxBoostThreshold
	}
	return cfg
}

// Calculator computes string similarity metrics. The Jaro-Winkler metric
// consumes a base Jaro metric through the BaseSimilarity port.
type Calculator struct {
	base   ports.BaseSimilarity
	runes  *pool.RunePool
	logger ports.Logger
}

// NewCalculator creates a new string metric calculator around the given base
// similarity metric.
func NewCalculator(base ports.BaseSimilarity, logger ports.Logger) *Calculator {
	return &Calculator{base: base, runes: pool.NewRunePool(), logger: logger}
}

// JaroWinkler computes the Jaro-Winkler similarity between two strings.
//
// Identical inputs short-circuit to (0,1) without invoking the base metric.
// Otherwise the base Jaro result is returned unchanged when it falls below
// the boost threshold; above it, the similarity is boosted by
// l * scalingFactor * (1 - base) where l is the common-prefix length capped
// at 4 characters.
func (c *Calculator) JaroWinkler(s1, s2 string, cfg JaroWinklerConfig) domain.Result {
	if s1 == s2 {
		return domain.Result{Name: "jaro_winkler", Distance: 0, Similarity: 1}
	}

	cfg = cfg.Sanitize()

	b1 := c.runes.Get()
	b2 := c.runes.Get()
	defer c.runes.Put(b1)
	defer c.runes.Put(b2)
	r1 := appendRunes(b1, s1)
	r2 := appendRunes(b2, s2)
	base := c.base.Compare(r1, r2)

	if base.Similarity < cfg.BoostThreshold {
		c.logger.Debug("Base similarity below boost threshold, returning unboosted",
			"similarity", base.Similarity,
			"boost_threshold", cfg.BoostThreshold,
		)
		return domain.Result{Name: "jaro_winkler", Distance: base.Distance, Similarity: base.Similarity}
	}

	prefix := commonPrefixLength(r1, r2)
	boosted := base.Similarity + float64(prefix)*cfg.ScalingFactor*(1-base.Similarity)

	c.logger.Debug("Applied prefix boost",
		"base_similarity", base.Similarity,
		"prefix_length", prefix,
		"scaling_factor", cfg.ScalingFactor,
		"similarity", boosted,
	)

	return domain.Result{Name: "jaro_winkler", Distance: 1 - boosted, Similarity: boosted}
}

// appendRunes decodes s into the pooled buffer and returns the filled slice.
func appendRunes(buf *[]rune, s string) []rune {
	for _, r := range s {
		*buf = append(*buf, r)
	}
	return *buf
}

// commonPrefixLength counts the leading positions where both sequences
// agree, stopping at the first mismatch and capping at 4.
func commonPrefixLength(r1, r2 []rune) int {
	limit := maxPrefixLength
	if len(r1) < limit {
		limit = len(r1)
	}
	if len(r2) < limit {
		limit = len(r2)
	}
	l := 0
	for l < limit && r1[l] == r2[l] {
		l++
	}
	return l
}
