// pairmetrics.go
// Package pairmetrics computes pairwise similarity and distance metrics
// between two inputs of a matching shape: two sets, two character sequences,
// or two sparse token-frequency vectors. Every metric returns the same
// result shape, a (distance, similarity) pair, making the package a
// foundation primitive for record deduplication, fuzzy string matching and
// text-mining pipelines.
//
// The package-level functions are one-shot conveniences over shared default
// calculators. For configurable instances (custom loggers, Tversky weights,
// Jaro-Winkler tunables, engine capacity, result caching), use the facades
// in pkg/set, pkg/stringsim and pkg/bow.
package pairmetrics

import (
	"sync"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/jaro"
	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	bowcore "github.com/baditaflorin/go_pair_metrics/internal/core/bow"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/core/setmetric"
	"github.com/baditaflorin/go_pair_metrics/internal/core/stringmetric"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
	"github.com/baditaflorin/go_pair_metrics/pkg/bow"
	"github.com/baditaflorin/go_pair_metrics/pkg/set"
	"github.com/baditaflorin/go_pair_metrics/pkg/stringsim"
)

// Result is the shared outcome of every metric: a (distance, similarity)
// pair. For all metrics except the raw edit distance,
// distance = 1 - similarity.
type Result = domain.Result

// Default Tversky weights, reducing the index to the Dice coefficient.
const (
	DefaultAlpha = setmetric.DefaultAlpha
	DefaultBeta  = setmetric.DefaultBeta
)

// The one-shot functions share a lazily created logger; they fall back to a
// silent logger if the default cannot be constructed.
var defaultLogger = sync.OnceValue(func() ports.Logger {
	log, err := logger.NewStdLogger()
	if err != nil {
		return logger.NewNopLogger()
	}
	return log
})

var defaultStringCalc = sync.OnceValue(func() *stringmetric.Calculator {
	return stringmetric.NewCalculator(jaro.New(), defaultLogger())
})

var defaultBowCalc = sync.OnceValue(func() *bowcore.Calculator {
	return bowcore.NewCalculator(defaultLogger())
})

// Jaccard computes the Jaccard index |A∩B| / |A∪B| between two sets. Two
// empty sets are treated as vacuously identical, with similarity 1.
func Jaccard[T comparable](a, b set.Set[T]) Result {
	calc := setmetric.NewCalculator[T](defaultLogger())
	return calc.Jaccard(setmetric.Set[T](a), setmetric.Set[T](b))
}

// Tversky computes the Tversky index between a reference set a and a
// candidate set b with the given weights. Weights of 0.5 reduce the index to
// the Dice coefficient, weights of 1 to Jaccard.
func Tversky[T comparable](a, b set.Set[T], alpha, beta float64) Result {
	calc := setmetric.NewCalculator[T](defaultLogger())
	return calc.Tversky(setmetric.Set[T](a), setmetric.Set[T](b), alpha, beta)
}

// Exact computes the equality-based similarity between two strings: (0,1)
// when identical, (1,0) otherwise.
func Exact(s1, s2 string) Result {
	return defaultStringCalc().Exact(s1, s2)
}

// JaroWinkler computes the Jaro-Winkler similarity between two strings with
// the default tunables (scaling factor 0.1, boost threshold 0.7).
func JaroWinkler(s1, s2 string) Result {
	return defaultStringCalc().JaroWinkler(s1, s2, stringmetric.DefaultJaroWinklerConfig())
}

// NewDistanceEngine creates a cached Damerau-Levenshtein edit distance
// engine. The engine preallocates its cost matrix once and reuses it across
// calls; see pkg/stringsim for the available options.
func NewDistanceEngine(opts ...stringsim.EngineOption) (*stringsim.DistanceEngine, error) {
	return stringsim.NewDistanceEngine(opts...)
}

// Cosine computes the bag-of-words cosine similarity between two sparse
// vectors. Non-finite weights are rejected with ErrInvalidArgument.
func Cosine(a, b bow.Vector) (Result, error) {
	return defaultBowCalc().Cosine(bowcore.Vector(a), bowcore.Vector(b))
}
