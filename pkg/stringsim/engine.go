package stringsim

import (
	"context"
	"encoding/binary"

	"github.com/baditaflorin/go_pair_metrics/internal/adapters/logger"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/core/editdist"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
	"github.com/baditaflorin/l"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DistanceEngine computes Damerau-Levenshtein edit distances with a matrix
// allocated once and reused across calls. An optional LRU cache memoizes
// results for repeated pairs.
type DistanceEngine struct {
	engine *editdist.Engine
	cache  *lru.Cache[uint64, domain.Result]
	logger ports.Logger
}

// EngineOption defines a functional option for configuring a DistanceEngine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	Logger    ports.Logger
	MaxLength int
	CacheSize int
}

// WithMaxLength sets the maximum input length the engine's matrix is
// allocated for. The default is 60.
func WithMaxLength(maxLen int) EngineOption {
	return func(cfg *engineConfig) {
		cfg.MaxLength = maxLen
	}
}

// WithResultCache enables an LRU cache of the given capacity that memoizes
// results for repeated pairs before they reach the matrix fill.
func WithResultCache(capacity int) EngineOption {
	return func(cfg *engineConfig) {
		cfg.CacheSize = capacity
	}
}

// WithEngineLogger sets a custom logger.
func WithEngineLogger(log l.Logger) EngineOption {
	return func(cfg *engineConfig) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// NewDistanceEngine creates a new cached edit-distance engine with the
// provided options.
func NewDistanceEngine(opts ...EngineOption) (*DistanceEngine, error) {
	cfg := &engineConfig{
		MaxLength: editdist.DefaultMaxLength,
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

	engine, err := editdist.NewEngine(cfg.MaxLength, cfg.Logger)
	if err != nil {
		return nil, err
	}

	e := &DistanceEngine{
		engine: engine,
		logger: cfg.Logger,
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[uint64, domain.Result](cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}

	return e, nil
}

// MaxLength returns the engine's input capacity.
func (e *DistanceEngine) MaxLength() int {
	return e.engine.MaxLength()
}

// Distance computes the Damerau-Levenshtein edit distance between the two
// strings. The result's Distance is the raw edit count; Similarity is
// 1 - distance/max(len1,len2). Inputs longer than the engine capacity return
// ErrCapacityExceeded.
func (e *DistanceEngine) Distance(ctx context.Context, s1, s2 string) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		e.logger.Error("Computation cancelled", "metric", "damerau_levenshtein", "error", err)
		return domain.Result{}, err
	}

	var key uint64
	if e.cache != nil {
		key = pairKey(s1, s2)
		if result, ok := e.cache.Get(key); ok {
			e.logger.Debug("Edit distance cache hit", "distance", result.Distance)
			return result, nil
		}
	}

	result, err := e.engine.Distance(s1, s2)
	if err != nil {
		return domain.Result{}, err
	}

	if e.cache != nil {
		e.cache.Add(key, result)
	}
	return result, nil
}

// pairKey hashes the pair with a length-prefixed framing so that
// ("ab","c") and ("a","bc") map to distinct keys.
func pairKey(s1, s2 string) uint64 {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s1)))

	h := xxhash.New()
	_, _ = h.Write(lenBuf[:])
	_, _ = h.WriteString(s1)
	_, _ = h.WriteString(s2)
	return h.Sum64()
}
