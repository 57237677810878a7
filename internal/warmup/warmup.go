package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_pair_metrics/internal/ports"
)

// Config defines configuration for warming up the metric engines before they
// serve traffic.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles warmup of registered pair metrics.
type Manager struct {
	logger  ports.Logger
	metrics []ports.PairMetric
	config  Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterMetric adds a metric to be warmed up.
func (m *Manager) RegisterMetric(metric ports.PairMetric) {
	m.metrics = append(m.metrics, metric)
}

// Sample pairs exercising the identical, near-match and mismatch paths of
// the metrics.
var samplePairs = [][2]string{
	{"jellyfish", "jellyfish"},
	{"jellyfish", "jellyfihs"},
	{"martha", "marhta"},
	{"dixon", "dicksonx"},
	{"appointment", "disappointment"},
	{"silverware", "ceremony"},
}

// WarmUp exercises every registered metric so that pooled buffers, matrices
// and code paths are hot before the first real request.
func (m *Manager) WarmUp(ctx context.Context) {
	if len(m.metrics) == 0 {
		return
	}

	startTime := time.Now()
	m.logger.Info("Starting metric warmup",
		"metrics", len(m.metrics),
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
	)

	warmupCtx := ctx
	var cancel context.CancelFunc
	if m.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, m.config.Duration)
		defer cancel()
	}

	var wg sync.WaitGroup
	for i := 0; i < m.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < m.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}

				pair := samplePairs[j%len(samplePairs)]
				for _, metric := range m.metrics {
					_ = metric.Compute(warmupCtx, pair[0], pair[1])
				}
			}
		}()
	}
	wg.Wait()

	if m.config.ForceGC {
		m.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	m.logger.Info("Metric warmup completed",
		"duration", time.Since(startTime),
	)
}
