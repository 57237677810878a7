package ports

import (
	"context"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
)

// PairMetric defines the interface for computing a similarity metric between
// two character sequences.
type PairMetric interface {
	Compute(ctx context.Context, s1, s2 string) domain.Result
}

// BaseSimilarity defines the contract of the base string similarity metric
// consumed by the Jaro-Winkler boost. The returned result must satisfy
// Distance = 1 - Similarity with Similarity in [0,1].
type BaseSimilarity interface {
	Compare(s1, s2 []rune) domain.Result
}
