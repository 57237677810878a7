package stringmetric

import "github.com/baditaflorin/go_pair_metrics/internal/core/domain"

// Exact computes the equality-based similarity between two strings: (0,1)
// when they are identical, (1,0) otherwise. No partial credit.
func (c *Calculator) Exact(s1, s2 string) domain.Result {
	if s1 == s2 {
		return domain.Result{Name: "exact", Distance: 0, Similarity: 1}
	}
	return domain.Result{Name: "exact", Distance: 1, Similarity: 0}
}
