// Package jaro provides the default base similarity metric consumed by the
// Jaro-Winkler boost: the classical Jaro algorithm with a matching window of
// floor(max(len1,len2)/2)-1 and transposition counting.
package jaro

import (
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/pool"
)

// Metric implements ports.BaseSimilarity using the classical Jaro algorithm.
// Match-flag buffers are pooled so repeated comparisons do not allocate.
type Metric struct {
	flags *pool.FlagPool
}

// New creates a new Jaro base metric.
func New() *Metric {
	return &Metric{flags: pool.NewFlagPool()}
}

// Compare computes the Jaro similarity between two rune sequences. The
// result satisfies Distance = 1 - Similarity with Similarity in [0,1].
func (m *Metric) Compare(s1, s2 []rune) domain.Result {
	len1 := len(s1)
	len2 := len(s2)
	if len1 == 0 || len2 == 0 {
		return domain.Result{Name: "jaro", Distance: 1, Similarity: 0}
	}

	window := max(len1, len2)/2 - 1
	if window < 0 {
		window = 0
	}

	flags1 := m.flags.Get(len1)
	flags2 := m.flags.Get(len2)
	defer m.flags.Put(flags1)
	defer m.flags.Put(flags2)
	matched1 := *flags1
	matched2 := *flags2

	// Count characters common to both sequences within the window.
	common := 0
	for i := 0; i < len1; i++ {
		low := i - window
		if low < 0 {
			low = 0
		}
		high := i + window
		if high > len2-1 {
			high = len2 - 1
		}
		for j := low; j <= high; j++ {
			if !matched2[j] && s1[i] == s2[j] {
				matched1[i] = true
				matched2[j] = true
				common++
				break
			}
		}
	}

	if common == 0 {
		return domain.Result{Name: "jaro", Distance: 1, Similarity: 0}
	}

	// Count half-transpositions between the matched characters.
	halfTransposed := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if s1[i] != s2[k] {
			halfTransposed++
		}
		k++
	}
	transposed := halfTransposed / 2

	c := float64(common)
	similarity := (c/float64(len1) + c/float64(len2) + (c-float64(transposed))/c) / 3
	return domain.Result{Name: "jaro", Distance: 1 - similarity, Similarity: similarity}
}
