// Package editdist implements a Damerau-Levenshtein edit distance engine
// with a preallocated dynamic-programming matrix reused across calls, so
// scoring one string against many candidates amortizes the allocation.
package editdist

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/internal/ports"
)

// DefaultMaxLength is the default capacity of the distance matrix.
const DefaultMaxLength = 60

// Engine owns a cost matrix sized for inputs up to maxLen characters,
// allocated once at construction and overwritten on every call. The matrix
// is guarded by a mutex so a shared engine is safe for concurrent use; for
// contention-free scoring, construct one engine per worker.
type Engine struct {
	mu      sync.Mutex
	maxLen  int
	matrix  [][]int
	lastRow map[rune]int
	logger  ports.Logger
}

// NewEngine creates an engine with capacity for inputs up to maxLen
// characters. A negative maxLen is rejected with ErrInvalidArgument.
func NewEngine(maxLen int, logger ports.Logger) (*Engine, error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("%w: max length must not be negative, got %d", domain.ErrInvalidArgument, maxLen)
	}

	// One extra border row and column beyond the usual len+1 carries the
	// sentinel cost used by the transposition transition.
	matrix := make([][]int, maxLen+2)
	for i := range matrix {
		matrix[i] = make([]int, maxLen+2)
	}

	logger.Debug("Allocated edit distance matrix", "max_length", maxLen)

	return &Engine{
		maxLen:  maxLen,
		matrix:  matrix,
		lastRow: make(map[rune]int),
		logger:  logger,
	}, nil
}

// MaxLength returns the engine's input capacity.
func (e *Engine) MaxLength() int {
	return e.maxLen
}

// Distance computes the Damerau-Levenshtein edit distance between two
// strings: the minimum number of insertions, deletions, substitutions and
// transpositions of adjacent characters transforming one into the other. An
// adjacent swap counts as one edit instead of two, and the metric satisfies
// the triangle inequality.
//
// The result's Distance is the raw edit count; Similarity is
// 1 - distance/max(len1,len2) and is not clamped. When either input is
// empty the distance is the length of the other input and the similarity is
// 0, even for two empty inputs.
//
// Inputs longer than the engine capacity return ErrCapacityExceeded.
func (e *Engine) Distance(s1, s2 string) (domain.Result, error) {
	if n := utf8.RuneCountInString(s1); n > e.maxLen {
		return domain.Result{}, fmt.Errorf("%w: first input is %d characters, capacity is %d", domain.ErrCapacityExceeded, n, e.maxLen)
	}
	if n := utf8.RuneCountInString(s2); n > e.maxLen {
		return domain.Result{}, fmt.Errorf("%w: second input is %d characters, capacity is %d", domain.ErrCapacityExceeded, n, e.maxLen)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	len1 := len(r1)
	len2 := len(r2)

	// Empty inputs bypass the matrix. Two empty strings yield similarity 0,
	// not 1: this metric treats empty-vs-empty as maximally dissimilar.
	if len1 == 0 || len2 == 0 {
		distance := len1
		if len2 > distance {
			distance = len2
		}
		return domain.Result{Name: "damerau_levenshtein", Distance: float64(distance), Similarity: 0}, nil
	}

	e.mu.Lock()
	distance := e.fill(r1, r2)
	e.mu.Unlock()

	maxLen := len1
	if len2 > maxLen {
		maxLen = len2
	}
	similarity := 1 - float64(distance)/float64(maxLen)

	e.logger.Debug("Computed edit distance",
		"len1", len1,
		"len2", len2,
		"distance", distance,
		"similarity", similarity,
	)

	return domain.Result{Name: "damerau_levenshtein", Distance: float64(distance), Similarity: similarity}, nil
}

// fill runs the dynamic-programming fill over the reused matrix. Cell
// [i+1][j+1] is the minimum cost to transform the first i characters of r1
// into the first j characters of r2; row and column 0 hold a sentinel that
// keeps the transposition transition from undercutting real costs. The
// caller must hold the mutex.
func (e *Engine) fill(r1, r2 []rune) int {
	len1 := len(r1)
	len2 := len(r2)
	m := e.matrix

	sentinel := len1 + len2
	m[0][0] = sentinel
	for i := 0; i <= len1; i++ {
		m[i+1][0] = sentinel
		m[i+1][1] = i
	}
	for j := 0; j <= len2; j++ {
		m[0][j+1] = sentinel
		m[1][j+1] = j
	}

	// lastRow[c] is the most recent row of r1 where c occurred; together
	// with lastMatch it locates the candidate transposition partner.
	clear(e.lastRow)

	for i := 1; i <= len1; i++ {
		lastMatch := 0
		for j := 1; j <= len2; j++ {
			k := e.lastRow[r2[j-1]]
			l := lastMatch

			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
				lastMatch = j
			}

			substitution := m[i][j] + cost
			insertion := m[i+1][j] + 1
			deletion := m[i][j+1] + 1
			transposition := m[k][l] + (i - k - 1) + 1 + (j - l - 1)

			best := substitution
			if insertion < best {
				best = insertion
			}
			if deletion < best {
				best = deletion
			}
			if transposition < best {
				best = transposition
			}
			m[i+1][j+1] = best
		}
		e.lastRow[r1[i-1]] = i
	}

	return m[len1+1][len2+1]
}
