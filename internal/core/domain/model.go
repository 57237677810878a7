package domain

import "errors"

// Result holds the outcome of a pairwise metric computation.
//
// For every metric except the raw edit distance, Distance is the complement
// of Similarity (Distance = 1 - Similarity) and Similarity falls in [0,1].
// The Damerau-Levenshtein engine reports Distance as an unnormalized edit
// count and Similarity as 1 - distance/max(len1,len2), which is not clamped.
type Result struct {
	// Name of the metric that produced this result.
	Name string
	// Distance between the two inputs.
	Distance float64
	// Similarity between the two inputs.
	Similarity float64
}

// ErrInvalidArgument is returned when an input carries a malformed value,
// such as a non-finite vector weight or a negative engine capacity.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrCapacityExceeded is returned by the edit-distance engine when an input
// is longer than the capacity its matrix was allocated for.
var ErrCapacityExceeded = errors.New("input exceeds engine capacity")
