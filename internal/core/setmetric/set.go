package setmetric

// Set is an unordered collection of unique comparable elements. It supports
// the capabilities the set metrics rely on: membership test, size query and
// iteration.
type Set[T comparable] map[T]struct{}

// NewSet creates an empty set with room for n elements.
func NewSet[T comparable](n int) Set[T] {
	return make(Set[T], n)
}

// FromSlice builds a set from the elements of a slice, discarding duplicates.
func FromSlice[T comparable](elems []T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element into the set.
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Has reports whether the set contains the element.
func (s Set[T]) Has(e T) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// intersectionCount counts the elements present in both sets, iterating the
// smaller set so work is bounded by O(min(|a|,|b|)).
func intersectionCount[T comparable](a, b Set[T]) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	count := 0
	for e := range a {
		if _, ok := b[e]; ok {
			count++
		}
	}
	return count
}
