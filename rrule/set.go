package rrule

import (
	"cmp"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct values. Iterate it through
// Sorted to get the canonical order.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet builds a set from vals, dropping duplicates.
func NewSet[T cmp.Ordered](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v. The set must have been created with NewSet or make.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values; a nil set is empty.
func (s Set[T]) Len() int {
	return len(s)
}

// Sorted returns the values in ascending order.
func (s Set[T]) Sorted() []T {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets hold the same values. Nil and empty sets are equal.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}
