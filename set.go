package seqfmt

import (
	"cmp"
	"iter"
	"slices"
)

// Set is an ordered set: unique elements kept in ascending order, rendered
// inside brace delimiters. The zero value is an empty set ready for use; a
// nil *Set reads as empty.
type Set[T cmp.Ordered] struct {
	items []T
}

// NewSet builds a set from the given items, deduplicating as it goes.
func NewSet[T cmp.Ordered](items ...T) *Set[T] {
	s := &Set[T]{}
	s.Add(items...)
	return s
}

// Add inserts items, ignoring duplicates.
func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		i, found := slices.BinarySearch(s.items, item)
		if found {
			continue
		}
		s.items = slices.Insert(s.items, i, item)
	}
}

// Has reports whether item is in the set.
func (s *Set[T]) Has(item T) bool {
	if s == nil {
		return false
	}
	_, found := slices.BinarySearch(s.items, item)
	return found
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns the elements in ascending order.
func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Elements yields the elements in ascending order.
func (s *Set[T]) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		if s == nil {
			return
		}
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Shape returns ShapeSet.
func (*Set[T]) Shape() Shape { return ShapeSet }
