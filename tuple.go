package seqfmt

import "iter"

// Tuple is a fixed grouping of values of any arity, rendered inside angle
// brackets. A zero-arity tuple follows the empty-container policy and
// renders as nothing.
type Tuple []any

// TupleOf groups values into a Tuple.
func TupleOf(values ...any) Tuple { return Tuple(values) }

// Elements yields the tuple's values in order.
func (t Tuple) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range t {
			if !yield(v) {
				return
			}
		}
	}
}

// Shape returns ShapeTuple.
func (Tuple) Shape() Shape { return ShapeTuple }
