package seqfmt

import "iter"

// Pair is a two-element pairing. It always renders both components inside
// pair delimiters; there is no empty case. Map entries render as pairs.
type Pair[F, S any] struct {
	First  F
	Second S
}

// PairOf pairs two values.
func PairOf[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

// Elements yields the first and second components in order.
func (p Pair[F, S]) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(p.First) {
			return
		}
		yield(p.Second)
	}
}

// Shape returns ShapePair.
func (Pair[F, S]) Shape() Shape { return ShapePair }
