// Package seqfmt renders iterable and tuple-like values as bracketed,
// delimited text.
//
// The central entry points are [Write], [Marshal], and [Sprint], which
// accept any value. Container-classified values are iterated, joined with
// a separator, and wrapped in a prefix and postfix; everything else passes
// through via its own textual representation. Classification never fails:
// an unclassifiable value is simply atomic.
//
// # Classification
//
// [IsContainer] decides container versus atomic from structure, not
// identity:
//
//   - strings are atomic, even though they iterate
//   - fixed-size byte and rune arrays are atomic and render as text
//   - other arrays, slices, and maps are containers
//   - [Pair], [Tuple], and [Set] are containers
//   - any type implementing [Elementer] is a container
//
// Because the probe checks method sets, a type embedding a container (or a
// named type over a slice or map) classifies as a container too.
//
// # Delimiters
//
// [Resolve] maps a value and a [CharKind] to its (prefix, separator,
// postfix) triple. The default is "[", ", ", "]"; set-shaped values use
// braces, pairs use parentheses, and tuples use angle brackets:
//
//	seqfmt.Sprint([]int{1, 2, 3, 4})        // "[1, 2, 3, 4]"
//	seqfmt.Sprint(seqfmt.NewSet(1, 2, 3))   // "{1, 2, 3}"
//	seqfmt.Sprint(seqfmt.PairOf(10, 100))   // "(10, 100)"
//	seqfmt.Sprint(seqfmt.TupleOf(1, 2))     // "<1, 2>"
//
// Empty containers render as nothing at all, not as an empty bracket
// pair. Elements recurse, so a slice of pairs nests:
//
//	seqfmt.Sprint([]seqfmt.Pair[int, int]{seqfmt.PairOf(1, 2)}) // "[(1, 2)]"
//
// Maps render deterministically in sorted key order as pairs of key and
// value; struct{}-valued maps render their keys with set braces.
//
// # Customization
//
// A type can implement [Delimited] to supply its own triple, or [Shaper]
// to opt into one of the shape tables. A [Printer] carries a [CharKind]
// and an optional YAML [Profile] (see [ParseProfile]) that overrides the
// built-in tables per shape.
//
// # Sequences
//
// [WriteSeq] and [WriteChan] render finite iterators and channels in a
// single pass with the default bracket set.
//
// # Errors
//
// Formatting itself is total: the only runtime errors are write failures
// propagated from the destination and [ErrInvalidProfile] from profile
// parsing. Values must be finite and must not be mutated during a call;
// the package never retains or mutates what it prints.
package seqfmt
