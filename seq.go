package seqfmt

import (
	"io"
	"iter"
)

// WriteSeq renders items from a finite iterator to w using the default
// bracket set, joining elements as they arrive in a single pass. An empty
// sequence writes nothing. Elements recurse through the usual
// classification, so a sequence of pairs nests correctly.
func WriteSeq[T any](w io.Writer, seq iter.Seq[T]) error {
	var p Printer
	d := lookupDelims(ShapeDefault, p.kind())
	first := true
	for item := range seq {
		sep := d.Separator
		if first {
			sep = d.Prefix
			first = false
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
		if err := p.Write(w, item); err != nil {
			return err
		}
	}
	if first {
		return nil
	}
	_, err := io.WriteString(w, d.Postfix)
	return err
}

// WriteChan renders items from a channel to w.
// It is a thin wrapper around [WriteSeq].
func WriteChan[T any](w io.Writer, ch <-chan T) error {
	return WriteSeq(w, chanToSeq(ch))
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
