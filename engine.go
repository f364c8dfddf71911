package seqfmt

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"reflect"
	"slices"
)

// Write renders v to w using the printer's character kind and profile.
// The value is only read, never retained; it must stay valid and unchanged
// for the duration of the call.
func (p Printer) Write(w io.Writer, v any) error {
	if !IsContainer(v) {
		return writeAtomic(w, v)
	}
	d := p.resolve(v)
	first := true
	for elem := range elementsOf(v) {
		sep := d.Separator
		if first {
			sep = d.Prefix
			first = false
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
		if err := p.Write(w, elem); err != nil {
			return err
		}
	}
	if first {
		// Zero elements: no brackets at all.
		return nil
	}
	_, err := io.WriteString(w, d.Postfix)
	return err
}

// writeAtomic passes a non-container value through via its own textual
// representation. Fixed-size character arrays render as their string
// contents rather than through fmt's bracketed array form.
func writeAtomic(w io.Writer, v any) error {
	if s, ok := charArrayString(v); ok {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := fmt.Fprint(w, v)
	return err
}

// charArrayString converts a [N]byte or [N]rune value to its text.
func charArrayString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Array {
		return "", false
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Uint8:
		b := make([]byte, rv.Len())
		for i := range b {
			b[i] = byte(rv.Index(i).Uint())
		}
		return string(b), true
	case reflect.Int32:
		r := make([]rune, rv.Len())
		for i := range r {
			r[i] = rune(rv.Index(i).Int())
		}
		return string(r), true
	}
	return "", false
}

// elementsOf enumerates a container's elements: the type's own Elements
// sequence when the probe matches, index order for slices and arrays, and
// sorted key order for maps. Maps yield (key, value) pairs, except
// struct{}-valued maps which yield bare keys. Non-containers yield
// nothing.
func elementsOf(v any) iter.Seq[any] {
	if e, ok := promote[Elementer](v); ok {
		return e.Elements()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return emptySeq
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}
	case reflect.Map:
		keysOnly := isSetLikeMap(rv.Type())
		return func(yield func(any) bool) {
			for _, k := range sortedMapKeys(rv) {
				var elem any
				if keysOnly {
					elem = k.Interface()
				} else {
					elem = PairOf(k.Interface(), rv.MapIndex(k).Interface())
				}
				if !yield(elem) {
					return
				}
			}
		}
	}
	return emptySeq
}

func emptySeq(func(any) bool) {}

// sortedMapKeys orders keys so map rendering is deterministic: numeric
// kinds numerically, strings lexically, anything else by rendered text.
func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}
