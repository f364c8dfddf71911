package seqfmt

import "reflect"

var elementerType = reflect.TypeOf((*Elementer)(nil)).Elem()

// IsContainer reports whether v is rendered as a container (iterate and
// join) rather than as an atomic value. Strings and fixed-size character
// arrays are atomic even though they are iterable; everything the probe
// cannot classify is atomic, never an error.
func IsContainer(v any) bool {
	if v == nil {
		return false
	}
	return isContainerType(reflect.TypeOf(v))
}

// isContainerType applies the classification rules in priority order:
// string exclusion, character-array exclusion, fixed-size arrays, the
// structural Elements probe, then the native slice and map kinds. The
// probe also checks the pointer method set, so pointer-receiver
// implementations classify from values.
func isContainerType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.String:
		return false
	case reflect.Array:
		return !isCharElem(t.Elem())
	}
	if t.Implements(elementerType) {
		return true
	}
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(elementerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Map:
		return true
	case reflect.Pointer:
		return isContainerType(t.Elem())
	}
	return false
}

// isCharElem reports whether an array of this element type holds text.
// rune is an alias for int32, so any int32 array counts as wide text.
func isCharElem(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint8, reflect.Int32:
		return true
	}
	return false
}

// ShapeOf returns the delimiter category for v: a Shaper's own shape,
// ShapeSet for struct{}-valued maps, and ShapeDefault otherwise.
func ShapeOf(v any) Shape {
	if s, ok := promote[Shaper](v); ok {
		return s.Shape()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.IsValid() && isSetLikeMap(rv.Type()) {
		return ShapeSet
	}
	return ShapeDefault
}

// isSetLikeMap reports whether t is a map used as a set (struct{} values).
func isSetLikeMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map &&
		t.Elem().Kind() == reflect.Struct &&
		t.Elem().NumField() == 0
}

// promote retries an interface assertion through an addressable copy, so
// pointer-receiver methods are visible when the caller holds a value.
func promote[I any](v any) (I, bool) {
	if i, ok := v.(I); ok {
		return i, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() != reflect.Pointer {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if i, ok := pv.Interface().(I); ok {
			return i, true
		}
	}
	var zero I
	return zero, false
}
