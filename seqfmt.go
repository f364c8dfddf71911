package seqfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidProfile = errors.New("invalid delimiter profile")
)

// CharKind selects a row of the delimiter tables. Both built-in rows carry
// the same values; the axis exists so profiles and custom delimiter sets
// can differ between narrow and wide output.
type CharKind string

const (
	Narrow CharKind = "narrow"
	Wide   CharKind = "wide"
)

// String returns the character kind name.
func (k CharKind) String() string { return string(k) }

// Shape is the delimiter category of a container type.
type Shape string

const (
	ShapeDefault Shape = "default"
	ShapeSet     Shape = "set"
	ShapePair    Shape = "pair"
	ShapeTuple   Shape = "tuple"
)

var shapes = []Shape{ShapeDefault, ShapeSet, ShapePair, ShapeTuple}

// String returns the shape name.
func (s Shape) String() string { return string(s) }

// Shapes returns all shapes the delimiter resolver distinguishes.
func Shapes() []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}

// Delims is an immutable prefix/separator/postfix triple.
type Delims struct {
	Prefix    string `yaml:"prefix"`
	Separator string `yaml:"separator"`
	Postfix   string `yaml:"postfix"`
}

// --- Capability Interfaces ---

// Elementer is the structural probe that classifies a type as a container.
// Any type that can enumerate its elements is rendered by iterating and
// joining. Method sets propagate through embedding, so a type embedding a
// container is itself a container.
type Elementer interface {
	Elements() iter.Seq[any]
}

// Shaper opts a container into one of the shape-specific delimiter sets.
// Without it, slices, arrays, and custom Elementers use ShapeDefault.
type Shaper interface {
	Shape() Shape
}

// Delimited supplies a per-type delimiter set, checked before profiles and
// the built-in tables.
type Delimited interface {
	Delims() Delims
}

// --- Printer ---

// Printer binds a character kind and an optional delimiter profile for
// repeated rendering. The zero value renders narrow output with the
// built-in tables. A Printer holds no per-call state and is safe for
// concurrent use.
type Printer struct {
	Kind    CharKind
	Profile *Profile
}

func (p Printer) kind() CharKind {
	if p.Kind == "" {
		return Narrow
	}
	return p.Kind
}

// Marshal renders v and returns the bytes.
func (p Printer) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sprint renders v to a string.
func (p Printer) Sprint(v any) string {
	var sb strings.Builder
	_ = p.Write(&sb, v) // strings.Builder writes cannot fail
	return sb.String()
}

// --- Package-level entry points (narrow, built-in tables) ---

// Write renders v to w. Container-classified values are iterated, joined
// with their resolved separator, and wrapped in their resolved prefix and
// postfix, recursing into container-typed elements. Atomic values pass
// through via their own textual representation. An empty container writes
// nothing at all.
func Write(w io.Writer, v any) error {
	var p Printer
	return p.Write(w, v)
}

// Marshal renders v and returns the bytes.
func Marshal(v any) ([]byte, error) {
	var p Printer
	return p.Marshal(v)
}

// Sprint renders v to a string.
func Sprint(v any) string {
	var p Printer
	return p.Sprint(v)
}

// Stringer adapts v for use inside fmt verbs, so containers can be chained
// into larger format calls:
//
//	fmt.Printf("got %v", seqfmt.Stringer(pairs))
func Stringer(v any) fmt.Stringer { return stringerVal{v} }

type stringerVal struct{ v any }

func (s stringerVal) String() string { return Sprint(s.v) }
