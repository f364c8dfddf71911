package seqfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile overrides the built-in delimiter tables per shape. Nil entries
// fall through to the built-in tables; an override applies only to its own
// shape (a custom default does not leak into set, pair, or tuple
// rendering). Attach a profile to a [Printer] to use it.
type Profile struct {
	Default *Delims `yaml:"default,omitempty"`
	Set     *Delims `yaml:"set,omitempty"`
	Pair    *Delims `yaml:"pair,omitempty"`
	Tuple   *Delims `yaml:"tuple,omitempty"`
}

// ParseProfile decodes a YAML delimiter profile:
//
//	default:
//	  prefix: "("
//	  separator: "; "
//	  postfix: ")"
//	set:
//	  prefix: "⟨"
//	  separator: " "
//	  postfix: "⟩"
//
// Unknown fields are rejected. Decode failures wrap [ErrInvalidProfile].
func ParseProfile(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	return &p, nil
}

func (p *Profile) delims(shape Shape) (Delims, bool) {
	var d *Delims
	switch shape {
	case ShapeDefault:
		d = p.Default
	case ShapeSet:
		d = p.Set
	case ShapePair:
		d = p.Pair
	case ShapeTuple:
		d = p.Tuple
	}
	if d == nil {
		return Delims{}, false
	}
	return *d, true
}
