package seqfmt

// Built-in delimiter tables. The narrow and wide rows carry identical
// values; profiles exist to override either.
var defaultDelims = map[CharKind]Delims{
	Narrow: {Prefix: "[", Separator: ", ", Postfix: "]"},
	Wide:   {Prefix: "[", Separator: ", ", Postfix: "]"},
}

var shapeDelims = map[Shape]map[CharKind]Delims{
	ShapeSet: {
		Narrow: {Prefix: "{", Separator: ", ", Postfix: "}"},
		Wide:   {Prefix: "{", Separator: ", ", Postfix: "}"},
	},
	ShapePair: {
		Narrow: {Prefix: "(", Separator: ", ", Postfix: ")"},
		Wide:   {Prefix: "(", Separator: ", ", Postfix: ")"},
	},
	ShapeTuple: {
		Narrow: {Prefix: "<", Separator: ", ", Postfix: ">"},
		Wide:   {Prefix: "<", Separator: ", ", Postfix: ">"},
	},
}

// Resolve returns the delimiter triple used to render v at the given
// character kind: a Delimited override if v supplies one, the shape table
// entry for set/pair/tuple shapes, and the default bracket set otherwise.
// An unknown kind falls back to Narrow.
func Resolve(v any, kind CharKind) Delims {
	if d, ok := promote[Delimited](v); ok {
		return d.Delims()
	}
	return lookupDelims(ShapeOf(v), kind)
}

func lookupDelims(shape Shape, kind CharKind) Delims {
	if _, ok := defaultDelims[kind]; !ok {
		kind = Narrow
	}
	if byKind, ok := shapeDelims[shape]; ok {
		if d, ok := byKind[kind]; ok {
			return d
		}
	}
	return defaultDelims[kind]
}

// resolve is the profile-aware variant used by the engine: Delimited
// override, then the printer's profile, then the built-in tables.
func (p Printer) resolve(v any) Delims {
	if d, ok := promote[Delimited](v); ok {
		return d.Delims()
	}
	shape := ShapeOf(v)
	if p.Profile != nil {
		if d, ok := p.Profile.delims(shape); ok {
			return d
		}
	}
	return lookupDelims(shape, p.kind())
}
