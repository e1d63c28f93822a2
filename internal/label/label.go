// Package label encodes and decodes compact conic identifiers of the form
// <type><parameter><orientation>, e.g. "c5n" for a circle of parameter 5
// facing north or "p0.25se" for a parabola facing south-east.
//
// The type is a single letter (p, e, c, h) and the orientation is one of the
// eight compass points. Everything between them is the parameter. A parameter
// that is empty or itself ends in a compass letter cannot be told apart from
// the orientation, so Decode rejects it rather than guess.
package label

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the kind of conic a label names.
type Type int

const (
	Parabola Type = iota
	Ellipse
	Circle
	Hyperbola
)

var typeNames = [...]string{
	Parabola:  "parabola",
	Ellipse:   "ellipse",
	Circle:    "circle",
	Hyperbola: "hyperbola",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Code returns the single-letter code used in encoded labels, or '?' for an
// unknown type.
func (t Type) Code() byte {
	if t < 0 || int(t) >= len(typeNames) {
		return '?'
	}
	return typeNames[t][0]
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType accepts either a type name ("circle") or its code ("c").
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown conic type %q", ErrDecodeMismatch, s)
}

// Orientation is a compass direction.
type Orientation string

const (
	North     Orientation = "n"
	South     Orientation = "s"
	East      Orientation = "e"
	West      Orientation = "w"
	NorthEast Orientation = "ne"
	NorthWest Orientation = "nw"
	SouthEast Orientation = "se"
	SouthWest Orientation = "sw"
)

// Orientations lists the valid orientations.
var Orientations = []Orientation{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// ParseOrientation validates s as one of the eight compass points.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range Orientations {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: unknown orientation %q", ErrDecodeMismatch, s)
}

// Label is a decoded conic identifier.
type Label struct {
	Type        Type        `json:"type"`
	Orientation Orientation `json:"orientation"`
	Parameter   string      `json:"parameter"`
}

func (l Label) String() string { return Encode(l.Type, l.Orientation, l.Parameter) }

// Encode concatenates the type code, the parameter and the orientation. It
// does not validate; a parameter ending in a compass letter produces a label
// that Decode will reject.
func Encode(t Type, o Orientation, parameter string) string {
	return string(t.Code()) + parameter + string(o)
}

// FormatParameter renders a numeric parameter in its shortest exact form.
func FormatParameter(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Decode splits s into type, parameter and orientation. The two-letter
// orientation suffix is tried before the one-letter one.
func Decode(s string) (Label, error) {
	if len(s) < 3 {
		return Label{}, fmt.Errorf("%w: %q is too short", ErrDecodeMismatch, s)
	}
	t, err := ParseType(s[:1])
	if err != nil {
		return Label{}, err
	}

	rest := s[1:]
	for _, n := range [...]int{2, 1} {
		if len(rest) <= n {
			continue
		}
		o, err := ParseOrientation(rest[len(rest)-n:])
		if err != nil {
			continue
		}
		param := rest[:len(rest)-n]
		if strings.ContainsAny(param[len(param)-1:], "nsew") {
			return Label{}, fmt.Errorf("%w: %q has an ambiguous orientation suffix", ErrDecodeMismatch, s)
		}
		return Label{Type: t, Orientation: o, Parameter: param}, nil
	}
	return Label{}, fmt.Errorf("%w: %q has no orientation suffix", ErrDecodeMismatch, s)
}
