// Package palette provides the named color schemes used to draw conics and
// the contrast rule for text drawn on top of them.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/conics/internal/label"
)

// Scheme is one of a closed set of color schemes.
type Scheme int

const (
	Default Scheme = iota
	Mathematical
	Celestial
	Print
	numSchemes
)

var schemeNames = [...]string{
	Default:      "default",
	Mathematical: "mathematical",
	Celestial:    "celestial",
	Print:        "print",
}

func (s Scheme) String() string {
	if s < 0 || s >= numSchemes {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme looks a scheme up by name, ignoring case.
func ParseScheme(name string) (Scheme, error) {
	for s, n := range schemeNames {
		if strings.EqualFold(name, n) {
			return Scheme(s), nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Next cycles through the schemes in declaration order.
func (s Scheme) Next() Scheme { return (s + 1) % numSchemes }

// Colors is the set of named roles a renderer paints with.
type Colors struct {
	Curve      colorful.Color // the parabola itself
	Primary    colorful.Color // vertex
	Secondary  colorful.Color // focus, directrix
	Accent     colorful.Color // lattice markers
	Background colorful.Color
	Text       colorful.Color
	Grid       colorful.Color
	Axis       colorful.Color
}

var (
	white     = mustHex("#ffffff")
	gridColor = mustHex("#e0e0e0")
	axisColor = mustHex("#666666")
)

var schemeColors = [...]Colors{
	Default: {
		Curve: mustHex("#e74c3c"), Primary: mustHex("#3498db"),
		Secondary: mustHex("#f39c12"), Accent: mustHex("#2c3e50"),
	},
	Mathematical: {
		Curve: mustHex("#2c3e50"), Primary: mustHex("#34495e"),
		Secondary: mustHex("#7f8c8d"), Accent: mustHex("#95a5a6"),
	},
	Celestial: {
		Curve: mustHex("#4facfe"), Primary: mustHex("#00f2fe"),
		Secondary: mustHex("#9b59b6"), Accent: mustHex("#8e44ad"),
	},
	Print: {
		Curve: mustHex("#000000"), Primary: mustHex("#000000"),
		Secondary: mustHex("#666666"), Accent: mustHex("#333333"),
	},
}

var swatches = [...][]string{
	Default:      {"#667eea", "#764ba2", "#f093fb", "#f5576c"},
	Mathematical: {"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6"},
	Celestial:    {"#4facfe", "#00f2fe", "#43e97b", "#38f9d7", "#a8edea"},
	Print:        {"#000000", "#333333", "#666666", "#999999", "#cccccc"},
}

// Colors returns the role colors for s. Unknown schemes fall back to Default.
func (s Scheme) Colors() Colors {
	if s < 0 || s >= numSchemes {
		s = Default
	}
	c := schemeColors[s]
	c.Background = white
	c.Text = Contrast(white)
	c.Grid = gridColor
	c.Axis = axisColor
	if s == Print {
		c.Grid = mustHex("#cccccc")
		c.Axis = mustHex("#000000")
	}
	return c
}

// Swatch returns the scheme's ordered swatch, used to tell several plots
// apart when they share a surface.
func (s Scheme) Swatch() []colorful.Color {
	if s < 0 || s >= numSchemes {
		s = Default
	}
	out := make([]colorful.Color, len(swatches[s]))
	for i, h := range swatches[s] {
		out[i] = mustHex(h)
	}
	return out
}

var conicColors = map[label.Type]string{
	label.Parabola:  "#e74c3c",
	label.Ellipse:   "#3498db",
	label.Circle:    "#2ecc71",
	label.Hyperbola: "#9b59b6",
}

// ConicColor returns the conventional color for a conic type. In print mode
// every type is drawn in black.
func ConicColor(t label.Type, printMode bool) colorful.Color {
	h, ok := conicColors[t]
	if printMode || !ok {
		return mustHex("#000000")
	}
	return mustHex(h)
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("palette: parsing %q: %w", s, err)
	}
	return c, nil
}

func mustHex(s string) colorful.Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Contrast returns black or white, whichever reads better on bg, by the YIQ
// brightness of bg.
func Contrast(bg colorful.Color) colorful.Color {
	r, g, b := bg.RGB255()
	yiq := (int(r)*299 + int(g)*587 + int(b)*114) / 1000
	if yiq > 128 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// RGBA converts c to an opaque color.RGBA.
func RGBA(c colorful.Color) color.RGBA {
	red, green, blue := c.Clamped().RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Brightened shifts the HSV brightness of c by delta, clamped to [0, 1].
// The viewer uses it to highlight the focused plot.
func Brightened(c colorful.Color, delta float64) colorful.Color {
	h, s, v := c.Hsv()
	return colorful.Hsv(h, s, clamp(v+delta, 0, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
