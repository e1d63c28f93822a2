package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/conics/internal/palette"
)

// RenderOptions controls what a scene includes and how it is colored. It is a
// plain value; toggling an option returns a new one.
type RenderOptions struct {
	ShowGrid          bool
	ShowLatticePoints bool
	ShowFormulas      bool
	ShowLabels        bool
	MathMode          bool // directrix, axis of symmetry and focus
	PrintMode         bool
	Scheme            palette.Scheme

	// ShowFrame outlines the plot area in Frame, used by the viewer to tell
	// plots apart.
	ShowFrame bool
	Frame     colorful.Color
}

// DefaultOptions returns the options plots start out with.
func DefaultOptions() RenderOptions {
	return RenderOptions{
		ShowGrid:          true,
		ShowLatticePoints: true,
		ShowFormulas:      true,
		ShowLabels:        true,
		Scheme:            palette.Default,
	}
}

// WithMathMode switches math mode, which also shows or hides formulas and
// lattice points.
func (o RenderOptions) WithMathMode(on bool) RenderOptions {
	o.MathMode = on
	o.ShowFormulas = on
	o.ShowLatticePoints = on
	return o
}

// WithPrintMode switches print mode along with the matching scheme.
func (o RenderOptions) WithPrintMode(on bool) RenderOptions {
	o.PrintMode = on
	o.Scheme = palette.Default
	if on {
		o.Scheme = palette.Print
	}
	return o
}

// WithScheme selects a scheme. Picking a scheme other than print leaves print
// mode.
func (o RenderOptions) WithScheme(s palette.Scheme) RenderOptions {
	o.Scheme = s
	o.PrintMode = s == palette.Print
	return o
}
