// Package scene lays out an analyzed parabola on a pixel surface. A Scene is
// a backend-neutral list of strokes, markers and text in pixel coordinates
// (origin top-left, Y down); the export and render packages draw it as SVG,
// PNG or OpenGL triangles.
package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/palette"
)

// Plot margins in pixels, leaving room for tick labels and the title.
const (
	marginTop    = 20.0
	marginRight  = 20.0
	marginBottom = 40.0
	marginLeft   = 50.0
)

const (
	curveWidth    = 2.0
	lineWidth     = 1.0
	tickLength    = 6.0
	latticeRadius = 3.0
	vertexRadius  = 4.0
	focusRadius   = 3.0
	fontSize      = 11.0
	gridTicks     = 10
	axisTicks     = 5
)

// Role names what a primitive depicts. Backends use it for grouping and, in
// SVG, as the class attribute.
type Role int

const (
	RoleGrid Role = iota
	RoleFrame
	RoleAxis
	RoleTick
	RoleDirectrix
	RoleSymmetry
	RoleCurve
	RoleLattice
	RoleVertex
	RoleFocus
	RoleTitle
	RoleLabel
)

var roleNames = [...]string{
	RoleGrid:      "grid",
	RoleFrame:     "frame",
	RoleAxis:      "axis",
	RoleTick:      "tick",
	RoleDirectrix: "directrix",
	RoleSymmetry:  "axis-of-symmetry",
	RoleCurve:     "parabola-curve",
	RoleLattice:   "lattice-point",
	RoleVertex:    "vertex-point",
	RoleFocus:     "focus-point",
	RoleTitle:     "title",
	RoleLabel:     "label",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Stroke is an open polyline.
type Stroke struct {
	Role   Role
	Points []geom.Point
	Width  float64
	Color  colorful.Color
	Dashed bool
}

// Marker is a filled circle with an outline.
type Marker struct {
	Role        Role
	Center      geom.Point
	Radius      float64
	Fill        colorful.Color
	Stroke      colorful.Color
	StrokeWidth float64
	At          geom.Point // the mathematical point it marks
}

// Anchor is the horizontal alignment of a text run relative to its position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Text is a single line of text. At is the baseline position.
type Text struct {
	Role    Role
	At      geom.Point
	Content string
	Size    float64
	Color   colorful.Color
	Anchor  Anchor
}

// Scene is the laid out drawing of one parabola. Strokes are listed back to
// front, then markers, then text.
type Scene struct {
	ID         string
	Title      string
	Width      float64
	Height     float64
	Plot       geom.Box // plot area inside the margins
	Background colorful.Color
	Strokes    []Stroke
	Markers    []Marker
	Texts      []Text
}

// Build lays out an onto a surface of the given size. The analysis window
// fills the plot area; everything outside the window is left out.
func Build(an conic.Analysis, rect geom.PixelRect, opts RenderOptions) (Scene, error) {
	plot := geom.PixelRect{Width: rect.Width - marginLeft - marginRight, Height: rect.Height - marginTop - marginBottom}
	t, err := geom.NewTransform(an.Bounds, plot)
	if err != nil {
		return Scene{}, fmt.Errorf("laying out %s on %gx%g: %w", an.ID, rect.Width, rect.Height, err)
	}

	l := layout{
		t:      t,
		b:      an.Bounds,
		offset: geom.MakePoint(marginLeft, marginTop),
		colors: opts.Scheme.Colors(),
	}
	s := Scene{
		ID:         an.ID,
		Title:      an.Equation,
		Width:      rect.Width,
		Height:     rect.Height,
		Plot:       geom.MakeBox(marginLeft, marginTop, plot.Width, plot.Height),
		Background: l.colors.Background,
	}

	if opts.ShowGrid {
		l.grid(&s)
	}
	if opts.ShowFrame {
		l.frame(&s, opts.Frame)
	}
	l.axes(&s)
	if opts.MathMode {
		l.mathLines(&s, an)
	}
	for _, run := range an.Runs() {
		if len(run) < 2 {
			continue
		}
		s.Strokes = append(s.Strokes, Stroke{Role: RoleCurve, Points: l.pixels(run...), Width: curveWidth, Color: l.colors.Curve})
	}

	if opts.ShowLatticePoints {
		for _, lp := range an.Lattice {
			s.Markers = append(s.Markers, l.marker(RoleLattice, lp.Point, latticeRadius, l.colors.Accent, 1))
		}
	}
	if opts.MathMode && an.Bounds.Contains(an.Focus) {
		s.Markers = append(s.Markers, l.marker(RoleFocus, an.Focus, focusRadius, l.colors.Secondary, 1))
		if opts.ShowLabels {
			s.Texts = append(s.Texts, l.label(an.Focus, "F"))
		}
	}
	s.Markers = append(s.Markers, l.marker(RoleVertex, an.Vertex, vertexRadius, l.colors.Primary, 2))
	if opts.ShowLabels {
		s.Texts = append(s.Texts, l.label(an.Vertex, "V"))
	}

	if opts.ShowFormulas {
		s.Texts = append(s.Texts, Text{
			Role:    RoleTitle,
			At:      geom.MakePoint(marginLeft, marginTop-6),
			Content: an.Equation,
			Size:    fontSize + 2,
			Color:   l.colors.Text,
			Anchor:  AnchorStart,
		})
	}
	return s, nil
}

type layout struct {
	t      geom.Transform
	b      geom.Bounds
	offset geom.Point
	colors palette.Colors
}

func (l layout) pixel(p geom.Point) geom.Point {
	return l.t.MathToPixel(p).Add(l.offset)
}

func (l layout) pixels(ps ...geom.Point) []geom.Point {
	out := make([]geom.Point, len(ps))
	for i, p := range ps {
		out[i] = l.pixel(p)
	}
	return out
}

func (l layout) line(role Role, from, to geom.Point, width float64, c colorful.Color, dashed bool) Stroke {
	return Stroke{Role: role, Points: l.pixels(from, to), Width: width, Color: c, Dashed: dashed}
}

func (l layout) grid(s *Scene) {
	for _, x := range Ticks(l.b.XMin, l.b.XMax, gridTicks) {
		s.Strokes = append(s.Strokes, l.line(RoleGrid, geom.MakePoint(x, l.b.YMin), geom.MakePoint(x, l.b.YMax), lineWidth, l.colors.Grid, false))
	}
	for _, y := range Ticks(l.b.YMin, l.b.YMax, gridTicks) {
		s.Strokes = append(s.Strokes, l.line(RoleGrid, geom.MakePoint(l.b.XMin, y), geom.MakePoint(l.b.XMax, y), lineWidth, l.colors.Grid, false))
	}
}

func (l layout) frame(s *Scene, c colorful.Color) {
	corners := l.pixels(
		geom.MakePoint(l.b.XMin, l.b.YMin), geom.MakePoint(l.b.XMax, l.b.YMin),
		geom.MakePoint(l.b.XMax, l.b.YMax), geom.MakePoint(l.b.XMin, l.b.YMax),
		geom.MakePoint(l.b.XMin, l.b.YMin),
	)
	s.Strokes = append(s.Strokes, Stroke{Role: RoleFrame, Points: corners, Width: curveWidth, Color: c})
}

// axes draws the coordinate axes through the origin, pinned to the window's
// edge when the origin is outside it, with labelled ticks.
func (l layout) axes(s *Scene) {
	ax := geom.Clamp(0, l.b.XMin, l.b.XMax)
	ay := geom.Clamp(0, l.b.YMin, l.b.YMax)
	c := l.colors.Axis

	s.Strokes = append(s.Strokes,
		l.line(RoleAxis, geom.MakePoint(l.b.XMin, ay), geom.MakePoint(l.b.XMax, ay), lineWidth, c, false),
		l.line(RoleAxis, geom.MakePoint(ax, l.b.YMin), geom.MakePoint(ax, l.b.YMax), lineWidth, c, false),
	)
	for _, x := range Ticks(l.b.XMin, l.b.XMax, axisTicks) {
		p := l.pixel(geom.MakePoint(x, ay))
		s.Strokes = append(s.Strokes, Stroke{Role: RoleTick, Points: []geom.Point{p, p.Add(geom.MakePoint(0, tickLength))}, Width: lineWidth, Color: c})
		s.Texts = append(s.Texts, Text{
			Role: RoleTick, At: p.Add(geom.MakePoint(0, tickLength+fontSize)),
			Content: FormatTick(x), Size: fontSize, Color: c, Anchor: AnchorMiddle,
		})
	}
	for _, y := range Ticks(l.b.YMin, l.b.YMax, axisTicks) {
		p := l.pixel(geom.MakePoint(ax, y))
		s.Strokes = append(s.Strokes, Stroke{Role: RoleTick, Points: []geom.Point{p, p.Sub(geom.MakePoint(tickLength, 0))}, Width: lineWidth, Color: c})
		s.Texts = append(s.Texts, Text{
			Role: RoleTick, At: p.Add(geom.MakePoint(-tickLength-3, fontSize/3)),
			Content: FormatTick(y), Size: fontSize, Color: c, Anchor: AnchorEnd,
		})
	}
}

// mathLines draws the directrix, when it crosses the window, and the axis of
// symmetry, which always does.
func (l layout) mathLines(s *Scene, an conic.Analysis) {
	c := l.colors.Secondary
	if l.b.ContainsY(an.Directrix) {
		s.Strokes = append(s.Strokes, l.line(RoleDirectrix,
			geom.MakePoint(l.b.XMin, an.Directrix), geom.MakePoint(l.b.XMax, an.Directrix), lineWidth, c, true))
	}
	s.Strokes = append(s.Strokes, l.line(RoleSymmetry,
		geom.MakePoint(an.Axis, l.b.YMin), geom.MakePoint(an.Axis, l.b.YMax), lineWidth, c, true))
}

func (l layout) marker(role Role, at geom.Point, r float64, fill colorful.Color, strokeWidth float64) Marker {
	return Marker{
		Role:        role,
		Center:      l.pixel(at),
		Radius:      r,
		Fill:        fill,
		Stroke:      l.colors.Background,
		StrokeWidth: strokeWidth,
		At:          at,
	}
}

func (l layout) label(at geom.Point, text string) Text {
	return Text{
		Role:    RoleLabel,
		At:      l.pixel(at).Add(geom.MakePoint(6, -6)),
		Content: text,
		Size:    fontSize,
		Color:   l.colors.Text,
		Anchor:  AnchorStart,
	}
}
