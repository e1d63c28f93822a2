package conic

import (
	"fmt"
	"math"
	"strings"

	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/label"
)

// maxLatticeScan caps the integer scan. Band windows span at most a hundred
// units; only overflowing vertex offsets could approach it.
const maxLatticeScan = 1 << 16

// LatticePoint is a curve point checked against the integer lattice.
type LatticePoint struct {
	geom.Point
	IsInteger bool `json:"isInteger"`
}

// Metadata describes the shape of an analyzed parabola.
type Metadata struct {
	Opening     string  `json:"opening"`     // "up" or "down"
	Width       float64 `json:"width"`       // |1/a|
	FocalLength float64 `json:"focalLength"` // 1/(4|a|), vertex to focus
	Band        string  `json:"band"`
}

// Analysis is the derived geometry of one parabola.
type Analysis struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"` // e.g. "p0.25n", see label.Encode
	Config    Config         `json:"config"`
	Equation  string         `json:"equation"`
	Points    []geom.Point   `json:"points"`
	Step      float64        `json:"step"` // x spacing between consecutive samples
	Lattice   []LatticePoint `json:"latticePoints"`
	Vertex    geom.Point     `json:"vertex"`
	Focus     geom.Point     `json:"focus"`
	Directrix float64        `json:"directrix"`
	Axis      float64        `json:"axisOfSymmetry"`
	Bounds    geom.Bounds    `json:"bounds"`
	Metadata  Metadata       `json:"metadata"`
}

// Analyze derives the full geometry of cfg. Zero lattice points is a valid
// result.
func Analyze(cfg Config) (Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return Analysis{}, err
	}

	vertex := cfg.Vertex()
	offset := 1 / (4 * cfg.A)
	focus := geom.MakePoint(vertex.X, vertex.Y+offset)
	directrix := vertex.Y - offset
	if !finite(vertex.X, vertex.Y, focus.Y, directrix) {
		return Analysis{}, fmt.Errorf("%w: derived geometry of %s overflows", ErrInvalidConfig, cfg)
	}

	bounds := ViewWindow(cfg)
	if !bounds.Valid() {
		return Analysis{}, fmt.Errorf("%w: vertex %v too large for a viewing window", ErrInvalidConfig, vertex)
	}

	steps := Resolution(cfg.A)
	opening, orientation := "up", label.North
	if cfg.A < 0 {
		opening, orientation = "down", label.South
	}

	return Analysis{
		ID:        cfg.ID(),
		Label:     label.Encode(label.Parabola, orientation, label.FormatParameter(math.Abs(cfg.A))),
		Config:    cfg,
		Equation:  FormatEquation(cfg),
		Points:    Sample(cfg, bounds, steps),
		Step:      bounds.Width() / float64(steps),
		Lattice:   LatticeIntersections(cfg, bounds),
		Vertex:    vertex,
		Focus:     focus,
		Directrix: directrix,
		Axis:      vertex.X,
		Bounds:    bounds,
		Metadata: Metadata{
			Opening:     opening,
			Width:       math.Abs(1 / cfg.A),
			FocalLength: math.Abs(offset),
			Band:        SelectBand(cfg.A).Name,
		},
	}, nil
}

// Sample evaluates cfg at steps+1 evenly spaced x across the window, keeping
// only samples whose y is inside it. The result may have gaps where the curve
// leaves the window; see Runs.
func Sample(cfg Config, b geom.Bounds, steps int) []geom.Point {
	xs := geom.Linspace(b.XMin, b.XMax, steps+1)
	points := make([]geom.Point, 0, len(xs))
	for _, x := range xs {
		if y := cfg.Eval(x); b.ContainsY(y) {
			points = append(points, geom.MakePoint(x, y))
		}
	}
	return points
}

// LatticeIntersections scans every integer x in the window and keeps the
// points where y is an integer (within geom.LatticeTolerance) inside the
// window. Only integer x can pair with an integer y, and a per-integer check
// is the only reliable test when a is a fraction like 1/64.
func LatticeIntersections(cfg Config, b geom.Bounds) []LatticePoint {
	lo, hi := math.Ceil(b.XMin), math.Floor(b.XMax)
	if hi < lo {
		return nil
	}
	n := int(math.Min(hi-lo, maxLatticeScan))

	var out []LatticePoint
	for i := 0; i <= n; i++ {
		x := lo + float64(i)
		y := cfg.Eval(x)
		ry := math.Round(y)
		if math.Abs(y-ry) < geom.LatticeTolerance && b.ContainsY(ry) {
			out = append(out, LatticePoint{Point: geom.MakePoint(x, ry), IsInteger: true})
		}
	}
	return out
}

// Runs splits the samples into continuous polylines, breaking wherever the
// curve left the window between two retained samples. Renderers must draw
// each run separately rather than joining across a gap.
func (an Analysis) Runs() [][]geom.Point {
	var runs [][]geom.Point
	start := 0
	for i := 1; i <= len(an.Points); i++ {
		if i < len(an.Points) && an.Points[i].X-an.Points[i-1].X <= 1.5*an.Step {
			continue
		}
		if i > start {
			runs = append(runs, an.Points[start:i])
		}
		start = i
	}
	return runs
}

// Report renders the multi-line summary shown when a parabola is inspected.
func (an Analysis) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Equation: %s\n", an.Equation)
	fmt.Fprintf(&sb, "Vertex: (%.2f, %.2f)\n", an.Vertex.X, an.Vertex.Y)
	fmt.Fprintf(&sb, "Focus: (%.2f, %.2f)\n", an.Focus.X, an.Focus.Y)
	fmt.Fprintf(&sb, "Directrix: y = %.2f\n", an.Directrix)
	fmt.Fprintf(&sb, "Lattice Points: %d\n", len(an.Lattice))
	fmt.Fprintf(&sb, "Opening: %s\n", an.Metadata.Opening)
	fmt.Fprintf(&sb, "Width Parameter: %.3f\n", an.Metadata.Width)
	fmt.Fprintf(&sb, "Label: %s\n", an.Label)
	return sb.String()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
