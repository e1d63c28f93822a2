package conic

import (
	"fmt"
	"math"

	"github.com/irfansharif/conics/internal/geom"
)

const segmentResolution = 50

// Segment is a bounded piece of a parabola with the tangent slopes at its
// ends, the unit a larger figure would be built from.
type Segment struct {
	ID         string       `json:"id"`
	Label      string       `json:"label,omitempty"`
	Equation   string       `json:"equation"`
	Points     []geom.Point `json:"points"`
	Bounds     geom.Bounds  `json:"bounds"`
	StartSlope float64      `json:"startSlope"`
	EndSlope   float64      `json:"endSlope"`
}

// NewSegment samples cfg between startX and endX.
func NewSegment(cfg Config, startX, endX float64, label string) (Segment, error) {
	if err := cfg.Validate(); err != nil {
		return Segment{}, err
	}
	if !(startX < endX) || !finite(startX, endX) {
		return Segment{}, fmt.Errorf("%w: segment range [%g, %g] is empty", ErrInvalidConfig, startX, endX)
	}

	xs := geom.Linspace(startX, endX, segmentResolution+1)
	points := make([]geom.Point, len(xs))
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, x := range xs {
		y := cfg.Eval(x)
		points[i] = geom.MakePoint(x, y)
		yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
	}

	id := "unlabeled"
	if label != "" {
		id = label
	}
	return Segment{
		ID:         "parabola_segment_" + id,
		Label:      label,
		Equation:   FormatEquation(cfg),
		Points:     points,
		Bounds:     geom.Bounds{XMin: startX, XMax: endX, YMin: yMin, YMax: yMax},
		StartSlope: cfg.SlopeAt(startX),
		EndSlope:   cfg.SlopeAt(endX),
	}, nil
}

func (s Segment) Start() geom.Point { return s.Points[0] }
func (s Segment) End() geom.Point   { return s.Points[len(s.Points)-1] }

// JoinsSmoothly reports whether next starts where s ends, within tol, with a
// matching tangent slope.
func (s Segment) JoinsSmoothly(next Segment, tol float64) bool {
	return geom.Dist(s.End(), next.Start()) < tol &&
		geom.SlopesMatch(s.EndSlope, next.StartSlope, tol)
}
