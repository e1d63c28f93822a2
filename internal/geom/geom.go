// Package geom provides the 2D primitives shared by the conic engine and its
// renderers:
// - Points and tolerance-aware numeric helpers
// - Mathematical viewing windows (Bounds) and pixel surfaces (PixelRect)
// - 2D affine transformations (composition and inversion)
// - The bidirectional math/pixel coordinate transform
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box represents an axis-aligned rectangle by origin and size. Used for
// canvas layout, where Y grows downward.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

// Identity is the affine transform that leaves points unchanged.
var Identity = Affine{A: 1, E: 1}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Center returns the midpoint of the box.
func (b Box) Center() Point { return Point{b.X + 0.5*b.W, b.Y + 0.5*b.H} }

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Inv returns the inverse of the affine transform.
// Returns an error if the transform is not invertible (determinant is zero).
func (t Affine) Inv() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < DefaultTolerance {
		return Affine{}, fmt.Errorf("affine transform is not invertible (determinant ≈ 0)")
	}
	return MakeAffine(
		t.E/det, -t.B/det, (t.B*t.F-t.C*t.E)/det,
		-t.D/det, t.A/det, (t.C*t.D-t.A*t.F)/det,
	), nil
}

// FillBox returns a transform that maps box b1 into b2, scaled uniformly and
// centered. Both boxes must have positive width and height.
func FillBox(b1, b2 Box) (Affine, error) {
	if b1.W <= 0 || b1.H <= 0 {
		return Affine{}, fmt.Errorf("source box must have positive width and height, got W=%v H=%v", b1.W, b1.H)
	}
	if b2.W <= 0 || b2.H <= 0 {
		return Affine{}, fmt.Errorf("destination box must have positive width and height, got W=%v H=%v", b2.W, b2.H)
	}

	sc := math.Min(b2.W/b1.W, b2.H/b1.H)
	centerDst := MakeAffine(1, 0, b2.X+0.5*b2.W, 0, 1, b2.Y+0.5*b2.H)
	centerSrc := MakeAffine(1, 0, -(b1.X + 0.5*b1.W), 0, 1, -(b1.Y + 0.5*b1.H))
	return centerDst.Mul(MakeAffine(sc, 0, 0, 0, sc, 0)).Mul(centerSrc), nil
}
