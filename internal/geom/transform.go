package geom

import (
	"fmt"
	"math"
)

// Bounds is a rectangular viewing window in mathematical units, Y up.
type Bounds struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

// PixelRect is a drawing surface with its origin at the top-left corner and Y
// growing downward.
type PixelRect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b Bounds) Width() float64  { return b.XMax - b.XMin }
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Valid reports whether the window is finite with XMin < XMax and YMin < YMax.
func (b Bounds) Valid() bool {
	for _, v := range [...]float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.XMin < b.XMax && b.YMin < b.YMax
}

// Contains reports whether p lies in the closed window.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// ContainsY reports whether y lies in [YMin, YMax].
func (b Bounds) ContainsY(y float64) bool { return y >= b.YMin && y <= b.YMax }

// Translate shifts the window by d.
func (b Bounds) Translate(d Point) Bounds {
	return Bounds{XMin: b.XMin + d.X, XMax: b.XMax + d.X, YMin: b.YMin + d.Y, YMax: b.YMax + d.Y}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", b.XMin, b.XMax, b.YMin, b.YMax)
}

// Transform maps between a mathematical window and a pixel surface. It is
// immutable and safe for concurrent use.
type Transform struct {
	bounds  Bounds
	rect    PixelRect
	toPixel Affine
	toMath  Affine
}

// NewTransform builds the mapping for the given window and surface:
//
//	px = (x - XMin) / (XMax - XMin) * Width
//	py = (YMax - y) / (YMax - YMin) * Height
//
// It fails with ErrInvalidBounds for a degenerate window or surface.
func NewTransform(b Bounds, r PixelRect) (Transform, error) {
	if !b.Valid() {
		return Transform{}, fmt.Errorf("%w: window %v", ErrInvalidBounds, b)
	}
	if !(r.Width > 0) || !(r.Height > 0) || math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0) {
		return Transform{}, fmt.Errorf("%w: pixel surface %gx%g", ErrInvalidBounds, r.Width, r.Height)
	}

	sx := r.Width / b.Width()
	sy := r.Height / b.Height()
	toPixel := MakeAffine(
		sx, 0, -b.XMin*sx,
		0, -sy, b.YMax*sy,
	)
	// Written out rather than via Inv: tiny surfaces over huge windows have a
	// determinant below the inversion tolerance yet are still well defined.
	toMath := MakeAffine(
		1/sx, 0, b.XMin,
		0, -1/sy, b.YMax,
	)
	return Transform{bounds: b, rect: r, toPixel: toPixel, toMath: toMath}, nil
}

// MathToPixel maps a point in mathematical units onto the pixel surface.
func (t Transform) MathToPixel(p Point) Point { return t.toPixel.MulPoint(p) }

// PixelToMath is the inverse of MathToPixel.
func (t Transform) PixelToMath(p Point) Point { return t.toMath.MulPoint(p) }

// Scale returns pixels per mathematical unit along each axis.
func (t Transform) Scale() Point {
	return Point{X: t.rect.Width / t.bounds.Width(), Y: t.rect.Height / t.bounds.Height()}
}

// Affine returns the math-to-pixel matrix.
func (t Transform) Affine() Affine { return t.toPixel }

func (t Transform) Bounds() Bounds { return t.bounds }
func (t Transform) Rect() PixelRect { return t.rect }
