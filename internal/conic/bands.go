package conic

import (
	"math"

	"github.com/irfansharif/conics/internal/geom"
)

// ViewBand maps a range of |a| to a fixed viewing window. Each window holds
// the vertex at the origin and enough of both arms for the curve's shape and
// a handful of lattice crossings to read clearly.
type ViewBand struct {
	Name    string
	MinAbsA float64 // inclusive
	MaxAbsA float64 // exclusive
	Bounds  geom.Bounds
}

// ViewBands is the window lookup table, ordered from narrow to very wide
// parabolas.
var ViewBands = []ViewBand{
	{Name: "narrow", MinAbsA: 1, MaxAbsA: math.Inf(1), Bounds: geom.Bounds{XMin: -5, XMax: 5, YMin: -2, YMax: 20}},
	{Name: "medium", MinAbsA: 0.1, MaxAbsA: 1, Bounds: geom.Bounds{XMin: -10, XMax: 10, YMin: -5, YMax: 25}},
	{Name: "wide", MinAbsA: 0.01, MaxAbsA: 0.1, Bounds: geom.Bounds{XMin: -20, XMax: 20, YMin: -10, YMax: 50}},
	{Name: "very wide", MinAbsA: 0, MaxAbsA: 0.01, Bounds: geom.Bounds{XMin: -50, XMax: 50, YMin: -20, YMax: 100}},
}

// SelectBand returns the band whose range holds |a|.
func SelectBand(a float64) ViewBand {
	abs := math.Abs(a)
	for _, b := range ViewBands {
		if abs >= b.MinAbsA && abs < b.MaxAbsA {
			return b
		}
	}
	return ViewBands[len(ViewBands)-1]
}

// ViewWindow returns the bounds used to analyze cfg: the band window as is,
// or shifted onto the vertex if the vertex would otherwise fall outside it.
// Far from the origin the band offsets can vanish in rounding; such an axis
// is widened to the neighbouring floats around the vertex.
func ViewWindow(cfg Config) geom.Bounds {
	b := SelectBand(cfg.A).Bounds
	v := cfg.Vertex()
	if b.Contains(v) {
		return b
	}
	b = b.Translate(v)
	if !(b.XMin < b.XMax) {
		b.XMin, b.XMax = math.Nextafter(v.X, math.Inf(-1)), math.Nextafter(v.X, math.Inf(1))
	}
	if !(b.YMin < b.YMax) {
		b.YMin, b.YMax = math.Nextafter(v.Y, math.Inf(-1)), math.Nextafter(v.Y, math.Inf(1))
	}
	return b
}

// Resolution returns the number of sampling steps across the window: finer
// for wide parabolas, whose windows are larger.
func Resolution(a float64) int {
	if math.Abs(a) >= 0.1 {
		return 100
	}
	return 200
}
