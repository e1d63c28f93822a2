package scene

import (
	"math"
	"strconv"

	"github.com/irfansharif/conics/internal/geom"
)

// Ticks returns round tick values covering [lo, hi], about count of them,
// spaced 1, 2 or 5 times a power of ten.
func Ticks(lo, hi float64, count int) []float64 {
	if !(lo < hi) || count <= 0 || math.IsInf(hi-lo, 0) {
		return nil
	}
	step := tickStep(lo, hi, count)
	start, stop := math.Ceil(lo/step), math.Floor(hi/step)

	out := make([]float64, 0, int(stop-start)+1)
	for i := start; i <= stop; i++ {
		out = append(out, i*step)
	}
	return out
}

func tickStep(lo, hi float64, count int) float64 {
	raw := (hi - lo) / float64(count)
	base := math.Pow(10, math.Floor(math.Log10(raw)))
	switch e := raw / base; {
	case e >= math.Sqrt(50):
		base *= 10
	case e >= math.Sqrt(10):
		base *= 5
	case e >= math.Sqrt(2):
		base *= 2
	}
	return base
}

// FormatTick renders a tick value without floating point noise.
func FormatTick(v float64) string {
	v = geom.Round(v, 6)
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
