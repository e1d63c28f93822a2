package geom

import "math"

const (
	// DefaultTolerance is the equality tolerance for exact geometry.
	DefaultTolerance = 1e-10
	// LatticeTolerance absorbs evaluation error when checking whether a
	// sampled coordinate lands on the integer lattice.
	LatticeTolerance = 1e-3
	// SlopeTolerance is the default tolerance for comparing tangent slopes.
	SlopeTolerance = 1e-3

	epsilon = 2.220446049250313e-16 // machine epsilon for float64
)

// Round rounds x half-away-from-zero to the given number of decimal places.
// A machine epsilon is added in the direction of x first so that values like
// 1.005, stored as 1.00499999..., round the way they read.
func Round(x float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round((x+math.Copysign(epsilon, x))*factor) / factor
}

// IsInteger reports whether x is within tol of the nearest integer.
func IsInteger(x, tol float64) bool {
	return math.Abs(x-math.Round(x)) < tol
}

// IsLatticePoint reports whether both coordinates of p are integers within tol.
func IsLatticePoint(p Point, tol float64) bool {
	return IsInteger(p.X, tol) && IsInteger(p.Y, tol)
}

// Slope returns the slope of the line through p1 and p2. Near-vertical lines
// (|Δx| < tol) yield +Inf when p2 is above p1 and -Inf otherwise.
func Slope(p1, p2 Point, tol float64) float64 {
	if math.Abs(p2.X-p1.X) < tol {
		if p2.Y > p1.Y {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

// SlopesMatch reports whether two slopes are equal within tol. Two infinite
// slopes match regardless of sign; an infinite and a finite slope never do.
func SlopesMatch(s1, s2, tol float64) bool {
	inf1, inf2 := math.IsInf(s1, 0), math.IsInf(s2, 0)
	if inf1 && inf2 {
		return true
	}
	if inf1 || inf2 {
		return false
	}
	return math.Abs(s1-s2) < tol
}

// QuadraticRoots returns the real roots of a*x² + b*x + c = 0 in ascending
// order. When |a| < tol the equation is solved as linear. A negative
// discriminant yields no roots; a zero discriminant yields the tangent root.
func QuadraticRoots(a, b, c, tol float64) []float64 {
	if math.Abs(a) < tol {
		if math.Abs(b) < tol {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}

	sq := math.Sqrt(disc)
	r1, r2 := (-b-sq)/(2*a), (-b+sq)/(2*a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// Linspace returns n evenly spaced values from start to end inclusive. For
// n <= 1 it returns just start.
func Linspace(start, end float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end // no accumulated drift at the far endpoint
	return out
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// IsAcuteAngle reports whether the magnitude of angle, normalized, lies
// strictly between zero and π/2.
func IsAcuteAngle(angle float64) bool {
	n := NormalizeAngle(math.Abs(angle))
	return n < math.Pi/2 && n > DefaultTolerance
}

func ToRadians(degrees float64) float64 { return degrees * math.Pi / 180 }
func ToDegrees(radians float64) float64 { return radians * 180 / math.Pi }
