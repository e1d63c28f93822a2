package conic

import (
	"math"
	"strings"
)

// FormatEquation renders cfg as text, e.g. "y = x²/4 - 2x + 3".
//
// The quadratic term is written as x² or -x² for a = ±1, as x²/n when 1/|a|
// is a power of two (the gallery's wide parabolas), and with a decimal
// coefficient otherwise. Zero linear or constant terms are omitted, and a
// linear coefficient of ±1 drops its literal.
func FormatEquation(cfg Config) string {
	var sb strings.Builder
	sb.WriteString("y = ")
	sb.WriteString(quadraticTerm(cfg.A))

	if cfg.B != 0 {
		sb.WriteString(signOf(cfg.B))
		if math.Abs(cfg.B) != 1 {
			sb.WriteString(formatNumber(math.Abs(cfg.B)))
		}
		sb.WriteString("x")
	}
	if cfg.C != 0 {
		sb.WriteString(signOf(cfg.C))
		sb.WriteString(formatNumber(math.Abs(cfg.C)))
	}
	return sb.String()
}

func quadraticTerm(a float64) string {
	switch {
	case a == 1:
		return "x²"
	case a == -1:
		return "-x²"
	}
	if n, ok := reciprocalPowerOfTwo(a); ok {
		prefix := ""
		if a < 0 {
			prefix = "-"
		}
		return prefix + "x²/" + formatNumber(n)
	}
	return formatNumber(a) + "x²"
}

// reciprocalPowerOfTwo reports whether |a| = 1/n exactly for n = 2, 4, 8, ...
func reciprocalPowerOfTwo(a float64) (float64, bool) {
	abs := math.Abs(a)
	if abs >= 1 {
		return 0, false
	}
	frac, exp := math.Frexp(abs)
	if frac != 0.5 {
		return 0, false
	}
	return math.Ldexp(1, 1-exp), true
}

func signOf(v float64) string {
	if v < 0 {
		return " - "
	}
	return " + "
}
