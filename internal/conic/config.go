package conic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/irfansharif/conics/internal/geom"
)

// Config holds the coefficients of y = A·x² + B·x + C. A must be non-zero.
type Config struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Parabola returns the config for y = a·x² with b and c left at zero.
func Parabola(a float64) Config { return Config{A: a} }

// Validate checks that the config describes a parabola.
func (cfg Config) Validate() error {
	for _, v := range [...]float64{cfg.A, cfg.B, cfg.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coefficient in %s", ErrInvalidConfig, cfg)
		}
	}
	if cfg.A == 0 {
		return fmt.Errorf("%w: leading coefficient must be non-zero", ErrInvalidConfig)
	}
	return nil
}

// Eval returns y at x.
func (cfg Config) Eval(x float64) float64 {
	return cfg.A*x*x + cfg.B*x + cfg.C
}

// SlopeAt returns the tangent slope 2a·x + b.
func (cfg Config) SlopeAt(x float64) float64 {
	return 2*cfg.A*x + cfg.B
}

// ConnectionPoint returns the point whose tangent has the given slope. Every
// slope occurs exactly once on a parabola.
func (cfg Config) ConnectionPoint(targetSlope float64) geom.Point {
	x := (targetSlope - cfg.B) / (2 * cfg.A)
	return geom.MakePoint(x, cfg.Eval(x))
}

// Vertex returns the turning point (-b/2a, f(-b/2a)).
func (cfg Config) Vertex() geom.Point {
	x := -cfg.B / (2 * cfg.A)
	return geom.MakePoint(x, cfg.Eval(x))
}

// ID derives a stable identifier such as "parabola_0_25_0_neg4".
func (cfg Config) ID() string {
	id := fmt.Sprintf("parabola_%s_%s_%s", formatNumber(cfg.A), formatNumber(cfg.B), formatNumber(cfg.C))
	return strings.NewReplacer(".", "_", "-", "neg").Replace(id)
}

func (cfg Config) String() string {
	return fmt.Sprintf("{a=%g b=%g c=%g}", cfg.A, cfg.B, cfg.C)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StandardParabolas returns the gallery of parabolas shown by default: basic
// and shifted quadratics, ones with clean lattice crossings, and wide ones.
func StandardParabolas() []Config {
	return []Config{
		{A: 1},                // y = x²
		{A: 0.25},             // y = x²/4
		{A: -1, C: 4},         // y = -x² + 4
		{A: 1, B: -2, C: 1},   // y = (x-1)²
		{A: 0.5, B: -2, C: 3}, // y = 0.5(x-2)² + 1
		{A: 1, C: -4},         // y = x² - 4
		{A: 0.125},            // y = x²/8
		{A: -0.25, C: 9},      // y = -x²/4 + 9
		{A: 0.0625},           // y = x²/16
		{A: 1.0 / 64},         // y = x²/64, very wide
	}
}
