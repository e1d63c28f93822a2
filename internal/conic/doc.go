// Package conic analyzes parabolas y = a·x² + b·x + c for lattice-point
// visualizations.
//
// What:
//
//   - Closed-form vertex, focus, directrix and axis of symmetry.
//   - A viewing window chosen from a fixed table of |a| bands (ViewBands).
//   - Dense curve samples clipped to the window, split into continuous runs.
//   - An exhaustive integer scan for points where the curve meets the lattice.
//   - Human-readable equation text and assembly-ready curve segments.
//
// Every function is pure: an Analysis is computed fresh from a Config, never
// mutated, and safe to share between goroutines.
//
// Errors:
//
//   - ErrInvalidConfig: zero, NaN or infinite coefficients, or coefficients
//     whose derived geometry overflows float64.
package conic
