package scene_test

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/palette"
	"github.com/irfansharif/conics/internal/scene"
)

var cardRect = geom.PixelRect{Width: 300, Height: 250}

func analyze(t *testing.T, cfg conic.Config) conic.Analysis {
	t.Helper()
	an, err := conic.Analyze(cfg)
	require.NoError(t, err)
	return an
}

func count(s scene.Scene, role scene.Role) (strokes, markers, texts int) {
	for _, st := range s.Strokes {
		if st.Role == role {
			strokes++
		}
	}
	for _, m := range s.Markers {
		if m.Role == role {
			markers++
		}
	}
	for _, tx := range s.Texts {
		if tx.Role == role {
			texts++
		}
	}
	return strokes, markers, texts
}

func TestBuild_Default(t *testing.T) {
	s, err := scene.Build(analyze(t, conic.Parabola(1)), cardRect, scene.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "parabola_1_0_0", s.ID)
	assert.Equal(t, "y = x²", s.Title)
	assert.Equal(t, geom.MakeBox(50, 20, 230, 190), s.Plot)
	assert.Equal(t, "#ffffff", s.Background.Hex())

	grid, _, _ := count(s, scene.RoleGrid)
	assert.Equal(t, 11+12, grid) // x: -5..5 by 1, y: -2..20 by 2

	curves, _, _ := count(s, scene.RoleCurve)
	assert.Equal(t, 1, curves)
	_, lattice, _ := count(s, scene.RoleLattice)
	assert.Equal(t, 9, lattice)
	_, vertices, labels := count(s, scene.RoleVertex)
	assert.Equal(t, 1, vertices)
	assert.Zero(t, labels)
	_, _, titles := count(s, scene.RoleTitle)
	assert.Equal(t, 1, titles)

	directrix, _, _ := count(s, scene.RoleDirectrix)
	assert.Zero(t, directrix, "math lines are off by default")
	_, focus, _ := count(s, scene.RoleFocus)
	assert.Zero(t, focus)

	var vertex scene.Marker
	for _, m := range s.Markers {
		if m.Role == scene.RoleVertex {
			vertex = m
		}
	}
	assert.InDelta(t, 165, vertex.Center.X, 1e-9)
	assert.InDelta(t, 20+20*190.0/22, vertex.Center.Y, 1e-9)
	assert.Equal(t, palette.Default.Colors().Primary, vertex.Fill)
}

// TestBuild_InsidePlot verifies that the curve and every marker land inside
// the plot area for the whole gallery.
func TestBuild_InsidePlot(t *testing.T) {
	const eps = 1e-6
	inside := func(b geom.Box, p geom.Point) bool {
		return p.X >= b.X-eps && p.X <= b.X+b.W+eps && p.Y >= b.Y-eps && p.Y <= b.Y+b.H+eps
	}
	opts := scene.DefaultOptions().WithMathMode(true)
	for _, cfg := range conic.StandardParabolas() {
		s, err := scene.Build(analyze(t, cfg), cardRect, opts)
		require.NoError(t, err)
		for _, st := range s.Strokes {
			if st.Role == scene.RoleTick {
				continue // ticks hang off the axes into the margin
			}
			for _, p := range st.Points {
				assert.True(t, inside(s.Plot, p), "%s: %s point %v outside %v", cfg, st.Role, p, s.Plot)
			}
		}
		for _, m := range s.Markers {
			assert.True(t, inside(s.Plot, m.Center), "%s: %s marker %v outside %v", cfg, m.Role, m.Center, s.Plot)
		}
	}
}

func TestBuild_MathMode(t *testing.T) {
	opts := scene.DefaultOptions().WithMathMode(true)
	s, err := scene.Build(analyze(t, conic.Parabola(1)), cardRect, opts)
	require.NoError(t, err)

	directrix, _, _ := count(s, scene.RoleDirectrix)
	symmetry, _, _ := count(s, scene.RoleSymmetry)
	_, focus, _ := count(s, scene.RoleFocus)
	assert.Equal(t, 1, directrix)
	assert.Equal(t, 1, symmetry)
	assert.Equal(t, 1, focus)
	for _, st := range s.Strokes {
		if st.Role == scene.RoleDirectrix || st.Role == scene.RoleSymmetry {
			assert.True(t, st.Dashed)
		}
	}

	var labels []string
	for _, tx := range s.Texts {
		if tx.Role == scene.RoleLabel {
			labels = append(labels, tx.Content)
		}
	}
	assert.Equal(t, []string{"F", "V"}, labels)

	// Turning math mode off hides lattice points and the formula too.
	s, err = scene.Build(analyze(t, conic.Parabola(1)), cardRect, opts.WithMathMode(false))
	require.NoError(t, err)
	_, lattice, _ := count(s, scene.RoleLattice)
	_, _, titles := count(s, scene.RoleTitle)
	assert.Zero(t, lattice)
	assert.Zero(t, titles)
}

// TestBuild_DirectrixOutsideWindow checks y = x²/64, whose directrix at
// y = -16 lies below the wide window.
func TestBuild_DirectrixOutsideWindow(t *testing.T) {
	s, err := scene.Build(analyze(t, conic.Parabola(1.0/64)), cardRect, scene.DefaultOptions().WithMathMode(true))
	require.NoError(t, err)
	directrix, _, _ := count(s, scene.RoleDirectrix)
	_, focus, _ := count(s, scene.RoleFocus)
	assert.Zero(t, directrix)
	assert.Equal(t, 1, focus)
}

func TestBuild_PrintMode(t *testing.T) {
	opts := scene.DefaultOptions().WithPrintMode(true)
	s, err := scene.Build(analyze(t, conic.Parabola(0.25)), cardRect, opts)
	require.NoError(t, err)
	for _, st := range s.Strokes {
		if st.Role == scene.RoleCurve {
			assert.Equal(t, "#000000", st.Color.Hex())
		}
	}
}

func TestBuild_NoGrid(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.ShowGrid = false
	s, err := scene.Build(analyze(t, conic.Parabola(1)), cardRect, opts)
	require.NoError(t, err)
	grid, _, _ := count(s, scene.RoleGrid)
	assert.Zero(t, grid)
	axes, _, _ := count(s, scene.RoleAxis)
	assert.Equal(t, 2, axes)
}

func TestBuild_Frame(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.ShowFrame, opts.Frame = true, colorful.Color{R: 1}
	s, err := scene.Build(analyze(t, conic.Parabola(1)), cardRect, opts)
	require.NoError(t, err)
	frames, _, _ := count(s, scene.RoleFrame)
	assert.Equal(t, 1, frames)
}

func TestBuild_SurfaceTooSmall(t *testing.T) {
	_, err := scene.Build(analyze(t, conic.Parabola(1)), geom.PixelRect{Width: 60, Height: 60}, scene.DefaultOptions())
	assert.ErrorIs(t, err, geom.ErrInvalidBounds)
}

func TestOptions(t *testing.T) {
	o := scene.DefaultOptions()
	assert.True(t, o.ShowGrid)
	assert.False(t, o.MathMode)

	m := o.WithMathMode(true)
	assert.True(t, m.MathMode && m.ShowFormulas && m.ShowLatticePoints)
	assert.True(t, o.ShowFormulas, "options are values")

	p := o.WithPrintMode(true)
	assert.Equal(t, palette.Print, p.Scheme)
	assert.Equal(t, palette.Default, p.WithPrintMode(false).Scheme)

	c := p.WithScheme(palette.Celestial)
	assert.False(t, c.PrintMode)
	assert.True(t, c.WithScheme(palette.Print).PrintMode)
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5}, scene.Ticks(-5, 5, 10))
	assert.Equal(t, []float64{-4, -2, 0, 2, 4}, scene.Ticks(-5, 5, 5))
	assert.Equal(t, []float64{0, 5, 10, 15, 20}, scene.Ticks(-2, 20, 5))
	assert.Equal(t, []float64{-40, -20, 0, 20, 40}, scene.Ticks(-50, 50, 5))

	small := scene.Ticks(0, 1, 5)
	require.Len(t, small, 6)
	for i, v := range small {
		assert.InDelta(t, 0.2*float64(i), v, 1e-12)
	}

	assert.Empty(t, scene.Ticks(1, 1, 5))
	assert.Empty(t, scene.Ticks(0, 1, 0))
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0.6", scene.FormatTick(3*0.2))
	assert.Equal(t, "0", scene.FormatTick(math.Copysign(0, -1)))
	assert.Equal(t, "-4", scene.FormatTick(-4))
	assert.Equal(t, "12.5", scene.FormatTick(12.5))
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "parabola-curve", scene.RoleCurve.String())
	assert.Equal(t, "lattice-point", scene.RoleLattice.String())
	assert.Equal(t, "Role(99)", scene.Role(99).String())
}
