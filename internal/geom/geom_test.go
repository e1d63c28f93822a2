package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/conics/internal/geom"
)

func TestRound(t *testing.T) {
	cases := []struct {
		x        float64
		decimals int
		want     float64
	}{
		{1.005, 2, 1.01},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{-1.005, 2, -1.01},
		{3.14159, 3, 3.142},
		{1234.5, -2, 1200},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, geom.Round(tc.x, tc.decimals), 1e-9, "Round(%v, %d)", tc.x, tc.decimals)
	}
}

func TestIsInteger(t *testing.T) {
	assert.True(t, geom.IsInteger(4, geom.DefaultTolerance))
	assert.True(t, geom.IsInteger(-3.00000000001, geom.DefaultTolerance))
	assert.False(t, geom.IsInteger(4.0001, geom.DefaultTolerance))
	assert.True(t, geom.IsInteger(4.0001, geom.LatticeTolerance))
	assert.False(t, geom.IsInteger(0.5, geom.LatticeTolerance))

	assert.True(t, geom.IsLatticePoint(geom.MakePoint(2, -7), geom.DefaultTolerance))
	assert.False(t, geom.IsLatticePoint(geom.MakePoint(2, 0.25), geom.DefaultTolerance))
}

func TestSlope(t *testing.T) {
	p := geom.MakePoint(1, 1)
	assert.Equal(t, 2.0, geom.Slope(p, geom.MakePoint(2, 3), geom.DefaultTolerance))
	assert.True(t, math.IsInf(geom.Slope(p, geom.MakePoint(1, 5), geom.DefaultTolerance), 1))
	assert.True(t, math.IsInf(geom.Slope(p, geom.MakePoint(1, -5), geom.DefaultTolerance), -1))
}

func TestSlopesMatch(t *testing.T) {
	inf, ninf := math.Inf(1), math.Inf(-1)
	assert.True(t, geom.SlopesMatch(inf, ninf, geom.SlopeTolerance))
	assert.True(t, geom.SlopesMatch(inf, inf, geom.SlopeTolerance))
	assert.False(t, geom.SlopesMatch(inf, 1e9, geom.SlopeTolerance))
	assert.False(t, geom.SlopesMatch(1, ninf, geom.SlopeTolerance))
	assert.True(t, geom.SlopesMatch(1.0, 1.0005, geom.SlopeTolerance))
	assert.False(t, geom.SlopesMatch(1.0, 1.01, geom.SlopeTolerance))
}

func TestQuadraticRoots(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"TwoRoots", 1, 0, -4, []float64{-2, 2}},
		{"NegativeLeading", -1, 0, 4, []float64{-2, 2}},
		{"Tangent", 1, -2, 1, []float64{1}},
		{"Complex", 1, 0, 1, nil},
		{"Linear", 0, 2, -4, []float64{2}},
		{"Constant", 0, 0, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.QuadraticRoots(tc.a, tc.b, tc.c, geom.DefaultTolerance)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, geom.Linspace(0, 1, 5))
	assert.Equal(t, []float64{3}, geom.Linspace(3, 9, 1))
	assert.Equal(t, []float64{3}, geom.Linspace(3, 9, 0))

	xs := geom.Linspace(-5, 5, 101)
	require.Len(t, xs, 101)
	assert.Equal(t, -5.0, xs[0])
	assert.Equal(t, 5.0, xs[100])
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi/2, geom.NormalizeAngle(-3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0, geom.NormalizeAngle(2*math.Pi), 1e-12)
	assert.True(t, geom.IsAcuteAngle(geom.ToRadians(45)))
	assert.False(t, geom.IsAcuteAngle(geom.ToRadians(90)))
	assert.False(t, geom.IsAcuteAngle(0))
	assert.InDelta(t, 180, geom.ToDegrees(math.Pi), 1e-12)
}

func TestAffineInverse(t *testing.T) {
	a := geom.MakeAffine(2, 1, 3, -1, 4, 5)
	inv, err := a.Inv()
	require.NoError(t, err)

	p := geom.MakePoint(1.5, -2.25)
	q := inv.MulPoint(a.MulPoint(p))
	assert.InDelta(t, p.X, q.X, 1e-12)
	assert.InDelta(t, p.Y, q.Y, 1e-12)

	_, err = geom.MakeAffine(1, 2, 0, 2, 4, 0).Inv()
	assert.Error(t, err)
}

func TestFillBox(t *testing.T) {
	m, err := geom.FillBox(geom.MakeBox(0, 0, 10, 5), geom.MakeBox(100, 100, 40, 40))
	require.NoError(t, err)
	c := m.MulPoint(geom.MakePoint(5, 2.5))
	assert.InDelta(t, 120, c.X, 1e-12)
	assert.InDelta(t, 120, c.Y, 1e-12)

	_, err = geom.FillBox(geom.MakeBox(0, 0, 0, 5), geom.MakeBox(0, 0, 1, 1))
	assert.Error(t, err)
}

func TestTransform(t *testing.T) {
	b := geom.Bounds{XMin: -5, XMax: 5, YMin: -2, YMax: 20}
	tr, err := geom.NewTransform(b, geom.PixelRect{Width: 400, Height: 220})
	require.NoError(t, err)

	origin := tr.MathToPixel(geom.MakePoint(-5, 20))
	assert.InDelta(t, 0, origin.X, 1e-9)
	assert.InDelta(t, 0, origin.Y, 1e-9)

	corner := tr.MathToPixel(geom.MakePoint(5, -2))
	assert.InDelta(t, 400, corner.X, 1e-9)
	assert.InDelta(t, 220, corner.Y, 1e-9)

	// Mathematical "up" is pixel "up".
	assert.Less(t, tr.MathToPixel(geom.MakePoint(0, 10)).Y, tr.MathToPixel(geom.MakePoint(0, 0)).Y)

	s := tr.Scale()
	assert.InDelta(t, 40, s.X, 1e-12)
	assert.InDelta(t, 10, s.Y, 1e-12)
}

func TestTransformRoundTrip(t *testing.T) {
	windows := []geom.Bounds{
		{XMin: -5, XMax: 5, YMin: -2, YMax: 20},
		{XMin: -50, XMax: 50, YMin: -20, YMax: 100},
		{XMin: 0.001, XMax: 0.002, YMin: 1e6, YMax: 1e6 + 3},
	}
	rects := []geom.PixelRect{{Width: 300, Height: 250}, {Width: 1, Height: 1}, {Width: 1920, Height: 7}}
	points := []geom.Point{{X: 0, Y: 0}, {X: 3.7, Y: -11.2}, {X: -1e3, Y: 2e3}}

	for _, b := range windows {
		for _, r := range rects {
			tr, err := geom.NewTransform(b, r)
			require.NoError(t, err)
			for _, p := range points {
				q := tr.PixelToMath(tr.MathToPixel(p))
				tol := 1e-9 * math.Max(1, math.Max(math.Abs(p.X), math.Abs(p.Y))) * math.Max(1, math.Abs(b.YMax))
				assert.InDelta(t, p.X, q.X, tol, "window %v rect %v point %v", b, r, p)
				assert.InDelta(t, p.Y, q.Y, tol, "window %v rect %v point %v", b, r, p)
			}
		}
	}
}

func TestTransformInvalid(t *testing.T) {
	cases := []struct {
		name string
		b    geom.Bounds
		r    geom.PixelRect
	}{
		{"FlatX", geom.Bounds{XMin: 1, XMax: 1, YMin: 0, YMax: 1}, geom.PixelRect{Width: 10, Height: 10}},
		{"FlatY", geom.Bounds{XMin: 0, XMax: 1, YMin: 2, YMax: 2}, geom.PixelRect{Width: 10, Height: 10}},
		{"Inverted", geom.Bounds{XMin: 1, XMax: 0, YMin: 0, YMax: 1}, geom.PixelRect{Width: 10, Height: 10}},
		{"NaN", geom.Bounds{XMin: math.NaN(), XMax: 0, YMin: 0, YMax: 1}, geom.PixelRect{Width: 10, Height: 10}},
		{"EmptySurface", geom.Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, geom.PixelRect{Width: 0, Height: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geom.NewTransform(tc.b, tc.r)
			if !errors.Is(err, geom.ErrInvalidBounds) {
				t.Errorf("NewTransform(%v, %v) error = %v; want %v", tc.b, tc.r, err, geom.ErrInvalidBounds)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := geom.Bounds{XMin: -5, XMax: 5, YMin: -2, YMax: 20}
	assert.True(t, b.Contains(geom.MakePoint(5, 20)))
	assert.False(t, b.Contains(geom.MakePoint(5.01, 0)))
	assert.Equal(t, geom.Bounds{XMin: -4, XMax: 6, YMin: -4, YMax: 18}, b.Translate(geom.MakePoint(1, -2)))
	assert.Equal(t, "[-5,5]x[-2,20]", b.String())
}
