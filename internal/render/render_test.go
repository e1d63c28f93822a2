package render_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/render"
	"github.com/irfansharif/conics/internal/scene"
)

func TestVertices(t *testing.T) {
	shapes := []scene.Shape{{
		Color: colorful.Color{R: 1, G: 0.5, B: 0},
		Triangles: [][3]geom.Point{{
			geom.MakePoint(0, 0), geom.MakePoint(1, 0), geom.MakePoint(0, 1),
		}},
	}}

	vertices := render.Vertices(shapes, geom.MakePoint(10, 20))
	assert.Equal(t, []float32{
		10, 20, 1, 0.5, 0, 1,
		11, 20, 1, 0.5, 0, 1,
		10, 21, 1, 0.5, 0, 1,
	}, vertices)

	assert.Empty(t, render.Vertices(nil, geom.Point{}))
}

func TestGeometry(t *testing.T) {
	an, err := conic.Analyze(conic.Parabola(1))
	require.NoError(t, err)

	plot := render.PlotRenderData{
		Analysis:  an,
		CanvasPos: geom.MakePoint(400, 300),
		Size:      geom.PixelRect{Width: 300, Height: 250},
		Options:   scene.DefaultOptions(),
	}
	vertices, err := render.Geometry(plot)
	require.NoError(t, err)
	require.NotEmpty(t, vertices)
	assert.Zero(t, len(vertices)%6)

	// The card background leads, anchored at the card's top-left corner.
	assert.Equal(t, []float32{250, 175, 1, 1, 1, 1}, vertices[:6])
	for i := 0; i < len(vertices); i += 6 {
		x, y := vertices[i], vertices[i+1]
		assert.True(t, x >= 250-2 && x <= 550+2, "x=%v outside card", x)
		assert.True(t, y >= 175-2 && y <= 425+2, "y=%v outside card", y)
	}
}

func TestGeometry_TooSmall(t *testing.T) {
	an, err := conic.Analyze(conic.Parabola(1))
	require.NoError(t, err)

	_, err = render.Geometry(render.PlotRenderData{
		Analysis: an,
		Size:     geom.PixelRect{Width: 40, Height: 40},
		Options:  scene.DefaultOptions(),
	})
	require.Error(t, err)
}

func TestTransformMatrix(t *testing.T) {
	apply := func(m [16]float32, x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	m := render.TransformMatrix(800, 600, 1, 0, 0)
	x, y := apply(m, 0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
	x, y = apply(m, 400, 300)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	// Zooming keeps the viewport center fixed; panning shifts in pixels.
	m = render.TransformMatrix(800, 600, 2, 0, 0)
	x, y = apply(m, 400, 300)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	x, _ = apply(m, 600, 300)
	assert.InDelta(t, 1, x, 1e-6)

	m = render.TransformMatrix(800, 600, 1, 400, 0)
	x, _ = apply(m, 0, 300)
	assert.InDelta(t, 0, x, 1e-6)
}
