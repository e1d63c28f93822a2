package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/palette"
	"github.com/irfansharif/conics/internal/scene"
)

// basicfont only covers ASCII.
var asciiText = strings.NewReplacer("²", "^2", "·", "*")

// WritePNG rasterizes s and writes it as a PNG image.
func WritePNG(w io.Writer, s scene.Scene) error {
	img, err := Rasterize(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize draws s onto a new RGBA image of the scene's size. Strokes are
// filled from their triangle mesh, markers as true circles, and text with a
// fixed 7x13 bitmap face.
func Rasterize(s scene.Scene) (*image.RGBA, error) {
	width, height := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterizing %s: empty surface %dx%d", s.ID, width, height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(palette.RGBA(s.Background)), image.Point{}, draw.Src)

	strokes := s
	strokes.Markers = nil
	shapes, err := scene.Mesh(strokes)
	if err != nil {
		return nil, fmt.Errorf("rasterizing %s: %w", s.ID, err)
	}

	r := vector.NewRasterizer(width, height)
	for _, sh := range shapes {
		r.Reset(width, height)
		for _, tri := range sh.Triangles {
			r.MoveTo(float32(tri[0].X), float32(tri[0].Y))
			r.LineTo(float32(tri[1].X), float32(tri[1].Y))
			r.LineTo(float32(tri[2].X), float32(tri[2].Y))
			r.ClosePath()
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(palette.RGBA(sh.Color)), image.Point{})
	}

	for _, m := range s.Markers {
		inner := m.Radius - m.StrokeWidth/2
		outer := m.Radius + m.StrokeWidth/2
		if inner > 0 {
			r.Reset(width, height)
			addCircle(r, m.Center, inner, false)
			r.Draw(dst, dst.Bounds(), image.NewUniform(palette.RGBA(m.Fill)), image.Point{})
		}
		if m.StrokeWidth > 0 && outer > 0 {
			r.Reset(width, height)
			addCircle(r, m.Center, outer, false)
			if inner > 0 {
				addCircle(r, m.Center, inner, true)
			}
			r.Draw(dst, dst.Bounds(), image.NewUniform(palette.RGBA(m.Stroke)), image.Point{})
		}
	}

	face := basicfont.Face7x13
	for _, t := range s.Texts {
		content := asciiText.Replace(t.Content)
		x := fixed.I(int(math.Round(t.At.X)))
		switch t.Anchor {
		case scene.AnchorMiddle:
			x -= font.MeasureString(face, content) / 2
		case scene.AnchorEnd:
			x -= font.MeasureString(face, content)
		}
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(palette.RGBA(t.Color)),
			Face: face,
			Dot:  fixed.Point26_6{X: x, Y: fixed.I(int(math.Round(t.At.Y)))},
		}
		d.DrawString(content)
	}
	return dst, nil
}

// addCircle adds a circle of four cubic Béziers. Opposite windings cancel, so
// a clockwise circle inside a counter-clockwise one leaves a ring.
func addCircle(r *vector.Rasterizer, c geom.Point, radius float64, clockwise bool) {
	const k = 0.5522847498
	cx, cy, rad := float32(c.X), float32(c.Y), float32(radius)
	kr := float32(k) * rad

	r.MoveTo(cx, cy-rad)
	if clockwise {
		r.CubeTo(cx-kr, cy-rad, cx-rad, cy-kr, cx-rad, cy)
		r.CubeTo(cx-rad, cy+kr, cx-kr, cy+rad, cx, cy+rad)
		r.CubeTo(cx+kr, cy+rad, cx+rad, cy+kr, cx+rad, cy)
		r.CubeTo(cx+rad, cy-kr, cx+kr, cy-rad, cx, cy-rad)
	} else {
		r.CubeTo(cx+kr, cy-rad, cx+rad, cy-kr, cx+rad, cy)
		r.CubeTo(cx+rad, cy+kr, cx+kr, cy+rad, cx, cy+rad)
		r.CubeTo(cx-kr, cy+rad, cx-rad, cy+kr, cx-rad, cy)
		r.CubeTo(cx-rad, cy-kr, cx-kr, cy-rad, cx, cy-rad)
	}
	r.ClosePath()
}
