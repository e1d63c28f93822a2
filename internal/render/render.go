// Package render draws laid out plots with OpenGL.
//
// Each plot is built into a scene, meshed into triangles in its own pixel
// space, offset to its place on the canvas and uploaded once to the buffer
// store. Pan and zoom only change the transform uniform, so moving around
// never regenerates geometry.
package render

import (
	"fmt"
	"log"
	"time"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/memory"
	"github.com/irfansharif/conics/internal/scene"
)

type Renderer struct {
	w, h             int
	zoom, panX, panY float64

	buffers *memory.BufferStore
	program *Program
	stats   Stats
}

// PlotRenderData holds rendering information for a single plot.
type PlotRenderData struct {
	ID        memory.PlotID
	Analysis  conic.Analysis
	CanvasPos geom.Point     // center of the plot card in canvas coordinates
	Size      geom.PixelRect // card size in canvas pixels
	Options   scene.RenderOptions
	Dirty     bool // whether the plot needs GPU re-upload
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastPrepareTimeMs float64 // time spent in last PrepareMulti() call in milliseconds
	LastDrawTimeUs    float64 // time spent in last Draw() call in microseconds
	LastUploads       int     // plots uploaded by the last PrepareMulti() call
}

// NewRenderer compiles the shader program. It must be called with a current
// GL context.
func NewRenderer(buffers *memory.BufferStore) (*Renderer, error) {
	program, err := NewProgram()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		zoom:    1.0,
		program: program,
		buffers: buffers,
	}, nil
}

func (r *Renderer) SetView(w, h int, zoom, panX, panY float64) {
	r.w, r.h = w, h
	r.zoom = zoom
	r.panX, r.panY = panX, panY
}

// PrepareMulti regenerates and uploads the geometry of dirty plots. Clean
// plots keep what is already on the GPU.
func (r *Renderer) PrepareMulti(plots []PlotRenderData, w, h int) error {
	startTime := time.Now()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("cannot prepare renderer: invalid viewport dimensions %dx%d", w, h)
	}
	r.w, r.h = w, h

	uploads := 0
	for i := range plots {
		plot := &plots[i]
		if !plot.Dirty && r.buffers.Has(plot.ID) {
			continue // skip clean plots
		}

		vertices, err := Geometry(*plot)
		if err != nil {
			log.Printf("WARNING: plot %d (%s): %v, skipping", plot.ID, plot.Analysis.Equation, err)
			continue
		}
		if err := r.buffers.Upload(plot.ID, vertices); err != nil {
			log.Printf("Error uploading plot %d: %v", plot.ID, err)
			continue
		}
		uploads++
	}

	r.stats.LastUploads = uploads
	r.stats.LastPrepareTimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0
	return nil
}

// Geometry lays out, meshes and positions one plot, returning interleaved
// vertex data in canvas coordinates. The card background comes first.
func Geometry(plot PlotRenderData) ([]float32, error) {
	s, err := scene.Build(plot.Analysis, plot.Size, plot.Options)
	if err != nil {
		return nil, err
	}
	shapes, err := scene.Mesh(s)
	if err != nil {
		return nil, err
	}

	origin := geom.MakePoint(
		plot.CanvasPos.X-0.5*plot.Size.Width,
		plot.CanvasPos.Y-0.5*plot.Size.Height,
	)
	return Vertices(append([]scene.Shape{card(s)}, shapes...), origin), nil
}

// card is the scene's background rectangle as two triangles.
func card(s scene.Scene) scene.Shape {
	tl, tr := geom.MakePoint(0, 0), geom.MakePoint(s.Width, 0)
	bl, br := geom.MakePoint(0, s.Height), geom.MakePoint(s.Width, s.Height)
	return scene.Shape{
		Color:     s.Background,
		Triangles: [][3]geom.Point{{tl, tr, br}, {tl, br, bl}},
	}
}

// Vertices flattens shapes into x, y, r, g, b, a vertex data, translating
// every point by origin.
func Vertices(shapes []scene.Shape, origin geom.Point) []float32 {
	n := 0
	for _, sh := range shapes {
		n += len(sh.Triangles) * 3 * 6
	}

	vertices := make([]float32, 0, n)
	for _, sh := range shapes {
		c := sh.Color.Clamped()
		for _, tri := range sh.Triangles {
			for _, p := range tri {
				p = p.Add(origin)
				vertices = append(vertices,
					float32(p.X), float32(p.Y), // position
					float32(c.R), float32(c.G), float32(c.B), 1, // color
				)
			}
		}
	}
	return vertices
}

func (r *Renderer) Draw() error {
	startTime := time.Now()

	r.program.SetTransform(TransformMatrix(r.w, r.h, r.zoom, r.panX, r.panY))
	if err := r.buffers.Draw(); err != nil {
		return fmt.Errorf("buffer store draw failed: %w", err)
	}

	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
	return nil
}

// Stats returns the current performance statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Cleanup releases the shader program.
func (r *Renderer) Cleanup() {
	r.program.Delete()
}
