package app

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/memory"
	"github.com/irfansharif/conics/internal/render"
	"github.com/irfansharif/conics/internal/scene"
)

const (
	galleryColumns = 5
	cardGap        = 40.0 // canvas pixels between neighbouring cards
)

// CardSize is the canvas size of every plot card.
var CardSize = geom.PixelRect{Width: 600, Height: 500}

// App encapsulates the main application state and logic.
type App struct {
	Window   *glfw.Window
	Renderer *render.Renderer
	View     *View
	Plots    *PlotManager
	Buffers  *memory.BufferStore
	Options  scene.RenderOptions
}

// NewApp creates a new application instance. The window's GL context must be
// current.
func NewApp(window *glfw.Window, view *View, opts scene.RenderOptions) (*App, error) {
	buffers := memory.NewBufferStore()
	renderer, err := render.NewRenderer(buffers)
	if err != nil {
		return nil, err
	}
	return &App{
		Window:   window,
		Renderer: renderer,
		View:     view,
		Plots:    NewPlotManager(),
		Buffers:  buffers,
		Options:  opts,
	}, nil
}

// AddPlot places a new plot for cfg at the given canvas position.
func (app *App) AddPlot(cfg conic.Config, canvasPos geom.Point) (*Plot, error) {
	plot, err := app.Plots.AddPlot(cfg, canvasPos)
	if err != nil {
		return nil, fmt.Errorf("adding %s: %w", cfg, err)
	}
	log.Printf("added plot %d: %s (%d lattice points)", plot.ID, plot.Analysis.Equation, len(plot.Analysis.Lattice))
	return plot, nil
}

// LoadGallery lays out the standard parabolas in a grid whose first card is
// centered on origin.
func (app *App) LoadGallery(origin geom.Point) error {
	for i, cfg := range conic.StandardParabolas() {
		if _, err := app.AddPlot(cfg, GalleryPosition(i, galleryColumns, origin)); err != nil {
			return err
		}
	}
	return nil
}

// FitAll zooms the view out (or in) to show every plot.
func (app *App) FitAll() error {
	extent, ok := app.Plots.Extent(CardSize)
	if !ok {
		return nil // nothing to do
	}
	return app.View.FitBox(extent)
}

// GalleryPosition returns the center of the i-th card in a grid with the
// given number of columns.
func GalleryPosition(i, columns int, origin geom.Point) geom.Point {
	col, row := i%columns, i/columns
	return geom.MakePoint(
		origin.X+float64(col)*(CardSize.Width+cardGap),
		origin.Y+float64(row)*(CardSize.Height+cardGap),
	)
}

// SetOptions replaces the render options, re-uploading every plot.
func (app *App) SetOptions(opts scene.RenderOptions) {
	if opts == app.Options {
		return
	}
	app.Options = opts
	app.Plots.MarkAllDirty()
}

// CycleClosest steps the plot closest to the given point through the
// standard parabolas.
func (app *App) CycleClosest(canvasX, canvasY float64, forward bool) error {
	plots := app.Plots.FindClosestPlots(canvasX, canvasY)
	if len(plots) == 0 {
		return nil // nothing to do
	}
	plot := plots[0]
	return plot.SetConfig(StepGallery(plot.Config, forward))
}

// RemoveClosest removes up to count plots closest to the given point, along
// with their GPU buffers.
func (app *App) RemoveClosest(canvasX, canvasY float64, count int) error {
	plots := app.Plots.FindClosestPlots(canvasX, canvasY)
	if count > len(plots) {
		count = len(plots)
	}
	for _, plot := range plots[:count] {
		if app.Buffers.Has(plot.ID) {
			if err := app.Buffers.Remove(plot.ID); err != nil {
				return err
			}
		}
		app.Plots.RemovePlot(plot.ID)
	}
	return nil
}

// PlotOptions returns the render options for one plot: the app's options,
// with the current plot framed in a color from the scheme's swatch.
func (app *App) PlotOptions(plot *Plot) scene.RenderOptions {
	opts := app.Options
	if current := app.Plots.Current(); current != nil && current.ID == plot.ID {
		swatch := opts.Scheme.Swatch()
		opts.ShowFrame = true
		opts.Frame = swatch[int(plot.ID)%len(swatch)]
	}
	return opts
}

// PrepareRenderer uploads dirty plots to the GPU.
func (app *App) PrepareRenderer(cw, ch int) error {
	app.Renderer.SetView(cw, ch, app.View.Zoom, app.View.PanX, app.View.PanY)

	plots := app.Plots.GetPlots()
	renderData := make([]render.PlotRenderData, len(plots))
	for i, plot := range plots {
		renderData[i] = render.PlotRenderData{
			ID:        plot.ID,
			Analysis:  plot.Analysis,
			CanvasPos: plot.CanvasPos,
			Size:      CardSize,
			Options:   app.PlotOptions(plot),
			Dirty:     plot.Dirty,
		}
	}
	if err := app.Renderer.PrepareMulti(renderData, cw, ch); err != nil {
		return err
	}
	for _, plot := range plots {
		plot.Dirty = false // mark plots as clean
	}
	return nil
}

// StepGallery returns the standard parabola after (or before) cfg. Configs
// outside the gallery step to its first (or last) entry.
func StepGallery(cfg conic.Config, forward bool) conic.Config {
	gallery := conic.StandardParabolas()
	pos := -1
	for i, g := range gallery {
		if g == cfg {
			pos = i
			break
		}
	}

	switch {
	case pos == -1 && forward:
		return gallery[0]
	case pos == -1:
		return gallery[len(gallery)-1]
	case forward:
		return gallery[(pos+1)%len(gallery)]
	default:
		return gallery[(pos-1+len(gallery))%len(gallery)]
	}
}
