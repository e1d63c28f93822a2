package app

import (
	"math"
	"sort"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/memory"
)

// Plot is one parabola card placed on the canvas.
type Plot struct {
	ID        memory.PlotID  // unique identifier
	Config    conic.Config   // coefficients
	Analysis  conic.Analysis // derived geometry, kept in sync with Config
	CanvasPos geom.Point     // card center in canvas coordinates
	Dirty     bool           // marks plot for GPU re-upload
}

// SetConfig re-analyzes the plot with new coefficients and marks it dirty.
// On error the plot is left unchanged.
func (p *Plot) SetConfig(cfg conic.Config) error {
	an, err := conic.Analyze(cfg)
	if err != nil {
		return err
	}
	p.Config, p.Analysis = cfg, an
	p.Dirty = true
	return nil
}

// PlotManager manages the plots across the canvas.
type PlotManager struct {
	plots         map[memory.PlotID]*Plot // map of plot IDs to plots
	currentPlotID memory.PlotID           // ID of the current plot, -1 if none
	nextID        memory.PlotID           // next plot ID to assign
}

// NewPlotManager creates an empty plot manager.
func NewPlotManager() *PlotManager {
	return &PlotManager{
		plots:         make(map[memory.PlotID]*Plot),
		currentPlotID: -1,
	}
}

// AddPlot analyzes cfg and places it at canvasPos.
func (pm *PlotManager) AddPlot(cfg conic.Config, canvasPos geom.Point) (*Plot, error) {
	an, err := conic.Analyze(cfg)
	if err != nil {
		return nil, err
	}
	plot := &Plot{
		ID:        pm.nextID,
		Config:    cfg,
		Analysis:  an,
		CanvasPos: canvasPos,
		Dirty:     true, // new plots always need upload
	}
	pm.plots[plot.ID] = plot
	pm.nextID++
	return plot, nil
}

// RemovePlot removes a plot by ID.
func (pm *PlotManager) RemovePlot(id memory.PlotID) bool {
	if _, ok := pm.plots[id]; !ok {
		return false
	}
	delete(pm.plots, id)
	if pm.currentPlotID == id {
		pm.currentPlotID = -1
	}
	return true
}

// Len returns the number of plots.
func (pm *PlotManager) Len() int { return len(pm.plots) }

// GetPlots returns all plots sorted by ID (ascending).
func (pm *PlotManager) GetPlots() []*Plot {
	plots := make([]*Plot, 0, len(pm.plots))
	for _, plot := range pm.plots {
		plots = append(plots, plot)
	}
	sort.Slice(plots, func(i, j int) bool { return plots[i].ID < plots[j].ID })
	return plots
}

// Extent returns the canvas box covering every plot card of the given size,
// and false when there are no plots.
func (pm *PlotManager) Extent(card geom.PixelRect) (geom.Box, bool) {
	if len(pm.plots) == 0 {
		return geom.Box{}, false
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for _, plot := range pm.plots {
		xmin = math.Min(xmin, plot.CanvasPos.X-card.Width/2)
		xmax = math.Max(xmax, plot.CanvasPos.X+card.Width/2)
		ymin = math.Min(ymin, plot.CanvasPos.Y-card.Height/2)
		ymax = math.Max(ymax, plot.CanvasPos.Y+card.Height/2)
	}
	return geom.MakeBox(xmin, ymin, xmax-xmin, ymax-ymin), true
}

// MarkAllDirty flags every plot for re-upload.
func (pm *PlotManager) MarkAllDirty() {
	for _, plot := range pm.plots {
		plot.Dirty = true
	}
}

// FindClosestPlots returns all plots sorted by distance to the given point
// (closest first). For plots at equal distance, sorts by ID (highest first).
func (pm *PlotManager) FindClosestPlots(canvasX, canvasY float64) []*Plot {
	type sortKey struct {
		distance float64
		ID       memory.PlotID
	}

	target := geom.MakePoint(canvasX, canvasY)
	sortKeys := make([]sortKey, 0, len(pm.plots))
	for _, plot := range pm.plots {
		sortKeys = append(sortKeys, sortKey{geom.Dist(plot.CanvasPos, target), plot.ID})
	}

	sort.Slice(sortKeys, func(i, j int) bool {
		if math.Abs(sortKeys[i].distance-sortKeys[j].distance) < 1e-4 {
			return sortKeys[i].ID > sortKeys[j].ID
		}
		return sortKeys[i].distance < sortKeys[j].distance
	})

	result := make([]*Plot, len(sortKeys))
	for i, key := range sortKeys {
		result[i] = pm.plots[key.ID]
	}
	return result
}

// SetCurrentPlot sets the current plot directly; nil clears it. The current
// plot is drawn framed, so both the old and the new one are marked dirty.
func (pm *PlotManager) SetCurrentPlot(plot *Plot) {
	id := memory.PlotID(-1)
	if plot != nil {
		id = plot.ID
	}
	pm.setCurrent(id)
}

func (pm *PlotManager) setCurrent(id memory.PlotID) {
	if id == pm.currentPlotID {
		return
	}
	if old, ok := pm.plots[pm.currentPlotID]; ok {
		old.Dirty = true
	}
	if plot, ok := pm.plots[id]; ok {
		plot.Dirty = true
	}
	pm.currentPlotID = id
}

// Current returns the current plot, or nil.
func (pm *PlotManager) Current() *Plot {
	if pm.currentPlotID < 0 {
		return nil
	}
	return pm.plots[pm.currentPlotID]
}

// IterPlot moves to the next or previous plot in ID (creation) order,
// wrapping around.
func (pm *PlotManager) IterPlot(next bool) *Plot {
	if len(pm.plots) == 0 {
		pm.setCurrent(-1)
		return nil
	}

	plots := pm.GetPlots()
	pos := -1
	for i, plot := range plots {
		if plot.ID == pm.currentPlotID {
			pos = i
			break
		}
	}

	var newPos int
	switch {
	case pos == -1 && next:
		newPos = 0
	case pos == -1:
		newPos = len(plots) - 1
	case next:
		newPos = (pos + 1) % len(plots)
	default:
		newPos = (pos - 1 + len(plots)) % len(plots)
	}

	pm.setCurrent(plots[newPos].ID)
	return plots[newPos]
}
