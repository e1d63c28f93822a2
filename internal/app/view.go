package app

import (
	"github.com/irfansharif/conics/internal/geom"
)

const (
	minZoom = 0.1
	maxZoom = 8.0
)

// View manages the current view state: zoom, pan and viewport size, all in
// framebuffer pixels.
type View struct {
	Zoom          float64
	PanX, PanY    float64
	Width, Height int
}

// NewView creates a new view state with default values.
func NewView(width, height int) *View {
	return &View{
		Zoom:   1.0,
		Width:  width,
		Height: height,
	}
}

// SetZoom sets the zoom level, clamping to valid range.
func (vs *View) SetZoom(zoom float64) {
	vs.Zoom = geom.Clamp(zoom, minZoom, maxZoom)
}

// SetPan sets the pan position to the given coordinates.
func (vs *View) SetPan(x, y float64) {
	vs.PanX = x
	vs.PanY = y
}

// SetViewport updates the viewport dimensions.
func (vs *View) SetViewport(width, height int) {
	vs.Width = width
	vs.Height = height
}

// ResetTo resets zoom to 1.0 and pans to center the given point in the
// viewport.
func (vs *View) ResetTo(pos geom.Point) {
	vs.Zoom = 1.0
	vs.PanX = float64(vs.Width)/2.0 - pos.X
	vs.PanY = float64(vs.Height)/2.0 - pos.Y
}

// ScreenToCanvas maps a framebuffer position to canvas coordinates, inverting
// the zoom around the viewport center followed by the pan.
func (vs *View) ScreenToCanvas(screen geom.Point) geom.Point {
	cx, cy := float64(vs.Width)/2, float64(vs.Height)/2
	return geom.MakePoint(
		(screen.X-cx*(1-vs.Zoom)-vs.PanX)/vs.Zoom,
		(screen.Y-cy*(1-vs.Zoom)-vs.PanY)/vs.Zoom,
	)
}

// ZoomAt scales the zoom by factor while keeping the canvas point under the
// given framebuffer position fixed.
func (vs *View) ZoomAt(screen geom.Point, factor float64) {
	anchor := vs.ScreenToCanvas(screen)
	vs.SetZoom(vs.Zoom * factor)

	cx, cy := float64(vs.Width)/2, float64(vs.Height)/2
	vs.SetPan(
		screen.X-cx*(1-vs.Zoom)-anchor.X*vs.Zoom,
		screen.Y-cy*(1-vs.Zoom)-anchor.Y*vs.Zoom,
	)
}

// FitBox zooms and pans so the canvas box b fills the viewport, centered,
// within the zoom limits.
func (vs *View) FitBox(b geom.Box) error {
	viewport := geom.MakeBox(0, 0, float64(vs.Width), float64(vs.Height))
	fit, err := geom.FillBox(b, viewport)
	if err != nil {
		return err
	}
	vs.SetZoom(fit.A)

	// Put the box center on the viewport center.
	center, bc := viewport.Center(), b.Center()
	vs.SetPan(vs.Zoom*(center.X-bc.X), vs.Zoom*(center.Y-bc.Y))
	return nil
}
