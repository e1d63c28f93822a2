package main

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/conics/internal/app"
	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
)

const repeatInterval = 125 * time.Millisecond // time between successive pans when held down
const basePanDistance = 100.0

// EventHandlers manages all event handling for the application.
type EventHandlers struct {
	application *app.App

	// J/K/H/L and the arrow keys pan, continuously if held.
	panKeyHeld                   bool
	panDirectionX, panDirectionY float64
	lastPanTime                  time.Time

	// Drag/pan state (per-gesture), captured on mouse press.
	isDragging     bool
	dragStartMouse geom.Point
	dragStartPanX  float64
	dragStartPanY  float64

	// Current mouse position in canvas coordinates.
	mouseCanvas geom.Point

	// Typed coefficients ("a,b,c") or a delete count, consumed by the next
	// action key (Enter, C, D).
	inputBuffer string

	// Next gallery parabola handed out when C is pressed with no input.
	galleryCursor conic.Config
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App) *EventHandlers {
	gallery := conic.StandardParabolas()
	eh := &EventHandlers{
		application:   application,
		lastPanTime:   time.Now(),
		galleryCursor: gallery[len(gallery)-1],
	}
	eh.SetupCallbacks(application.Window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action, mods)
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleMouseButton(button, action) // for panning
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos)
	})
	window.SetScrollCallback(func(wnd *glfw.Window, _, zoomDelta float64) {
		eh.performZoom(zoomDelta)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.handleFramebufferSize(newW, newH)
	})
}

// updateRendererView updates the renderer with the current view state and
// framebuffer size.
func (eh *EventHandlers) updateRendererView() {
	view := eh.application.View
	cw, ch := eh.application.Window.GetFramebufferSize()
	eh.application.Renderer.SetView(cw, ch, view.Zoom, view.PanX, view.PanY)
}

func (eh *EventHandlers) handleFramebufferSize(newW, newH int) {
	eh.application.View.SetViewport(newW, newH)
	eh.updateRendererView()
}

// inputChars maps the keys that feed the input buffer.
var inputChars = map[glfw.Key]string{
	glfw.KeyComma:  ",",
	glfw.KeyPeriod: ".",
	glfw.KeyMinus:  "-",
}

func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	super := mods&glfw.ModSuper != 0
	if action == glfw.Press && !super {
		if key >= glfw.Key0 && key <= glfw.Key9 {
			eh.inputBuffer += string(rune('0' + int(key-glfw.Key0)))
			return
		}
		if c, ok := inputChars[key]; ok {
			eh.inputBuffer += c
			return
		}
		if key == glfw.KeyEscape {
			eh.inputBuffer = ""
			return
		}
		if key == glfw.KeyBackspace {
			if n := len(eh.inputBuffer); n > 0 {
				eh.inputBuffer = eh.inputBuffer[:n-1]
			}
			return
		}
	}

	switch key {
	case glfw.KeyJ, glfw.KeyDown:
		eh.handlePanKeys(action, 0 /*dx*/, -1 /*dy*/) // pan down
	case glfw.KeyK, glfw.KeyUp:
		eh.handlePanKeys(action, 0 /*dx*/, 1 /*dy*/) // pan up
	case glfw.KeyH, glfw.KeyLeft:
		eh.handlePanKeys(action, 1 /*dx*/, 0 /*dy*/) // pan right
	case glfw.KeyL, glfw.KeyRight:
		eh.handlePanKeys(action, -1 /*dx*/, 0 /*dy*/) // pan left
	}
	if action != glfw.Press {
		return
	}

	opts := eh.application.Options
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter, glfw.KeyC:
		eh.handleCreatePlotKey()
	case glfw.KeyD:
		eh.handleDeletePlotKey()
	case glfw.KeySpace:
		eh.handleCycleKey(mods&glfw.ModShift == 0)
	case glfw.KeyTab:
		eh.handlePlotNavigation(mods&glfw.ModShift == 0)
	case glfw.KeyR:
		eh.handleResetKey()
	case glfw.KeyI:
		eh.handleInspectKey()
	case glfw.KeyZ:
		if err := eh.application.FitAll(); err != nil {
			log.Printf("cannot fit view: %v", err)
		}
		eh.updateRendererView()
		eh.updateMouseCanvasPos(eh.application.Window.GetCursorPos())
	case glfw.KeyG:
		opts.ShowGrid = !opts.ShowGrid
	case glfw.KeyN:
		opts.ShowLatticePoints = !opts.ShowLatticePoints
	case glfw.KeyF:
		opts.ShowFormulas = !opts.ShowFormulas
		opts.ShowLabels = opts.ShowFormulas
	case glfw.KeyM:
		opts = opts.WithMathMode(!opts.MathMode)
	case glfw.KeyP:
		opts = opts.WithPrintMode(!opts.PrintMode)
	case glfw.KeyS:
		opts = opts.WithScheme(opts.Scheme.Next())
		log.Printf("color scheme: %s", opts.Scheme)
	case glfw.KeyEqual:
		if super {
			eh.performZoom(1) // zoom in
		}
	case glfw.KeyMinus:
		if super {
			eh.performZoom(-1) // zoom out
		}
	}
	eh.application.SetOptions(opts)
}

// handlePanKeys handles pan key presses, and also releases for continuous
// panning.
func (eh *EventHandlers) handlePanKeys(action glfw.Action, dx, dy float64) {
	switch action {
	case glfw.Press:
		eh.panKeyHeld = true
		eh.panDirectionX = dx
		eh.panDirectionY = dy
		eh.performPan(dx, dy)
		eh.lastPanTime = time.Now()

	case glfw.Release:
		eh.panKeyHeld = false

	case glfw.Repeat:
		// Ignore repeat events - we handle continuous panning ourselves to
		// ensure consistent timing.
	}
}

// performPan executes a single pan operation.
func (eh *EventHandlers) performPan(dx, dy float64) {
	// Scale by inverse of zoom: when zoomed out (zoom < 1), we move further in
	// canvas space and vice-versa.
	view := eh.application.View
	scaledDistance := basePanDistance / view.Zoom
	view.SetPan(view.PanX+dx*scaledDistance, view.PanY+dy*scaledDistance)
	eh.updateRendererView()

	eh.updateMouseCanvasPos(eh.application.Window.GetCursorPos())
}

// handleContinuousPanning handles continuous panning while pan keys are held.
func (eh *EventHandlers) handleContinuousPanning() {
	if !eh.panKeyHeld {
		return // nothing to do
	}

	now := time.Now()
	if now.Sub(eh.lastPanTime) < repeatInterval {
		return // not enough time has passed since the last pan
	}

	eh.performPan(eh.panDirectionX, eh.panDirectionY)
	eh.lastPanTime = now
}

// handleResetKey resets zoom and pan onto the closest plot and makes it
// current.
func (eh *EventHandlers) handleResetKey() {
	plots := eh.application.Plots.FindClosestPlots(eh.mouseCanvas.X, eh.mouseCanvas.Y)
	if len(plots) > 0 {
		eh.application.View.ResetTo(plots[0].CanvasPos)
		eh.application.Plots.SetCurrentPlot(plots[0])
	}

	eh.updateRendererView()
	eh.updateMouseCanvasPos(eh.application.Window.GetCursorPos())
}

// handleInspectKey logs the analysis of the closest plot.
func (eh *EventHandlers) handleInspectKey() {
	plots := eh.application.Plots.FindClosestPlots(eh.mouseCanvas.X, eh.mouseCanvas.Y)
	if len(plots) == 0 {
		return // nothing to do
	}
	log.Printf("plot %d:\n%s", plots[0].ID, plots[0].Analysis.Report())
}

// handleCycleKey steps the closest plot through the gallery.
func (eh *EventHandlers) handleCycleKey(forward bool) {
	if err := eh.application.CycleClosest(eh.mouseCanvas.X, eh.mouseCanvas.Y, forward); err != nil {
		log.Printf("cannot cycle plot: %v", err)
	}
}

// handleMouseButton handles mouse button events for panning.
func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft {
		return // nothing to do
	}

	switch action {
	case glfw.Press:
		eh.startPanning()
	case glfw.Release:
		eh.stopPanning()
	}
}

// framebufferPos converts window coordinates into framebuffer pixels.
func (eh *EventHandlers) framebufferPos(mouseX, mouseY float64) geom.Point {
	scaleX, scaleY := eh.application.Window.GetContentScale()
	return geom.MakePoint(mouseX*float64(scaleX), mouseY*float64(scaleY))
}

// updateMouseCanvasPos recalculates mouse position in canvas coordinates after
// view changes.
func (eh *EventHandlers) updateMouseCanvasPos(mouseX, mouseY float64) {
	eh.mouseCanvas = eh.application.View.ScreenToCanvas(eh.framebufferPos(mouseX, mouseY))
}

func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	eh.updateMouseCanvasPos(xpos, ypos)
	eh.updatePanning(xpos, ypos)
}

func (eh *EventHandlers) startPanning() {
	eh.isDragging = true
	eh.dragStartMouse = geom.MakePoint(eh.application.Window.GetCursorPos())
	view := eh.application.View
	eh.dragStartPanX, eh.dragStartPanY = view.PanX, view.PanY
}

func (eh *EventHandlers) stopPanning() {
	eh.isDragging = false
}

// updatePanning updates pan position based on mouse movement.
func (eh *EventHandlers) updatePanning(xpos, ypos float64) {
	if !eh.isDragging {
		return
	}

	start := eh.framebufferPos(eh.dragStartMouse.X, eh.dragStartMouse.Y)
	d := eh.framebufferPos(xpos, ypos).Sub(start)
	eh.application.View.SetPan(eh.dragStartPanX+d.X, eh.dragStartPanY+d.Y)
	eh.updateRendererView() // direct update for maximum smoothness
}

// performZoom zooms around the cursor.
func (eh *EventHandlers) performZoom(zoomDelta float64) {
	cursor := eh.framebufferPos(eh.application.Window.GetCursorPos())
	eh.application.View.ZoomAt(cursor, 1.0+zoomDelta*0.15)
	eh.updateRendererView() // direct update for maximum smoothness
}

// handleCreatePlotKey adds a plot at the cursor, from typed coefficients or
// the next gallery parabola when nothing was typed.
func (eh *EventHandlers) handleCreatePlotKey() {
	input := eh.inputBuffer
	eh.inputBuffer = ""

	var cfg conic.Config
	if input == "" {
		eh.galleryCursor = app.StepGallery(eh.galleryCursor, true)
		cfg = eh.galleryCursor
	} else {
		var err error
		if cfg, err = app.ParseConfig(input); err != nil {
			log.Printf("cannot add plot: %v", err)
			return
		}
	}

	plot, err := eh.application.AddPlot(cfg, eh.mouseCanvas)
	if err != nil {
		log.Printf("cannot add plot: %v", err)
		return
	}
	eh.application.Plots.SetCurrentPlot(plot)
}

// handleDeletePlotKey deletes the closest plot, or as many as were typed.
func (eh *EventHandlers) handleDeletePlotKey() {
	count := 1
	if input := strings.TrimSpace(eh.inputBuffer); input != "" {
		if n, err := strconv.Atoi(input); err == nil && n > 0 {
			count = n
		}
	}
	eh.inputBuffer = ""

	if err := eh.application.RemoveClosest(eh.mouseCanvas.X, eh.mouseCanvas.Y, count); err != nil {
		log.Fatalf("Failed to remove plots from GPU: %v", err)
	}
}

// handlePlotNavigation handles tab and shift+tab key presses for plot
// navigation.
func (eh *EventHandlers) handlePlotNavigation(next bool) {
	plot := eh.application.Plots.IterPlot(next)
	if plot == nil {
		return // nothing to do
	}

	// Reset zoom and pan to center of the plot.
	eh.application.View.ResetTo(plot.CanvasPos)
	eh.updateRendererView()

	// After tabbing, treat the plot's center as the cursor so subsequent
	// deletions and cycling apply to it.
	eh.mouseCanvas = plot.CanvasPos
}
