// Command conics is an interactive viewer for parabolas and the integer
// lattice points they pass through.
//
// The standard gallery is laid out on a pannable, zoomable canvas. Typed
// coefficients ("a,b,c" then Enter or C) add further plots; G, N, M, P and S
// toggle grid, lattice points, math mode, print mode and the color scheme.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/conics/internal/app"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/memory"
	"github.com/irfansharif/conics/internal/palette"
	"github.com/irfansharif/conics/internal/render"
	"github.com/irfansharif/conics/internal/scene"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("CONICS_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(current *app.Plot, fps float64, renderStats render.Stats, memStats memory.Stats) string {
	equation := "no plot selected"
	if current != nil {
		equation = fmt.Sprintf("%s, %d lattice points", current.Analysis.Equation, len(current.Analysis.Lattice))
	}
	return fmt.Sprintf("Conics: %s (%.1f FPS, %d plots, %d triangles, %d draw calls/frame, %.2fµs/draw, %.2fms/prepare, %.1fMiB GPU)",
		equation,
		fps,
		memStats.TotalPlots,
		memStats.TotalVertices/3,
		memStats.DrawCallsPerFrame,
		renderStats.LastDrawTimeUs,
		renderStats.LastPrepareTimeMs,
		float64(memStats.TotalGPUBytes)/(1024.0*1024.0),
	)
}

func main() {
	mathMode := flag.Bool("math", false, "start in math mode (directrix, axis of symmetry, focus)")
	printMode := flag.Bool("print", false, "start in print mode")
	flag.Parse()

	opts := scene.DefaultOptions().WithScheme(schemeFromEnv())
	if *mathMode {
		opts = opts.WithMathMode(true)
	}
	if *printMode {
		opts = opts.WithPrintMode(true)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(
		1280, // width
		960,  // height
		"Conics",
		nil, nil,
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}
	gl.Enable(gl.MULTISAMPLE)

	cw, ch := window.GetFramebufferSize()
	application, err := app.NewApp(window, app.NewView(cw, ch), opts)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Buffers.Cleanup()
	defer application.Renderer.Cleanup()

	// Lay out the gallery and start on its first card.
	origin := geom.MakePoint(app.CardSize.Width/2, app.CardSize.Height/2)
	if err := application.LoadGallery(origin); err != nil {
		log.Fatalf("Failed to load gallery: %v", err)
	}
	if first := application.Plots.IterPlot(true); first != nil {
		application.View.ResetTo(first.CanvasPos)
	}
	if err := application.PrepareRenderer(cw, ch); err != nil {
		log.Fatalf("Failed to prepare renderer: %v", err)
	}

	eventHandlers := NewEventHandlers(application)

	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !application.Window.ShouldClose() {
		frameStart := time.Now()

		eventHandlers.handleContinuousPanning()

		w, h := application.Window.GetFramebufferSize()
		if err := application.PrepareRenderer(w, h); err != nil {
			log.Fatalf("Failed to prepare renderer: %v", err)
		}

		// The canvas is a shade darker than the cards on it.
		bg := palette.RGBA(application.Options.Scheme.Colors().Background)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(bg.R)/255*0.92, float32(bg.G)/255*0.92, float32(bg.B)/255*0.92, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := application.Renderer.Draw(); err != nil {
			log.Fatalf("Draw failed: %v", err)
		}
		application.Window.SwapBuffers()
		glfw.PollEvents()

		frameTimeSum += time.Since(frameStart).Seconds() * 1000.0 // ms
		frameCount++

		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := frameTimeSum / float64(frameCount)
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			memStats := application.Buffers.Stats()
			renderStats := application.Renderer.Stats()
			application.Window.SetTitle(makeTitle(application.Plots.Current(), fps, renderStats, memStats))

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%.2f ms/frame, %d draw calls/frame)", fps, avgFrameTime, memStats.DrawCallsPerFrame)
			runtimeLogger.Printf("Shapes:         %d plots, %d triangles, %d vertices", memStats.TotalPlots, memStats.TotalVertices/3, memStats.TotalVertices)
			runtimeLogger.Printf("GPU memory:     %.2f MiB", float64(memStats.TotalGPUBytes)/(1024.0*1024.0))
			runtimeLogger.Printf("Render time:    %.2f µs (last draw), %.2f ms (last prepare, %d uploads)", renderStats.LastDrawTimeUs, renderStats.LastPrepareTimeMs, renderStats.LastUploads)
			runtimeLogger.Printf("Buffers:        %d uploads, %d growth events, %d compactions (%.2f μs last)", memStats.Uploads, memStats.GrowthEvents, memStats.CompactionEvents, memStats.LastCompactionTimeUs)
			runtimeLogger.Println("==============================")

			application.Buffers.PrintStats()
		}

		if frameCount%60 == 0 { // Periodic compaction.
			application.Buffers.TryCompaction()
		}

		if frameCount%100 == 0 { // Periodically validate buffer integrity.
			if err := application.Buffers.ValidateIntegrity(); err != nil {
				log.Fatalf("Buffer integrity invalid: %v", err)
			}
		}
	}
}

// schemeFromEnv reads the starting color scheme from CONICS_SCHEME.
func schemeFromEnv() palette.Scheme {
	name := os.Getenv("CONICS_SCHEME")
	if name == "" {
		return palette.Default
	}
	scheme, err := palette.ParseScheme(name)
	if err != nil {
		log.Fatalf("Invalid CONICS_SCHEME value '%s': %v", name, err)
	}
	return scheme
}
