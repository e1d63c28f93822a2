// Command conicplot renders parabolas to SVG, PNG, JSON or a text report.
//
//	conicplot -a 0.25 -c -4 -format png -o parabola.png
//	conicplot -all -format svg -outdir gallery/
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/export"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/palette"
	"github.com/irfansharif/conics/internal/scene"
)

const logFlags = log.Ltime | log.Lshortfile

func init() {
	log.SetFlags(logFlags)
}

func main() {
	var (
		a         = flag.Float64("a", 1, "quadratic coefficient (non-zero)")
		b         = flag.Float64("b", 0, "linear coefficient")
		c         = flag.Float64("c", 0, "constant term")
		format    = flag.String("format", "svg", "output format: svg, png, json or text")
		width     = flag.Float64("width", 300, "drawing width in pixels")
		height    = flag.Float64("height", 250, "drawing height in pixels")
		schemeArg = flag.String("scheme", "default", "color scheme: default, mathematical, celestial or print")
		mathMode  = flag.Bool("math", false, "draw the directrix, axis of symmetry and focus")
		printMode = flag.Bool("print", false, "print mode (black on white)")
		grid      = flag.Bool("grid", true, "draw the grid")
		lattice   = flag.Bool("lattice", true, "mark integer lattice points")
		output    = flag.String("o", "", "output file (default stdout)")
		all       = flag.Bool("all", false, "render the whole standard gallery into -outdir")
		outdir    = flag.String("outdir", ".", "output directory for -all")
		workers   = flag.Int("workers", 0, "concurrent renders for -all (default GOMAXPROCS)")
	)
	flag.Parse()

	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatalf("Invalid -format: %v", err)
	}
	scheme, err := palette.ParseScheme(*schemeArg)
	if err != nil {
		log.Fatalf("Invalid -scheme: %v", err)
	}

	opts := scene.DefaultOptions().WithScheme(scheme)
	if *mathMode {
		opts = opts.WithMathMode(true)
	}
	if *printMode {
		opts = opts.WithPrintMode(true)
	}
	opts.ShowGrid = *grid
	opts.ShowLatticePoints = opts.ShowLatticePoints && *lattice
	rect := geom.PixelRect{Width: *width, Height: *height}

	if *all {
		renderGallery(f, rect, opts, *outdir, *workers)
		return
	}

	cfg := conic.Config{A: *a, B: *b, C: *c}
	an, err := conic.Analyze(cfg)
	if err != nil {
		log.Fatalf("Cannot analyze %s: %v", cfg, err)
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Fatalf("Failed to close output file: %v", err)
			}
		}()
		w = file
	}

	bw := bufio.NewWriter(w)
	if err := export.Write(bw, f, an, rect, opts); err != nil {
		log.Fatalf("Failed to write %s: %v", f, err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatalf("Failed to write %s: %v", f, err)
	}
}

// renderGallery writes every standard parabola to outdir, one file each.
func renderGallery(f export.Format, rect geom.PixelRect, opts scene.RenderOptions, outdir string, workers int) {
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	failed := 0
	for _, res := range export.Batch(conic.StandardParabolas(), f, rect, opts, workers) {
		if res.Err != nil {
			log.Printf("%s: %v", res.Config, res.Err)
			failed++
			continue
		}
		path := filepath.Join(outdir, res.Name)
		if err := os.WriteFile(path, res.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}
	if failed > 0 {
		log.Fatalf("%d of %d parabolas failed", failed, len(conic.StandardParabolas()))
	}
}
