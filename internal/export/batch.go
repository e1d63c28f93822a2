package export

import (
	"bytes"
	"runtime"
	"sync"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/scene"
)

// Result is one rendered file of a batch.
type Result struct {
	Name   string // file name, the config's ID plus the format's extension
	Config conic.Config
	Data   []byte
	Err    error
}

// Batch analyzes and renders every config on up to workers goroutines
// (GOMAXPROCS if workers <= 0). Results come back in input order; a failing
// config only fails its own result.
func Batch(cfgs []conic.Config, f Format, rect geom.PixelRect, opts scene.RenderOptions, workers int) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(cfgs) {
		workers = len(cfgs)
	}

	results := make([]Result, len(cfgs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = render(cfgs[i], f, rect, opts)
			}
		}()
	}
	for i := range cfgs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func render(cfg conic.Config, f Format, rect geom.PixelRect, opts scene.RenderOptions) Result {
	res := Result{Name: cfg.ID() + f.Extension(), Config: cfg}
	an, err := conic.Analyze(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	var buf bytes.Buffer
	if err := Write(&buf, f, an, rect, opts); err != nil {
		res.Err = err
		return res
	}
	res.Data = buf.Bytes()
	return res
}
