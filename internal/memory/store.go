// Package memory manages the GPU vertex buffers backing each plot.
//
// Every plot owns one VAO/VBO pair sized to a power-of-two vertex capacity.
// Re-uploads that fit are written in place; larger ones reallocate, and a
// periodic compaction pass shrinks buffers left mostly empty (for instance
// after the grid is turned off).
package memory

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var memoryLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("CONICS_DEBUG_MEMORY") == "1" {
		memoryLogger = log.New(os.Stdout, "[memory] ", log.Ltime|log.Lmsgprefix)
	}
}

const (
	floatsPerVertex = 6 // x, y, r, g, b, a
	bytesPerVertex  = floatsPerVertex * 4

	minVertexCapacity = 1024
	maxBufferBytes    = 256 * 1024 * 1024 // 256 MiB

	// Buffers below DefragThreshold utilization are shrunk by the compaction
	// pass, at most DefragMaxPerFrame of them per call.
	DefragThreshold   = 0.25
	DefragMaxPerFrame = 1
)

// PlotID uniquely identifies a plot's buffer.
type PlotID int

type buffer struct {
	vao, vbo uint32
	capacity int // in vertices
	count    int
}

func (b *buffer) utilization() float64 {
	if b.capacity == 0 {
		return 0
	}
	return float64(b.count) / float64(b.capacity)
}

// Stats tracks buffer usage.
type Stats struct {
	TotalPlots           int
	TotalVertices        int64
	TotalGPUBytes        int64
	DrawCallsPerFrame    int
	Uploads              int
	GrowthEvents         int
	CompactionEvents     int
	LastCompactionTimeUs float64
}

// BufferStore owns the per-plot vertex buffers. It must only be used from the
// goroutine holding the GL context.
type BufferStore struct {
	buffers map[PlotID]*buffer
	stats   Stats
}

func NewBufferStore() *BufferStore {
	return &BufferStore{buffers: make(map[PlotID]*buffer)}
}

// Upload replaces the plot's vertex data, allocating or growing its buffer
// as needed.
func (bs *BufferStore) Upload(id PlotID, vertices []float32) error {
	count, err := vertexCount(vertices)
	if err != nil {
		return fmt.Errorf("plot %d: %w", id, err)
	}
	capacity, err := capacityFor(count)
	if err != nil {
		return fmt.Errorf("plot %d: %w", id, err)
	}

	b, ok := bs.buffers[id]
	switch {
	case !ok:
		b = newBuffer(capacity)
		bs.buffers[id] = b
	case count > b.capacity:
		memoryLogger.Printf("plot %d: growing buffer %s -> %s vertices", id, formatNumber(int64(b.capacity)), formatNumber(int64(capacity)))
		b.resize(capacity, 0 /* keep */)
		bs.stats.GrowthEvents++
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.count = count
	bs.stats.Uploads++
	return nil
}

// Has reports whether the plot has a buffer.
func (bs *BufferStore) Has(id PlotID) bool {
	_, ok := bs.buffers[id]
	return ok
}

// Remove releases the plot's buffer.
func (bs *BufferStore) Remove(id PlotID) error {
	b, ok := bs.buffers[id]
	if !ok {
		return fmt.Errorf("plot %d not found", id)
	}
	b.cleanup()
	delete(bs.buffers, id)
	return nil
}

// Draw issues one draw call per non-empty buffer, in plot order.
func (bs *BufferStore) Draw() error {
	drawCalls := 0
	for _, id := range bs.ids() {
		b := bs.buffers[id]
		if b.count == 0 {
			continue
		}
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(b.count))
		drawCalls++
	}
	gl.BindVertexArray(0)
	bs.stats.DrawCallsPerFrame = drawCalls
	return nil
}

// ValidateIntegrity checks that every buffer is allocated and holds no more
// vertices than it has room for.
func (bs *BufferStore) ValidateIntegrity() error {
	var errs []string
	for _, id := range bs.ids() {
		b := bs.buffers[id]
		if b.vao == 0 || b.vbo == 0 {
			errs = append(errs, fmt.Sprintf("plot %d has no GL objects (vao=%d vbo=%d)", id, b.vao, b.vbo))
		}
		if b.count > b.capacity {
			errs = append(errs, fmt.Sprintf("plot %d holds %d vertices in a %d-vertex buffer", id, b.count, b.capacity))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("buffer integrity check failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Cleanup releases all OpenGL resources.
func (bs *BufferStore) Cleanup() {
	for id, b := range bs.buffers {
		b.cleanup()
		delete(bs.buffers, id)
	}
}

// Stats returns current buffer statistics.
func (bs *BufferStore) Stats() Stats {
	bs.stats.TotalPlots = len(bs.buffers)
	bs.stats.TotalVertices, bs.stats.TotalGPUBytes = 0, 0
	for _, b := range bs.buffers {
		bs.stats.TotalVertices += int64(b.count)
		bs.stats.TotalGPUBytes += int64(b.capacity * bytesPerVertex)
	}
	return bs.stats
}

// PrintStats logs per-plot buffer usage to the memory debug logger.
func (bs *BufferStore) PrintStats() {
	stats := bs.Stats()
	memoryLogger.Println("===== Buffer Store Stats =====")
	memoryLogger.Printf("%d plots, %s GPU (%s triangles, %s vertices), %d uploads, %d growth events, %d compactions (%.2fμs last)",
		stats.TotalPlots,
		formatNumber(stats.TotalGPUBytes),
		formatNumber(stats.TotalVertices/3),
		formatNumber(stats.TotalVertices),
		stats.Uploads,
		stats.GrowthEvents,
		stats.CompactionEvents,
		stats.LastCompactionTimeUs,
	)
	for _, id := range bs.ids() {
		b := bs.buffers[id]
		memoryLogger.Printf("  plot#%03d %s %.0f%% used (%s/%s vertices)",
			id, makeUtilizationBar(b.utilization(), 12), b.utilization()*100,
			formatNumber(int64(b.count)), formatNumber(int64(b.capacity)))
	}
	memoryLogger.Println("==============================")
}

func (bs *BufferStore) ids() []PlotID {
	ids := make([]PlotID, 0, len(bs.buffers))
	for id := range bs.buffers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// newBuffer creates a VAO/VBO pair with room for capacity vertices.
func newBuffer(capacity int) *buffer {
	b := &buffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	b.capacity = capacity

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*bytesPerVertex, nil, gl.DYNAMIC_DRAW)
	configureAttributes()
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

// configureAttributes describes the vertex layout of the bound VBO:
// attribute 0 is the position (vec2), attribute 1 the color (vec4).
func configureAttributes() {
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, bytesPerVertex, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, bytesPerVertex, gl.PtrOffset(8))
}

// resize moves the buffer to a new VBO of the given capacity, copying the
// first keep vertices across.
func (b *buffer) resize(capacity, keep int) {
	// CPU-side copy; reading back keeps us off glCopyBufferSubData.
	var kept []float32
	if keep > 0 {
		kept = make([]float32, keep*floatsPerVertex)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, len(kept)*4, gl.Ptr(kept))
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*bytesPerVertex, nil, gl.DYNAMIC_DRAW)
	if keep > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(kept)*4, gl.Ptr(kept))
	}

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	configureAttributes()
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.DeleteBuffers(1, &b.vbo)
	b.vbo = vbo
	b.capacity = capacity
}

func (b *buffer) cleanup() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}
