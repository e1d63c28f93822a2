package memory

import (
	"fmt"
	"strings"
)

// vertexCount validates interleaved vertex data and returns its length in
// vertices.
func vertexCount(vertices []float32) (int, error) {
	if len(vertices) == 0 {
		return 0, fmt.Errorf("cannot upload empty vertex data")
	}
	if len(vertices)%floatsPerVertex != 0 {
		return 0, fmt.Errorf("vertex data must be multiple of %d floats (x,y,r,g,b,a), got %d", floatsPerVertex, len(vertices))
	}
	return len(vertices) / floatsPerVertex, nil
}

// capacityFor rounds a vertex count up to the next power of two, no smaller
// than minVertexCapacity.
func capacityFor(count int) (int, error) {
	capacity := minVertexCapacity
	for capacity < count {
		capacity *= 2
	}
	if capacity*bytesPerVertex > maxBufferBytes {
		return 0, fmt.Errorf("%d vertices exceed the %s buffer limit", count, formatNumber(maxBufferBytes))
	}
	return capacity, nil
}

// makeUtilizationBar creates a visual bar for utilization percentage.
func makeUtilizationBar(utilization float64, width int) string {
	if utilization < 0 {
		utilization = 0
	}
	if utilization > 1 {
		utilization = 1
	}

	filled := int(utilization * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// formatNumber formats large numbers with K/M suffixes for readability.
func formatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000.0)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000.0)
}
