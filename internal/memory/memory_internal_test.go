package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexCount(t *testing.T) {
	_, err := vertexCount(nil)
	require.Error(t, err)

	_, err = vertexCount(make([]float32, 7))
	require.Error(t, err)

	n, err := vertexCount(make([]float32, 18))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCapacityFor(t *testing.T) {
	for _, tc := range []struct {
		count, expected int
	}{
		{1, 1024},
		{1024, 1024},
		{1025, 2048},
		{5000, 8192},
	} {
		capacity, err := capacityFor(tc.count)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, capacity, "count=%d", tc.count)
	}

	_, err := capacityFor(maxBufferBytes/bytesPerVertex + 1)
	require.Error(t, err)
}

func TestCompactionCandidates(t *testing.T) {
	buffers := map[PlotID]*buffer{
		1: {capacity: 4096, count: 3000}, // dense
		2: {capacity: 4096, count: 600},  // sparse, shrinks to 1024
		3: {capacity: 8192, count: 100},  // sparsest
		4: {capacity: 1024, count: 10},   // sparse but already minimal
	}
	assert.Equal(t, []PlotID{3, 2}, compactionCandidates(buffers))
	assert.Empty(t, compactionCandidates(map[PlotID]*buffer{}))
}

func TestMakeUtilizationBar(t *testing.T) {
	assert.Equal(t, "██░░", makeUtilizationBar(0.5, 4))
	assert.Equal(t, "░░░░", makeUtilizationBar(-1, 4))
	assert.Equal(t, "████", makeUtilizationBar(2, 4))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1.5K", formatNumber(1500))
	assert.Equal(t, "2.0M", formatNumber(2000000))
}
