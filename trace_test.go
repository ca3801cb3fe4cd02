package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLanes(t *testing.T) {
	lanes := traceLanes([]complex128{complex(1, -2), complex(3, -4)})
	require.Len(t, lanes, 2)
	assert.Equal(t, []float64{1, 3}, lanes[0])
	assert.Equal(t, []float64{-2, -4}, lanes[1])

	lanes = traceLanes([]float64{5, 6})
	require.Len(t, lanes, 1)
	assert.Equal(t, []float64{5, 6}, lanes[0])
}

func TestDecimate(t *testing.T) {
	lane := []float64{0, -3, 2, 1, -1}

	l, u := decimate(lane, 1, 3)
	assert.Equal(t, -3.0, l)
	assert.Equal(t, 2.0, u)

	// Columns past the end of the lane are empty.
	l, u = decimate(lane, 10, 3)
	assert.Equal(t, 0.0, l)
	assert.Equal(t, 0.0, u)
}

func TestMaxAbs(t *testing.T) {
	assert.Equal(t, 7.0, maxAbs([]float64{1, -7, 3}))
	assert.Equal(t, 0.0, maxAbs(nil))
}

func TestExportChart(t *testing.T) {
	name := filepath.Join(t.TempDir(), "demod.html")
	source := NewMemorySource([]float64{0, 0.5, 1, 0.5, 0}, 1e6)

	require.NoError(t, exportChart(name, source, Range[int64]{0, 5}))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
