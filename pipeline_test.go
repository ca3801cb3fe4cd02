package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledSourceConstant(t *testing.T) {
	upstream := NewMemorySource(constantSamples(1000, 3), 1e6)
	scaled := NewScaledSource(upstream, 20)

	out := scaled.Get(100, 200)
	require.Len(t, out, 100)
	for _, v := range out {
		assert.InDelta(t, 60, real(v), 1e-9)
		assert.InDelta(t, 0, imag(v), 1e-9)
	}
}

func TestPipelineForwardsCountAndRate(t *testing.T) {
	upstream := NewMemorySource(constantSamples(12345, 1), 250000)
	demod := NewQuadDemodSource(upstream, 5, false)

	assert.Equal(t, int64(12345), demod.Count())
	assert.Equal(t, 250000.0, demod.Rate())
}

func TestPipelineClamping(t *testing.T) {
	upstream := NewMemorySource(constantSamples(100, 1), 1e6)
	scaled := NewScaledSource(upstream, 2)

	assert.Len(t, scaled.Get(90, 150), 10)
	assert.Len(t, scaled.Get(-10, 10), 10)
	assert.Empty(t, scaled.Get(200, 300))
	assert.Empty(t, scaled.Get(-30, -20))
}

func TestQuadDemodWindowedMatchesFull(t *testing.T) {
	// A windowed read must agree with the same slice of a full read: the
	// lead-in sample pulled before the window start removes the transient.
	upstream := NewMemorySource(tone(2000, 0.3), 1e6)
	demod := NewQuadDemodSource(upstream, 5, false)

	full := demod.Get(0, 2000)
	window := demod.Get(500, 700)
	require.Len(t, window, 200)
	for i, v := range window {
		assert.InDelta(t, full[500+i], v, 1e-9)
	}
}

func TestQuadDemodWindowAtOrigin(t *testing.T) {
	upstream := NewMemorySource(tone(100, 0.2), 1e6)
	demod := NewQuadDemodSource(upstream, 5, false)

	out := demod.Get(0, 100)
	require.Len(t, out, 100)
	// No sample exists before index zero, so the first output is transient.
	for i := 1; i < len(out); i++ {
		assert.InDelta(t, 5*0.2, out[i], 1e-9)
	}
}

func TestFilteredDemodLeadIn(t *testing.T) {
	upstream := NewMemorySource(tone(4000, 0.05), 1e6)
	demod := NewQuadDemodSource(upstream, 5, true)

	full := demod.Get(0, 4000)
	window := demod.Get(1000, 1200)
	require.Len(t, window, 200)
	for i, v := range window {
		assert.InDelta(t, full[1000+i], v, 1e-6)
	}
}

func TestPipelineInvalidationPropagates(t *testing.T) {
	upstream := NewMemorySource(constantSamples(10, 1), 1e6)
	scaled := NewScaledSource(upstream, 2)

	notified := 0
	scaled.Subscribe(func() { notified++ })
	upstream.SetSamples(constantSamples(20, 1))
	assert.Equal(t, 1, notified)
	assert.Equal(t, int64(20), scaled.Count())
}
