package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func constantSamples(n int, v complex128) []complex128 {
	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func TestClampWindow(t *testing.T) {
	for _, tc := range []struct {
		name               string
		start, end, count  int64
		wantStart, wantEnd int64
	}{
		{"inside", 10, 20, 100, 10, 20},
		{"pastEnd", 90, 120, 100, 90, 100},
		{"beforeStart", -10, 5, 100, 0, 5},
		{"fullyBelow", -20, -10, 100, 0, 0},
		{"fullyAbove", 200, 300, 100, 100, 100},
		{"inverted", 20, 10, 100, 20, 20},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, end := clampWindow(tc.start, tc.end, tc.count)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestMemorySourceGetClamps(t *testing.T) {
	s := NewMemorySource(constantSamples(100, 1), 48000)

	assert.Len(t, s.Get(0, 100), 100)
	assert.Len(t, s.Get(90, 150), 10)
	assert.Len(t, s.Get(-10, 10), 10)
	assert.Empty(t, s.Get(200, 300), "fully out of bounds yields an empty result, not an error")
	assert.Equal(t, int64(100), s.Count())
	assert.Equal(t, 48000.0, s.Rate())
}

func TestMemorySourceInvalidation(t *testing.T) {
	s := NewMemorySource(constantSamples(10, 1), 48000)

	first, second := 0, 0
	cancel := s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	s.SetSamples(constantSamples(20, 2))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, int64(20), s.Count())

	cancel()
	s.SetSamples(constantSamples(5, 3))
	assert.Equal(t, 1, first, "cancelled subscriber must not be notified")
	assert.Equal(t, 2, second)
}

func TestRangeLength(t *testing.T) {
	assert.Equal(t, int64(30), Range[int64]{10, 40}.Length())
	assert.True(t, Range[int64]{10, 40}.Contains(10))
	assert.False(t, Range[int64]{10, 40}.Contains(40))
	assert.Equal(t, int32(5), Range[int32]{-2, 3}.Length())
}
