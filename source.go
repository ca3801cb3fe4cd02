package main

import (
	"github.com/rs/xid"
)

type Sample interface {
	~complex128 | ~float64
}

// SampleSource provides windowed access to an indexed sample sequence.
// Get clamps the requested window to [0, Count()) and returns whatever valid
// sub-range exists, possibly nothing. Readers never mutate a source; whoever
// loads data into one must go through an invalidate-and-notify path so that
// subscribers can recompute scroll and selection bounds.
type SampleSource[T Sample] interface {
	Count() int64
	Rate() float64
	Get(start, end int64) []T
	Subscribe(fn func()) (cancel func())
}

// MemorySource holds a whole recording in memory. Loaders fill one at
// startup; tests build them directly.
type MemorySource[T Sample] struct {
	samples   []T
	rate      float64
	listeners map[string]func()
}

func NewMemorySource[T Sample](samples []T, rate float64) *MemorySource[T] {
	return &MemorySource[T]{samples, rate, make(map[string]func())}
}

func (this *MemorySource[T]) Count() int64 {
	return int64(len(this.samples))
}

func (this *MemorySource[T]) Rate() float64 {
	return this.rate
}

func (this *MemorySource[T]) Get(start, end int64) []T {
	start, end = clampWindow(start, end, this.Count())
	return this.samples[start:end]
}

func (this *MemorySource[T]) Subscribe(fn func()) (cancel func()) {
	id := xid.New().String()
	this.listeners[id] = fn
	return func() {
		delete(this.listeners, id)
	}
}

// SetSamples replaces the backing data and notifies every subscriber.
func (this *MemorySource[T]) SetSamples(samples []T) {
	this.samples = samples
	for _, fn := range this.listeners {
		fn()
	}
}
