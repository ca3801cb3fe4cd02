package main

// PipelineSource presents a fixed processing chain over an upstream source as
// a sample source of the chain's output type. The chain is an ordered list of
// same-type stages plus one drain that fixes the output type; it is built
// once at construction and never rewired. Every Get supplies its own complete
// input window, so there is no filter state carried between calls and a seek
// behaves exactly like a scroll.
type PipelineSource[In, Out Sample] struct {
	upstream SampleSource[In]
	stages   []Block[In]
	drain    DrainBlock[In, Out]
}

func NewPipelineSource[In, Out Sample](upstream SampleSource[In], stages []Block[In], drain DrainBlock[In, Out]) *PipelineSource[In, Out] {
	return &PipelineSource[In, Out]{upstream, stages, drain}
}

func (this *PipelineSource[In, Out]) Count() int64 {
	return this.upstream.Count()
}

// Rate is forwarded unchanged; none of the chains used here resample.
func (this *PipelineSource[In, Out]) Rate() float64 {
	return this.upstream.Rate()
}

func (this *PipelineSource[In, Out]) Subscribe(fn func()) (cancel func()) {
	return this.upstream.Subscribe(fn)
}

func (this *PipelineSource[In, Out]) leadIn() int64 {
	n := this.drain.LeadIn()
	for _, b := range this.stages {
		n += b.LeadIn()
	}
	return n
}

// Get runs the chain over the requested window. The window is clamped to the
// upstream bounds, then extended left by the chain's total lead-in so blocks
// with memory see the samples they need; the lead-in is trimmed from the
// output. Overlapping requests recompute the overlap.
func (this *PipelineSource[In, Out]) Get(start, end int64) []Out {
	start, end = clampWindow(start, end, this.Count())
	if start == end {
		return nil
	}
	feed := start - this.leadIn()
	if feed < 0 {
		feed = 0
	}
	in := this.upstream.Get(feed, end)
	for _, b := range this.stages {
		in = b.Run(in)
	}
	out := this.drain.Run(in)
	return out[start-feed:]
}

// NewScaledSource amplifies an I/Q stream for display: feed → multiply →
// drain, complex in and out.
func NewScaledSource(upstream SampleSource[complex128], gain complex128) *PipelineSource[complex128, complex128] {
	return NewPipelineSource[complex128, complex128](
		upstream,
		[]Block[complex128]{&MultiplyConst{gain}},
		identityDrain[complex128]{},
	)
}

// NewQuadDemodSource converts an I/Q stream to a real demodulated trace:
// feed → [low-pass] → quadrature demod drain.
func NewQuadDemodSource(upstream SampleSource[complex128], gain float64, filtered bool) *PipelineSource[complex128, float64] {
	stages := []Block[complex128]{}
	if filtered {
		stages = append(stages, NewFIRFilter(64, 0.1))
	}
	return NewPipelineSource[complex128, float64](upstream, stages, &QuadratureDemod{gain})
}
