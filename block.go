package main

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// Block is one stage of a fixed processing chain. Run receives a complete
// input window and returns an output window of the same length; entries
// before LeadIn() may carry transient values, the pipeline source trims them.
type Block[T Sample] interface {
	Run(in []T) []T
	LeadIn() int64
}

// DrainBlock terminates a chain and may change the sample type.
type DrainBlock[In, Out Sample] interface {
	Run(in []In) []Out
	LeadIn() int64
}

// MultiplyConst scales every sample by a constant complex gain.
type MultiplyConst struct {
	k complex128
}

func (this *MultiplyConst) Run(in []complex128) []complex128 {
	out := make([]complex128, len(in))
	for i := 0; i < len(in); i++ {
		out[i] = in[i] * this.k
	}
	return out
}

func (this *MultiplyConst) LeadIn() int64 {
	return 0
}

// QuadratureDemod differentiates the phase of the complex input:
// out[i] = gain * arg(in[i] * conj(in[i-1])). Memory depth is one sample.
type QuadratureDemod struct {
	gain float64
}

func (this *QuadratureDemod) Run(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i := 1; i < len(in); i++ {
		out[i] = this.gain * cmplx.Phase(in[i]*cmplx.Conj(in[i-1]))
	}
	return out
}

func (this *QuadratureDemod) LeadIn() int64 {
	return 1
}

// FIRFilter is a windowed-sinc low-pass over complex samples, applied by FFT
// convolution. The alignment is causal: out[i] depends only on in[i-m..i], so
// a lead-in of the kernel length is enough context for any window.
type FIRFilter struct {
	kernel []complex128
}

// NewFIRFilter builds a low-pass of order m with normalized cutoff fc
// (cycles per sample, 0 < fc < 0.5).
func NewFIRFilter(m int, fc float64) *FIRFilter {
	return &FIRFilter{dsputils.ToComplex(lowPassKernel(m, fc))}
}

func (this *FIRFilter) Run(in []complex128) []complex128 {
	n := len(in) + len(this.kernel)
	a := dsputils.ZeroPad(in, n)
	b := dsputils.ZeroPad(this.kernel, n)
	conv := fft.Convolve(a, b)
	out := make([]complex128, len(in))
	copy(out, conv[:len(in)])
	return out
}

func (this *FIRFilter) LeadIn() int64 {
	return int64(len(this.kernel))
}

// lowPassKernel is a Blackman-windowed sinc kernel of order m, normalized to
// unity gain at DC.
func lowPassKernel(m int, fc float64) []float64 {
	h := make([]float64, m+1)
	for i := 0; i <= m; i++ {
		iF := float64(i)
		mF := float64(m)
		mF2 := float64(m / 2)
		w := 0.42 - 0.5*math.Cos(2*math.Pi*iF/mF) + 0.08*math.Cos(4*math.Pi*iF/mF)
		if i == m/2 {
			h[i] = w * 2 * math.Pi * fc
			continue
		}
		h[i] = w * math.Sin(2*math.Pi*fc*(iF-mF2)) / (iF - mF2)
	}
	var sum float64
	for i := 0; i <= m; i++ {
		sum += h[i]
	}
	for i := 0; i <= m; i++ {
		h[i] /= sum
	}
	return h
}

// identityDrain passes samples through unchanged; it terminates chains whose
// output type equals their input type.
type identityDrain[T Sample] struct{}

func (identityDrain[T]) Run(in []T) []T {
	return in
}

func (identityDrain[T]) LeadIn() int64 {
	return 0
}
