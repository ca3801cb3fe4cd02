package main

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"github.com/veandco/go-sdl2/sdl"
)

const maxSpectrogramHeight = 512

// SpectrogramTrack renders a time-frequency view of the main complex source:
// one Hann-windowed FFT per pixel column, DC centered, bin power in dB mapped
// onto [powerMin, powerMax]. The last computed column batch is kept so a
// repaint with unchanged scroll and configuration runs no FFTs.
type SpectrogramTrack struct {
	source    SampleSource[complex128]
	fftSize   int
	zoomLevel int
	powerMin  int
	powerMax  int

	cacheKey spectrogramKey
	cache    [][]float64
}

type spectrogramKey struct {
	start   int64
	columns int32
	fftSize int
	zoom    int
}

func NewSpectrogramTrack(source SampleSource[complex128]) *SpectrogramTrack {
	this := &SpectrogramTrack{
		source:    source,
		fftSize:   1024,
		zoomLevel: 1,
		powerMin:  -100,
		powerMax:  0,
	}
	source.Subscribe(this.invalidate)
	return this
}

func (this *SpectrogramTrack) invalidate() {
	this.cache = nil
	this.cacheKey = spectrogramKey{}
}

func (this *SpectrogramTrack) SetFFTSize(size int) {
	if size < 1 {
		size = 1
	}
	this.fftSize = size
	this.invalidate()
}

func (this *SpectrogramTrack) SetZoomLevel(zoom int) {
	if zoom < 1 {
		zoom = 1
	}
	this.zoomLevel = zoom
	this.invalidate()
}

func (this *SpectrogramTrack) SetPowerMin(power int) {
	this.powerMin = power
}

func (this *SpectrogramTrack) SetPowerMax(power int) {
	this.powerMax = power
}

func (this *SpectrogramTrack) samplesPerLine() int64 {
	zoom := this.zoomLevel
	if zoom > this.fftSize {
		zoom = this.fftSize
	}
	spl := this.fftSize / zoom
	if spl < 1 {
		spl = 1
	}
	return int64(spl)
}

func (this *SpectrogramTrack) Height() int32 {
	h := int32(this.fftSize)
	if h > maxSpectrogramHeight {
		h = maxSpectrogramHeight
	}
	return h
}

func (this *SpectrogramTrack) PaintBack(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.FillRect(area.sdlRect())
}

func (this *SpectrogramTrack) PaintMid(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
	cols := this.columns(view.Min, area.w)
	h := area.h
	for x := int32(0); x < area.w && x < int32(len(cols)); x++ {
		col := cols[x]
		for y := int32(0); y < h; y++ {
			bin := int(int64(y) * int64(len(col)) / int64(h))
			v := this.normalize(col[bin])
			renderer.SetDrawColor(uint8(v*80), uint8(v*255), uint8(v*80), 255)
			renderer.DrawPoint(area.x+x, area.y+h-1-y)
		}
	}
}

func (this *SpectrogramTrack) PaintFront(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
}

func (this *SpectrogramTrack) MouseEvent(ev *MouseEvent) bool {
	return false
}

// normalize maps a dB value onto [0, 1] between the configured power bounds.
func (this *SpectrogramTrack) normalize(db float64) float64 {
	span := float64(this.powerMax - this.powerMin)
	if span <= 0 {
		span = 1
	}
	v := (db - float64(this.powerMin)) / span
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// columns computes one shifted power spectrum per visible pixel column,
// reusing the previous batch when scroll and configuration are unchanged.
func (this *SpectrogramTrack) columns(start int64, width int32) [][]float64 {
	if width < 0 {
		width = 0
	}
	key := spectrogramKey{start, width, this.fftSize, this.zoomLevel}
	if this.cache != nil && key == this.cacheKey {
		return this.cache
	}
	spl := this.samplesPerLine()
	win := window.Hann(this.fftSize)
	half := this.fftSize / 2
	cols := make([][]float64, width)
	for x := range cols {
		at := start + int64(x)*spl
		samples := this.source.Get(at, at+int64(this.fftSize))
		buf := make([]complex128, this.fftSize)
		for i := 0; i < len(samples); i++ {
			buf[i] = samples[i] * complex(win[i], 0)
		}
		spec := fft.FFT(buf)
		col := make([]float64, this.fftSize)
		for i := range spec {
			p := real(spec[i])*real(spec[i]) + imag(spec[i])*imag(spec[i])
			col[(i+half)%this.fftSize] = 10 * math.Log10(p/float64(this.fftSize)+1e-20)
		}
		cols[x] = col
	}
	this.cacheKey = key
	this.cache = cols
	return cols
}
