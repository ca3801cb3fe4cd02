package main

// View holds the zoom configuration shared by every track.
type View struct {
	fftSize   int
	zoomLevel int
	powerMin  int
	powerMax  int
}

func NewView() *View {
	return &View{1024, 1, -100, 0}
}

// SamplesPerLine is the number of samples represented by one pixel column.
// The zoom level is clamped so the result never drops below one.
func (this *View) SamplesPerLine() int64 {
	zoom := this.zoomLevel
	if zoom < 1 {
		zoom = 1
	}
	if zoom > this.fftSize {
		zoom = this.fftSize
	}
	spl := this.fftSize / zoom
	if spl < 1 {
		spl = 1
	}
	return int64(spl)
}

func (this *View) setFFTAndZoom(size, zoom int) {
	if size < 1 {
		size = 1
	}
	if zoom < 1 {
		zoom = 1
	}
	if zoom > size {
		zoom = size
	}
	this.fftSize = size
	this.zoomLevel = zoom
}

// scrollBar mirrors the value/step state of a scroll bar without any widget
// behind it; values stay clamped into [min, max].
type scrollBar struct {
	value      int64
	min        int64
	max        int64
	singleStep int64
	pageStep   int64
}

func (this *scrollBar) setValue(v int64) {
	if v < this.min {
		v = this.min
	}
	if v > this.max {
		v = this.max
	}
	this.value = v
}

func (this *scrollBar) setMaximum(m int64) {
	if m < this.min {
		m = this.min
	}
	this.max = m
	this.setValue(this.value)
}
