package main

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

const barWidth = 1

const traceHeight = 100

// TraceTrack draws a min/max decimated trace of its source. A complex source
// gets two lanes, I and Q, drawn on top of each other; a real source gets
// one. Two trace tracks may share one upstream source; the read path never
// mutates shared state.
type TraceTrack[T Sample] struct {
	source SampleSource[T]
}

func NewTraceTrack[T Sample](source SampleSource[T]) *TraceTrack[T] {
	return &TraceTrack[T]{source}
}

func (this *TraceTrack[T]) Height() int32 {
	return traceHeight
}

func (this *TraceTrack[T]) PaintBack(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.FillRect(area.sdlRect())
}

func (this *TraceTrack[T]) PaintMid(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
	if area.w <= 0 || view.Length() <= 0 {
		return
	}
	spl := view.Length() / int64(area.w)
	if spl < 1 {
		spl = 1
	}
	lanes := traceLanes(this.source.Get(view.Min, view.Max))
	colors := [][3]uint8{{0, 255, 0}, {255, 64, 64}}
	for li, lane := range lanes {
		c := colors[li%len(colors)]
		renderer.SetDrawColor(c[0], c[1], c[2], 255)
		norm := maxAbs(lane)
		if norm == 0 {
			norm = 1
		}
		for x := int32(0); x < area.w/barWidth; x++ {
			l, u := decimate(lane, int64(x)*spl, spl)
			lh := int32(float64(area.h) / 2.0 * l / norm)
			uh := int32(float64(area.h) / 2.0 * u / norm)
			rect := &sdl.Rect{area.x + x*barWidth, area.y + area.h/2 - uh, barWidth, uh - lh + 1}
			renderer.FillRect(rect)
		}
	}
}

func (this *TraceTrack[T]) PaintFront(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
	renderer.SetDrawColor(90, 90, 90, 255)
	renderer.DrawLine(area.x, area.y+area.h/2, area.x+area.w-1, area.y+area.h/2)
}

func (this *TraceTrack[T]) MouseEvent(ev *MouseEvent) bool {
	return false
}

// traceLanes splits samples into drawable real-valued lanes.
func traceLanes[T Sample](samples []T) [][]float64 {
	switch s := any(samples).(type) {
	case []complex128:
		i := make([]float64, len(s))
		q := make([]float64, len(s))
		for k, v := range s {
			i[k] = real(v)
			q[k] = imag(v)
		}
		return [][]float64{i, q}
	case []float64:
		return [][]float64{s}
	}
	return nil
}

// decimate returns the extremes of one pixel column's samples.
func decimate(lane []float64, start, n int64) (l, u float64) {
	for i := start; i < start+n; i++ {
		if i < 0 || i >= int64(len(lane)) {
			break
		}
		if lane[i] > u {
			u = lane[i]
		}
		if lane[i] < l {
			l = lane[i]
		}
	}
	return l, u
}

func maxAbs(lane []float64) (mx float64) {
	for i := 0; i < len(lane); i++ {
		if math.Abs(lane[i]) > mx {
			mx = math.Abs(lane[i])
		}
	}
	return
}
