package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// Pixels within which a press grabs a selection edge instead of the body.
const cursorGrabMargin = 5

type dragMode int

const (
	dragNone dragMode = iota
	dragMinEdge
	dragMaxEdge
	dragBody
)

// Cursors is the selection overlay. It works purely in pixel space; the
// viewer converts its selection to sample space whenever it moves, so the
// sample-space selection survives rescaling.
type Cursors struct {
	selection  Range[int32]
	segments   int
	drag       dragMode
	dragOffset int32
	moved      func()
}

func NewCursors(moved func()) *Cursors {
	return &Cursors{segments: 1, moved: moved}
}

func (this *Cursors) Selection() Range[int32] {
	return this.selection
}

func (this *Cursors) SetSelection(r Range[int32]) {
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	this.selection = r
}

// SetSegments keeps the selection bounds and changes how many equal
// sub-segments are drawn inside it.
func (this *Cursors) SetSegments(n int) {
	if n < 1 {
		n = 1
	}
	this.segments = n
}

func (this *Cursors) MouseEvent(ev *MouseEvent) bool {
	switch ev.Type {
	case MousePress:
		x := ev.Pos.X
		switch {
		case abs32(x-this.selection.Min) <= cursorGrabMargin:
			this.drag = dragMinEdge
		case abs32(x-this.selection.Max) <= cursorGrabMargin:
			this.drag = dragMaxEdge
		case x > this.selection.Min && x < this.selection.Max:
			this.drag = dragBody
			this.dragOffset = x - this.selection.Min
		default:
			return false
		}
		log.Tracef("Cursor drag started: %v at x=%v", this.drag, x)
		return true
	case MouseMove:
		if this.drag == dragNone {
			return false
		}
		x := ev.Pos.X
		switch this.drag {
		case dragMinEdge:
			if x >= this.selection.Max {
				x = this.selection.Max - 1
			}
			this.selection.Min = x
		case dragMaxEdge:
			if x <= this.selection.Min {
				x = this.selection.Min + 1
			}
			this.selection.Max = x
		case dragBody:
			length := this.selection.Length()
			this.selection.Min = x - this.dragOffset
			this.selection.Max = this.selection.Min + length
		}
		if this.moved != nil {
			this.moved()
		}
		return true
	case MouseRelease:
		if this.drag == dragNone {
			return false
		}
		this.drag = dragNone
		return true
	}
	return false
}

func (this *Cursors) PaintFront(renderer *sdl.Renderer, area AreaRect, view Range[int64]) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(202, 233, 245, 80)
	renderer.FillRect(&sdl.Rect{area.x + this.selection.Min, area.y, this.selection.Length(), area.h})
	renderer.SetDrawColor(255, 255, 255, 255)
	renderer.DrawLine(area.x+this.selection.Min, area.y, area.x+this.selection.Min, area.y+area.h-1)
	renderer.DrawLine(area.x+this.selection.Max, area.y, area.x+this.selection.Max, area.y+area.h-1)
	renderer.SetDrawColor(255, 255, 255, 160)
	for i := 1; i < this.segments; i++ {
		x := area.x + this.selection.Min + int32(int64(this.selection.Length())*int64(i)/int64(this.segments))
		renderer.DrawLine(x, area.y, x, area.y+area.h-1)
	}
}
