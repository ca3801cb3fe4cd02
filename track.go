package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

type AreaRect struct {
	// upper left corner coordinates and width and height
	x, y, w, h int32
}

func (a AreaRect) sdlRect() *sdl.Rect {
	return &sdl.Rect{a.x, a.y, a.w, a.h}
}

type MouseEventType int

const (
	MousePress MouseEventType = iota
	MouseMove
	MouseRelease
)

// MouseEvent is a pointer event, with the position already translated into
// the receiver's local coordinate space by the dispatcher.
type MouseEvent struct {
	Type   MouseEventType
	Pos    sdl.Point
	Button uint8
}

// Track is one horizontally stacked lane bound to a sample source. Painting
// happens in three ordered passes over the whole track list, so the
// foreground of one track is never papered over by the background of the
// next. Each pass hands every track the same area and visible sample range;
// how the range maps onto the area's width is the track's business.
// MouseEvent returns true when the track consumed the event, which stops
// further dispatch.
type Track interface {
	Height() int32
	PaintBack(renderer *sdl.Renderer, area AreaRect, view Range[int64])
	PaintMid(renderer *sdl.Renderer, area AreaRect, view Range[int64])
	PaintFront(renderer *sdl.Renderer, area AreaRect, view Range[int64])
	MouseEvent(ev *MouseEvent) bool
}
