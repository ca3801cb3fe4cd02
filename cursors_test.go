package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func press(x int32) *MouseEvent   { return &MouseEvent{MousePress, sdl.Point{x, 10}, sdl.BUTTON_LEFT} }
func move(x int32) *MouseEvent    { return &MouseEvent{MouseMove, sdl.Point{x, 10}, 0} }
func release(x int32) *MouseEvent { return &MouseEvent{MouseRelease, sdl.Point{x, 10}, sdl.BUTTON_LEFT} }

func TestCursorsEdgeDrag(t *testing.T) {
	moves := 0
	c := NewCursors(func() { moves++ })
	c.SetSelection(Range[int32]{100, 200})

	assert.True(t, c.MouseEvent(press(102)), "press within the grab margin grabs the min edge")
	assert.True(t, c.MouseEvent(move(150)))
	assert.Equal(t, Range[int32]{150, 200}, c.Selection())
	assert.True(t, c.MouseEvent(release(150)))
	assert.Equal(t, 1, moves)

	assert.True(t, c.MouseEvent(press(199)))
	assert.True(t, c.MouseEvent(move(250)))
	assert.Equal(t, Range[int32]{150, 250}, c.Selection())
	assert.True(t, c.MouseEvent(release(250)))
}

func TestCursorsEdgesNeverCross(t *testing.T) {
	c := NewCursors(nil)
	c.SetSelection(Range[int32]{100, 200})

	c.MouseEvent(press(100))
	c.MouseEvent(move(300))
	assert.Equal(t, Range[int32]{199, 200}, c.Selection())
}

func TestCursorsBodyDrag(t *testing.T) {
	c := NewCursors(nil)
	c.SetSelection(Range[int32]{100, 200})

	assert.True(t, c.MouseEvent(press(140)))
	assert.True(t, c.MouseEvent(move(180)))
	assert.Equal(t, Range[int32]{140, 240}, c.Selection(), "body drag preserves the selection length")
	c.MouseEvent(release(180))
}

func TestCursorsOutsidePressNotConsumed(t *testing.T) {
	c := NewCursors(nil)
	c.SetSelection(Range[int32]{100, 200})

	assert.False(t, c.MouseEvent(press(50)))
	assert.False(t, c.MouseEvent(move(60)), "no drag in progress")
	assert.False(t, c.MouseEvent(release(60)))
	assert.Equal(t, Range[int32]{100, 200}, c.Selection())
}

func TestCursorsSetSelectionOrders(t *testing.T) {
	c := NewCursors(nil)
	c.SetSelection(Range[int32]{200, 100})
	assert.Equal(t, Range[int32]{100, 200}, c.Selection())
}

func TestCursorsSegmentsClamp(t *testing.T) {
	c := NewCursors(nil)
	c.SetSegments(0)
	assert.Equal(t, 1, c.segments)
	c.SetSegments(4)
	assert.Equal(t, 4, c.segments)
}
