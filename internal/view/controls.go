package view

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/golines/pkg/camera"
)

// Button is a pointer button
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Controls turns pointer events into camera commands. Commands are queued
// and take effect on the next camera Update.
type Controls struct {
	cam         *camera.Camera
	mapSize     float32
	yCorrection float32

	dragging bool
	last     mgl32.Vec2
	cursor   mgl32.Vec2
	home     Fit
}

// NewControls binds controls to cam
func NewControls(cam *camera.Camera, mapSize, yCorrection float32) *Controls {
	return &Controls{cam: cam, mapSize: mapSize, yCorrection: yCorrection}
}

// SetMapSize changes the pan limit, e.g. after a reload
func (c *Controls) SetMapSize(mapSize float32) { c.mapSize = mapSize }

// SetHome sets the placement restored by Home
func (c *Controls) SetHome(f Fit) { c.home = f }

// ButtonDown starts a drag with the left button; other buttons do nothing
func (c *Controls) ButtonDown(b Button, x, y float32) {
	if b != ButtonLeft {
		return
	}
	c.dragging = true
	c.last = mgl32.Vec2{x, y}
}

// ButtonUp ends a drag
func (c *Controls) ButtonUp(b Button) {
	if b == ButtonLeft {
		c.dragging = false
	}
}

// Move records the pointer position and pans while dragging. width and
// height are the window size in the same units as x and y.
func (c *Controls) Move(x, y, width, height float32) {
	cur := mgl32.Vec2{x, y}
	c.cursor = cur
	if !c.dragging || width <= 0 || height <= 0 {
		return
	}
	delta := camera.PanFromDrag(c.last, cur, c.cam.Zoom(), width, height, c.yCorrection)
	c.cam.Enqueue(camera.Pan{Delta: delta, MapSize: c.mapSize})
	c.last = cur
}

// Scroll zooms one wheel step per event
func (c *Controls) Scroll(dy float32) {
	if dy == 0 {
		return
	}
	c.cam.Enqueue(camera.Wheel{ScrollY: dy})
}

// Home moves the camera back to the home placement
func (c *Controls) Home() {
	c.cam.Enqueue(camera.MoveTo{Target: c.home.Center, MapSize: c.mapSize})
	c.cam.Enqueue(camera.ZoomTo{Zoom: c.home.Zoom})
}

// Dragging reports whether a pan is in progress
func (c *Controls) Dragging() bool { return c.dragging }

// Cursor returns the last pointer position in window units
func (c *Controls) Cursor() mgl32.Vec2 { return c.cursor }
