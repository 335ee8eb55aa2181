// Package camera implements the 2D orthographic camera used by the viewer.
//
// The camera keeps two sets of values: the desired position and zoom that
// input handlers write, and the visible position and zoom that Update moves
// toward the desired ones every frame.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinZoom is the smallest zoom the camera accepts
	MinZoom float32 = 0.001
	// MaxZoom is the largest zoom the camera accepts
	MaxZoom float32 = 100000.0
	// InitZoom is the zoom the viewer animates to when nothing else is configured
	InitZoom float32 = 0.1

	// ZoomSmoothing is the share of the current zoom kept on every Update
	ZoomSmoothing float32 = 0.8
	// PositionSmoothing is the share of the current position kept on every Update
	PositionSmoothing float32 = 0.4

	// WheelStep is the zoom multiplier applied per wheel notch
	WheelStep float32 = 1.2
)

// Camera holds the logical view state of the 2D scene
type Camera struct {
	position        mgl32.Vec2
	desiredPosition mgl32.Vec2
	zoom            float32
	desiredZoom     float32

	zoomSmoothing     float32
	positionSmoothing float32

	queue []Command
}

// New creates a camera that starts at minZoom and animates toward initZoom
func New(initZoom, minZoom float32) *Camera {
	return &Camera{
		zoom:              clampZoom(minZoom),
		desiredZoom:       clampZoom(initZoom),
		zoomSmoothing:     ZoomSmoothing,
		positionSmoothing: PositionSmoothing,
	}
}

// Default returns a camera with the stock initial zoom
func Default() *Camera {
	return New(InitZoom, MinZoom)
}

// Position returns the currently visible camera center
func (c *Camera) Position() mgl32.Vec2 { return c.position }

// DesiredPosition returns the center the camera is moving toward
func (c *Camera) DesiredPosition() mgl32.Vec2 { return c.desiredPosition }

// Zoom returns the currently visible zoom
func (c *Camera) Zoom() float32 { return c.zoom }

// DesiredZoom returns the zoom the camera is moving toward
func (c *Camera) DesiredZoom() float32 { return c.desiredZoom }

// SetSmoothing changes the share of the current zoom and position kept per
// Update. Values outside [0, 1] are clamped.
func (c *Camera) SetSmoothing(zoomFactor, positionFactor float32) {
	c.zoomSmoothing = mgl32.Clamp(zoomFactor, 0, 1)
	c.positionSmoothing = mgl32.Clamp(positionFactor, 0, 1)
}

// SetPosition sets the desired center, clamped to [-mapSize, mapSize] per axis
func (c *Camera) SetPosition(target mgl32.Vec2, mapSize float32) {
	c.desiredPosition = target
	c.restrictPosition(mapSize)
}

// AddPosition moves the desired center by delta, clamped to [-mapSize, mapSize] per axis
func (c *Camera) AddPosition(delta mgl32.Vec2, mapSize float32) {
	c.desiredPosition = c.desiredPosition.Add(delta)
	c.restrictPosition(mapSize)
}

// SetZoom sets the desired zoom, clamped to [MinZoom, MaxZoom]
func (c *Camera) SetZoom(zoom float32) {
	c.desiredZoom = clampZoom(zoom)
}

// ZoomWheel scales the desired zoom by WheelStep for each wheel direction.
// Only the sign of scrollY matters.
func (c *Camera) ZoomWheel(scrollY float32) {
	c.desiredZoom = clampZoom(c.desiredZoom * math32.Pow(WheelStep, sign(scrollY)))
}

// Snap jumps the visible values to the desired ones
func (c *Camera) Snap() {
	c.zoom = c.desiredZoom
	c.position = c.desiredPosition
}

// Update applies queued commands and moves the visible zoom and position one
// smoothing step toward the desired values
func (c *Camera) Update() {
	c.drain()
	c.zoom = lerp(c.zoom, c.desiredZoom, c.zoomSmoothing)
	c.position = lerpVec(c.position, c.desiredPosition, c.positionSmoothing)
}

// ViewProjection builds projection * view for the given aspect ratio
// (height / width). The matrix is rebuilt on every call.
func (c *Camera) ViewProjection(aspectRatio float32) mgl32.Mat4 {
	w := 1 / c.zoom
	h := aspectRatio / c.zoom
	proj := mgl32.Ortho(-w/2, w/2, -h/2, h/2, 1, 0)

	eye := mgl32.Vec3{c.position.X(), c.position.Y(), 1}
	center := mgl32.Vec3{c.position.X(), c.position.Y(), 0}
	up := mgl32.Vec3{0, 1, 0}
	view := mgl32.LookAtV(eye, center, up)

	return proj.Mul4(view)
}

// Project converts a world point to screen pixels. Screen Y grows downward.
func (c *Camera) Project(point mgl32.Vec2, width, height float32) mgl32.Vec2 {
	vp := c.ViewProjection(height / width)
	projected := vp.Mul4x1(mgl32.Vec4{point.X(), point.Y(), 0, 1})
	return mgl32.Vec2{
		(projected.X() + 1) * width / 2,
		(1 - projected.Y()) * height / 2,
	}
}

// Unproject converts screen pixels back to a world point
func (c *Camera) Unproject(x, y, width, height float32) mgl32.Vec2 {
	vp := c.ViewProjection(height / width)
	if vp.Det() == 0 {
		// zoom is clamped above zero so the orthographic matrix is always invertible
		panic("camera: view-projection matrix is not invertible")
	}

	// after the orthographic projection coordinates live in the [-1, 1] cube
	sx := -1 + 2*x/width
	sy := 1 - 2*y/height
	world := vp.Inv().Mul4x1(mgl32.Vec4{sx, sy, 0, 1})
	return mgl32.Vec2{world.X(), world.Y()}
}

func (c *Camera) restrictPosition(mapSize float32) {
	c.desiredPosition = mgl32.Vec2{
		mgl32.Clamp(c.desiredPosition.X(), -mapSize, mapSize),
		mgl32.Clamp(c.desiredPosition.Y(), -mapSize, mapSize),
	}
}

func clampZoom(zoom float32) float32 {
	return mgl32.Clamp(zoom, MinZoom, MaxZoom)
}

// lerp keeps t of a and takes 1-t of b
func lerp(a, b, t float32) float32 {
	return a*t + b*(1-t)
}

func lerpVec(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Mul(t).Add(b.Mul(1 - t))
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
