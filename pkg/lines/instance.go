// Package lines describes line segments as GPU instances.
//
// Every segment is stored as its midpoint, its direction vector (to - from),
// the distance from the centerline to the stroke edge and a join tag that
// tells the shader which end caps to suppress.
package lines

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Join selects which rounded end caps of a segment are drawn
type Join uint8

const (
	// JoinAll draws both caps
	JoinAll Join = iota
	// JoinNoFirst suppresses the cap at the start point
	JoinNoFirst
	// JoinNoSecond suppresses the cap at the end point
	JoinNoSecond
	// JoinNone suppresses both caps
	JoinNone
)

// String returns the tag name
func (j Join) String() string {
	switch j {
	case JoinAll:
		return "all"
	case JoinNoFirst:
		return "no-first"
	case JoinNoSecond:
		return "no-second"
	case JoinNone:
		return "none"
	}
	return "unknown"
}

// DrawsFirst reports whether the cap at the start point is drawn
func (j Join) DrawsFirst() bool { return j == JoinAll || j == JoinNoSecond }

// DrawsSecond reports whether the cap at the end point is drawn
func (j Join) DrawsSecond() bool { return j == JoinAll || j == JoinNoFirst }

// Color is a linear RGB color with components in [0, 1]
type Color struct {
	R, G, B float32
}

// RGB builds a Color
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// ColorOf converts any image color, dropping alpha
func ColorOf(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
	}
}

// RGBA8 converts the color to an opaque 8-bit image color
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(mgl32.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(mgl32.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(mgl32.Clamp(c.B, 0, 1)*255 + 0.5),
		A: 255,
	}
}

// Instance is one rendered segment
type Instance struct {
	Join      Join
	Position  mgl32.Vec2 // midpoint
	Thickness float32    // distance from the centerline to the edge
	Direction mgl32.Vec2 // to - from
	Color     Color
}

// NewInstance builds the instance for the segment from -> to
func NewInstance(from, to mgl32.Vec2, thickness float32, c Color, join Join) Instance {
	return Instance{
		Join:      join,
		Position:  from.Add(to).Mul(0.5),
		Thickness: thickness,
		Direction: to.Sub(from),
		Color:     c,
	}
}

// FromScaleAngle builds an instance from the rotated-rectangle encoding:
// midpoint, segment length and rotation angle in radians
func FromScaleAngle(position mgl32.Vec2, length, angle, thickness float32, c Color, join Join) Instance {
	return Instance{
		Join:      join,
		Position:  position,
		Thickness: thickness,
		Direction: mgl32.Vec2{math32.Cos(angle), math32.Sin(angle)}.Mul(length),
		Color:     c,
	}
}

// From returns the start point
func (in Instance) From() mgl32.Vec2 {
	return in.Position.Sub(in.Direction.Mul(0.5))
}

// To returns the end point
func (in Instance) To() mgl32.Vec2 {
	return in.Position.Add(in.Direction.Mul(0.5))
}

// Length returns the segment length
func (in Instance) Length() float32 {
	return in.Direction.Len()
}

// Angle returns the segment rotation in radians
func (in Instance) Angle() float32 {
	return math32.Atan2(in.Direction.Y(), in.Direction.X())
}

// Scale returns the rectangle scale of the rotated-rectangle encoding
// (thickness, length)
func (in Instance) Scale() mgl32.Vec2 {
	return mgl32.Vec2{in.Thickness, in.Length()}
}

// Degenerate reports whether the segment has no length; the shader cannot
// orient such a segment
func (in Instance) Degenerate() bool {
	return in.Direction.LenSqr() == 0
}
