package lines

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AABorder is the antialiasing border in clip-space units. It is divided by
// the projection's vertical scale so the border stays a fixed number of
// screen pixels at every zoom.
const AABorder float32 = 0.00445

// capZone is the template-space distance along the segment past which a
// fragment belongs to an end cap
const capZone float32 = 0.5

// The quad every instance is stretched from spans [-QuadHalfWidth,
// QuadHalfWidth] times the thickness across the segment and [-QuadHalfLength,
// QuadHalfLength] times the direction along it. Nothing outside is rasterized,
// so a cap longer than half the segment is cut off.
const (
	QuadHalfWidth  float32 = 1.1
	QuadHalfLength float32 = 1
)

// BorderWidth returns the antialiasing border in world units for the
// view-projection matrix vp
func BorderWidth(vp mgl32.Mat4) float32 {
	return AABorder / vp.At(1, 1)
}

// SegmentDistance returns the distance from p to the segment a-b
func SegmentDistance(p, a, b mgl32.Vec2) float32 {
	ba := b.Sub(a)
	pa := p.Sub(a)
	denom := ba.Dot(ba)
	if denom == 0 {
		return pa.Len()
	}
	h := mgl32.Clamp(pa.Dot(ba)/denom, 0, 1)
	return pa.Sub(ba.Mul(h)).Len()
}

// LocalX returns the offset of p from the centerline in units of the
// thickness
func LocalX(in Instance, p mgl32.Vec2) float32 {
	length := in.Direction.Len()
	if length == 0 || in.Thickness == 0 {
		return 0
	}
	n := mgl32.Vec2{-in.Direction.Y(), in.Direction.X()}.Mul(1 / length)
	return p.Sub(in.Position).Dot(n) / in.Thickness
}

// Covered reports whether p lies inside the quad of in
func Covered(in Instance, p mgl32.Vec2) bool {
	if in.Degenerate() {
		return false
	}
	y := LocalY(in, p)
	x := LocalX(in, p)
	return y >= -QuadHalfLength && y <= QuadHalfLength &&
		x >= -QuadHalfWidth && x <= QuadHalfWidth
}

// LocalY returns the coordinate of p along the segment in quad template
// space: -0.5 at the start point, 0.5 at the end point
func LocalY(in Instance, p mgl32.Vec2) float32 {
	denom := in.Direction.Dot(in.Direction)
	if denom == 0 {
		return 0
	}
	return p.Sub(in.Position).Dot(in.Direction) / denom
}

// Shade returns the coverage (alpha) of instance in at world point p. It is
// the CPU reference of the line pipeline: quad coverage, the signed distance
// to the capsule around the segment, a smooth falloff over border world
// units, and cap suppression driven by the join tag.
func Shade(in Instance, p mgl32.Vec2, border float32) float32 {
	if !Covered(in, p) {
		return 0
	}
	a := in.From()
	b := in.To()
	d := SegmentDistance(p, a, b) - in.Thickness
	if d >= 0 {
		return 0
	}

	y := LocalY(in, p)
	if !in.Join.DrawsFirst() && y < -capZone {
		return 0
	}
	if !in.Join.DrawsSecond() && y > capZone {
		return 0
	}

	if d > -border {
		return 1 - smoothstep(-border, 0, d)
	}
	return 1
}

// smoothstep matches the GLSL builtin
func smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
