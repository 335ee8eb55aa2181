package camera

import "github.com/go-gl/mathgl/mgl32"

// DefaultPanYCorrection scales the vertical drag delta. The value comes from
// tuning the pan feel on wide windows and is exposed through the config.
const DefaultPanYCorrection float32 = 0.5

// PanFromDrag converts a pointer drag from prev to cur (screen pixels) into a
// world-space delta for AddPosition at the given zoom
func PanFromDrag(prev, cur mgl32.Vec2, zoom, width, height, yCorrection float32) mgl32.Vec2 {
	delta := cur.Sub(prev).Mul(1 / zoom)
	return mgl32.Vec2{
		-delta.X() / width,
		delta.Y() / height * yCorrection,
	}
}
