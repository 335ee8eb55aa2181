package view

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/pkg/camera"
)

// Fit is a camera placement that shows a bounding box
type Fit struct {
	Center mgl32.Vec2
	Zoom   float32
}

// FitBound returns the placement showing b on a width x height screen,
// leaving margin (a share of the screen) empty on each side. A bound without
// extent keeps fallbackZoom.
func FitBound(b orb.Bound, width, height int, margin, fallbackZoom float32) Fit {
	center := b.Center()
	fit := Fit{
		Center: mgl32.Vec2{float32(center[0]), float32(center[1])},
		Zoom:   fallbackZoom,
	}
	if width <= 0 || height <= 0 {
		return fit
	}

	usable := 1 - 2*margin
	aspect := float32(height) / float32(width)
	bw := float32(b.Max[0] - b.Min[0])
	bh := float32(b.Max[1] - b.Min[1])

	// the view spans 1/zoom horizontally and aspect/zoom vertically
	zoom := float32(0)
	if bw > 0 {
		zoom = usable / bw
	}
	if bh > 0 {
		zh := usable * aspect / bh
		if zoom == 0 || zh < zoom {
			zoom = zh
		}
	}
	if zoom > 0 {
		fit.Zoom = mgl32.Clamp(zoom, camera.MinZoom, camera.MaxZoom)
	}
	return fit
}

// MapSize returns the pan limit for a scene bound: the camera may move one
// extent past the data on each axis
func MapSize(b orb.Bound) float32 {
	extent := max(
		abs64(b.Min[0]), abs64(b.Max[0]),
		abs64(b.Min[1]), abs64(b.Max[1]),
	)
	return float32(max(2*extent, 1))
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
