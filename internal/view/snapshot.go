package view

import (
	"fmt"
	"image"

	"github.com/philipparndt/golines/pkg/camera"
	"github.com/philipparndt/golines/pkg/render"
	"github.com/philipparndt/golines/pkg/viewer"
)

// Snapshot renders scene into a width x height image without a window. The
// camera is fitted to the scene and snapped so no animation is needed.
func Snapshot(scene *Scene, style Style, width, height int, margin float32) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}

	canvas := viewer.NewCanvas(width, height)
	r, err := render.New(canvas, max(scene.Segments(), 1))
	if err != nil {
		return nil, fmt.Errorf("failed to create software renderer: %w", err)
	}
	defer r.Close()

	fit := FitBound(scene.Bound(), width, height, margin, camera.InitZoom)
	cam := camera.New(fit.Zoom, fit.Zoom)
	cam.SetPosition(fit.Center, MapSize(scene.Bound()))
	cam.Snap()

	p := NewPainter(r, style)
	p.SetScene(scene)
	if err := p.Paint(cam, width, height, width, height); err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}
