package view

import (
	"github.com/philipparndt/golines/pkg/camera"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/render"
)

// Painter draws a scene with a renderer once per frame. The batch is only
// rebuilt when the scene or the stroke thickness changes.
type Painter struct {
	renderer  *render.Renderer
	style     Style
	scene     *Scene
	batch     *lines.Batch
	thickness float32
	dirty     bool
}

// NewPainter creates a painter drawing through r
func NewPainter(r *render.Renderer, style Style) *Painter {
	return &Painter{
		renderer: r,
		style:    style,
		batch:    r.NewBatch(),
		dirty:    true,
	}
}

// SetScene replaces the scene drawn from the next frame on
func (p *Painter) SetScene(s *Scene) {
	p.scene = s
	p.dirty = true
}

// Scene returns the current scene
func (p *Painter) Scene() *Scene { return p.scene }

// Thickness returns the stroke thickness of the last painted frame
func (p *Painter) Thickness() float32 { return p.thickness }

// Paint clears the screen and draws the scene. width and height are the
// window size used for the aspect ratio, fbWidth and fbHeight the
// framebuffer size in pixels.
func (p *Painter) Paint(cam *camera.Camera, width, height, fbWidth, fbHeight int) error {
	p.renderer.Viewport(fbWidth, fbHeight)
	p.renderer.ClearScreen(p.style.Background)
	p.renderer.ClearBuffers()
	if p.scene == nil {
		return nil
	}

	thickness := Thickness(p.style.Thickness, cam.Zoom())
	if p.dirty || thickness != p.thickness {
		p.batch.Clear()
		p.scene.Build(p.batch, thickness)
		p.thickness = thickness
		p.dirty = false
	}

	if err := p.renderer.Push(p.batch); err != nil {
		return err
	}
	p.renderer.Draw(cam, width, height)
	return nil
}
