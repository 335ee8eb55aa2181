package app

import (
	"fmt"

	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/render"
	"github.com/philipparndt/golines/pkg/render/opengl"
)

// setupRenderer creates the GL device and the instanced line renderer. The
// GL context must be current.
func (app *App) setupRenderer() error {
	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r, err := render.New(dev, app.cfg.Renderer.Capacity)
	if err != nil {
		dev.Release()
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	app.renderer = r
	app.painter = view.NewPainter(r, app.style)
	app.log.Info("renderer ready", "capacity", r.Cap())
	return nil
}
