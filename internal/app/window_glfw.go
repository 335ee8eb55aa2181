//go:build glfw

package app

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/internal/view"
)

type glfwWindow struct {
	win     *glfw.Window
	handler inputHandler
}

// openWindow creates the window and makes its GL 3.3 core context current
func openWindow(cfg config.WindowConfig, title string, log *slog.Logger) (window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	log.Debug("window opened", "backend", "glfw", "width", cfg.Width, "height", cfg.Height)

	w := &glfwWindow{win: win}
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetCursorPosCallback(w.onCursorPos)
	win.SetScrollCallback(w.onScroll)
	win.SetKeyCallback(w.onKey)
	return w, nil
}

func (w *glfwWindow) ShouldClose() bool { return w.win.ShouldClose() }

func (w *glfwWindow) Size() (int, int) { return w.win.GetSize() }

func (w *glfwWindow) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *glfwWindow) SetTitle(title string) { w.win.SetTitle(title) }

// PollInput runs the glfw callbacks, which forward to h
func (w *glfwWindow) PollInput(h inputHandler) {
	w.handler = h
	glfw.PollEvents()
}

func (w *glfwWindow) BeginFrame() {}

func (w *glfwWindow) EndFrame() { w.win.SwapBuffers() }

func (w *glfwWindow) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *glfwWindow) onMouseButton(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mapButton(button)
	if !ok || w.handler == nil {
		return
	}
	switch action {
	case glfw.Press:
		x, y := win.GetCursorPos()
		w.handler.ButtonDown(b, float32(x), float32(y))
	case glfw.Release:
		w.handler.ButtonUp(b)
	}
}

func (w *glfwWindow) onCursorPos(win *glfw.Window, x, y float64) {
	if w.handler == nil {
		return
	}
	width, height := win.GetSize()
	w.handler.Move(float32(x), float32(y), float32(width), float32(height))
}

func (w *glfwWindow) onScroll(_ *glfw.Window, _, dy float64) {
	if w.handler != nil {
		w.handler.Scroll(float32(dy))
	}
}

func (w *glfwWindow) onKey(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch {
	case key == glfw.KeyEscape:
		win.SetShouldClose(true)
	case key == glfw.KeyC && mods&glfw.ModControl != 0:
		win.SetShouldClose(true)
	case key == glfw.KeyHome && w.handler != nil:
		w.handler.Home()
	}
}

func mapButton(b glfw.MouseButton) (view.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return view.ButtonLeft, true
	case glfw.MouseButtonRight:
		return view.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return view.ButtonMiddle, true
	}
	return 0, false
}
