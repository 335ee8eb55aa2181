//go:build !glfw

package app

import (
	"context"
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/internal/view"
)

type raylibWindow struct {
	quit   bool
	cursor rl.Vector2
}

// openWindow creates the raylib window. raylib requests a GL 3.3 core
// context on desktop, which the OpenGL device draws into directly.
func openWindow(cfg config.WindowConfig, title string, log *slog.Logger) (window, error) {
	rl.SetTraceLogCallback(func(level int, msg string) {
		log.Log(context.Background(), raylibLevel(rl.TraceLogLevel(level)), msg, "source", "raylib")
	})
	rl.SetTraceLogLevel(rl.LogInfo)

	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi) // before InitWindow
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	if cfg.Samples > 0 {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("failed to create window")
	}
	rl.SetExitKey(rl.KeyEscape)
	log.Debug("window opened", "backend", "raylib", "width", cfg.Width, "height", cfg.Height)

	return &raylibWindow{cursor: rl.GetMousePosition()}, nil
}

func (w *raylibWindow) ShouldClose() bool {
	return w.quit || rl.WindowShouldClose()
}

func (w *raylibWindow) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *raylibWindow) FramebufferSize() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

func (w *raylibWindow) SetTitle(title string) {
	rl.SetWindowTitle(title)
}

var raylibButtons = []struct {
	rl   rl.MouseButton
	view view.Button
}{
	{rl.MouseButtonLeft, view.ButtonLeft},
	{rl.MouseButtonRight, view.ButtonRight},
	{rl.MouseButtonMiddle, view.ButtonMiddle},
}

func (w *raylibWindow) PollInput(h inputHandler) {
	pos := rl.GetMousePosition()
	if pos != w.cursor {
		width, height := w.Size()
		h.Move(pos.X, pos.Y, float32(width), float32(height))
		w.cursor = pos
	}

	for _, b := range raylibButtons {
		if rl.IsMouseButtonPressed(b.rl) {
			h.ButtonDown(b.view, pos.X, pos.Y)
		}
		if rl.IsMouseButtonReleased(b.rl) {
			h.ButtonUp(b.view)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		h.Scroll(wheel)
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyC) {
		w.quit = true
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		h.Home()
	}
}

func (w *raylibWindow) BeginFrame() { rl.BeginDrawing() }

// EndFrame swaps buffers and gathers the input of the next frame
func (w *raylibWindow) EndFrame() { rl.EndDrawing() }

func (w *raylibWindow) Close() { rl.CloseWindow() }

func raylibLevel(level rl.TraceLogLevel) slog.Level {
	switch {
	case level <= rl.LogInfo:
		return slog.LevelDebug
	case level == rl.LogWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
