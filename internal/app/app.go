// Package app runs the interactive viewer: a window with an OpenGL context,
// pointer and keyboard input, and the per-frame update and draw.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/render"
)

func init() {
	// window and GL calls must come from the main thread
	runtime.LockOSThread()
}

// Options selects what the viewer shows
type Options struct {
	Config *config.Config
	Path   string              // file to show; reloaded on change when watching
	Data   orb.MultiLineString // shown when Path is empty
	Log    *slog.Logger
}

// App is one viewer session. It owns the window, the renderer and the
// camera, and is only touched from the main thread except for the reload
// slot in FileWatch.
type App struct {
	cfg    *config.Config
	log    *slog.Logger
	ctx    context.Context
	window window
	style  view.Style
	rng    *rand.Rand

	renderer *render.Renderer
	painter  *view.Painter

	Camera    CameraState
	Scene     SceneData
	FileWatch FileWatchState
	UI        UIState
}

// Run opens the window and blocks until it is closed
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	render.SetLogger(log)

	app := &App{
		cfg:   cfg,
		log:   log,
		style: view.StyleFrom(cfg.Style),
		rng:   rand.New(rand.NewPCG(1, 2)),
		Scene: SceneData{source: opts.Path, data: opts.Data},
		UI:    UIState{baseTitle: cfg.Window.Title},
	}

	if opts.Path != "" {
		mls, err := loadData(opts.Path, cfg)
		if err != nil {
			return err
		}
		app.Scene.data = mls
		app.UI.baseTitle = fmt.Sprintf("%s - %s", cfg.Window.Title, opts.Path)
	}
	if len(app.Scene.data) == 0 {
		return errors.New("nothing to show: no polylines")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.ctx = ctx

	win, err := openWindow(cfg.Window, app.UI.baseTitle, log)
	if err != nil {
		return err
	}
	app.window = win
	defer win.Close()

	if err := app.setupRenderer(); err != nil {
		return err
	}
	defer app.renderer.Close()

	app.setScene(app.Scene.data)
	app.setupCamera()

	if cfg.Watch.Enabled && opts.Path != "" {
		if err := app.setupFileWatcher(); err != nil {
			log.Warn("auto-reload not available", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.loop()
	return nil
}

// setScene builds the drawable scene from polylines
func (app *App) setScene(mls orb.MultiLineString) {
	scene := view.NewScene(mls, view.SceneOptions{
		Color:        app.style.Line,
		RandomColors: app.style.RandomColors,
		Rand:         app.rng,
		MaxSegments:  app.renderer.Cap(),
	})
	if n := scene.Truncated(); n > 0 {
		app.log.Warn("data exceeds renderer capacity, segments dropped",
			"capacity", app.renderer.Cap(), "dropped", n)
	}
	app.log.Debug("scene built",
		"polylines", scene.Polylines(),
		"segments", scene.Segments())

	app.Scene.data = mls
	app.Scene.scene = scene
	app.painter.SetScene(scene)
	app.updateMapSize()
}

// loop is the frame loop: apply reloads, advance the camera, draw
func (app *App) loop() {
	for !app.window.ShouldClose() {
		if app.ctx.Err() != nil {
			break
		}

		app.window.PollInput(app.input())
		app.applyLoadedScene()
		app.Camera.camera.Update()

		app.window.BeginFrame()
		width, height := app.window.Size()
		fbWidth, fbHeight := app.window.FramebufferSize()
		if err := app.painter.Paint(app.Camera.camera, width, height, fbWidth, fbHeight); err != nil {
			if !app.UI.overflowShown {
				app.log.Error("frame not drawn", "err", err)
				app.UI.overflowShown = true
			}
		}
		app.updateTitle()
		app.window.EndFrame()
	}
}
