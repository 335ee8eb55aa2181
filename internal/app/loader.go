package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/camera"
	"github.com/philipparndt/golines/pkg/ingest"
	"github.com/philipparndt/golines/pkg/watcher"
)

// loadData reads a polyline file and applies the configured preprocessing
func loadData(path string, cfg *config.Config) (orb.MultiLineString, error) {
	mls, err := ingest.Load(path, ingest.Options{Column: cfg.Data.Column})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return view.Prepare(mls, cfg.Data), nil
}

// setupFileWatcher reloads the source file whenever it changes on disk
func (app *App) setupFileWatcher() error {
	fw, err := watcher.New(app.cfg.Watch.Debounce, app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changed string) {
		app.log.Info("file changed", "path", changed)
		app.reloadScene()
	}
	if err := fw.Watch(app.Scene.source, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", app.Scene.source, err)
	}

	fw.Start(app.ctx)
	app.FileWatch.fileWatcher = fw
	app.log.Info("watching file for changes", "path", app.Scene.source)
	return nil
}

// reloadScene loads the source file in the background. The result is picked
// up by applyLoadedScene on the main thread.
func (app *App) reloadScene() {
	fs := &app.FileWatch
	fs.mu.Lock()
	if fs.isLoading {
		// picked up again once the running load is applied
		fs.pending = true
		fs.mu.Unlock()
		return
	}
	fs.isLoading = true
	fs.loadingStartTime = time.Now()
	fs.mu.Unlock()

	go func() {
		mls, err := loadData(app.Scene.source, app.cfg)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.loaded = mls
		fs.loadErr = err
		fs.ready = true
	}()
}

// applyLoadedScene swaps in a reloaded scene. It keeps the camera where it is
// so an edit-and-save cycle does not reset the view. Must run on the main
// thread.
func (app *App) applyLoadedScene() {
	fs := &app.FileWatch
	fs.mu.Lock()
	if !fs.ready {
		fs.mu.Unlock()
		return
	}
	mls, err := fs.loaded, fs.loadErr
	elapsed := time.Since(fs.loadingStartTime)
	pending := fs.pending
	fs.loaded, fs.loadErr, fs.ready, fs.isLoading, fs.pending = nil, nil, false, false, false
	fs.mu.Unlock()

	if pending {
		defer app.reloadScene()
	}

	if err != nil {
		app.log.Error("reload failed, keeping previous data", "path", app.Scene.source, "err", err)
		return
	}

	prev := app.Scene.scene
	app.setScene(mls)

	// the scene origin moves with the data; shift the camera by the same
	// amount so the same world point stays under it
	if prev != nil && prev.Origin() != app.Scene.scene.Origin() {
		oldOrigin, newOrigin := prev.Origin(), app.Scene.scene.Origin()
		cam := app.Camera.camera
		delta := mgl32.Vec2{
			float32(oldOrigin[0] - newOrigin[0]),
			float32(oldOrigin[1] - newOrigin[1]),
		}
		cam.Apply(camera.MoveTo{Target: cam.DesiredPosition().Add(delta), MapSize: app.Camera.mapSize})
		cam.Snap()
	}

	app.log.Info("reloaded",
		"path", app.Scene.source,
		"segments", app.Scene.scene.Segments(),
		"elapsed", elapsed.Round(time.Millisecond))
}
