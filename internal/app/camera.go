package app

import (
	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/camera"
)

// setupCamera places the camera on the data. With init_zoom 0 the zoom is
// fitted to the window; the first frames animate from start_zoom.
func (app *App) setupCamera() {
	cc := app.cfg.Camera
	app.Camera.home = app.homeView()

	initZoom := cc.InitZoom
	if initZoom == 0 {
		initZoom = app.Camera.home.Zoom
	}
	startZoom := cc.StartZoom
	if startZoom == 0 {
		startZoom = initZoom
	}

	cam := camera.New(initZoom, startZoom)
	cam.SetSmoothing(cc.ZoomSmoothing, cc.PositionSmoothing)
	cam.SetPosition(app.Camera.home.Center, app.Camera.mapSize)

	app.Camera.camera = cam
	app.Camera.controls = view.NewControls(cam, app.Camera.mapSize, cc.PanYCorrection)
	app.Camera.controls.SetHome(view.Fit{Center: app.Camera.home.Center, Zoom: initZoom})
}

// homeView fits the scene into the current window
func (app *App) homeView() view.Fit {
	width, height := app.window.Size()
	return view.FitBound(app.Scene.scene.Bound(), width, height, app.cfg.Camera.FitMargin, camera.InitZoom)
}

// resetCameraView animates back to the fitted view of the current window size
func (app *App) resetCameraView() {
	app.Camera.home = app.homeView()
	app.Camera.controls.SetHome(app.Camera.home)
	app.Camera.controls.Home()
}

// updateMapSize derives the pan limit from the scene unless configured
func (app *App) updateMapSize() {
	mapSize := app.cfg.Camera.MapSize
	if mapSize == 0 {
		mapSize = view.MapSize(app.Scene.scene.Bound())
	}
	app.Camera.mapSize = mapSize
	if app.Camera.controls != nil {
		app.Camera.controls.SetMapSize(mapSize)
	}
}
