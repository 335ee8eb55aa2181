package app

import "github.com/philipparndt/golines/internal/view"

// input routes window events to the camera controls. Handlers only queue
// camera commands; the camera changes on the next Update.
type input struct {
	*view.Controls
	app *App
}

// Home refits the data to the current window before animating there
func (in input) Home() {
	in.app.resetCameraView()
}

func (app *App) input() inputHandler {
	return input{Controls: app.Camera.controls, app: app}
}
