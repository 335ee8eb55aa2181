package app

import (
	"fmt"
	"time"
)

const titleInterval = 100 * time.Millisecond

// updateTitle shows the world coordinates under the cursor and the zoom in
// the window title
func (app *App) updateTitle() {
	now := time.Now()
	if now.Sub(app.UI.lastTitleTime) < titleInterval {
		return
	}
	app.UI.lastTitleTime = now

	cam := app.Camera.camera
	width, height := app.window.Size()
	title := app.UI.baseTitle
	if width > 0 && height > 0 {
		cursor := app.Camera.controls.Cursor()
		local := cam.Unproject(cursor.X(), cursor.Y(), float32(width), float32(height))
		world := app.Scene.scene.World(local)
		title = fmt.Sprintf("%s  |  x %.4f  y %.4f  |  zoom %.4g  |  %d segments",
			app.UI.baseTitle, world[0], world[1], cam.Zoom(), app.renderer.Len())
	}

	if title != app.UI.lastTitle {
		app.window.SetTitle(title)
		app.UI.lastTitle = title
	}
}
