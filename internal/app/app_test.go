package app

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/render"
	"github.com/philipparndt/golines/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow replays scripted input and records titles
type fakeWindow struct {
	width, height int
	events        func(h inputHandler)
	title         string
}

func (w *fakeWindow) ShouldClose() bool           { return false }
func (w *fakeWindow) Size() (int, int)            { return w.width, w.height }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }
func (w *fakeWindow) SetTitle(title string)       { w.title = title }
func (w *fakeWindow) BeginFrame()                 {}
func (w *fakeWindow) EndFrame()                   {}
func (w *fakeWindow) Close()                      {}
func (w *fakeWindow) PollInput(h inputHandler) {
	if w.events != nil {
		w.events(h)
		w.events = nil
	}
}

var line = orb.MultiLineString{{{0, 0}, {10, 0}, {10, 5}}}

func newTestApp(t *testing.T, w *fakeWindow, mls orb.MultiLineString) *App {
	t.Helper()
	cfg := config.Default()
	r, err := render.New(viewer.NewCanvas(w.width, w.height), 16)
	require.NoError(t, err)

	app := &App{
		cfg:      cfg,
		log:      slog.New(slog.DiscardHandler),
		window:   w,
		style:    view.StyleFrom(cfg.Style),
		renderer: r,
		UI:       UIState{baseTitle: "golines"},
	}
	app.painter = view.NewPainter(r, app.style)
	app.setScene(mls)
	app.setupCamera()
	return app
}

func TestDragPansTheCamera(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	app := newTestApp(t, w, line)
	cam := app.Camera.camera
	before := cam.DesiredPosition()

	w.events = func(h inputHandler) {
		h.ButtonDown(view.ButtonLeft, 100, 100)
		h.Move(200, 100, 800, 600)
	}
	app.window.PollInput(app.input())

	assert.True(t, app.Camera.controls.Dragging())
	assert.Equal(t, 1, cam.Pending())
	cam.Update()
	assert.NotEqual(t, before, cam.DesiredPosition())
	assert.InDelta(t, before.Y(), cam.DesiredPosition().Y(), 1e-6)
}

func TestHomeRefitsToTheCurrentWindow(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	app := newTestApp(t, w, line)
	assert.InDelta(t, 0.09, app.Camera.home.Zoom, 1e-5)

	// a wider window makes the height the limiting extent
	w.width = 1600
	w.events = func(h inputHandler) { h.Home() }
	app.window.PollInput(app.input())
	app.Camera.camera.Update()

	assert.InDelta(t, 0.0675, app.Camera.home.Zoom, 1e-5)
	assert.InDelta(t, 0.0675, app.Camera.camera.DesiredZoom(), 1e-5)
	assert.Equal(t, mgl32.Vec2{0, 0}, app.Camera.camera.DesiredPosition())
}

func TestReloadKeepsTheWorldPointUnderTheCamera(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	app := newTestApp(t, w, orb.MultiLineString{{{0, 0}, {10, 0}}})
	app.Camera.camera.Snap()
	require.Equal(t, orb.Point{5, 0}, app.Scene.scene.World(app.Camera.camera.Position()))

	app.FileWatch.loaded = orb.MultiLineString{{{0, 0}, {20, 0}}}
	app.FileWatch.ready = true
	app.applyLoadedScene()

	assert.Equal(t, orb.Point{10, 0}, app.Scene.scene.Origin())
	world := app.Scene.scene.World(app.Camera.camera.Position())
	assert.InDelta(t, 5, world[0], 1e-6)
	assert.InDelta(t, 0, world[1], 1e-6)
}

func TestFailedReloadKeepsTheScene(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	app := newTestApp(t, w, line)
	scene := app.Scene.scene

	app.FileWatch.loadErr = assert.AnError
	app.FileWatch.ready = true
	app.applyLoadedScene()

	assert.Same(t, scene, app.Scene.scene)
	assert.False(t, app.FileWatch.ready)
}

func TestTitleShowsCursorAndZoom(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	app := newTestApp(t, w, line)
	w.events = func(h inputHandler) { h.Move(400, 300, 800, 600) }
	app.window.PollInput(app.input())

	app.updateTitle()

	assert.True(t, strings.HasPrefix(w.title, "golines  |  x 5.0000  y 2.5000"), w.title)
	assert.Contains(t, w.title, "zoom")
}
