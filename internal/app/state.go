package app

import (
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/camera"
	"github.com/philipparndt/golines/pkg/watcher"
)

// CameraState holds the camera and the placement Home returns to
type CameraState struct {
	camera   *camera.Camera
	controls *view.Controls
	home     view.Fit
	mapSize  float32
}

// SceneData holds the polylines currently on screen
type SceneData struct {
	source string // file path, empty for generated data
	data   orb.MultiLineString
	scene  *view.Scene
}

// FileWatchState holds file watching and reload state. The watcher and the
// loader goroutine write under mu, the frame loop reads once per frame.
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher

	mu               sync.Mutex
	isLoading        bool
	loadingStartTime time.Time
	loaded           orb.MultiLineString
	loadErr          error
	ready            bool
	pending          bool // changed again while loading
}

// UIState holds the window title bookkeeping
type UIState struct {
	baseTitle     string
	lastTitle     string
	lastTitleTime time.Time
	overflowShown bool
}
