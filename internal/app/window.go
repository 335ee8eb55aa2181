package app

import "github.com/philipparndt/golines/internal/view"

// window is the platform layer: one window with a current GL 3.3 context
// and its input. raylib is the default backend, glfw is selected with the
// glfw build tag.
type window interface {
	ShouldClose() bool
	// Size is the window size in screen coordinates, the space of pointer
	// positions
	Size() (width, height int)
	FramebufferSize() (width, height int)
	SetTitle(title string)
	// PollInput delivers the input gathered since the last frame to h
	PollInput(h inputHandler)
	BeginFrame()
	EndFrame()
	Close()
}

type inputHandler interface {
	ButtonDown(b view.Button, x, y float32)
	ButtonUp(b view.Button)
	Move(x, y, width, height float32)
	Scroll(dy float32)
	Home()
}
