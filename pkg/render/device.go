package render

import "github.com/go-gl/mathgl/mgl32"

// Device is the GPU side of the renderer. The OpenGL implementation lives in
// pkg/render/opengl; tests use an in-memory recorder.
type Device interface {
	// UploadGeometry stores the immutable quad template
	UploadGeometry(vertices []float32, indices []uint16) error
	// AllocInstances reserves a dynamic instance buffer of size bytes
	AllocInstances(size int) error
	// UpdateInstances overwrites the instance buffer from offset 0
	UpdateInstances(data []float32)
	// Viewport sets the framebuffer area in pixels
	Viewport(width, height int)
	// Clear fills the framebuffer with an opaque color
	Clear(r, g, b float32)
	// Draw issues one instanced draw of the quad template
	Draw(vp mgl32.Mat4, indexCount, instanceCount int)
	// Release frees all GPU objects
	Release()
}
