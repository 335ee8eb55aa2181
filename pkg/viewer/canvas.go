// Package viewer renders line instances in software.
//
// Canvas implements render.Device on an in-memory image so the same
// Renderer that drives the GPU can produce snapshots without a window.
package viewer

import (
	"errors"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/render"
)

// Canvas is a software render target
type Canvas struct {
	img      *image.RGBA
	capacity int // floats
	data     []float32
	drawn    int
}

var _ render.Device = (*Canvas)(nil)

// NewCanvas creates a width x height canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// UploadGeometry is a no-op; the rasterizer works on the instances directly
func (c *Canvas) UploadGeometry(vertices []float32, indices []uint16) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return errors.New("empty quad template")
	}
	return nil
}

// AllocInstances reserves the instance mirror
func (c *Canvas) AllocInstances(size int) error {
	c.capacity = size / 4
	c.data = make([]float32, 0, c.capacity)
	return nil
}

// UpdateInstances replaces the instance mirror
func (c *Canvas) UpdateInstances(data []float32) {
	c.data = append(c.data[:0], data...)
}

// Viewport resizes the canvas, discarding its content
func (c *Canvas) Viewport(width, height int) {
	b := c.img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the canvas with an opaque color
func (c *Canvas) Clear(r, g, b float32) {
	fill := lines.RGB(r, g, b).RGBA8()
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = fill.R, fill.G, fill.B, fill.A
	}
}

// Draw rasterizes the first instanceCount uploaded instances
func (c *Canvas) Draw(vp mgl32.Mat4, _ int, instanceCount int) {
	n := min(instanceCount*lines.Stride, len(c.data))
	for _, in := range lines.DecodeFloats(c.data[:n]) {
		Rasterize(c.img, in, vp)
	}
	c.drawn += instanceCount
}

// Release drops the instance mirror
func (c *Canvas) Release() {
	c.data = nil
}

// Image returns the rendered image
func (c *Canvas) Image() *image.RGBA { return c.img }

// Drawn returns the number of instances drawn since creation
func (c *Canvas) Drawn() int { return c.drawn }

// At returns the color of pixel x, y
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }
