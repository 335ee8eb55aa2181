// Package render draws line batches with one instanced draw call per frame.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/golines/pkg/lines"
)

// ErrCapacityExceeded is returned by Push when the accumulated lines would not
// fit into the instance buffer
var ErrCapacityExceeded = errors.New("line capacity exceeded")

// ErrDegenerateSegment is returned by Push for a batch holding a segment
// without length, which the shader cannot orient
var ErrDegenerateSegment = errors.New("zero-length segment")

// Quad is the template every instance is stretched from: a center vertex and
// four corners. x spans the stroke width (with a little slack for the
// antialiasing border) and y spans twice the segment length so the rounded
// caps fit as long as the thickness stays below half the length.
var Quad = []float32{
	0, 0,
	lines.QuadHalfWidth, -lines.QuadHalfLength,
	lines.QuadHalfWidth, lines.QuadHalfLength,
	-lines.QuadHalfWidth, lines.QuadHalfLength,
	-lines.QuadHalfWidth, -lines.QuadHalfLength,
}

// QuadIndices fans four triangles around the center vertex
var QuadIndices = []uint16{
	0, 1, 2,
	0, 2, 3,
	0, 3, 4,
	0, 4, 1,
}

// ViewProjector supplies the view-projection matrix for a height/width aspect
type ViewProjector interface {
	ViewProjection(aspect float32) mgl32.Mat4
}

// Stats counts renderer activity since creation
type Stats struct {
	Uploads       int // full instance buffer uploads
	Draws         int // instanced draw calls
	Rejected      int // pushes refused for capacity or degenerate segments
	LastInstances int // instances in the last draw
}

// Renderer mirrors the instance buffer on the CPU and uploads it in full on
// every push
type Renderer struct {
	dev      Device
	capacity int
	lines    *lines.Batch
	floats   []float32
	stats    Stats
}

// New uploads the quad template and allocates room for capacity instances
func New(dev Device, capacity int) (*Renderer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid line capacity %d", capacity)
	}
	if err := dev.UploadGeometry(Quad, QuadIndices); err != nil {
		return nil, fmt.Errorf("failed to upload quad template: %w", err)
	}
	if err := dev.AllocInstances(capacity * lines.StrideBytes); err != nil {
		return nil, fmt.Errorf("failed to allocate %d line instances: %w", capacity, err)
	}
	Logger().Debug("line renderer ready",
		slog.Int("capacity", capacity),
		slog.Int("bytes", capacity*lines.StrideBytes))

	return &Renderer{
		dev:      dev,
		capacity: capacity,
		lines:    lines.NewBatch(capacity),
		floats:   make([]float32, 0, capacity*lines.Stride),
	}, nil
}

// NewBatch returns a batch sized to the renderer capacity
func (r *Renderer) NewBatch() *lines.Batch {
	return lines.NewBatch(r.capacity)
}

// ClearBuffers empties the CPU mirror. The GPU buffer changes on the next push.
func (r *Renderer) ClearBuffers() {
	r.lines.Clear()
}

// Push appends batch to the lines of this frame and uploads all of them. Every
// push uploads, including one of a nil or empty batch. A batch that does not
// fit or holds a zero-length segment is rejected as a whole and nothing is
// uploaded.
func (r *Renderer) Push(batch *lines.Batch) error {
	if batch != nil {
		if err := r.check(batch); err != nil {
			r.stats.Rejected++
			Logger().Warn("line batch rejected",
				slog.Int("batch", batch.Len()),
				slog.Int("held", r.lines.Len()),
				slog.Int("capacity", r.capacity),
				slog.Any("err", err))
			return err
		}
		r.lines.Extend(batch)
	}

	r.floats = lines.AppendFloats(r.floats[:0], r.lines.Instances())
	r.dev.UpdateInstances(r.floats)
	r.stats.Uploads++
	return nil
}

func (r *Renderer) check(batch *lines.Batch) error {
	if r.lines.Len()+batch.Len() > r.capacity {
		return fmt.Errorf("push %d lines with %d of %d held: %w",
			batch.Len(), r.lines.Len(), r.capacity, ErrCapacityExceeded)
	}
	for i, in := range batch.Instances() {
		if in.Degenerate() {
			return fmt.Errorf("line %d at %v: %w", i, in.Position, ErrDegenerateSegment)
		}
	}
	return nil
}

// Viewport forwards the framebuffer size to the device
func (r *Renderer) Viewport(width, height int) {
	r.dev.Viewport(width, height)
}

// ClearScreen fills the framebuffer with c
func (r *Renderer) ClearScreen(c lines.Color) {
	r.dev.Clear(c.R, c.G, c.B)
}

// Draw renders the held lines as seen by cam on a width x height screen
func (r *Renderer) Draw(cam ViewProjector, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	n := r.lines.Len()
	r.stats.LastInstances = n
	if n == 0 {
		return
	}
	vp := cam.ViewProjection(float32(height) / float32(width))
	r.dev.Draw(vp, len(QuadIndices), n)
	r.stats.Draws++
}

// Len returns the number of lines held for this frame
func (r *Renderer) Len() int { return r.lines.Len() }

// Cap returns the instance capacity
func (r *Renderer) Cap() int { return r.capacity }

// Stats returns activity counters
func (r *Renderer) Stats() Stats { return r.stats }

// Close releases the device
func (r *Renderer) Close() {
	r.dev.Release()
}
