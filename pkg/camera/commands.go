package camera

import "github.com/go-gl/mathgl/mgl32"

// Command is a camera change recorded by an input handler and applied on the
// next Update
type Command interface {
	apply(c *Camera)
}

// Pan moves the desired position by Delta world units
type Pan struct {
	Delta   mgl32.Vec2
	MapSize float32
}

func (p Pan) apply(c *Camera) { c.AddPosition(p.Delta, p.MapSize) }

// MoveTo sets the desired position
type MoveTo struct {
	Target  mgl32.Vec2
	MapSize float32
}

func (m MoveTo) apply(c *Camera) { c.SetPosition(m.Target, m.MapSize) }

// Wheel zooms by one wheel step in the direction of ScrollY
type Wheel struct {
	ScrollY float32
}

func (w Wheel) apply(c *Camera) { c.ZoomWheel(w.ScrollY) }

// ZoomTo sets the desired zoom
type ZoomTo struct {
	Zoom float32
}

func (z ZoomTo) apply(c *Camera) { c.SetZoom(z.Zoom) }

// Enqueue records a command for the next Update
func (c *Camera) Enqueue(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Pending returns the number of commands waiting for the next Update
func (c *Camera) Pending() int {
	return len(c.queue)
}

// Apply runs cmd immediately, bypassing the queue
func (c *Camera) Apply(cmd Command) {
	cmd.apply(c)
}

func (c *Camera) drain() {
	for _, cmd := range c.queue {
		cmd.apply(c)
	}
	c.queue = c.queue[:0]
}
