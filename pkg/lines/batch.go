package lines

import "github.com/go-gl/mathgl/mgl32"

// Batch is an ordered list of instances, rebuilt every frame
type Batch struct {
	items []Instance
}

// NewBatch creates a batch with room for capacity instances
func NewBatch(capacity int) *Batch {
	return &Batch{items: make([]Instance, 0, max(capacity, 0))}
}

// Add appends the segment from -> to
func (b *Batch) Add(from, to mgl32.Vec2, thickness float32, c Color, join Join) {
	b.items = append(b.items, NewInstance(from, to, thickness, c, join))
}

// Extend appends the instances of other in order
func (b *Batch) Extend(other *Batch) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Clear truncates the batch, keeping its capacity
func (b *Batch) Clear() {
	b.items = b.items[:0]
}

// Len returns the number of instances
func (b *Batch) Len() int {
	return len(b.items)
}

// Cap returns the number of instances the batch holds without growing
func (b *Batch) Cap() int {
	return cap(b.items)
}

// Instances returns the backing slice. It is only valid until the next
// mutation of the batch.
func (b *Batch) Instances() []Instance {
	return b.items
}

// At returns instance i
func (b *Batch) At(i int) Instance {
	return b.items[i]
}
