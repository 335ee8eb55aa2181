// Package view turns polyline data into line batches and drives the camera
// from pointer input. It holds everything of the viewer that does not need a
// window.
package view

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/pkg/lines"
)

// SceneOptions controls NewScene
type SceneOptions struct {
	Color        lines.Color
	RandomColors bool
	Rand         *rand.Rand // required with RandomColors
	MaxSegments  int        // 0 means no limit
}

// Scene is polyline data prepared for drawing. Points are stored relative to
// Origin so that large map coordinates keep float32 precision.
type Scene struct {
	origin    orb.Point
	bound     orb.Bound // local coordinates
	points    []mgl32.Vec2
	starts    []int
	colors    []lines.Color
	segments  int
	truncated int
}

// NewScene converts mls. Zero-length segments are dropped. When MaxSegments
// is reached the remaining data is cut and counted in Truncated.
func NewScene(mls orb.MultiLineString, opts SceneOptions) *Scene {
	s := &Scene{}
	if len(mls) == 0 {
		return s
	}
	s.origin = mls.Bound().Center()

	total := 0
	for _, ls := range mls {
		total += max(len(ls)-1, 0)
	}

	for _, ls := range mls {
		start := len(s.points)
		var prev mgl32.Vec2
		for j, p := range ls {
			cur := s.local(p)
			if j > 0 {
				if cur == prev {
					continue
				}
				if opts.MaxSegments > 0 && s.segments == opts.MaxSegments {
					break
				}
				s.segments++
			}
			s.points = append(s.points, cur)
			prev = cur
		}
		if len(s.points)-start < 2 {
			s.points = s.points[:start]
			continue
		}
		s.starts = append(s.starts, start)
		s.colors = append(s.colors, pickColor(opts))
	}
	s.truncated = total - s.segments - s.degenerate(mls)

	s.bound = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{0, 0}}
	if len(s.points) > 0 {
		first := s.points[0]
		s.bound = orb.Bound{Min: vecPoint(first), Max: vecPoint(first)}
		for _, p := range s.points[1:] {
			s.bound = s.bound.Extend(vecPoint(p))
		}
	}
	return s
}

func (s *Scene) local(p orb.Point) mgl32.Vec2 {
	return mgl32.Vec2{float32(p[0] - s.origin[0]), float32(p[1] - s.origin[1])}
}

// degenerate counts zero-length segments of mls after float32 conversion
func (s *Scene) degenerate(mls orb.MultiLineString) int {
	n := 0
	for _, ls := range mls {
		for j := 1; j < len(ls); j++ {
			if s.local(ls[j-1]) == s.local(ls[j]) {
				n++
			}
		}
	}
	return n
}

func pickColor(opts SceneOptions) lines.Color {
	if !opts.RandomColors || opts.Rand == nil {
		return opts.Color
	}
	return lines.RGB(
		0.5+opts.Rand.Float32()*0.5,
		opts.Rand.Float32(),
		opts.Rand.Float32(),
	)
}

func vecPoint(v mgl32.Vec2) orb.Point {
	return orb.Point{float64(v.X()), float64(v.Y())}
}

// Build appends every segment to b. The first segment of a polyline draws
// both caps, the following ones suppress their start cap since the previous
// segment already rounds the joint.
func (s *Scene) Build(b *lines.Batch, thickness float32) {
	for i, start := range s.starts {
		end := len(s.points)
		if i+1 < len(s.starts) {
			end = s.starts[i+1]
		}
		join := lines.JoinAll
		for j := start + 1; j < end; j++ {
			b.Add(s.points[j-1], s.points[j], thickness, s.colors[i], join)
			join = lines.JoinNoFirst
		}
	}
}

// Segments returns the number of instances Build adds
func (s *Scene) Segments() int { return s.segments }

// Polylines returns the number of drawable polylines
func (s *Scene) Polylines() int { return len(s.starts) }

// Truncated returns the number of segments cut by MaxSegments
func (s *Scene) Truncated() int { return s.truncated }

// Origin returns the world point that local coordinates are relative to
func (s *Scene) Origin() orb.Point { return s.origin }

// Bound returns the bounding box in local coordinates
func (s *Scene) Bound() orb.Bound { return s.bound }

// Local converts a world point to scene coordinates
func (s *Scene) Local(p orb.Point) mgl32.Vec2 { return s.local(p) }

// World converts scene coordinates back to a world point
func (s *Scene) World(v mgl32.Vec2) orb.Point {
	return orb.Point{float64(v.X()) + s.origin[0], float64(v.Y()) + s.origin[1]}
}
