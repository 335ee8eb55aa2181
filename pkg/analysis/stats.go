// Package analysis computes statistics of polyline data sets
package analysis

import (
	"cmp"
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/philipparndt/golines/pkg/ingest"
)

// Segment is one straight piece of a polyline
type Segment struct {
	From     orb.Point
	To       orb.Point
	Length   float64
	Polyline int
}

// Stats describes a polyline data set
type Stats struct {
	Polylines   int
	Points      int
	Segments    int // segments the viewer draws, one instance each
	Degenerate  int // zero-length segments
	Bound       orb.Bound
	Centroid    orb.Point
	TotalLength float64
	MinSegment  float64
	MaxSegment  float64
	AvgSegment  float64
	Longest     []Segment
}

// Size returns the width and height of the bounding box
func (s *Stats) Size() orb.Point {
	return orb.Point{s.Bound.Max[0] - s.Bound.Min[0], s.Bound.Max[1] - s.Bound.Min[1]}
}

// Analyze computes the statistics of mls. top is the number of longest
// segments reported.
func Analyze(mls orb.MultiLineString, top int) *Stats {
	s := &Stats{
		Polylines: len(mls),
		Bound:     mls.Bound(),
		Centroid:  ingest.Centroid(mls),
	}

	minLength := math.MaxFloat64
	var segments []Segment
	for i, ls := range mls {
		s.Points += len(ls)
		for j := 1; j < len(ls); j++ {
			length := planar.Distance(ls[j-1], ls[j])
			s.Segments++
			if length == 0 {
				s.Degenerate++
			}
			minLength = min(minLength, length)
			s.MaxSegment = max(s.MaxSegment, length)
			if top > 0 {
				segments = append(segments, Segment{From: ls[j-1], To: ls[j], Length: length, Polyline: i})
			}
		}
	}
	s.TotalLength = planar.Length(mls)

	if s.Segments > 0 {
		s.MinSegment = minLength
		s.AvgSegment = s.TotalLength / float64(s.Segments)
	}

	if top > 0 {
		slices.SortStableFunc(segments, func(a, b Segment) int {
			return cmp.Compare(b.Length, a.Length)
		})
		s.Longest = segments[:min(top, len(segments))]
	}
	return s
}
