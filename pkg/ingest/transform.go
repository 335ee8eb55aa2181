package ingest

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Decimate keeps every nth point, counting across all polylines. Polylines
// that lose all their points are dropped.
func Decimate(mls orb.MultiLineString, every int) orb.MultiLineString {
	if every <= 1 {
		return mls
	}
	out := make(orb.MultiLineString, 0, len(mls))
	count := 0
	for _, ls := range mls {
		var kept orb.LineString
		for _, p := range ls {
			count++
			if count%every == 0 {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

// Simplify removes points closer than tolerance to the line through their
// neighbours (Douglas-Peucker)
func Simplify(mls orb.MultiLineString, tolerance float64) orb.MultiLineString {
	if tolerance <= 0 {
		return mls
	}
	return simplify.DouglasPeucker(tolerance).MultiLineString(mls.Clone())
}

// Normalize divides every coordinate by the largest positive value on its
// axis, bringing projected map coordinates near the unit square. An axis
// without positive values is left untouched.
func Normalize(mls orb.MultiLineString) orb.MultiLineString {
	var maxX, maxY float64
	for _, ls := range mls {
		for _, p := range ls {
			maxX = max(maxX, p[0])
			maxY = max(maxY, p[1])
		}
	}
	if maxX <= 0 {
		maxX = 1
	}
	if maxY <= 0 {
		maxY = 1
	}

	out := make(orb.MultiLineString, len(mls))
	for i, ls := range mls {
		scaled := make(orb.LineString, len(ls))
		for j, p := range ls {
			scaled[j] = orb.Point{p[0] / maxX, p[1] / maxY}
		}
		out[i] = scaled
	}
	return out
}

// Limit truncates the data to at most maxPoints points in total; zero means
// no limit
func Limit(mls orb.MultiLineString, maxPoints int) orb.MultiLineString {
	if maxPoints <= 0 {
		return mls
	}
	out := make(orb.MultiLineString, 0, len(mls))
	left := maxPoints
	for _, ls := range mls {
		if left == 0 {
			break
		}
		if len(ls) > left {
			ls = ls[:left]
		}
		out = append(out, ls)
		left -= len(ls)
	}
	return out
}

// Centroid returns the mean of all points, or the origin for empty data
func Centroid(mls orb.MultiLineString) orb.Point {
	var sum orb.Point
	n := 0
	for _, ls := range mls {
		for _, p := range ls {
			sum[0] += p[0]
			sum[1] += p[1]
			n++
		}
	}
	if n == 0 {
		return orb.Point{}
	}
	return orb.Point{sum[0] / float64(n), sum[1] / float64(n)}
}

// PointCount returns the number of points across all polylines
func PointCount(mls orb.MultiLineString) int {
	n := 0
	for _, ls := range mls {
		n += len(ls)
	}
	return n
}
