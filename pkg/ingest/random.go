package ingest

import (
	"math/rand/v2"

	"github.com/paulmach/orb"
)

// Random generates count polylines of points points each, uniformly spread
// over [-extent, extent] on both axes
func Random(rng *rand.Rand, count, points int, extent float64) orb.MultiLineString {
	mls := make(orb.MultiLineString, 0, max(count, 0))
	for range count {
		ls := make(orb.LineString, 0, max(points, 0))
		for range points {
			ls = append(ls, orb.Point{
				(rng.Float64()*2 - 1) * extent,
				(rng.Float64()*2 - 1) * extent,
			})
		}
		mls = append(mls, ls)
	}
	return mls
}
