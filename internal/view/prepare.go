package view

import (
	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/pkg/ingest"
)

// Prepare applies the data options in a fixed order: decimate, simplify,
// normalize, then limit the point count
func Prepare(mls orb.MultiLineString, cfg config.DataConfig) orb.MultiLineString {
	mls = ingest.Decimate(mls, cfg.Decimate)
	mls = ingest.Simplify(mls, cfg.Simplify)
	if cfg.Normalize {
		mls = ingest.Normalize(mls)
	}
	return ingest.Limit(mls, cfg.MaxPoints)
}
