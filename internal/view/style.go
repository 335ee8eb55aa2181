package view

import (
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/pkg/lines"
)

// Style is the resolved drawing style
type Style struct {
	Background   lines.Color
	Line         lines.Color
	RandomColors bool
	Thickness    config.ThicknessConfig
}

// StyleFrom resolves the color names of a validated style configuration
func StyleFrom(cfg config.StyleConfig) Style {
	return Style{
		Background:   lines.ColorOf(config.MustColor(cfg.Background)),
		Line:         lines.ColorOf(config.MustColor(cfg.LineColor)),
		RandomColors: cfg.RandomColors,
		Thickness:    cfg.Thickness,
	}
}

// Thickness returns the stroke half width for the given camera zoom. In zoom
// mode the stroke keeps a constant width on screen, optionally clamped to a
// world-space range.
func Thickness(t config.ThicknessConfig, zoom float32) float32 {
	if t.Mode == config.ThicknessFixed {
		return t.Value
	}
	v := t.Scale / zoom
	if t.Max > 0 {
		v = min(v, t.Max)
	}
	if t.Min > 0 {
		v = max(v, t.Min)
	}
	return v
}
