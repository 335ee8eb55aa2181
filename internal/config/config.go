// Package config holds the viewer settings and loads them from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Thickness modes
const (
	ThicknessFixed = "fixed"
	ThicknessZoom  = "zoom"
)

// Config is the complete viewer configuration
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
	Camera   CameraConfig   `yaml:"camera"`
	Style    StyleConfig    `yaml:"style"`
	Data     DataConfig     `yaml:"data"`
	Watch    WatchConfig    `yaml:"watch"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig describes the viewer window
type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"` // MSAA samples, 0 disables
}

// RendererConfig sizes the GPU instance buffer
type RendererConfig struct {
	Capacity int `yaml:"capacity"` // maximum segments per frame
}

// CameraConfig tunes the camera
type CameraConfig struct {
	InitZoom          float32 `yaml:"init_zoom"`  // 0 fits the data
	StartZoom         float32 `yaml:"start_zoom"` // zoom of the first frame
	MapSize           float32 `yaml:"map_size"`   // 0 derives it from the data
	PanYCorrection    float32 `yaml:"pan_y_correction"`
	ZoomSmoothing     float32 `yaml:"zoom_smoothing"`
	PositionSmoothing float32 `yaml:"position_smoothing"`
	FitMargin         float32 `yaml:"fit_margin"` // share of the view left empty around fitted data
}

// ThicknessConfig controls the stroke half width in world units
type ThicknessConfig struct {
	Mode  string  `yaml:"mode"`  // fixed or zoom
	Value float32 `yaml:"value"` // fixed mode
	Scale float32 `yaml:"scale"` // zoom mode: thickness = scale / zoom
	Min   float32 `yaml:"min"`   // zoom mode lower clamp, 0 disables
	Max   float32 `yaml:"max"`   // zoom mode upper clamp, 0 disables
}

// StyleConfig selects colors and stroke
type StyleConfig struct {
	Background   string          `yaml:"background"`
	LineColor    string          `yaml:"line_color"`
	RandomColors bool            `yaml:"random_colors"`
	Thickness    ThicknessConfig `yaml:"thickness"`
}

// DataConfig preprocesses loaded polylines
type DataConfig struct {
	Normalize bool    `yaml:"normalize"`
	Decimate  int     `yaml:"decimate"`
	Simplify  float64 `yaml:"simplify"`
	MaxPoints int     `yaml:"max_points"`
	Column    string  `yaml:"column"` // CSV geometry column
}

// WatchConfig controls live reload
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig selects the log output
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   1280,
			Height:  800,
			Title:   "golines",
			VSync:   true,
			Samples: 4,
		},
		Renderer: RendererConfig{
			Capacity: 1_000_000,
		},
		Camera: CameraConfig{
			InitZoom:          0,
			StartZoom:         0.001,
			MapSize:           0,
			PanYCorrection:    0.5,
			ZoomSmoothing:     0.8,
			PositionSmoothing: 0.4,
			FitMargin:         0.05,
		},
		Style: StyleConfig{
			Background: "#fffac8",
			LineColor:  "black",
			Thickness: ThicknessConfig{
				Mode:  ThicknessZoom,
				Value: 1,
				Scale: 0.0015,
			},
		},
		Data: DataConfig{
			Decimate: 1,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports every invalid setting
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.Samples >= 0, "window samples %d must not be negative", c.Window.Samples)
	check(c.Renderer.Capacity > 0, "renderer capacity %d must be positive", c.Renderer.Capacity)

	check(c.Camera.InitZoom >= 0, "camera init_zoom %g must not be negative", c.Camera.InitZoom)
	check(c.Camera.StartZoom > 0, "camera start_zoom %g must be positive", c.Camera.StartZoom)
	check(c.Camera.MapSize >= 0, "camera map_size %g must not be negative", c.Camera.MapSize)
	check(c.Camera.PanYCorrection > 0, "camera pan_y_correction %g must be positive", c.Camera.PanYCorrection)
	check(inUnit(c.Camera.ZoomSmoothing), "camera zoom_smoothing %g must be in [0, 1]", c.Camera.ZoomSmoothing)
	check(inUnit(c.Camera.PositionSmoothing), "camera position_smoothing %g must be in [0, 1]", c.Camera.PositionSmoothing)
	check(c.Camera.FitMargin >= 0 && c.Camera.FitMargin < 0.5, "camera fit_margin %g must be in [0, 0.5)", c.Camera.FitMargin)

	if _, err := ParseColor(c.Style.Background); err != nil {
		errs = append(errs, fmt.Errorf("style background: %w", err))
	}
	if _, err := ParseColor(c.Style.LineColor); err != nil {
		errs = append(errs, fmt.Errorf("style line_color: %w", err))
	}

	t := c.Style.Thickness
	switch t.Mode {
	case ThicknessFixed:
		check(t.Value > 0, "thickness value %g must be positive", t.Value)
	case ThicknessZoom:
		check(t.Scale > 0, "thickness scale %g must be positive", t.Scale)
		check(t.Min >= 0 && t.Max >= 0, "thickness clamps must not be negative")
		check(t.Max == 0 || t.Min <= t.Max, "thickness min %g exceeds max %g", t.Min, t.Max)
	default:
		errs = append(errs, fmt.Errorf("unknown thickness mode %q", t.Mode))
	}

	check(c.Data.Decimate >= 0, "data decimate %d must not be negative", c.Data.Decimate)
	check(c.Data.Simplify >= 0, "data simplify %g must not be negative", c.Data.Simplify)
	check(c.Data.MaxPoints >= 0, "data max_points %d must not be negative", c.Data.MaxPoints)
	check(c.Watch.Debounce >= 0, "watch debounce %s must not be negative", c.Watch.Debounce)

	return errors.Join(errs...)
}

func inUnit(v float32) bool {
	return v >= 0 && v <= 1
}
