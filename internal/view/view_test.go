package view

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/internal/config"
	"github.com/philipparndt/golines/pkg/camera"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/render"
	"github.com/philipparndt/golines/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = lines.RGB(1, 0, 0)

func TestSceneBuildTagsJoints(t *testing.T) {
	mls := orb.MultiLineString{
		{{0, 0}, {1, 0}, {1, 1}},
		{{5, 5}, {6, 5}},
	}
	s := NewScene(mls, SceneOptions{Color: red})

	require.Equal(t, 3, s.Segments())
	require.Equal(t, 2, s.Polylines())

	b := lines.NewBatch(8)
	s.Build(b, 0.1)
	require.Equal(t, 3, b.Len())

	assert.Equal(t, lines.JoinAll, b.At(0).Join)
	assert.Equal(t, lines.JoinNoFirst, b.At(1).Join)
	assert.Equal(t, lines.JoinAll, b.At(2).Join, "a new polyline starts with both caps")
	for _, in := range b.Instances() {
		assert.Equal(t, float32(0.1), in.Thickness)
		assert.Equal(t, red, in.Color)
	}

	// the joint of the first polyline in world coordinates
	assert.Equal(t, orb.Point{1, 0}, s.World(b.At(0).To()))
	assert.Equal(t, orb.Point{1, 0}, s.World(b.At(1).From()))
}

func TestSceneIsCenteredOnOrigin(t *testing.T) {
	mls := orb.MultiLineString{{{4135600, 7705200}, {4135620, 7705240}}}
	s := NewScene(mls, SceneOptions{})

	assert.Equal(t, orb.Point{4135610, 7705220}, s.Origin())
	assert.Equal(t, orb.Bound{Min: orb.Point{-10, -20}, Max: orb.Point{10, 20}}, s.Bound())
	assert.Equal(t, mgl32.Vec2{-10, -20}, s.Local(orb.Point{4135600, 7705200}))
	assert.Equal(t, orb.Point{4135620, 7705240}, s.World(mgl32.Vec2{10, 20}))
}

func TestSceneDropsZeroLengthSegments(t *testing.T) {
	mls := orb.MultiLineString{
		{{0, 0}, {0, 0}, {1, 0}, {1, 0}, {2, 0}},
		{{3, 3}},
		{{4, 4}, {4, 4}},
	}
	s := NewScene(mls, SceneOptions{})
	assert.Equal(t, 2, s.Segments())
	assert.Equal(t, 1, s.Polylines())
	assert.Equal(t, 0, s.Truncated())

	b := lines.NewBatch(4)
	s.Build(b, 1)
	for _, in := range b.Instances() {
		assert.False(t, in.Degenerate())
	}
	assert.Equal(t, lines.JoinAll, b.At(0).Join)
	assert.Equal(t, lines.JoinNoFirst, b.At(1).Join)
}

func TestSceneMaxSegments(t *testing.T) {
	mls := orb.MultiLineString{
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
	}
	s := NewScene(mls, SceneOptions{MaxSegments: 3})
	assert.Equal(t, 3, s.Segments())
	assert.Equal(t, 1, s.Truncated())

	b := lines.NewBatch(3)
	s.Build(b, 1)
	assert.Equal(t, 3, b.Len())
}

func TestSceneRandomColors(t *testing.T) {
	mls := orb.MultiLineString{{{0, 0}, {1, 0}}, {{0, 1}, {1, 1}}}
	s := NewScene(mls, SceneOptions{RandomColors: true, Rand: rand.New(rand.NewPCG(3, 4))})

	b := lines.NewBatch(2)
	s.Build(b, 1)
	for _, in := range b.Instances() {
		assert.GreaterOrEqual(t, in.Color.R, float32(0.5))
		assert.LessOrEqual(t, in.Color.G, float32(1))
	}
}

func TestEmptyScene(t *testing.T) {
	s := NewScene(nil, SceneOptions{})
	assert.Equal(t, 0, s.Segments())
	assert.Equal(t, 0, s.Polylines())
	assert.Equal(t, orb.Bound{}, s.Bound())

	b := lines.NewBatch(1)
	s.Build(b, 1)
	assert.Equal(t, 0, b.Len())
}

func TestThickness(t *testing.T) {
	fixed := config.ThicknessConfig{Mode: config.ThicknessFixed, Value: 1.1}
	assert.Equal(t, float32(1.1), Thickness(fixed, 0.001))
	assert.Equal(t, float32(1.1), Thickness(fixed, 1000))

	zoom := config.ThicknessConfig{Mode: config.ThicknessZoom, Scale: 0.0005, Min: 0.0000001, Max: 0.00005}
	assert.Equal(t, float32(0.00005), Thickness(zoom, 1), "clamped to max")
	assert.InDelta(t, 0.0005/20.0, Thickness(zoom, 20), 1e-9)
	assert.Equal(t, float32(0.0000001), Thickness(zoom, 100000), "clamped to min")

	free := config.ThicknessConfig{Mode: config.ThicknessZoom, Scale: 2}
	assert.Equal(t, float32(4), Thickness(free, 0.5))
}

func TestStyleFrom(t *testing.T) {
	style := StyleFrom(config.Default().Style)
	assert.Equal(t, lines.RGB(0, 0, 0), style.Line)
	assert.Equal(t, color.RGBA{255, 250, 200, 255}, style.Background.RGBA8())
}

func TestFitBound(t *testing.T) {
	b := orb.Bound{Min: orb.Point{-2, -1}, Max: orb.Point{2, 1}}

	// square screen: the width limits, 4 units across
	fit := FitBound(b, 100, 100, 0, 1)
	assert.Equal(t, mgl32.Vec2{0, 0}, fit.Center)
	assert.InDelta(t, 0.25, fit.Zoom, 1e-6)

	// wide screen: the height limits, aspect 0.25 / 2 units
	fit = FitBound(b, 400, 100, 0, 1)
	assert.InDelta(t, 0.125, fit.Zoom, 1e-6)

	// margin shrinks the zoom
	fit = FitBound(b, 100, 100, 0.1, 1)
	assert.InDelta(t, 0.2, fit.Zoom, 1e-6)

	point := orb.Bound{Min: orb.Point{3, 3}, Max: orb.Point{3, 3}}
	fit = FitBound(point, 100, 100, 0, 0.7)
	assert.Equal(t, float32(0.7), fit.Zoom)
	assert.Equal(t, mgl32.Vec2{3, 3}, fit.Center)
}

func TestMapSize(t *testing.T) {
	assert.Equal(t, float32(8), MapSize(orb.Bound{Min: orb.Point{-4, -1}, Max: orb.Point{2, 1}}))
	assert.Equal(t, float32(1), MapSize(orb.Bound{}))
}

func TestControlsDragPans(t *testing.T) {
	cam := camera.New(1, 1)
	c := NewControls(cam, 100, 0.5)

	c.Move(10, 10, 200, 100)
	assert.Equal(t, 0, cam.Pending(), "moving without a button does nothing")

	c.ButtonDown(ButtonRight, 10, 10)
	c.Move(20, 20, 200, 100)
	assert.Equal(t, 0, cam.Pending(), "only the left button drags")

	c.ButtonDown(ButtonLeft, 10, 10)
	assert.True(t, c.Dragging())
	c.Move(30, 30, 200, 100)
	require.Equal(t, 1, cam.Pending())

	cam.Update()
	want := camera.PanFromDrag(mgl32.Vec2{10, 10}, mgl32.Vec2{30, 30}, 1, 200, 100, 0.5)
	assert.Equal(t, want, cam.DesiredPosition())
	assert.Equal(t, mgl32.Vec2{30, 30}, c.Cursor())

	c.ButtonUp(ButtonLeft)
	c.Move(60, 60, 200, 100)
	assert.Equal(t, 0, cam.Pending())
}

func TestControlsScrollAndHome(t *testing.T) {
	cam := camera.New(1, 1)
	c := NewControls(cam, 100, 0.5)

	c.Scroll(0)
	assert.Equal(t, 0, cam.Pending())
	c.Scroll(3)
	cam.Update()
	assert.InDelta(t, 1.2, cam.DesiredZoom(), 1e-6)

	c.SetHome(Fit{Center: mgl32.Vec2{5, -5}, Zoom: 0.5})
	c.Home()
	assert.Equal(t, 2, cam.Pending())
	cam.Update()
	assert.Equal(t, mgl32.Vec2{5, -5}, cam.DesiredPosition())
	assert.Equal(t, float32(0.5), cam.DesiredZoom())
}

func TestPainterRebuildsOnlyWhenNeeded(t *testing.T) {
	canvas := viewer.NewCanvas(64, 64)
	r, err := render.New(canvas, 16)
	require.NoError(t, err)

	style := Style{
		Background: lines.RGB(1, 1, 1),
		Thickness:  config.ThicknessConfig{Mode: config.ThicknessZoom, Scale: 0.01},
	}
	p := NewPainter(r, style)

	cam := camera.New(0.25, 0.25)
	require.NoError(t, p.Paint(cam, 64, 64, 64, 64), "no scene is fine")
	assert.Equal(t, 0, canvas.Drawn())

	p.SetScene(NewScene(orb.MultiLineString{{{0, 0}, {1, 0}, {1, 1}}}, SceneOptions{}))
	require.NoError(t, p.Paint(cam, 64, 64, 64, 64))
	assert.Equal(t, 2, r.Len())
	assert.InDelta(t, 0.04, p.Thickness(), 1e-6)

	cam.SetZoom(0.5)
	cam.Snap()
	require.NoError(t, p.Paint(cam, 64, 64, 64, 64))
	assert.InDelta(t, 0.02, p.Thickness(), 1e-6)
	assert.Equal(t, 2, r.Len(), "buffers are cleared every frame")
	assert.Equal(t, 4, canvas.Drawn())
}

func TestPainterReportsCapacityOverflow(t *testing.T) {
	r, err := render.New(viewer.NewCanvas(8, 8), 1)
	require.NoError(t, err)
	p := NewPainter(r, StyleFrom(config.Default().Style))
	p.SetScene(NewScene(orb.MultiLineString{{{0, 0}, {1, 0}, {1, 1}}}, SceneOptions{}))

	err = p.Paint(camera.Default(), 8, 8, 8, 8)
	assert.ErrorIs(t, err, render.ErrCapacityExceeded)
}

func TestSnapshotDrawsFittedScene(t *testing.T) {
	s := NewScene(orb.MultiLineString{{{100, 100}, {300, 100}}}, SceneOptions{})
	style := Style{
		Background: lines.RGB(1, 1, 1),
		Line:       lines.RGB(0, 0, 0),
		Thickness:  config.ThicknessConfig{Mode: config.ThicknessFixed, Value: 10},
	}

	img, err := Snapshot(s, style, 100, 100, 0.1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(50, 50))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(50, 5))

	_, err = Snapshot(s, style, 0, 100, 0)
	assert.Error(t, err)
}

func TestPrepare(t *testing.T) {
	mls := orb.MultiLineString{{{2, 2}, {4, 4}, {6, 8}, {8, 8}}}
	out := Prepare(mls, config.DataConfig{Decimate: 2, Normalize: true, MaxPoints: 1})
	assert.Equal(t, orb.MultiLineString{{{0.5, 0.5}}}, out)
}
