package raster

import (
	"image/color"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(n int) dimen.Dimen {
	return dimen.Dimen(n) * dimen.PX
}

func rect(x, y, w, h int) dimen.Rect {
	return dimen.RectAt(dimen.Point{X: px(x), Y: px(y)}, dimen.Size{W: px(w), H: px(h)})
}

func fill(r dimen.Rect, c frame.Color) *display.RectangleItem {
	return &display.RectangleItem{BaseItem: display.BaseItem{Bounds: r}, Color: display.StaticColor(c)}
}

var (
	bg    = frame.Color{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
	red   = frame.Color{R: 0xff, A: 0xff}
	green = frame.Color{G: 0xff, A: 0xff}
)

func rgba(c frame.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestRasterizeRectangles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.raster")
	defer teardown()
	//
	list := display.DisplayList{Items: []display.Item{
		fill(rect(0, 0, 100, 50), bg),
		fill(rect(10, 10, 20, 20), red),
		&display.ImageItem{BaseItem: display.BaseItem{Bounds: rect(60, 10, 10, 10)}},
	}}
	img := Rasterize(list, dimen.Size{W: px(100), H: px(50)})
	require.Equal(t, 100, img.Bounds().Dx())
	require.Equal(t, 50, img.Bounds().Dy())
	assert.Equal(t, rgba(bg), img.RGBAAt(0, 0))
	assert.Equal(t, rgba(red), img.RGBAAt(15, 15))
	assert.Equal(t, rgba(bg), img.RGBAAt(40, 40))
	assert.Equal(t, rgba(PlaceholderColor), img.RGBAAt(65, 15))
}

func TestRasterizeBorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.raster")
	defer teardown()
	//
	border := &display.BorderItem{BaseItem: display.BaseItem{Bounds: rect(10, 10, 30, 30)}}
	border.Widths = [4]dimen.Dimen{px(2), px(2), px(2), px(2)}
	border.Colors = [4]frame.Color{red, red, red, red}
	list := display.DisplayList{Items: []display.Item{fill(rect(0, 0, 50, 50), bg), border}}
	img := Rasterize(list, dimen.Size{W: px(50), H: px(50)})
	assert.Equal(t, rgba(red), img.RGBAAt(20, 10))
	assert.Equal(t, rgba(red), img.RGBAAt(39, 20))
	assert.Equal(t, rgba(bg), img.RGBAAt(20, 20), "border does not fill its box")
}

func TestStackingContextTransforms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.raster")
	defer teardown()
	//
	moved := &display.StackingContext{ID: 1, Opacity: 1, HasTransform: true,
		Transform: frame.Translation(0, 20)}
	rotated := &display.StackingContext{ID: 2, Opacity: 1, HasTransform: true,
		Transform: frame.Translation(5, 5).Multiply(frame.Rotation(math.Pi)).Multiply(frame.Translation(-5, -5))}
	list := display.DisplayList{Items: []display.Item{
		fill(rect(0, 0, 100, 100), bg),
		&display.PushStackingContextItem{BaseItem: display.BaseItem{Bounds: rect(50, 0, 10, 10)}, Context: moved},
		fill(rect(0, 0, 10, 10), green),
		&display.PopStackingContextItem{ContextID: 1},
		&display.PushStackingContextItem{BaseItem: display.BaseItem{Bounds: rect(10, 60, 10, 10)}, Context: rotated},
		fill(rect(0, 0, 5, 10), red),
		&display.PopStackingContextItem{ContextID: 2},
	}}
	img := Rasterize(list, dimen.Size{W: px(100), H: px(100)})
	assert.Equal(t, rgba(green), img.RGBAAt(55, 25))
	assert.Equal(t, rgba(bg), img.RGBAAt(55, 5))
	// rotated by 180° around the center: the left half ends up right
	assert.Equal(t, rgba(red), img.RGBAAt(17, 65))
	assert.Equal(t, rgba(bg), img.RGBAAt(12, 65))
}

func TestOpacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.raster")
	defer teardown()
	//
	half := &display.StackingContext{ID: 1, Opacity: 0.5}
	list := display.DisplayList{Items: []display.Item{
		fill(rect(0, 0, 10, 10), frame.White),
		&display.PushStackingContextItem{BaseItem: display.BaseItem{Bounds: rect(0, 0, 10, 10)}, Context: half},
		fill(rect(0, 0, 10, 10), frame.Black),
		&display.PopStackingContextItem{ContextID: 1},
	}}
	img := Rasterize(list, dimen.Size{W: px(10), H: px(10)})
	c := img.RGBAAt(5, 5)
	assert.InDelta(t, 0x80, int(c.R), 2)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestTextIsDrawn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.raster")
	defer teardown()
	//
	text := &display.TextItem{BaseItem: display.BaseItem{Bounds: rect(10, 20, 30, 13)},
		Text: "XX", Color: frame.Black, Baseline: px(30)}
	list := display.DisplayList{Items: []display.Item{fill(rect(0, 0, 50, 50), frame.White), text}}
	img := Rasterize(list, dimen.Size{W: px(50), H: px(50)})
	inked := 0
	for y := 18; y < 32; y++ {
		for x := 10; x < 24; x++ {
			if img.RGBAAt(x, y) != rgba(frame.White) {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0)
	assert.Equal(t, rgba(frame.White), img.RGBAAt(40, 45))
}
