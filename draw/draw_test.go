package draw_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/space"
	"github.com/stretchr/testify/assert"
)

func TestListLayers(t *testing.T) {
	list := draw.NewList(nil)
	list.Bind(space.ScreenSpace(240, 135))

	list.PushLayer(10)
	list.Rect(mgl32.Ident4(), mgl32.Vec2{1, 1}, draw.White)
	list.PushLayer(20)
	list.Rect(mgl32.Ident4(), mgl32.Vec2{2, 2}, draw.White)
	list.PopLayer()
	list.Rect(mgl32.Ident4(), mgl32.Vec2{3, 3}, draw.White)
	list.PopLayer()

	assert.Equal(t, 0, list.Layer())

	cmds := list.Commands()
	if assert.Len(t, cmds, 3) {
		assert.Equal(t, mgl32.Vec2{1, 1}, cmds[0].Size)
		assert.Equal(t, mgl32.Vec2{3, 3}, cmds[1].Size)
		assert.Equal(t, mgl32.Vec2{2, 2}, cmds[2].Size)
		assert.Equal(t, 20, cmds[2].Layer)
	}

	assert.Panics(t, func() { list.PopLayer() })

	list.Reset()
	assert.Zero(t, list.Len())
}

func TestListUsesBoundTransform(t *testing.T) {
	list := draw.NewList(nil)
	screen := space.ScreenSpace(240, 135)
	list.Bind(screen)

	q := list.Rect(mgl32.Translate3D(120, 67.5, 0), mgl32.Vec2{120, 67.5}, draw.White)
	assert.InDelta(t, 0, q.BottomLeft.X(), 1e-5)
	assert.InDelta(t, 0, q.BottomLeft.Y(), 1e-5)
	assert.InDelta(t, 1, q.TopRight.X(), 1e-5)
	assert.InDelta(t, 1, q.TopRight.Y(), 1e-5)

	world := space.WorldSpace(mgl32.Vec2{1280, 720}, mgl32.Vec2{0, 0}, 1)
	list.Bind(world)
	assert.Equal(t, world, list.Bound())

	q = list.Image(mgl32.Ident4(), assets.Sprite{}, mgl32.Vec2{640, 360}, draw.White)
	assert.InDelta(t, 1, q.TopRight.X(), 1e-5)
	assert.InDelta(t, 1, q.TopRight.Y(), 1e-5)
}

func TestListText(t *testing.T) {
	list := draw.NewList(draw.FixedMeasurer{Advance: 0.5, Ascent: 1})
	list.Bind(space.ScreenSpace(240, 135))

	font := draw.FontSize{Height: 48, Scale: 0.1}
	metrics := list.MeasureText("x12", font)
	assert.InDelta(t, 7.2, metrics.VisualSize.X(), 1e-4)
	assert.InDelta(t, 4.8, metrics.VisualSize.Y(), 1e-4)

	q := list.Text(mgl32.Translate3D(10, 10, 0), "x12", font, draw.White)
	r := space.QuadToScreen(q, list.Bound()).Range()
	assert.InDelta(t, 10, r.Min.X(), 1e-3)
	assert.InDelta(t, 17.2, r.Max.X(), 1e-3)
	assert.InDelta(t, 14.8, r.Max.Y(), 1e-3)
}

func TestColors(t *testing.T) {
	assert.Equal(t, draw.Color{1, 0, 0, 0.25}, draw.Fade(draw.Red, 0.25))

	c := draw.Hex(0x2a2d3a)
	assert.InDelta(t, 42.0/255, c[0], 1e-6)
	assert.InDelta(t, 58.0/255, c[2], 1e-6)
	assert.Equal(t, float32(1), c[3])
}
