package scripted_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/platform/scripted"
	"github.com/stretchr/testify/assert"
)

func TestInputEdges(t *testing.T) {
	in := scripted.NewInput(1280, 720)
	var _ platform.Input = in
	var _ platform.PointerCapturer = in

	in.Press(platform.KeyW)
	assert.False(t, in.JustPressed(platform.KeyW), "edge appears on the next frame")

	in.NewFrame()
	assert.True(t, in.JustPressed(platform.KeyW))
	assert.True(t, in.IsDown(platform.KeyW))

	in.NewFrame()
	assert.False(t, in.JustPressed(platform.KeyW), "held keys fire once")
	assert.True(t, in.IsDown(platform.KeyW))

	in.Release(platform.KeyW)
	assert.False(t, in.IsDown(platform.KeyW))
}

func TestInputConsume(t *testing.T) {
	in := scripted.NewInput(1280, 720)
	in.Tap(platform.MouseLeft)
	in.NewFrame()

	assert.True(t, in.JustPressed(platform.MouseLeft))
	assert.False(t, in.IsDown(platform.MouseLeft))
	in.Consume(platform.MouseLeft)
	assert.False(t, in.JustPressed(platform.MouseLeft))
}

func TestInputState(t *testing.T) {
	in := scripted.NewInput(1280, 720)
	assert.Equal(t, mgl32.Vec2{640, 360}, in.Pointer())

	in.SetPointer(mgl32.Vec2{10, 20})
	in.SetWindowSize(800, 600)
	in.RequestClose()
	in.SetPointerCaptured(true)

	assert.Equal(t, mgl32.Vec2{10, 20}, in.Pointer())
	assert.Equal(t, mgl32.Vec2{800, 600}, in.WindowSize())
	assert.True(t, in.CloseRequested())
	assert.True(t, in.PointerCaptured())
}

func TestClock(t *testing.T) {
	c := scripted.NewClock(5)
	var _ platform.Clock = c
	c.Advance(0.25)
	assert.Equal(t, 5.25, c.Now())
}
