// Package scripted is a deterministic Input and Clock driven by code. Tests
// and the soak tool use it in place of a window.
package scripted

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"github.com/plus3/homestead/platform"
)

type keySet struct {
	m *intmap.Map[platform.Key, bool]
}

func newKeySet() keySet {
	return keySet{m: intmap.New[platform.Key, bool](int(platform.KeyCount))}
}

func (s keySet) Add(k platform.Key) { s.m.Put(k, true) }
func (s keySet) Del(k platform.Key) { s.m.Del(k) }
func (s keySet) Clear()             { s.m.Clear() }

func (s keySet) Has(k platform.Key) bool {
	_, ok := s.m.Get(k)
	return ok
}

// Input replays presses queued with Press on the next NewFrame.
type Input struct {
	window   mgl32.Vec2
	pointer  mgl32.Vec2
	down     keySet
	queued   keySet
	pressed  keySet
	close    bool
	captured bool
}

func NewInput(width, height float32) *Input {
	return &Input{
		window:  mgl32.Vec2{width, height},
		pointer: mgl32.Vec2{width / 2, height / 2},
		down:    newKeySet(),
		queued:  newKeySet(),
		pressed: newKeySet(),
	}
}

// Press holds k down and reports it as just pressed on the next frame.
func (in *Input) Press(k platform.Key) {
	in.down.Add(k)
	in.queued.Add(k)
}

// Tap is Press followed by Release: one edge, not held.
func (in *Input) Tap(k platform.Key) {
	in.queued.Add(k)
}

func (in *Input) Release(k platform.Key) {
	in.down.Del(k)
}

// SetPointer moves the pointer, in bottom-left origin pixels.
func (in *Input) SetPointer(p mgl32.Vec2) {
	in.pointer = p
}

func (in *Input) SetWindowSize(width, height float32) {
	in.window = mgl32.Vec2{width, height}
}

func (in *Input) RequestClose() {
	in.close = true
}

// SetPointerCaptured simulates an overlay taking the pointer.
func (in *Input) SetPointerCaptured(captured bool) {
	in.captured = captured
}

func (in *Input) NewFrame() {
	in.pressed.Clear()
	for k := range platform.KeyCount {
		if in.queued.Has(k) {
			in.pressed.Add(k)
		}
	}
	in.queued.Clear()
}

func (in *Input) Pointer() mgl32.Vec2    { return in.pointer }
func (in *Input) WindowSize() mgl32.Vec2 { return in.window }
func (in *Input) IsDown(k platform.Key) bool {
	return in.down.Has(k)
}

func (in *Input) JustPressed(k platform.Key) bool {
	return in.pressed.Has(k)
}

func (in *Input) Consume(k platform.Key) {
	in.pressed.Del(k)
}

func (in *Input) CloseRequested() bool  { return in.close }
func (in *Input) PointerCaptured() bool { return in.captured }

// Clock advances only when told to.
type Clock struct {
	now float64
}

func NewClock(start float64) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() float64 { return c.now }

func (c *Clock) Advance(seconds float64) {
	c.now += seconds
}
