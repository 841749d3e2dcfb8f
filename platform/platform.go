// Package platform defines what the game needs from the window system:
// pointer and key state, the window size and a clock.
package platform

import "github.com/go-gl/mathgl/mgl32"

// Key is a keyboard key or mouse button.
type Key int

const (
	KeyTab Key = iota
	KeyC
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyF1
	MouseLeft
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyTab:    "Tab",
	KeyC:      "C",
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyEscape: "Escape",
	KeyF1:     "F1",
	MouseLeft: "MouseLeft",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Key(?)"
	}
	return keyNames[k]
}

// Input is sampled once per frame by NewFrame. JustPressed reports a press
// that happened since the previous NewFrame and has not been consumed.
type Input interface {
	NewFrame()
	Pointer() mgl32.Vec2 // pixels, bottom-left origin
	WindowSize() mgl32.Vec2
	IsDown(k Key) bool
	JustPressed(k Key) bool
	Consume(k Key)
	CloseRequested() bool
}

// PointerCapturer is implemented by inputs that can report an overlay
// owning the pointer this frame.
type PointerCapturer interface {
	PointerCaptured() bool
}

// Clock returns monotonic seconds.
type Clock interface {
	Now() float64
}
