package ebiten

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/homestead/platform"
)

var keyMap = [platform.KeyCount]ebiten.Key{
	platform.KeyTab:    ebiten.KeyTab,
	platform.KeyC:      ebiten.KeyC,
	platform.KeyW:      ebiten.KeyW,
	platform.KeyA:      ebiten.KeyA,
	platform.KeyS:      ebiten.KeyS,
	platform.KeyD:      ebiten.KeyD,
	platform.KeyEscape: ebiten.KeyEscape,
	platform.KeyF1:     ebiten.KeyF1,
}

// Input samples ebiten's keyboard and mouse once per frame. Pointer
// coordinates are flipped to a bottom-left origin.
type Input struct {
	pointer  mgl32.Vec2
	window   mgl32.Vec2
	down     [platform.KeyCount]bool
	pressed  [platform.KeyCount]bool
	consumed [platform.KeyCount]bool

	// captured reports whether an overlay owns the pointer.
	captured func() bool
}

func NewInput(width, height int) *Input {
	return &Input{window: mgl32.Vec2{float32(width), float32(height)}}
}

func (in *Input) SetWindowSize(width, height int) {
	in.window = mgl32.Vec2{float32(width), float32(height)}
}

func (in *Input) SetCaptureFunc(fn func() bool) {
	in.captured = fn
}

func (in *Input) NewFrame() {
	x, y := ebiten.CursorPosition()
	in.pointer = mgl32.Vec2{float32(x), in.window.Y() - float32(y)}

	for k := range platform.KeyCount {
		in.consumed[k] = false
		if k == platform.MouseLeft {
			in.down[k] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
			in.pressed[k] = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
			continue
		}
		in.down[k] = ebiten.IsKeyPressed(keyMap[k])
		in.pressed[k] = inpututil.IsKeyJustPressed(keyMap[k])
	}
}

func (in *Input) Pointer() mgl32.Vec2    { return in.pointer }
func (in *Input) WindowSize() mgl32.Vec2 { return in.window }

func (in *Input) IsDown(k platform.Key) bool {
	return k >= 0 && k < platform.KeyCount && in.down[k]
}

func (in *Input) JustPressed(k platform.Key) bool {
	return k >= 0 && k < platform.KeyCount && in.pressed[k] && !in.consumed[k]
}

func (in *Input) Consume(k platform.Key) {
	if k >= 0 && k < platform.KeyCount {
		in.consumed[k] = true
	}
}

func (in *Input) CloseRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

func (in *Input) PointerCaptured() bool {
	return in.captured != nil && in.captured()
}
