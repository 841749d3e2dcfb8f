// Package draw records backend-neutral draw commands. Every submission is
// resolved against the transform bound at that moment and tagged with the
// current z-layer; backends replay Commands in layer order.
package draw

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/space"
)

// Color is RGBA in [0, 1].
type Color = mgl32.Vec4

var (
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
)

// Fade scales the alpha of c.
func Fade(c Color, alpha float32) Color {
	return Color{c[0], c[1], c[2], c[3] * alpha}
}

// Hex converts 0xRRGGBB to an opaque Color.
func Hex(rgb uint32) Color {
	return Color{
		float32(rgb>>16&0xff) / 255,
		float32(rgb>>8&0xff) / 255,
		float32(rgb&0xff) / 255,
		1,
	}
}

type Kind int

const (
	KindRect Kind = iota
	KindImage
	KindText
)

// Command is one recorded submission. Clip maps the local rectangle
// [0, Size] to NDC.
type Command struct {
	Kind   Kind
	Layer  int
	Clip   mgl32.Mat4
	Size   mgl32.Vec2
	Color  Color
	Sprite assets.Sprite
	Text   string
	Font   FontSize
	Quad   space.Quad
}

// FontSize is the rasterized font height and the scale applied to it.
type FontSize struct {
	Height int
	Scale  float32
}

// Pixels is the drawn height of a line in local units.
func (f FontSize) Pixels() float32 {
	return float32(f.Height) * f.Scale
}

// TextMetrics is the visual box of a string in local units, relative to its
// origin.
type TextMetrics struct {
	VisualPosMin mgl32.Vec2
	VisualSize   mgl32.Vec2
}

// TextMeasurer is provided by whatever owns the font.
type TextMeasurer interface {
	MeasureText(text string, font FontSize) TextMetrics
}

// List accumulates a frame's draw commands.
type List struct {
	measurer TextMeasurer
	bound    space.Transform
	layer    int
	layers   []int
	commands []Command
}

func NewList(measurer TextMeasurer) *List {
	return &List{
		measurer: measurer,
		bound:    space.Transform{Proj: mgl32.Ident4(), View: mgl32.Ident4()},
	}
}

// Bind makes t the transform for subsequent submissions.
func (l *List) Bind(t space.Transform) {
	l.bound = t
}

func (l *List) Bound() space.Transform {
	return l.bound
}

// PushLayer sets the z-layer for subsequent submissions until the matching
// PopLayer.
func (l *List) PushLayer(layer int) {
	l.layers = append(l.layers, l.layer)
	l.layer = layer
}

func (l *List) PopLayer() {
	if len(l.layers) == 0 {
		panic("draw: PopLayer without PushLayer")
	}
	l.layer = l.layers[len(l.layers)-1]
	l.layers = l.layers[:len(l.layers)-1]
}

func (l *List) Layer() int {
	return l.layer
}

func (l *List) submit(cmd Command) space.Quad {
	cmd.Layer = l.layer
	cmd.Clip = l.bound.Clip(cmd.Clip)
	cmd.Quad = space.QuadFromMatrix(cmd.Clip, cmd.Size)
	l.commands = append(l.commands, cmd)
	return cmd.Quad
}

// Rect draws a filled rectangle of size at model and returns its NDC quad.
func (l *List) Rect(model mgl32.Mat4, size mgl32.Vec2, color Color) space.Quad {
	return l.submit(Command{Kind: KindRect, Clip: model, Size: size, Color: color})
}

// Image draws sprite stretched to size, tinted by color.
func (l *List) Image(model mgl32.Mat4, sprite assets.Sprite, size mgl32.Vec2, color Color) space.Quad {
	return l.submit(Command{Kind: KindImage, Clip: model, Size: size, Sprite: sprite, Color: color})
}

// Text draws text with its baseline origin at model. The returned quad
// covers the visual bounds of the string.
func (l *List) Text(model mgl32.Mat4, text string, font FontSize, color Color) space.Quad {
	metrics := l.MeasureText(text, font)
	cmd := Command{
		Kind:  KindText,
		Clip:  model,
		Size:  metrics.VisualSize,
		Color: color,
		Text:  text,
		Font:  font,
	}
	cmd.Layer = l.layer
	cmd.Clip = l.bound.Clip(model)
	offset := cmd.Clip.Mul4(mgl32.Translate3D(metrics.VisualPosMin.X(), metrics.VisualPosMin.Y(), 0))
	cmd.Quad = space.QuadFromMatrix(offset, metrics.VisualSize)
	l.commands = append(l.commands, cmd)
	return cmd.Quad
}

func (l *List) MeasureText(text string, font FontSize) TextMetrics {
	if l.measurer == nil {
		return TextMetrics{}
	}
	return l.measurer.MeasureText(text, font)
}

// Reset drops recorded commands and the layer stack.
func (l *List) Reset() {
	l.commands = l.commands[:0]
	l.layers = l.layers[:0]
	l.layer = 0
}

// Len is the number of recorded commands.
func (l *List) Len() int {
	return len(l.commands)
}

// Commands returns the recorded commands ordered by layer, keeping
// submission order within a layer.
func (l *List) Commands() []Command {
	sorted := slices.Clone(l.commands)
	slices.SortStableFunc(sorted, func(a, b Command) int {
		return a.Layer - b.Layer
	})
	return sorted
}
