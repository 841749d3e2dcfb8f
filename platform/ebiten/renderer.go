package ebiten

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/space"
)

// Renderer replays draw commands onto an ebiten image. Commands carry NDC
// quads; only their axis-aligned bounds are used.
type Renderer struct {
	fonts  *FontMeasurer
	images map[assets.SpriteID]*ebiten.Image
}

func NewRenderer(fonts *FontMeasurer) *Renderer {
	return &Renderer{fonts: fonts, images: make(map[assets.SpriteID]*ebiten.Image)}
}

func (r *Renderer) Render(dst *ebiten.Image, commands []draw.Command) {
	b := dst.Bounds()
	window := mgl32.Vec2{float32(b.Dx()), float32(b.Dy())}

	for i := range commands {
		cmd := &commands[i]
		rect := space.NDCRangeToTopLeft(cmd.Quad.Range(), window)
		size := rect.Size()
		if size.X() <= 0 || size.Y() <= 0 {
			continue
		}

		switch cmd.Kind {
		case draw.KindRect:
			vector.DrawFilledRect(dst, rect.Min.X(), rect.Min.Y(), size.X(), size.Y(), toColor(cmd.Color), false)
		case draw.KindImage:
			r.drawImage(dst, cmd, rect)
		case draw.KindText:
			r.drawText(dst, cmd, rect)
		}
	}
}

func (r *Renderer) drawImage(dst *ebiten.Image, cmd *draw.Command, rect space.Range) {
	img := r.image(cmd.Sprite)
	if img == nil {
		return
	}
	ib := img.Bounds()
	size := rect.Size()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.X())/float64(ib.Dx()), float64(size.Y())/float64(ib.Dy()))
	op.GeoM.Translate(float64(rect.Min.X()), float64(rect.Min.Y()))
	applyColor(&op.ColorScale, cmd.Color)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(img, op)
}

func (r *Renderer) drawText(dst *ebiten.Image, cmd *draw.Command, rect space.Range) {
	ascent, descent := r.fonts.lineMetrics()
	scale := rect.Size().Y() / (ascent + descent)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(rect.Min.X()), float64(rect.Max.Y()-descent*scale))
	applyColor(&op.ColorScale, cmd.Color)
	text.DrawWithOptions(dst, cmd.Text, r.fonts.Face(), op)
}

// image converts sprite images that are not already GPU images once and
// keeps them by id.
func (r *Renderer) image(sprite assets.Sprite) *ebiten.Image {
	switch img := sprite.Image.(type) {
	case *ebiten.Image:
		return img
	case image.Image:
		if cached, ok := r.images[sprite.ID]; ok {
			return cached
		}
		converted := ebiten.NewImageFromImage(img)
		r.images[sprite.ID] = converted
		return converted
	}
	return nil
}

func applyColor(cs *ebiten.ColorScale, c draw.Color) {
	cs.Scale(c[0], c[1], c[2], 1)
	cs.ScaleAlpha(c[3])
}

func toColor(c draw.Color) color.Color {
	clamp := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{clamp(c[0]), clamp(c[1]), clamp(c[2]), clamp(c[3])}
}
