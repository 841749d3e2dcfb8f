package assets

import (
	"image"
	"image/color"
)

type placeholderSpec struct {
	width, height int
	fill          color.RGBA
}

var placeholders = [SpriteCount]placeholderSpec{
	SpriteNil:      {16, 16, color.RGBA{255, 0, 255, 255}},
	SpritePlayer:   {8, 12, color.RGBA{100, 150, 255, 255}},
	SpriteBarrel:   {8, 10, color.RGBA{150, 95, 50, 255}},
	SpriteTree0:    {12, 20, color.RGBA{60, 140, 70, 255}},
	SpriteTree1:    {12, 22, color.RGBA{50, 130, 80, 255}},
	SpriteTree2:    {14, 24, color.RGBA{70, 150, 60, 255}},
	SpriteItemWood: {8, 8, color.RGBA{170, 120, 70, 255}},
	SpriteItemRock: {8, 8, color.RGBA{120, 120, 130, 255}},
	SpriteWardrobe: {12, 16, color.RGBA{110, 70, 40, 255}},
}

// Placeholder generates a flat coloured stand-in for id with a dark
// outline. The missing sprite is a checkerboard.
func Placeholder(id SpriteID) *image.RGBA {
	if id < 0 || id >= SpriteCount {
		id = SpriteNil
	}
	spec := placeholders[id]
	img := image.NewRGBA(image.Rect(0, 0, spec.width, spec.height))
	outline := color.RGBA{0, 0, 0, 255}

	for y := 0; y < spec.height; y++ {
		for x := 0; x < spec.width; x++ {
			c := spec.fill
			switch {
			case id == SpriteNil && (x/4+y/4)%2 == 1:
				c = outline
			case id != SpriteNil && (x == 0 || y == 0 || x == spec.width-1 || y == spec.height-1):
				c = outline
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// PlaceholderAtlas fills every slot with a generated image.
func PlaceholderAtlas() *Atlas {
	a := NewAtlas()
	for id := range SpriteCount {
		a.Set(id, Placeholder(id))
	}
	return a
}
