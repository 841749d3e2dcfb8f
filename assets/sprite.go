// Package assets names every sprite the game can draw and resolves them to
// backend image handles.
package assets

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// SpriteID addresses a loaded sprite.
type SpriteID int

const (
	SpriteNil SpriteID = iota
	SpritePlayer
	SpriteBarrel
	SpriteTree0
	SpriteTree1
	SpriteTree2
	SpriteItemWood
	SpriteItemRock
	SpriteWardrobe
	SpriteCount
)

var spriteNames = [SpriteCount]string{
	SpriteNil:      "missing_tex",
	SpritePlayer:   "player",
	SpriteBarrel:   "barrel",
	SpriteTree0:    "tree0",
	SpriteTree1:    "tree1",
	SpriteTree2:    "tree2",
	SpriteItemWood: "item_wood",
	SpriteItemRock: "item_rock",
	SpriteWardrobe: "wardrobe",
}

func (id SpriteID) String() string {
	if id < 0 || id >= SpriteCount {
		return fmt.Sprintf("SpriteID(%d)", int(id))
	}
	return spriteNames[id]
}

// FileName is the image file the sprite is loaded from.
func (id SpriteID) FileName() string {
	return id.String() + ".png"
}

// ParseSprite looks a sprite up by its name.
func ParseSprite(name string) (SpriteID, error) {
	for id, n := range spriteNames {
		if n == name {
			return SpriteID(id), nil
		}
	}
	return SpriteNil, fmt.Errorf("unknown sprite %q", name)
}

// UnmarshalText lets catalog files refer to sprites by name.
func (id *SpriteID) UnmarshalText(text []byte) error {
	parsed, err := ParseSprite(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Image is the part of a backend image the core needs.
type Image interface {
	Bounds() image.Rectangle
}

// Sprite is a loaded image and its size in pixels.
type Sprite struct {
	ID    SpriteID
	Image Image
}

func (s Sprite) Size() mgl32.Vec2 {
	if s.Image == nil {
		return mgl32.Vec2{}
	}
	b := s.Image.Bounds()
	return mgl32.Vec2{float32(b.Dx()), float32(b.Dy())}
}
