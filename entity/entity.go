// Package entity holds the fixed-capacity pool of game objects.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/assets"
)

// Entity is one pool slot. When Valid is false no other field means
// anything.
type Entity struct {
	Valid                bool
	Arch                 Archetype
	Pos                  mgl32.Vec2
	RenderSprite         bool
	Sprite               assets.SpriteID
	Health               int
	DestroyableWorldItem bool
	IsItem               bool
}

// Handle encodes a slot generation (upper 32 bits) and slot index (lower 32
// bits). A handle stops resolving once its slot is destroyed.
type Handle uint64

func NewHandle(index uint32, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Nil is the zero handle. It never resolves.
const Nil Handle = 0

func (h Handle) IsNil() bool {
	return h == Nil
}
