package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/anim"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/space"
)

var tileColor = draw.Color{1, 1, 1, 0.1}

// TileSystem draws a checkerboard around the player.
type TileSystem struct{}

func (s *TileSystem) Execute(f *Frame) {
	player := f.World.PlayerEntity()
	if player == nil {
		return
	}
	cfg := f.Config.World
	tile := cfg.TileWidth
	px := space.WorldToTile(player.Pos.X(), tile)
	py := space.WorldToTile(player.Pos.Y(), tile)

	for x := px - cfg.TileViewWidth; x < px+cfg.TileViewWidth; x++ {
		for y := py - cfg.TileViewHeight; y < py+cfg.TileViewHeight; y++ {
			if !checker(x, y) {
				continue
			}
			model := mgl32.Translate3D(space.TileToWorld(x, tile)-tile/2, space.TileToWorld(y, tile)-tile/2, 0)
			f.Draw.Rect(model, mgl32.Vec2{tile, tile}, tileColor)
		}
	}
}

func checker(x, y int) bool {
	offset := 0
	if y%2 == 0 {
		offset = 1
	}
	return (x+offset)%2 == 0
}

// SelectionSystem picks the destroyable entity nearest the pointer, unless
// the UI already took the hover this frame.
type SelectionSystem struct{}

func (s *SelectionSystem) Execute(f *Frame) {
	if f.State.HoverConsumed {
		return
	}
	pointer := f.State.WorldTransform().PointerToWorld(f.Input.Pointer(), f.Input.WindowSize())
	radius := f.Config.World.SelectionRadius

	smallest := float32(math.Inf(1))
	for h, e := range f.World.Pool.All() {
		if !e.DestroyableWorldItem {
			continue
		}
		dist := e.Pos.Sub(pointer).Len()
		if dist >= radius {
			continue
		}
		if f.State.Selected.IsNil() || dist < smallest {
			f.State.Selected = h
			smallest = dist
		}
	}
}

// PickupSystem absorbs every item within reach of the player.
type PickupSystem struct{}

func (s *PickupSystem) Execute(f *Frame) {
	player := f.World.PlayerEntity()
	if player == nil {
		return
	}
	radius := f.Config.World.PickupRadius
	for h, e := range f.World.Pool.All() {
		if e.IsItem && e.Pos.Sub(player.Pos).Len() < radius {
			f.World.Pickup(h)
		}
	}
}

// DamageSystem hits the selected entity on click.
type DamageSystem struct{}

func (s *DamageSystem) Execute(f *Frame) {
	if !f.Input.JustPressed(platform.MouseLeft) {
		return
	}
	f.Input.Consume(platform.MouseLeft)
	if f.State.Selected.IsNil() {
		return
	}
	f.World.Damage(f.State.Selected)
}

// EntityRenderSystem draws every entity standing on its tile. The selected
// entity is tinted red and items bob.
type EntityRenderSystem struct{}

func (s *EntityRenderSystem) Execute(f *Frame) {
	tile := f.Config.World.TileWidth
	bob := 2 * anim.SinBreathe(f.Now, 5)

	for h, e := range f.World.Pool.All() {
		if !e.RenderSprite {
			continue
		}
		sprite := f.Atlas.Get(e.Sprite)
		size := sprite.Size()

		offset := mgl32.Vec2{-size.X() / 2, -tile / 2}
		if e.IsItem {
			offset[1] += bob
		}
		pos := e.Pos.Add(offset)

		color := draw.White
		if h == f.State.Selected {
			color = draw.Red
		}
		f.Draw.Image(mgl32.Translate3D(pos.X(), pos.Y(), 0), sprite, size, color)
	}
}

// MovementSystem walks the player along the WASD axis.
type MovementSystem struct{}

func (s *MovementSystem) Execute(f *Frame) {
	player := f.World.PlayerEntity()
	if player == nil {
		return
	}

	var axis mgl32.Vec2
	if f.Input.IsDown(platform.KeyA) {
		axis[0] -= 1
	}
	if f.Input.IsDown(platform.KeyD) {
		axis[0] += 1
	}
	if f.Input.IsDown(platform.KeyS) {
		axis[1] -= 1
	}
	if f.Input.IsDown(platform.KeyW) {
		axis[1] += 1
	}
	if axis.Len() == 0 {
		return
	}
	step := float32(f.DeltaTime) * f.Config.World.PlayerSpeed
	player.Pos = player.Pos.Add(axis.Normalize().Mul(step))
}

// QuitSystem ends the game on Escape or when the window is closed.
type QuitSystem struct{}

func (s *QuitSystem) Execute(f *Frame) {
	if f.Input.JustPressed(platform.KeyEscape) {
		f.Input.Consume(platform.KeyEscape)
		f.RequestQuit()
	}
	if f.Input.CloseRequested() {
		f.RequestQuit()
	}
}
