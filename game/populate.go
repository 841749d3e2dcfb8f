package game

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/entity"
	"github.com/plus3/homestead/space"
	"github.com/plus3/homestead/world"
)

// Populate spawns the player at the origin and scatters barrels and trees
// on tiles within the spawn extent.
func Populate(w *world.World, rng *rand.Rand, cfg config.WorldConfig) {
	w.SpawnPlayer(mgl32.Vec2{0, 0})

	randomTile := func() mgl32.Vec2 {
		p := mgl32.Vec2{
			(rng.Float32()*2 - 1) * cfg.SpawnExtent,
			(rng.Float32()*2 - 1) * cfg.SpawnExtent,
		}
		return space.SnapToTile(p, cfg.TileWidth)
	}

	for range cfg.Barrels {
		w.Spawn(entity.ArchBarrel, randomTile())
	}
	for range cfg.Trees {
		_, e := w.Spawn(entity.ArchTree, randomTile())
		e.Sprite = assets.SpriteTree0 + assets.SpriteID(rng.IntN(3))
	}
}

// NewRand seeds a PCG source. A zero seed draws one from the runtime.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
