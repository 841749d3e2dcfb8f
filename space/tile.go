package space

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldToTile returns the nearest tile index for a world coordinate.
func WorldToTile(world, tileWidth float32) int {
	return int(math.Round(float64(world / tileWidth)))
}

func TileToWorld(tile int, tileWidth float32) float32 {
	return float32(tile) * tileWidth
}

// SnapToTile rounds p to the nearest tile on both axes.
func SnapToTile(p mgl32.Vec2, tileWidth float32) mgl32.Vec2 {
	return mgl32.Vec2{
		TileToWorld(WorldToTile(p.X(), tileWidth), tileWidth),
		TileToWorld(WorldToTile(p.Y(), tileWidth), tileWidth),
	}
}
