package game

import (
	"github.com/plus3/homestead/anim"
	"github.com/plus3/homestead/space"
)

// CameraSystem eases the camera toward the player and publishes this
// frame's world transform. It leaves world space bound on the world layer.
type CameraSystem struct{}

func (s *CameraSystem) Execute(f *Frame) {
	cam := &f.World.Camera
	if player := f.World.PlayerEntity(); player != nil {
		anim.Vec2ToTarget(&cam.Pos, player.Pos, f.DeltaTime, f.Config.Camera.Rate)
	}

	t := space.WorldSpace(f.Input.WindowSize(), cam.Pos, cam.Zoom)
	f.State.SetWorldTransform(t)

	f.Draw.Bind(t)
	f.Draw.PushLayer(LayerWorld)
}
