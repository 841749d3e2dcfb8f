package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/entity"
	"github.com/plus3/homestead/space"
)

// Frame is rebuilt every frame and never read across frames.
type Frame struct {
	Selected      entity.Handle
	WorldProj     mgl32.Mat4
	WorldView     mgl32.Mat4
	HoverConsumed bool
}

func (f *Frame) Reset() {
	*f = Frame{}
}

// WorldTransform is the gameplay transform computed by the camera this
// frame.
func (f *Frame) WorldTransform() space.Transform {
	return space.Transform{Proj: f.WorldProj, View: f.WorldView}
}

func (f *Frame) SetWorldTransform(t space.Transform) {
	f.WorldProj = t.Proj
	f.WorldView = t.View
}
