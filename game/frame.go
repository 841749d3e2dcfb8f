package game

import (
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/world"
	"go.uber.org/zap"
)

// Frame is what every system sees during one Step.
type Frame struct {
	DeltaTime float64
	Now       float64

	World  *world.World
	State  *world.Frame
	Input  platform.Input
	Draw   *draw.List
	Atlas  *assets.Atlas
	Config *config.Config
	Logger *zap.Logger

	quit bool
}

// RequestQuit makes Step report that the game should exit.
func (f *Frame) RequestQuit() {
	f.quit = true
}
