// Package game runs the frame: camera, UI, world interaction and movement,
// always in that order, against a single World.
package game

import (
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/catalog"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/world"
	"go.uber.org/zap"
)

// Z-layers. UI draws above the world.
const (
	LayerWorld = 10
	LayerUI    = 20
)

// Options wires a Game to its collaborators. Atlas and Measurer may be nil;
// placeholders are used instead.
type Options struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Input    platform.Input
	Clock    platform.Clock
	Atlas    *assets.Atlas
	Measurer draw.TextMeasurer
	Logger   *zap.Logger
}

// Game owns the World and steps it one frame at a time.
type Game struct {
	cfg       *config.Config
	world     *world.World
	state     world.Frame
	input     platform.Input
	clock     platform.Clock
	atlas     *assets.Atlas
	draw      *draw.List
	scheduler *Scheduler
	logger    *zap.Logger

	last   float64
	frames int64
}

func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	atlas := opts.Atlas
	if atlas == nil {
		atlas = assets.PlaceholderAtlas()
	}
	if err := atlas.Validate(); err != nil {
		logger.Warn("incomplete atlas, missing sprites draw as the fallback", zap.Error(err))
	}
	measurer := opts.Measurer
	if measurer == nil {
		measurer = draw.FixedMeasurer{Advance: 0.5, Ascent: 0.7}
	}

	w := world.New(opts.Catalog, logger.Named("world"))
	w.Camera.Zoom = opts.Config.Camera.Zoom

	g := &Game{
		cfg:       opts.Config,
		world:     w,
		input:     opts.Input,
		clock:     opts.Clock,
		atlas:     atlas,
		draw:      draw.NewList(measurer),
		scheduler: NewScheduler(),
		logger:    logger,
		last:      opts.Clock.Now(),
	}

	g.scheduler.Register(&CameraSystem{})
	g.scheduler.Register(&UISystem{})
	g.scheduler.Register(&TileSystem{})
	g.scheduler.Register(&SelectionSystem{})
	g.scheduler.Register(&PickupSystem{})
	g.scheduler.Register(&DamageSystem{})
	g.scheduler.Register(&EntityRenderSystem{})
	g.scheduler.Register(&MovementSystem{})
	g.scheduler.Register(&QuitSystem{})

	return g
}

// Step runs one frame and reports whether the game asked to quit.
func (g *Game) Step() (quit bool) {
	g.state.Reset()
	g.draw.Reset()

	now := g.clock.Now()
	dt := now - g.last
	g.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > g.cfg.Camera.MaxDeltaTime {
		dt = g.cfg.Camera.MaxDeltaTime
	}

	g.input.NewFrame()
	if capturer, ok := g.input.(platform.PointerCapturer); ok && capturer.PointerCaptured() {
		g.state.HoverConsumed = true
		g.input.Consume(platform.MouseLeft)
	}

	frame := &Frame{
		DeltaTime: dt,
		Now:       now,
		World:     g.world,
		State:     &g.state,
		Input:     g.input,
		Draw:      g.draw,
		Atlas:     g.atlas,
		Config:    g.cfg,
		Logger:    g.logger,
	}
	g.scheduler.Once(frame)
	g.frames++

	if frame.quit {
		g.logger.Info("quit requested", zap.Int64("frames", g.frames))
	}
	return frame.quit
}

func (g *Game) World() *world.World    { return g.world }
func (g *Game) State() *world.Frame    { return &g.state }
func (g *Game) DrawList() *draw.List   { return g.draw }
func (g *Game) Atlas() *assets.Atlas   { return g.atlas }
func (g *Game) Config() *config.Config { return g.cfg }
func (g *Game) Frames() int64          { return g.frames }
func (g *Game) Stats() *SchedulerStats { return g.scheduler.GetStats() }
func (g *Game) SystemNames() []string  { return g.scheduler.Names() }
