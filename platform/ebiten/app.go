// Package ebiten runs the game in an ebiten window with a Dear ImGui
// inspector overlay.
package ebiten

import (
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/homestead/catalog"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/debugui"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/game"
	"github.com/plus3/homestead/platform"
	"go.uber.org/zap"
)

// App implements ebiten.Game. Each Update steps the game once inside an
// ImGui frame.
type App struct {
	game     *game.Game
	input    *Input
	clock    *Clock
	renderer *Renderer
	backend  *ebitenbackend.EbitenBackend
	overlay  *debugui.Overlay
	clear    color.Color
	logger   *zap.Logger

	lastFrame float64
}

func NewApp(cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger) *App {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	imgui.CurrentIO().SetIniFilename("")

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	fonts := NewFontMeasurer()
	input := NewInput(cfg.Window.Width, cfg.Window.Height)
	clock := NewClock()

	g := game.New(game.Options{
		Config:   cfg,
		Catalog:  cat,
		Input:    input,
		Clock:    clock,
		Atlas:    LoadAtlas(cfg.Assets.SpriteDir, logger.Named("assets")),
		Measurer: fonts,
		Logger:   logger,
	})

	app := &App{
		game:     g,
		input:    input,
		clock:    clock,
		renderer: NewRenderer(fonts),
		backend:  backend,
		overlay:  debugui.New(g, cfg.Debug.Overlay),
		clear:    toColor(draw.Hex(cfg.Window.ClearColor)),
		logger:   logger,
	}
	input.SetCaptureFunc(app.overlay.WantCaptureMouse)
	return app
}

func (a *App) Game() *game.Game {
	return a.game
}

func (a *App) Update() error {
	a.backend.BeginFrame()
	defer a.backend.EndFrame()

	quit := a.game.Step()

	if a.input.JustPressed(platform.KeyF1) {
		a.overlay.Toggle()
		a.logger.Debug("overlay toggled", zap.Bool("visible", a.overlay.Visible()))
	}

	now := a.clock.Now()
	a.overlay.Render(float32(now - a.lastFrame))
	a.lastFrame = now

	if quit {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.clear)
	a.renderer.Render(screen, a.game.DrawList().Commands())
	a.backend.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.backend.Layout(outsideWidth, outsideHeight)
	a.input.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run blocks until the window closes or the game quits.
func (a *App) Run() error {
	return ebiten.RunGame(a)
}
