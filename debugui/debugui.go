// Package debugui draws Dear ImGui inspector windows over the game: world
// state, an entity browser and per-system timings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/homestead/game"
)

// Overlay owns the inspector windows. Call Render between the imgui
// backend's BeginFrame and EndFrame.
type Overlay struct {
	game    *game.Game
	visible bool

	world   WorldInspector
	browser EntityBrowser
	perf    PerformanceStats
}

func New(g *game.Game, visible bool) *Overlay {
	return &Overlay{
		game:    g,
		visible: visible,
		browser: NewEntityBrowser(100),
		perf:    NewPerformanceStats(120),
	}
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool {
	return o.visible
}

// WantCaptureMouse reports whether an inspector window is under the
// pointer.
func (o *Overlay) WantCaptureMouse() bool {
	return o.visible && imgui.CurrentIO().WantCaptureMouse()
}

// Render draws every window for this frame.
func (o *Overlay) Render(deltaTime float32) {
	if !o.visible {
		return
	}
	o.world.Render(o.game, o.browser.Selected())
	o.browser.Render(o.game.World())
	o.perf.Render(o.game.Stats(), o.game.Frames(), deltaTime)
}
