package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/game"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/platform/scripted"
	"github.com/plus3/homestead/space"
	"github.com/plus3/homestead/world"
)

// poolReserve is the number of free slots below which the driver stops
// opening the building catalog. Loot spawns before its source is
// destroyed, so a few slots must stay free.
const poolReserve = 32

type action int

const (
	actionIdle action = iota
	actionWalk
	actionClickWorld
	actionClickScreen
	actionToggleInventory
	actionToggleBuilding
	actionCount
)

var actionNames = [actionCount]string{
	actionIdle:            "idle",
	actionWalk:            "walk",
	actionClickWorld:      "click_world",
	actionClickScreen:     "click_screen",
	actionToggleInventory: "toggle_inventory",
	actionToggleBuilding:  "toggle_building",
}

// Relative weights of each action per frame.
var actionWeights = [actionCount]int{
	actionIdle:            20,
	actionWalk:            10,
	actionClickWorld:      30,
	actionClickScreen:     10,
	actionToggleInventory: 2,
	actionToggleBuilding:  3,
}

var walkKeys = []platform.Key{platform.KeyW, platform.KeyA, platform.KeyS, platform.KeyD}

// driver feeds random input to a headless game.
type driver struct {
	rng   *rand.Rand
	game  *game.Game
	input *scripted.Input
	uiW   float32
	uiH   float32

	counts    [actionCount]int64
	throttled int64
	peak      int
}

// nearFull reports whether placing another building could exhaust the pool.
func (d *driver) nearFull() bool {
	pool := d.game.World().Pool
	return pool.Len() >= pool.Cap()-poolReserve
}

func (d *driver) pick() action {
	total := 0
	for _, w := range actionWeights {
		total += w
	}
	n := d.rng.IntN(total)
	for a, w := range actionWeights {
		if n < w {
			return action(a)
		}
		n -= w
	}
	return actionIdle
}

// next queues input for the coming frame.
func (d *driver) next() {
	for _, k := range walkKeys {
		d.input.Release(k)
	}

	w := d.game.World()
	d.peak = max(d.peak, w.Pool.Len())

	if d.nearFull() && (w.UX == world.UXBuilding || w.UX == world.UXPlacement) {
		d.throttled++
		d.input.Tap(platform.KeyTab)
		return
	}

	a := d.pick()
	if a == actionToggleBuilding && d.nearFull() {
		d.throttled++
		a = actionIdle
	}
	d.counts[a]++

	switch a {
	case actionWalk:
		d.input.Press(walkKeys[d.rng.IntN(len(walkKeys))])
	case actionClickWorld:
		window := d.input.WindowSize()
		t := space.WorldSpace(window, w.Camera.Pos, w.Camera.Zoom)
		target := w.Camera.Pos.Add(mgl32.Vec2{
			(d.rng.Float32()*2 - 1) * 64,
			(d.rng.Float32()*2 - 1) * 48,
		})
		d.input.SetPointer(space.NDCToPixels(t.WorldToNDC(target), window))
		d.input.Tap(platform.MouseLeft)
	case actionClickScreen:
		window := d.input.WindowSize()
		t := space.ScreenSpace(d.uiW, d.uiH)
		target := mgl32.Vec2{d.rng.Float32() * d.uiW, d.rng.Float32() * d.uiH}
		d.input.SetPointer(space.NDCToPixels(t.WorldToNDC(target), window))
		d.input.Tap(platform.MouseLeft)
	case actionToggleInventory:
		d.input.Tap(platform.KeyTab)
	case actionToggleBuilding:
		d.input.Tap(platform.KeyC)
	}
}
