package game_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/catalog"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/entity"
	"github.com/plus3/homestead/game"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/platform/scripted"
	"github.com/plus3/homestead/space"
	"github.com/plus3/homestead/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const frameTime = 1.0 / 60

type harness struct {
	t     *testing.T
	cfg   *config.Config
	game  *game.Game
	input *scripted.Input
	clock *scripted.Clock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Default()
	cat, err := catalog.Default(nil)
	require.NoError(t, err)

	input := scripted.NewInput(float32(cfg.Window.Width), float32(cfg.Window.Height))
	clock := scripted.NewClock(0)
	g := game.New(game.Options{Config: cfg, Catalog: cat, Input: input, Clock: clock})
	g.World().SpawnPlayer(mgl32.Vec2{0, 0})

	return &harness{t: t, cfg: cfg, game: g, input: input, clock: clock}
}

func (h *harness) step() bool {
	h.clock.Advance(frameTime)
	return h.game.Step()
}

func (h *harness) world() *world.World {
	return h.game.World()
}

// pointAtWorld moves the pointer over a world position under the current
// camera.
func (h *harness) pointAtWorld(p mgl32.Vec2) {
	window := h.input.WindowSize()
	t := space.WorldSpace(window, h.world().Camera.Pos, h.world().Camera.Zoom)
	h.input.SetPointer(space.NDCToPixels(t.WorldToNDC(p), window))
}

// pointAtScreen moves the pointer over a virtual screen position.
func (h *harness) pointAtScreen(p mgl32.Vec2) {
	window := h.input.WindowSize()
	t := space.ScreenSpace(h.cfg.UI.Width, h.cfg.UI.Height)
	h.input.SetPointer(space.NDCToPixels(t.WorldToNDC(p), window))
}

func (h *harness) worldUnderPointer() mgl32.Vec2 {
	window := h.input.WindowSize()
	t := space.WorldSpace(window, h.world().Camera.Pos, h.world().Camera.Zoom)
	return t.PointerToWorld(h.input.Pointer(), window)
}

func (h *harness) click() {
	h.input.Tap(platform.MouseLeft)
	h.step()
}

func (h *harness) entities(arch entity.Archetype) []entity.Entity {
	var out []entity.Entity
	for _, e := range h.world().Pool.All() {
		if e.Arch == arch {
			out = append(out, *e)
		}
	}
	return out
}

// Center of the only building icon in the catalog bar.
var buildingIcon = mgl32.Vec2{120, 16}

func TestHoverArbitration(t *testing.T) {
	h := newHarness(t)
	h.pointAtScreen(buildingIcon)
	tree, _ := h.world().Spawn(entity.ArchTree, h.worldUnderPointer())

	t.Run("world selects when the catalog is closed", func(t *testing.T) {
		h.step()
		assert.False(t, h.game.State().HoverConsumed)
		assert.Equal(t, tree, h.game.State().Selected)
	})

	t.Run("icon hover blocks world selection", func(t *testing.T) {
		h.input.Tap(platform.KeyC)
		h.step()
		require.Equal(t, world.UXBuilding, h.world().UX)
		assert.True(t, h.game.State().HoverConsumed)
		assert.True(t, h.game.State().Selected.IsNil())
	})

	t.Run("clicking the icon does not damage the entity", func(t *testing.T) {
		h.click()
		assert.Equal(t, world.UXPlacement, h.world().UX)
		assert.Equal(t, 4, h.world().Pool.Get(tree).Health)
	})
}

func TestTreeDestroyedAfterFourHits(t *testing.T) {
	h := newHarness(t)
	pos := mgl32.Vec2{48, 48}
	tree, _ := h.world().Spawn(entity.ArchTree, pos)
	h.pointAtWorld(pos)

	for hit := 1; hit <= 3; hit++ {
		h.click()
		e := h.world().Pool.Get(tree)
		require.NotNil(t, e, "hit %d", hit)
		assert.Equal(t, 4-hit, e.Health)
	}

	h.click()
	assert.Nil(t, h.world().Pool.Get(tree))
	assert.Empty(t, h.entities(entity.ArchTree))

	wood := h.entities(entity.ArchItemWood)
	require.Len(t, wood, 1)
	assert.Equal(t, pos, wood[0].Pos)

	h.click()
	assert.Len(t, h.entities(entity.ArchItemWood), 1, "clicking empty ground spawns nothing")
}

func TestClickWithoutSelection(t *testing.T) {
	h := newHarness(t)
	barrel, _ := h.world().Spawn(entity.ArchBarrel, mgl32.Vec2{64, 0})
	h.pointAtWorld(mgl32.Vec2{-64, 0})

	h.click()
	assert.Equal(t, 3, h.world().Pool.Get(barrel).Health)
}

func TestSelectionPicksNearest(t *testing.T) {
	h := newHarness(t)
	far, _ := h.world().Spawn(entity.ArchBarrel, mgl32.Vec2{40, 0})
	near, _ := h.world().Spawn(entity.ArchBarrel, mgl32.Vec2{52, 0})
	h.world().Spawn(entity.ArchItemWood, mgl32.Vec2{50, 0})
	h.pointAtWorld(mgl32.Vec2{50, 0})

	h.step()
	assert.Equal(t, near, h.game.State().Selected)
	assert.NotEqual(t, far, h.game.State().Selected)
}

func TestSelectionTieKeepsLowerSlot(t *testing.T) {
	cases := []struct {
		name        string
		first, then mgl32.Vec2
	}{
		{"left first", mgl32.Vec2{-8, 0}, mgl32.Vec2{8, 0}},
		{"right first", mgl32.Vec2{8, 0}, mgl32.Vec2{-8, 0}},
		{"vertical", mgl32.Vec2{0, 8}, mgl32.Vec2{0, -8}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			first, _ := h.world().Spawn(entity.ArchBarrel, tc.first)
			second, _ := h.world().Spawn(entity.ArchBarrel, tc.then)
			require.Less(t, first.Index(), second.Index())

			// The pointer starts at the window center, over the camera.
			h.step()
			require.Equal(t, mgl32.Vec2{0, 0}, h.worldUnderPointer())
			assert.Equal(t, first, h.game.State().Selected)
		})
	}
}

func TestPickupCountedOnce(t *testing.T) {
	h := newHarness(t)
	h.world().Spawn(entity.ArchItemWood, mgl32.Vec2{10, 0})
	h.world().Spawn(entity.ArchItemRock, mgl32.Vec2{-5, 5})
	h.world().Spawn(entity.ArchItemRock, mgl32.Vec2{100, 100})

	for range 10 {
		h.step()
	}

	assert.Equal(t, 1, h.world().Inventory.Count(entity.ArchItemWood))
	assert.Equal(t, 1, h.world().Inventory.Count(entity.ArchItemRock))
	assert.Empty(t, h.entities(entity.ArchItemWood))
	assert.Len(t, h.entities(entity.ArchItemRock), 1, "out of reach")
}

func TestInventoryToggle(t *testing.T) {
	h := newHarness(t)

	h.input.Tap(platform.KeyTab)
	h.step()
	assert.Equal(t, world.UXInventory, h.world().UX)
	assert.Equal(t, float32(1), h.world().InventoryPanel.Target)
	assert.Greater(t, h.world().InventoryPanel.Value, float32(0))

	h.input.Tap(platform.KeyTab)
	h.step()
	assert.Equal(t, world.UXNone, h.world().UX)
	assert.Equal(t, float32(0), h.world().InventoryPanel.Target)

	for range 120 {
		h.step()
	}
	assert.Equal(t, float32(0), h.world().InventoryPanel.Value)
}

func TestHeldToggleKeyFiresOnce(t *testing.T) {
	h := newHarness(t)
	h.input.Press(platform.KeyTab)
	for range 5 {
		h.step()
	}
	assert.Equal(t, world.UXInventory, h.world().UX)
}

func TestPlacement(t *testing.T) {
	h := newHarness(t)

	h.pointAtScreen(buildingIcon)
	h.input.Tap(platform.KeyC)
	h.step()
	h.click()
	require.Equal(t, world.UXPlacement, h.world().UX)
	require.Equal(t, catalog.BuildingWardrobe, h.world().PlacingBuilding)
	assert.Empty(t, h.entities(entity.ArchWardrobe), "choosing does not place")

	h.pointAtWorld(mgl32.Vec2{37, -21})
	h.step()
	assert.Equal(t, world.UXPlacement, h.world().UX, "no click, still placing")

	h.click()
	assert.Equal(t, world.UXNone, h.world().UX)
	wardrobes := h.entities(entity.ArchWardrobe)
	require.Len(t, wardrobes, 1)
	assert.Equal(t, mgl32.Vec2{32, -16}, wardrobes[0].Pos)

	h.click()
	assert.Len(t, h.entities(entity.ArchWardrobe), 1)
}

func TestInventoryTooltip(t *testing.T) {
	h := newHarness(t)
	h.world().Inventory.Add(entity.ArchItemWood, 3)

	h.pointAtScreen(mgl32.Vec2{92, 74})
	h.world().Spawn(entity.ArchBarrel, h.worldUnderPointer())
	h.input.Tap(platform.KeyTab)
	h.step()

	assert.True(t, h.game.State().HoverConsumed)
	assert.True(t, h.game.State().Selected.IsNil())

	var texts []string
	for _, cmd := range h.game.DrawList().Commands() {
		if cmd.Kind == draw.KindText {
			texts = append(texts, cmd.Text)
			assert.Equal(t, game.LayerUI, cmd.Layer)
		}
	}
	assert.Equal(t, []string{"Wood", "x3"}, texts)
}

func TestDrawLayering(t *testing.T) {
	h := newHarness(t)
	h.world().Spawn(entity.ArchTree, mgl32.Vec2{16, 16})
	h.input.Tap(platform.KeyC)
	h.step()

	cmds := h.game.DrawList().Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, game.LayerWorld, cmds[0].Layer)
	assert.Equal(t, game.LayerUI, cmds[len(cmds)-1].Layer)
	assert.Equal(t, h.game.State().WorldTransform(), h.game.DrawList().Bound(), "UI restores world space")
}

func TestMovement(t *testing.T) {
	cases := []struct {
		name string
		keys []platform.Key
		dir  mgl32.Vec2
	}{
		{"right", []platform.Key{platform.KeyD}, mgl32.Vec2{1, 0}},
		{"up left", []platform.Key{platform.KeyW, platform.KeyA}, mgl32.Vec2{-1, 1}.Normalize()},
		{"opposed", []platform.Key{platform.KeyW, platform.KeyS}, mgl32.Vec2{0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			for _, k := range tc.keys {
				h.input.Press(k)
			}
			h.step()

			want := tc.dir.Mul(100 * frameTime)
			got := h.world().PlayerEntity().Pos
			assert.InDelta(t, want.X(), got.X(), 1e-4)
			assert.InDelta(t, want.Y(), got.Y(), 1e-4)
		})
	}
}

func TestDeltaTimeClamped(t *testing.T) {
	h := newHarness(t)
	h.input.Press(platform.KeyD)
	h.clock.Advance(5)
	h.game.Step()

	assert.InDelta(t, 10, h.world().PlayerEntity().Pos.X(), 1e-4)
}

func TestCameraFollowsPlayer(t *testing.T) {
	h := newHarness(t)
	h.world().PlayerEntity().Pos = mgl32.Vec2{200, -40}

	h.step()
	cam := h.world().Camera.Pos
	assert.Greater(t, cam.X(), float32(0))
	assert.Less(t, cam.X(), float32(200))

	for range 300 {
		h.step()
	}
	assert.Equal(t, mgl32.Vec2{200, -40}, h.world().Camera.Pos)
}

func TestAtlasValidatedOnStart(t *testing.T) {
	cfg := config.Default()
	cat, err := catalog.Default(nil)
	require.NoError(t, err)

	newGame := func(atlas *assets.Atlas) *observer.ObservedLogs {
		core, logs := observer.New(zapcore.WarnLevel)
		game.New(game.Options{
			Config:  cfg,
			Catalog: cat,
			Input:   scripted.NewInput(320, 180),
			Clock:   scripted.NewClock(0),
			Atlas:   atlas,
			Logger:  zap.New(core),
		})
		return logs
	}

	t.Run("complete", func(t *testing.T) {
		assert.Zero(t, newGame(assets.PlaceholderAtlas()).Len())
	})

	t.Run("missing sprites", func(t *testing.T) {
		atlas := assets.NewAtlas()
		atlas.Set(assets.SpriteNil, assets.Placeholder(assets.SpriteNil))

		logs := newGame(atlas)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Contains(t, entry.Message, "incomplete atlas")
		assert.Contains(t, entry.ContextMap()["error"], "no image for player")
	})
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.step())

	h.input.Tap(platform.KeyEscape)
	assert.True(t, h.step())

	h = newHarness(t)
	h.input.RequestClose()
	assert.True(t, h.step())
}

func TestPointerCapturedByOverlay(t *testing.T) {
	h := newHarness(t)
	pos := mgl32.Vec2{32, 32}
	tree, _ := h.world().Spawn(entity.ArchTree, pos)
	h.pointAtWorld(pos)
	h.input.SetPointerCaptured(true)

	h.click()
	assert.True(t, h.game.State().Selected.IsNil())
	assert.Equal(t, 4, h.world().Pool.Get(tree).Health)

	h.input.SetPointerCaptured(false)
	h.click()
	assert.Equal(t, 3, h.world().Pool.Get(tree).Health)
}

func TestSystemOrder(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, []string{
		"CameraSystem",
		"UISystem",
		"TileSystem",
		"SelectionSystem",
		"PickupSystem",
		"DamageSystem",
		"EntityRenderSystem",
		"MovementSystem",
		"QuitSystem",
	}, h.game.SystemNames())

	for range 3 {
		h.step()
	}
	stats := h.game.Stats()
	assert.Equal(t, 9, stats.SystemCount)
	assert.Equal(t, int64(27), stats.TotalExecutions)
	assert.Equal(t, int64(3), h.game.Frames())
}
