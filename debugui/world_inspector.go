package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/entity"
	"github.com/plus3/homestead/game"
	"github.com/plus3/homestead/world"
)

// WorldInspector shows UX state, the camera, the inventory and the entity
// picked in the browser.
type WorldInspector struct{}

func (wi *WorldInspector) Render(g *game.Game, selected entity.Handle) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)

	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w := g.World()
	state := g.State()

	imgui.Text(fmt.Sprintf("UX: %s", w.UX))
	imgui.Text(fmt.Sprintf("Inventory panel: %.2f -> %.0f", w.InventoryPanel.Value, w.InventoryPanel.Target))
	imgui.Text(fmt.Sprintf("Building panel: %.2f -> %.0f", w.BuildingPanel.Value, w.BuildingPanel.Target))
	if w.UX == world.UXPlacement {
		imgui.Text(fmt.Sprintf("Placing: %s", w.PlacingBuilding))
	}
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Camera: (%.1f, %.1f) zoom %.2f", w.Camera.Pos.X(), w.Camera.Pos.Y(), w.Camera.Zoom))
	if player := w.PlayerEntity(); player != nil {
		imgui.Text(fmt.Sprintf("Player: (%.1f, %.1f)", player.Pos.X(), player.Pos.Y()))
	}
	imgui.Text(fmt.Sprintf("Hover consumed: %t", state.HoverConsumed))
	imgui.Text(fmt.Sprintf("Hovered: %s", describe(w, state.Selected)))
	imgui.Separator()

	usage := float32(w.Pool.Len()) / float32(w.Pool.Cap())
	imgui.Text(fmt.Sprintf("Entities: %d / %d", w.Pool.Len(), w.Pool.Cap()))
	imgui.ProgressBarV(usage, imgui.NewVec2(-1, 0), "")

	if imgui.TreeNodeStr(fmt.Sprintf("Inventory (%d kinds, %d items)###inventory", w.Inventory.Kinds(), w.Inventory.Total())) {
		stacks := w.Inventory.Stacks()
		if len(stacks) == 0 {
			imgui.Text("Empty")
		}
		for _, s := range stacks {
			imgui.BulletText(fmt.Sprintf("%s x%d", w.Registry.DisplayName(s.Arch), s.Count))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawn") {
		for _, arch := range []entity.Archetype{entity.ArchTree, entity.ArchBarrel, entity.ArchItemWood, entity.ArchItemRock} {
			if imgui.Button(arch.String()) {
				spawnNearPlayer(g, arch)
			}
			imgui.SameLine()
		}
		imgui.Text("")
		imgui.TreePop()
	}

	imgui.Separator()
	wi.renderEntity(w, selected)

	imgui.End()
}

func (wi *WorldInspector) renderEntity(w *world.World, h entity.Handle) {
	e := w.Pool.Get(h)
	if e == nil {
		imgui.Text("No entity selected")
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d (gen %d)", h.Index(), h.Generation()))
	imgui.Text(fmt.Sprintf("Archetype: %s", e.Arch))
	imgui.Text(fmt.Sprintf("Sprite: %s", e.Sprite))

	pos := [2]float32{e.Pos.X(), e.Pos.Y()}
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("x", &pos[0]) {
		e.Pos[0] = pos[0]
	}
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("y", &pos[1]) {
		e.Pos[1] = pos[1]
	}

	health := int32(e.Health)
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("health", &health) {
		e.Health = int(health)
	}
	imgui.Checkbox("render", &e.RenderSprite)
	imgui.Checkbox("destroyable", &e.DestroyableWorldItem)
	imgui.Checkbox("item", &e.IsItem)

	if imgui.Button("Damage") {
		w.Damage(h)
	}
	imgui.SameLine()
	if imgui.Button("Destroy") {
		w.Pool.Destroy(h)
	}
}

// spawnNearPlayer drops arch one tile to the right of the player.
func spawnNearPlayer(g *game.Game, arch entity.Archetype) {
	w := g.World()
	pos := mgl32.Vec2{}
	if player := w.PlayerEntity(); player != nil {
		pos = player.Pos
	}
	pos = pos.Add(mgl32.Vec2{g.Config().World.TileWidth * 2, 0})
	w.Spawn(arch, pos)
}

func describe(w *world.World, h entity.Handle) string {
	e := w.Pool.Get(h)
	if e == nil {
		return "-"
	}
	return fmt.Sprintf("%s #%d hp %d", e.Arch, h.Index(), e.Health)
}
