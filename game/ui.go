package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/draw"
	"github.com/plus3/homestead/platform"
	"github.com/plus3/homestead/space"
	"github.com/plus3/homestead/world"
	"go.uber.org/zap"
)

// Inventory strip and building bar layout, in virtual screen units.
const (
	inventoryY        = 70
	inventoryIconSize = 8
	inventoryRowCount = 8
	hoverScale        = 1.3

	buildingY        = 10
	buildingIconSize = 12
	buildingPadding  = 2

	tooltipWidth  = 40
	tooltipHeight = 14
	tooltipGap    = 2
)

var (
	panelBackground = draw.Color{0, 0, 0, 0.5}
	slotBackground  = draw.Color{1, 1, 1, 0.2}
	ghostTint       = draw.Color{1, 1, 1, 0.6}

	uiFont = draw.FontSize{Height: 48, Scale: 0.1}
)

// UISystem handles the inventory, the building catalog and placement mode.
// Any icon under the pointer consumes hover for the frame. World space is
// bound again when it returns.
type UISystem struct{}

func (s *UISystem) Execute(f *Frame) {
	screen := space.ScreenSpace(f.Config.UI.Width, f.Config.UI.Height)
	f.Draw.Bind(screen)
	f.Draw.PushLayer(LayerUI)
	defer func() {
		f.Draw.PopLayer()
		f.Draw.Bind(f.State.WorldTransform())
	}()

	pointer := space.PixelsToNDC(f.Input.Pointer(), f.Input.WindowSize())

	s.inventory(f, pointer)
	s.buildingCatalog(f, pointer)
	s.placement(f, screen)
}

func (s *UISystem) inventory(f *Frame, pointer mgl32.Vec2) {
	w := f.World
	if f.Input.JustPressed(platform.KeyTab) {
		f.Input.Consume(platform.KeyTab)
		w.ToggleInventory()
	}
	w.InventoryPanel.Step(f.DeltaTime, f.Config.UI.PanelRate)

	panel := w.InventoryPanel
	if !panel.Visible() {
		return
	}

	width := float32(inventoryRowCount * inventoryIconSize)
	x0 := f.Config.UI.Width/2 - width/2
	f.Draw.Rect(mgl32.Translate3D(x0, inventoryY, 0),
		mgl32.Vec2{width, inventoryIconSize}, draw.Fade(panelBackground, panel.Value))

	for i, stack := range w.Inventory.Stacks() {
		slot := mgl32.Translate3D(x0+float32(i)*inventoryIconSize, inventoryY, 0)
		quad := f.Draw.Rect(slot, mgl32.Vec2{inventoryIconSize, inventoryIconSize},
			draw.Fade(slotBackground, panel.Value))

		hovered := panel.Enabled() && quad.Range().Contains(pointer)
		if hovered {
			f.State.HoverConsumed = true
		}

		sprite := f.Atlas.Get(w.Registry.Icon(stack.Arch))
		size := sprite.Size()
		model := slot.Mul4(mgl32.Translate3D(inventoryIconSize/2, inventoryIconSize/2, 0))
		if hovered {
			model = model.Mul4(mgl32.Scale3D(hoverScale, hoverScale, 1))
		}
		model = model.Mul4(mgl32.Translate3D(-size.X()/2, -size.Y()/2, 0))
		f.Draw.Image(model, sprite, size, draw.Fade(draw.White, panel.Value))

		if hovered {
			s.tooltip(f, quad, w.Registry.DisplayName(stack.Arch), stack)
		}
	}
}

// tooltip draws the item name and count under the hovered slot.
func (s *UISystem) tooltip(f *Frame, slot space.Quad, name string, stack world.Stack) {
	center := space.QuadToScreen(slot, f.Draw.Bound()).Range().Center()

	box := mgl32.Translate3D(center.X()-tooltipWidth/2, center.Y()-tooltipHeight-inventoryIconSize/2, 0)
	f.Draw.Rect(box, mgl32.Vec2{tooltipWidth, tooltipHeight}, panelBackground)

	title := topCentered(f.Draw.MeasureText(name, uiFont), center)
	title = title.Add(mgl32.Vec2{0, -inventoryIconSize/2 - tooltipGap})
	f.Draw.Text(mgl32.Translate3D(title.X(), title.Y(), 0), name, uiFont, draw.White)

	count := fmt.Sprintf("x%d", stack.Count)
	line := topCentered(f.Draw.MeasureText(count, uiFont), mgl32.Vec2{center.X(), title.Y()})
	line = line.Add(mgl32.Vec2{0, -tooltipGap})
	f.Draw.Text(mgl32.Translate3D(line.X(), line.Y(), 0), count, uiFont, draw.White)
}

// topCentered is the text origin that puts the top center of the visual
// box at anchor.
func topCentered(m draw.TextMetrics, anchor mgl32.Vec2) mgl32.Vec2 {
	return anchor.Sub(m.VisualPosMin).Add(mgl32.Vec2{-m.VisualSize.X() / 2, -m.VisualSize.Y()})
}

func (s *UISystem) buildingCatalog(f *Frame, pointer mgl32.Vec2) {
	w := f.World
	if f.Input.JustPressed(platform.KeyC) {
		f.Input.Consume(platform.KeyC)
		w.ToggleBuildingCatalog()
	}
	w.BuildingPanel.Step(f.DeltaTime, f.Config.UI.PanelRate)

	panel := w.BuildingPanel
	if !panel.Visible() {
		return
	}

	ids := w.Buildings.IDs()
	total := float32(len(ids)*buildingIconSize + buildingPadding*(len(ids)+1))
	for i, id := range ids {
		x0 := f.Config.UI.Width/2 - total/2 +
			float32(i*buildingIconSize) + float32(buildingPadding*(i+1))

		building := w.Buildings.Get(id)
		quad := f.Draw.Image(mgl32.Translate3D(x0, buildingY, 0), f.Atlas.Get(building.Icon),
			mgl32.Vec2{buildingIconSize, buildingIconSize}, draw.Fade(draw.White, panel.Value))

		if !w.BuildingPanel.Enabled() || !quad.Range().Contains(pointer) {
			continue
		}
		f.State.HoverConsumed = true
		if f.Input.JustPressed(platform.MouseLeft) {
			f.Input.Consume(platform.MouseLeft)
			if w.BeginPlacement(id) {
				f.Logger.Debug("placement started", zap.Stringer("building", id))
			}
		}
	}
}

// placement previews the chosen building on the tile under the pointer and
// places it on click.
func (s *UISystem) placement(f *Frame, screen space.Transform) {
	w := f.World
	if w.UX != world.UXPlacement {
		return
	}

	worldSpace := f.State.WorldTransform()
	f.Draw.Bind(worldSpace)
	defer f.Draw.Bind(screen)

	tile := f.Config.World.TileWidth
	pos := space.SnapToTile(worldSpace.PointerToWorld(f.Input.Pointer(), f.Input.WindowSize()), tile)

	icon := f.Atlas.Get(w.Buildings.Get(w.PlacingBuilding).Icon)
	size := icon.Size()
	f.Draw.Image(mgl32.Translate3D(pos.X()-size.X()/2, pos.Y()-tile/2, 0), icon, size, ghostTint)

	if f.Input.JustPressed(platform.MouseLeft) {
		f.Input.Consume(platform.MouseLeft)
		w.Place(pos)
	}
}
