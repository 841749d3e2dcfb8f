// Package world is the game state shared by every system: the entity pool,
// the player's inventory and the UI mode.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/anim"
	"github.com/plus3/homestead/catalog"
	"github.com/plus3/homestead/entity"
	"go.uber.org/zap"
)

// Camera is the smoothed view center and zoom factor.
type Camera struct {
	Pos  mgl32.Vec2
	Zoom float32
}

// World owns all game state. Build one with New and pass it to the systems
// that need it.
type World struct {
	Pool      *entity.Pool
	Inventory *Inventory
	Registry  *catalog.Registry
	Buildings *catalog.Buildings

	UX              UXState
	InventoryPanel  anim.Channel
	BuildingPanel   anim.Channel
	PlacingBuilding catalog.BuildingID

	Camera Camera
	Player entity.Handle

	logger *zap.Logger
}

func New(cat *catalog.Catalog, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		Pool:      entity.NewPool(),
		Inventory: NewInventory(),
		Registry:  cat.Registry,
		Buildings: cat.Buildings,
		Camera:    Camera{Zoom: 1},
		logger:    logger,
	}
}

// Spawn creates an entity of arch at pos.
func (w *World) Spawn(arch entity.Archetype, pos mgl32.Vec2) (entity.Handle, *entity.Entity) {
	h, e := w.Pool.Create()
	w.Registry.Setup(e, arch)
	e.Pos = pos
	return h, e
}

// SpawnPlayer creates the player at pos and remembers its handle.
func (w *World) SpawnPlayer(pos mgl32.Vec2) *entity.Entity {
	h, e := w.Spawn(entity.ArchPlayer, pos)
	w.Player = h
	return e
}

// PlayerEntity resolves the player, or nil if there is none.
func (w *World) PlayerEntity() *entity.Entity {
	return w.Pool.Get(w.Player)
}

// ToggleInventory flips between the inventory and no mode.
func (w *World) ToggleInventory() {
	if w.UX == UXInventory {
		w.UX = UXNone
	} else {
		w.UX = UXInventory
	}
	w.syncPanels()
}

// ToggleBuildingCatalog flips between the building catalog and no mode.
func (w *World) ToggleBuildingCatalog() {
	if w.UX == UXBuilding {
		w.UX = UXNone
	} else {
		w.UX = UXBuilding
	}
	w.syncPanels()
}

// BeginPlacement picks a building from the open catalog and enters
// placement mode.
func (w *World) BeginPlacement(id catalog.BuildingID) bool {
	if w.UX != UXBuilding {
		return false
	}
	w.PlacingBuilding = id
	w.UX = UXPlacement
	w.syncPanels()
	return true
}

// Place spawns the building chosen in placement mode at pos and leaves
// placement mode.
func (w *World) Place(pos mgl32.Vec2) (entity.Handle, bool) {
	if w.UX != UXPlacement {
		return entity.Nil, false
	}
	building := w.Buildings.Get(w.PlacingBuilding)
	h, _ := w.Spawn(building.ToBuild, pos)
	w.logger.Debug("placed building",
		zap.Stringer("building", w.PlacingBuilding),
		zap.Float32("x", pos.X()),
		zap.Float32("y", pos.Y()),
	)
	w.UX = UXNone
	w.PlacingBuilding = catalog.BuildingNone
	w.syncPanels()
	return h, true
}

// syncPanels points each panel channel at 1 while its mode is active.
func (w *World) syncPanels() {
	w.InventoryPanel.Set(w.UX == UXInventory)
	w.BuildingPanel.Set(w.UX == UXBuilding)
}

// Damage removes one point of health from h. When health reaches zero the
// archetype's loot is spawned at its position and the entity destroyed.
func (w *World) Damage(h entity.Handle) (destroyed bool) {
	e := w.Pool.Get(h)
	if e == nil {
		return false
	}
	e.Health--
	if e.Health > 0 {
		return false
	}

	arch, pos := e.Arch, e.Pos
	if loot := w.Registry.LootFor(arch); loot != entity.ArchNone {
		w.Spawn(loot, pos)
	}
	w.Pool.Destroy(h)
	w.logger.Debug("destroyed entity", zap.Stringer("archetype", arch))
	return true
}

// Pickup moves the item h into the inventory.
func (w *World) Pickup(h entity.Handle) bool {
	e := w.Pool.Get(h)
	if e == nil || !e.IsItem {
		return false
	}
	w.Inventory.Add(e.Arch, 1)
	w.Pool.Destroy(h)
	return true
}
