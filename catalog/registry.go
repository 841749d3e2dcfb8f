package catalog

import (
	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/entity"
	"go.uber.org/zap"
)

// Setup is the starting state stamped onto a new entity of an archetype.
type Setup struct {
	Sprite      assets.SpriteID
	Health      int
	Destroyable bool
	Item        bool
	Loot        entity.Archetype
	DisplayName string
}

// Registry maps archetypes to their Setup.
type Registry struct {
	setups [entity.ArchCount]*Setup
	logger *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

func (r *Registry) Register(arch entity.Archetype, setup Setup) {
	if arch <= entity.ArchNone || arch >= entity.ArchCount {
		return
	}
	r.setups[arch] = &setup
}

// Lookup returns the setup registered for arch.
func (r *Registry) Lookup(arch entity.Archetype) (Setup, bool) {
	if arch < 0 || arch >= entity.ArchCount || r.setups[arch] == nil {
		return Setup{}, false
	}
	return *r.setups[arch], true
}

// Setup stamps the defaults for arch onto e. An archetype without a setup
// is logged and e is left untouched.
func (r *Registry) Setup(e *entity.Entity, arch entity.Archetype) bool {
	setup, ok := r.Lookup(arch)
	if !ok {
		r.logger.Error("missing entity setup", zap.Stringer("archetype", arch))
		return false
	}
	e.Arch = arch
	e.Sprite = setup.Sprite
	e.RenderSprite = true
	e.Health = setup.Health
	e.DestroyableWorldItem = setup.Destroyable
	e.IsItem = setup.Item
	return true
}

// LootFor is the archetype dropped when arch is destroyed, or ArchNone.
func (r *Registry) LootFor(arch entity.Archetype) entity.Archetype {
	setup, _ := r.Lookup(arch)
	return setup.Loot
}

// DisplayName is the player-facing name of arch.
func (r *Registry) DisplayName(arch entity.Archetype) string {
	if setup, ok := r.Lookup(arch); ok && setup.DisplayName != "" {
		return setup.DisplayName
	}
	return arch.String()
}

// Icon is the sprite used for arch in the inventory.
func (r *Registry) Icon(arch entity.Archetype) assets.SpriteID {
	setup, _ := r.Lookup(arch)
	return setup.Sprite
}
