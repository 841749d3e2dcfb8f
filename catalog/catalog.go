// Package catalog loads the static game data: the starting attributes of
// each archetype and the table of placeable buildings.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/entity"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type fileFormat struct {
	Archetypes map[string]setupEntry `yaml:"archetypes"`
	Buildings  []buildingEntry       `yaml:"buildings"`
}

type setupEntry struct {
	Sprite      string `yaml:"sprite"`
	Health      int    `yaml:"health"`
	Destroyable bool   `yaml:"destroyable"`
	Item        bool   `yaml:"item"`
	Loot        string `yaml:"loot"`
	DisplayName string `yaml:"display_name"`
}

type buildingEntry struct {
	ID     string `yaml:"id"`
	Builds string `yaml:"builds"`
	Icon   string `yaml:"icon"`
}

// Catalog is the parsed game data.
type Catalog struct {
	Registry  *Registry
	Buildings *Buildings
}

// Default parses the embedded catalog.
func Default(logger *zap.Logger) (*Catalog, error) {
	c, err := Parse(defaultCatalog, logger)
	if err != nil {
		return nil, fmt.Errorf("catalog.yaml: %w", err)
	}
	return c, nil
}

// Load reads a catalog file, falling back to the embedded one when path is
// empty.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	if path == "" {
		return Default(logger)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog YAML. Unknown archetype, sprite or building names
// are errors.
func Parse(data []byte, logger *zap.Logger) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	registry := NewRegistry(logger)
	for name, entry := range f.Archetypes {
		arch, err := entity.ParseArchetype(name)
		if err != nil {
			return nil, err
		}
		setup, err := entry.resolve()
		if err != nil {
			return nil, fmt.Errorf("archetype %s: %w", name, err)
		}
		registry.Register(arch, setup)
	}

	buildings := &Buildings{}
	for i, entry := range f.Buildings {
		id, err := ParseBuildingID(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("building %d: %w", i, err)
		}
		builds, err := entity.ParseArchetype(entry.Builds)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", entry.ID, err)
		}
		icon, err := assets.ParseSprite(entry.Icon)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", entry.ID, err)
		}
		buildings.set(id, BuildingData{ToBuild: builds, Icon: icon})
	}

	return &Catalog{Registry: registry, Buildings: buildings}, nil
}

func (e setupEntry) resolve() (Setup, error) {
	sprite, err := assets.ParseSprite(e.Sprite)
	if err != nil {
		return Setup{}, err
	}
	loot := entity.ArchNone
	if e.Loot != "" {
		if loot, err = entity.ParseArchetype(e.Loot); err != nil {
			return Setup{}, fmt.Errorf("loot: %w", err)
		}
	}
	return Setup{
		Sprite:      sprite,
		Health:      e.Health,
		Destroyable: e.Destroyable,
		Item:        e.Item,
		Loot:        loot,
		DisplayName: e.DisplayName,
	}, nil
}
