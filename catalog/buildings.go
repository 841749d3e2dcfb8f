package catalog

import (
	"fmt"

	"github.com/plus3/homestead/assets"
	"github.com/plus3/homestead/entity"
)

// BuildingData is the archetype a building places and its catalog icon.
type BuildingData struct {
	ToBuild entity.Archetype
	Icon    assets.SpriteID
}

// BuildingID names a catalog entry.
type BuildingID int

const (
	BuildingNone BuildingID = iota
	BuildingWardrobe
	BuildingCount
)

var buildingNames = [BuildingCount]string{
	BuildingNone:     "none",
	BuildingWardrobe: "wardrobe",
}

func (id BuildingID) String() string {
	if id < 0 || id >= BuildingCount {
		return fmt.Sprintf("BuildingID(%d)", int(id))
	}
	return buildingNames[id]
}

func ParseBuildingID(name string) (BuildingID, error) {
	for id := BuildingNone + 1; id < BuildingCount; id++ {
		if buildingNames[id] == name {
			return id, nil
		}
	}
	return BuildingNone, fmt.Errorf("unknown building %q", name)
}

// Buildings is the fixed table of placeable buildings. It is filled once
// when the catalog is parsed and read-only afterwards.
type Buildings struct {
	data    [BuildingCount]BuildingData
	defined [BuildingCount]bool
}

func (b *Buildings) set(id BuildingID, data BuildingData) {
	b.data[id] = data
	b.defined[id] = true
}

// Get returns a copy of the entry for id. Unknown ids return the zero entry.
func (b *Buildings) Get(id BuildingID) BuildingData {
	if id < 0 || id >= BuildingCount {
		return BuildingData{}
	}
	return b.data[id]
}

// IDs lists the defined buildings in catalog order.
func (b *Buildings) IDs() []BuildingID {
	var ids []BuildingID
	for id := BuildingNone + 1; id < BuildingCount; id++ {
		if b.defined[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
