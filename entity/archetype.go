package entity

import "fmt"

// Archetype is the closed set of game object kinds.
type Archetype int

const (
	ArchNone Archetype = iota
	ArchBarrel
	ArchTree
	ArchItemRock
	ArchItemWood
	ArchWardrobe
	ArchPlayer
	ArchCount
)

var archetypeNames = [ArchCount]string{
	ArchNone:     "none",
	ArchBarrel:   "barrel",
	ArchTree:     "tree",
	ArchItemRock: "item_rock",
	ArchItemWood: "item_wood",
	ArchWardrobe: "wardrobe",
	ArchPlayer:   "player",
}

func (a Archetype) String() string {
	if a < 0 || a >= ArchCount {
		return fmt.Sprintf("Archetype(%d)", int(a))
	}
	return archetypeNames[a]
}

// ParseArchetype looks an archetype up by name.
func ParseArchetype(name string) (Archetype, error) {
	for a, n := range archetypeNames {
		if n == name {
			return Archetype(a), nil
		}
	}
	return ArchNone, fmt.Errorf("unknown archetype %q", name)
}

func (a *Archetype) UnmarshalText(text []byte) error {
	parsed, err := ParseArchetype(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
