package world

import "fmt"

// UXState is the single active interaction mode.
type UXState int

const (
	UXNone UXState = iota
	UXInventory
	UXBuilding
	UXPlacement
)

func (s UXState) String() string {
	switch s {
	case UXNone:
		return "none"
	case UXInventory:
		return "inventory"
	case UXBuilding:
		return "building"
	case UXPlacement:
		return "placement"
	default:
		return fmt.Sprintf("UXState(%d)", int(s))
	}
}
