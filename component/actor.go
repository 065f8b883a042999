package component

import (
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/inventory"
)

// PlayerComponent tags the controllable actor
type PlayerComponent struct{}

// ObjectComponent tags spawned world items
type ObjectComponent struct{}

// ThrowableComponent marks an entity the player can grab, carrying its item type
type ThrowableComponent struct {
	Type inventory.Type
}

// GrabbedComponent is a weak back-reference from a held object to its holder
// Its presence is the single source of truth for "currently held"
type GrabbedComponent struct {
	Holder core.Entity
}

// InventoryComponent is the player's Storage and Blueprint
// Selected is the last selected storage slot for double-select staging, -1 when none
type InventoryComponent struct {
	Storage   *inventory.Storage
	Blueprint *inventory.Blueprint
	Selected  int
}

// NewInventory creates empty storage and blueprint of the given sizes
func NewInventory(storageSize, blueprintSize int) InventoryComponent {
	return InventoryComponent{
		Storage:   inventory.NewStorage(storageSize),
		Blueprint: inventory.NewBlueprint(blueprintSize),
		Selected:  -1,
	}
}

// SightComponent widens the camera bound while its carrier is held
type SightComponent struct {
	Scale float64
}
