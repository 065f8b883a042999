package event

import (
	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/vmath"
)

// SlotPayload names a storage slot
type SlotPayload struct {
	Slot int
}

// SystemTogglePayload enables or disables a system
type SystemTogglePayload struct {
	System  string
	Enabled bool
}

// EntityDiedPayload carries the last known world position of a despawned entity
type EntityDiedPayload struct {
	Entity core.Entity
	Pos    vmath.Vec2
	Player bool
	Type   inventory.Type
}

// ExplodedPayload describes a resolved explosion
type ExplodedPayload struct {
	Source core.Entity
	Pos    vmath.Vec2
	Radius float64
	Hits   int
}

// EffectPayload names an effect attached to a target
type EffectPayload struct {
	Source core.Entity
	Target core.Entity
	Kind   component.EffectKind
}

// HealedPayload describes a heal pulse
type HealedPayload struct {
	Holder core.Entity
	Pos    vmath.Vec2
	Amount int
}

// CraftedPayload describes a successful synthesis
type CraftedPayload struct {
	Result inventory.Type
	Slot   int
}

// HighlightPayload carries the range candidate diff
type HighlightPayload struct {
	Prev core.Entity
	Cur  core.Entity
}
