package event

// EventType identifies a command or signal
type EventType int

const (
	// === Player Commands (inbound) ===

	// EventSelectSlot selects a storage slot; selecting the same slot twice stages it
	// Trigger: number keys | Consumer: SynthesisSystem | Payload: *SlotPayload
	EventSelectSlot EventType = iota

	// EventStageSlot copies a storage slot's item into the blueprint
	// Trigger: double select | Consumer: SynthesisSystem | Payload: *SlotPayload
	EventStageSlot

	// EventStore consumes the held object into storage
	// Trigger: store key | Consumer: SynthesisSystem | Payload: nil
	EventStore

	// EventHoldSlot spawns a stored item as a held, jointed object
	// Trigger: hold key | Consumer: SynthesisSystem | Payload: *SlotPayload
	EventHoldSlot

	// EventClearBlueprint resets the blueprint
	// Trigger: clear key | Consumer: SynthesisSystem | Payload: nil
	EventClearBlueprint

	// EventSynthesize attempts a craft
	// Trigger: craft key | Consumer: SynthesisSystem | Payload: nil
	EventSynthesize

	// EventSystemToggle enables or disables a system by name
	// Trigger: debug tooling | Consumer: World | Payload: *SystemTogglePayload
	EventSystemToggle

	// === Presentation Signals (outbound) ===

	// EventEntityDied fires once per despawned entity, before removal
	// Trigger: DeathSystem | Consumer: renderer, audio | Payload: *EntityDiedPayload
	EventEntityDied EventType = iota + 100

	// EventPlayerDied fires once when the player's health reaches zero
	// Trigger: DeathSystem | Consumer: game state, audio | Payload: *EntityDiedPayload
	EventPlayerDied

	// EventExploded fires per triggered explosion
	// Trigger: ExplosionSystem | Consumer: renderer, audio | Payload: *ExplodedPayload
	EventExploded

	// EventEffectApplied fires when a source attaches an active effect
	// Trigger: effect source systems | Consumer: renderer | Payload: *EffectPayload
	EventEffectApplied

	// EventHealed fires per heal pulse applied to a holder
	// Trigger: HealSystem | Consumer: renderer | Payload: *HealedPayload
	EventHealed

	// EventCrafted fires on successful synthesis
	// Trigger: SynthesisSystem | Consumer: audio, HUD | Payload: *CraftedPayload
	EventCrafted

	// EventHighlightChanged fires when the range candidate differs from last tick
	// Trigger: HighlightSystem | Consumer: renderer | Payload: *HighlightPayload
	EventHighlightChanged
)

var typeNames = map[EventType]string{
	EventSelectSlot:       "select_slot",
	EventStageSlot:        "stage_slot",
	EventStore:            "store",
	EventHoldSlot:         "hold_slot",
	EventClearBlueprint:   "clear_blueprint",
	EventSynthesize:       "synthesize",
	EventSystemToggle:     "system_toggle",
	EventEntityDied:       "entity_died",
	EventPlayerDied:       "player_died",
	EventExploded:         "exploded",
	EventEffectApplied:    "effect_applied",
	EventHealed:           "healed",
	EventCrafted:          "crafted",
	EventHighlightChanged: "highlight_changed",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// GameEvent is a queued command or signal
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
