package input

// Action is a bindable player action
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionThrow
	ActionStore
	ActionHold
	ActionClear
	ActionSynthesize
	ActionPause
	ActionMute
	ActionQuit
)

// actionRegistry maps config action names to actions
var actionRegistry = map[string]Action{
	"up":         ActionUp,
	"down":       ActionDown,
	"left":       ActionLeft,
	"right":      ActionRight,
	"throw":      ActionThrow,
	"store":      ActionStore,
	"hold":       ActionHold,
	"clear":      ActionClear,
	"synthesize": ActionSynthesize,
	"pause":      ActionPause,
	"mute":       ActionMute,
	"quit":       ActionQuit,
}

// Intent is what the front-end loop must do after an event; gameplay input goes straight to the sink
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPause
	IntentMute
	IntentResize
)
