package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/vmath"
)

// MoveHold is how long a direction stays pressed after its last key event
// Terminals report no key release, so movement follows key repeat
const MoveHold = 180 * time.Millisecond

// Sink receives gameplay input; game.Simulation implements it
type Sink interface {
	Input(fn func(in *engine.InputResource))
	Command(t event.EventType, payload any)
}

// Controller turns tcell events into simulation input and commands
type Controller struct {
	keys    *Keymap
	sink    Sink
	toWorld func(sx, sy int) vmath.Vec2
	now     func() time.Time

	pressed  [4]time.Time // up, down, left, right
	selected int
	button   bool
}

// NewController routes events to sink; toWorld maps a screen cell to a world point for aiming
func NewController(keys *Keymap, sink Sink, toWorld func(sx, sy int) vmath.Vec2) *Controller {
	return &Controller{
		keys:    keys,
		sink:    sink,
		toWorld: toWorld,
		now:     time.Now,
	}
}

// Selected is the last slot chosen with a digit key
func (c *Controller) Selected() int {
	return c.selected
}

// HandleEvent applies one terminal event and reports what the front-end loop must do
func (c *Controller) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventMouse:
		c.handleMouse(ev)
	case *tcell.EventKey:
		return c.handleKey(ev)
	}
	return IntentNone
}

func (c *Controller) handleKey(ev *tcell.EventKey) Intent {
	action, slot := c.keys.Lookup(ev)
	if slot >= 0 {
		c.selected = slot
		c.sink.Command(event.EventSelectSlot, &event.SlotPayload{Slot: slot})
		return IntentNone
	}

	switch action {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		c.pressed[action-ActionUp] = c.now()
	case ActionThrow:
		c.sink.Input(func(in *engine.InputResource) { in.Throw = true })
	case ActionStore:
		c.sink.Command(event.EventStore, nil)
	case ActionHold:
		c.sink.Command(event.EventHoldSlot, &event.SlotPayload{Slot: c.selected})
	case ActionClear:
		c.sink.Command(event.EventClearBlueprint, nil)
	case ActionSynthesize:
		c.sink.Command(event.EventSynthesize, nil)
	case ActionPause:
		return IntentPause
	case ActionMute:
		return IntentMute
	case ActionQuit:
		return IntentQuit
	}
	return IntentNone
}

func (c *Controller) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	aim := c.toWorld(x, y)
	down := ev.Buttons()&tcell.Button1 != 0
	grab := down && !c.button
	c.button = down

	c.sink.Input(func(in *engine.InputResource) {
		in.Aim = aim
		if grab {
			in.Grab = true
		}
	})
}

// Tick publishes the current movement direction; call once before each simulation step
func (c *Controller) Tick() {
	now := c.now()
	var move vmath.Vec2
	dirs := [4]vmath.Vec2{vmath.V(0, 1), vmath.V(0, -1), vmath.V(-1, 0), vmath.V(1, 0)}
	for i, at := range c.pressed {
		if !at.IsZero() && now.Sub(at) < MoveHold {
			move = move.Add(dirs[i])
		}
	}
	c.sink.Input(func(in *engine.InputResource) { in.Move = move })
}
