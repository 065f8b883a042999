package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/status"
	"github.com/lixenwraith/shapecraft/vmath"
)

// Resource holds the simulation singletons, threaded explicitly to every system
type Resource struct {
	Time    *TimeResource
	Input   *InputResource
	Hand    *HandResource
	Range   *RangeResource
	Game    *GameStateResource
	Camera  *CameraResource
	Recipes *inventory.RecipeTable
	Config  *config.Config

	Physics physics.World
	Signals *event.Queue
	Status  *status.Registry
	Log     *logrus.Entry
	Rand    *rand.Rand
}

// TimeResource is updated at the start of every Step
type TimeResource struct {
	DeltaTime time.Duration
	Elapsed   time.Duration
	Frame     int64
}

// Seconds returns DeltaTime in seconds
func (t *TimeResource) Seconds() float64 {
	return t.DeltaTime.Seconds()
}

// InputResource is the player's control state for the current tick
// Grab and Throw are edges and reset after each Step
type InputResource struct {
	Move  vmath.Vec2 // Desired direction, any length
	Aim   vmath.Vec2 // World-space point the player faces
	Grab  bool
	Throw bool
}

func (in *InputResource) endTick() {
	in.Grab = false
	in.Throw = false
}

// HandState is the grab/throw state of a player
type HandState uint8

const (
	HandEmpty HandState = iota
	HandHolding
)

func (s HandState) String() string {
	if s == HandHolding {
		return "holding"
	}
	return "empty"
}

// HandResource is the held object of the player (EntityInHand)
type HandResource struct {
	Player core.Entity
	Held   core.Entity
}

func (h *HandResource) State() HandState {
	if h.Held != core.None {
		return HandHolding
	}
	return HandEmpty
}

// RangeResource is the double-buffered range candidate (EntityInRange)
type RangeResource struct {
	Prev core.Entity
	Cur  core.Entity
}

// Phase is the outer game state
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInGame
	PhaseEndGame
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInGame:
		return "in_game"
	default:
		return "end_game"
	}
}

// GameStateResource is polled by the outer state machine
type GameStateResource struct {
	Phase      Phase
	PlayerDead bool
}

// CameraResource is driven by Sight modifiers
type CameraResource struct {
	Zoom float64
}
