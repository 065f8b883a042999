package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/vmath"
)

// jointAxis is the player-local axis held objects slide along
var jointAxis = vmath.V(1, 0)

// DetectSystem casts the forward ray and records this tick's range candidate
type DetectSystem struct {
	world *engine.World
}

func NewDetectSystem(world *engine.World) engine.System {
	return &DetectSystem{world: world}
}

func (s *DetectSystem) Name() string { return parameter.SystemDetect }
func (s *DetectSystem) Priority() int { return parameter.PriorityDetect }
func (s *DetectSystem) After() []string { return []string{parameter.SystemPhysics} }
func (s *DetectSystem) Before() []string { return []string{parameter.SystemGrab} }

func (s *DetectSystem) Update() {
	w := s.world
	player := w.Resource.Hand.Player
	if !live(w, player) {
		return
	}
	pos, dir, ok := facing(w, player)
	if !ok {
		return
	}

	cfg := w.Resource.Config.Interaction
	origin := pos.Add(dir.Scale(cfg.RayOffset))
	hit, ok := w.Resource.Physics.CastRay(origin, dir, cfg.RayLength, player)
	if !ok {
		return
	}
	// Nearest hit only: anything in front of the candidate shadows it
	if !w.Alive(hit.Entity) || !w.Components.Throwable.Has(hit.Entity) || w.Components.Grabbed.Has(hit.Entity) {
		return
	}
	w.Resource.Range.Cur = hit.Entity
}

// GrabSystem joints the range candidate to the player on the grab edge
type GrabSystem struct {
	world *engine.World
	log   *logrus.Entry

	statGrabs *atomic.Int64
}

func NewGrabSystem(world *engine.World) engine.System {
	s := &GrabSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemGrab),
	}
	s.statGrabs = world.Resource.Status.Ints.Get("interaction.grabs")
	return s
}

func (s *GrabSystem) Name() string { return parameter.SystemGrab }
func (s *GrabSystem) Priority() int { return parameter.PriorityGrab }
func (s *GrabSystem) After() []string { return []string{parameter.SystemDetect} }
func (s *GrabSystem) Before() []string { return []string{parameter.SystemThrow} }

func (s *GrabSystem) Update() {
	w := s.world
	hand := w.Resource.Hand
	if !w.Resource.Input.Grab || hand.State() != engine.HandEmpty {
		return
	}
	cand := w.Resource.Range.Cur
	if !live(w, cand) || !live(w, hand.Player) {
		return
	}
	if Attach(w, hand.Player, cand, w.Resource.Config.Interaction.JointMin, w.Resource.Config.Interaction.JointMax, s.log) {
		s.statGrabs.Add(1)
	}
}

// Attach joints held to player and records the relation; false leaves state untouched
func Attach(w *engine.World, player, held core.Entity, min, max float64, log *logrus.Entry) bool {
	id, err := w.Resource.Physics.CreatePrismatic(player, held, jointAxis, min, max)
	if err != nil {
		log.WithError(err).WithField("entity", held).Warn("joint rejected")
		return false
	}
	w.Components.Grabbed.Set(held, component.GrabbedComponent{Holder: player})
	w.Resource.Hand.Held = held
	log.WithFields(logrus.Fields{"player": player, "held": held, "joint": id}).Debug("grabbed")
	return true
}

// ThrowSystem launches the held object along the facing direction on the throw edge
type ThrowSystem struct {
	world *engine.World
	log   *logrus.Entry

	statThrows *atomic.Int64
}

func NewThrowSystem(world *engine.World) engine.System {
	s := &ThrowSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemThrow),
	}
	s.statThrows = world.Resource.Status.Ints.Get("interaction.throws")
	return s
}

func (s *ThrowSystem) Name() string { return parameter.SystemThrow }
func (s *ThrowSystem) Priority() int { return parameter.PriorityThrow }
func (s *ThrowSystem) After() []string { return []string{parameter.SystemGrab} }
func (s *ThrowSystem) Before() []string { return nil }

func (s *ThrowSystem) Update() {
	w := s.world
	hand := w.Resource.Hand
	if !w.Resource.Input.Throw || hand.State() != engine.HandHolding {
		return
	}
	held := hand.Held
	if _, dir, ok := facing(w, hand.Player); ok {
		w.Resource.Physics.ApplyImpulse(held, dir.Scale(w.Resource.Config.Interaction.ThrowImpulse))
	}
	releaseHeld(w, hand.Player)
	s.statThrows.Add(1)
	s.log.WithField("entity", held).Debug("thrown")
}

// HighlightSystem diffs the range candidate against last tick and rotates the buffer
type HighlightSystem struct {
	world *engine.World
}

func NewHighlightSystem(world *engine.World) engine.System {
	return &HighlightSystem{world: world}
}

func (s *HighlightSystem) Name() string { return parameter.SystemHighlight }
func (s *HighlightSystem) Priority() int { return parameter.PriorityHighlight }
func (s *HighlightSystem) After() []string { return []string{parameter.SystemGrab} }
func (s *HighlightSystem) Before() []string { return nil }

func (s *HighlightSystem) Update() {
	r := s.world.Resource.Range
	if r.Prev != r.Cur {
		s.world.PushSignal(event.EventHighlightChanged, &event.HighlightPayload{Prev: r.Prev, Cur: r.Cur})
	}
	r.Prev = r.Cur
	r.Cur = core.None
}
