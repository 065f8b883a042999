package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/parameter"
)

// DeathSystem despawns every non-Undead entity with HP <= 0
// Any grab relation touching the dead entity is released first
type DeathSystem struct {
	world *engine.World
	log   *logrus.Entry

	dead []core.Entity

	statDespawned *atomic.Int64
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemDeath),
	}
	s.statDespawned = world.Resource.Status.Ints.Get("death.despawned")
	return s
}

func (s *DeathSystem) Name() string { return parameter.SystemDeath }
func (s *DeathSystem) Priority() int { return parameter.PriorityDeath }
func (s *DeathSystem) After() []string { return []string{parameter.SystemExplosion} }
func (s *DeathSystem) Before() []string { return []string{parameter.SystemGameState} }

func (s *DeathSystem) Update() {
	w := s.world
	cs := &w.Components

	s.dead = s.dead[:0]
	for _, e := range cs.Health.All() {
		if cs.Undead.Has(e) {
			continue
		}
		if h, ok := cs.Health.Get(e); ok && h.Dead() {
			s.dead = append(s.dead, e)
		}
	}

	for _, e := range s.dead {
		s.despawn(e)
	}
}

func (s *DeathSystem) despawn(e core.Entity) {
	w := s.world
	cs := &w.Components
	hand := w.Resource.Hand

	if g, ok := cs.Grabbed.Get(e); ok {
		releaseHeld(w, g.Holder)
	}
	if e == hand.Held {
		releaseHeld(w, hand.Player)
	}

	isPlayer := cs.Player.Has(e)
	if isPlayer {
		releaseHeld(w, e)
	}

	pos, _ := w.Resource.Physics.Position(e)
	t := inventory.Empty
	if th, ok := cs.Throwable.Get(e); ok {
		t = th.Type
	}
	w.PushSignal(event.EventEntityDied, &event.EntityDiedPayload{Entity: e, Pos: pos, Player: isPlayer, Type: t})

	if isPlayer {
		w.Resource.Game.PlayerDead = true
		if hand.Player == e {
			hand.Player = core.None
		}
		w.PushSignal(event.EventPlayerDied, &event.EntityDiedPayload{Entity: e, Pos: pos, Player: true})
		s.log.WithField("entity", e).Info("player died")
	} else {
		s.log.WithFields(logrus.Fields{"entity": e, "type": t}).Debug("despawned")
	}

	w.DestroyEntity(e)
	s.statDespawned.Add(1)
}
