package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/vmath"
)

// ContactDamageSystem trades Dmg between both sides of a hard new contact
type ContactDamageSystem struct {
	world *engine.World
	log   *logrus.Entry

	statHits  *atomic.Int64
	statStale *atomic.Int64
}

func NewContactDamageSystem(world *engine.World) engine.System {
	s := &ContactDamageSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemContact),
	}
	s.statHits = world.Resource.Status.Ints.Get("combat.hits")
	s.statStale = world.Resource.Status.Ints.Get("combat.stale_contacts")
	return s
}

func (s *ContactDamageSystem) Name() string { return parameter.SystemContact }
func (s *ContactDamageSystem) Priority() int { return parameter.PriorityContact }
func (s *ContactDamageSystem) After() []string { return []string{parameter.SystemPhysics} }
func (s *ContactDamageSystem) Before() []string { return []string{parameter.SystemExplosion} }

type combatant struct {
	vel vmath.Vec2
	dmg int
}

func (s *ContactDamageSystem) combatant(e core.Entity) (combatant, bool) {
	w := s.world
	if !live(w, e) || !w.Components.Health.Has(e) {
		return combatant{}, false
	}
	d, ok := w.Components.Dmg.Get(e)
	if !ok {
		return combatant{}, false
	}
	v, _, ok := w.Resource.Physics.Velocity(e)
	if !ok {
		return combatant{}, false
	}
	return combatant{vel: v, dmg: d.Amount}, true
}

func (s *ContactDamageSystem) Update() {
	w := s.world
	threshold := w.Resource.Config.Combat.DamageThreshold

	for _, c := range w.Resource.Physics.ContactsStarted() {
		if !w.Alive(c.A) || !w.Alive(c.B) {
			s.statStale.Add(1)
			continue
		}
		a, ok := s.combatant(c.A)
		if !ok {
			continue
		}
		b, ok := s.combatant(c.B)
		if !ok {
			continue
		}

		speed := a.vel.Sub(b.vel).Len()
		if speed <= threshold {
			continue
		}
		w.Components.Health.Update(c.A, func(h *component.HealthComponent) { h.Damage(b.dmg) })
		w.Components.Health.Update(c.B, func(h *component.HealthComponent) { h.Damage(a.dmg) })
		s.statHits.Add(1)
		s.log.WithFields(logrus.Fields{"a": c.A, "b": c.B, "speed": speed}).Debug("contact damage")
	}
}
