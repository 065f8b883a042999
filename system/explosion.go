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
)

// ExplosionSystem detonates dead Explode carriers before they are despawned
// A blast that kills another Explode carrier chains within the same tick
type ExplosionSystem struct {
	world *engine.World
	log   *logrus.Entry

	pending []core.Entity

	statTriggered *atomic.Int64
	statHits      *atomic.Int64
}

func NewExplosionSystem(world *engine.World) engine.System {
	s := &ExplosionSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemExplosion),
	}
	s.statTriggered = world.Resource.Status.Ints.Get("explosion.triggered")
	s.statHits = world.Resource.Status.Ints.Get("explosion.hits")
	s.Init()
	return s
}

func (s *ExplosionSystem) Init() {
	s.pending = make([]core.Entity, 0, 16)
}

func (s *ExplosionSystem) Name() string { return parameter.SystemExplosion }
func (s *ExplosionSystem) Priority() int { return parameter.PriorityExplosion }
func (s *ExplosionSystem) After() []string { return []string{parameter.SystemContact} }
func (s *ExplosionSystem) Before() []string { return []string{parameter.SystemDeath} }

func (s *ExplosionSystem) dead(e core.Entity) bool {
	h, ok := s.world.Components.Health.Get(e)
	return ok && h.Dead()
}

func (s *ExplosionSystem) Update() {
	w := s.world
	cs := &w.Components

	s.pending = s.pending[:0]
	for _, e := range cs.Explode.All() {
		if s.dead(e) {
			s.pending = append(s.pending, e)
		}
	}

	for len(s.pending) > 0 {
		src := s.pending[0]
		s.pending = s.pending[1:]

		ex, ok := cs.Explode.Get(src)
		if !ok {
			continue
		}
		// Explode fires once; removing it keeps chained blasts from revisiting src
		cs.Explode.Remove(src)

		pos, ok := w.Resource.Physics.Position(src)
		if !ok {
			continue
		}

		hits := 0
		for _, e := range w.Resource.Physics.IntersectCircle(pos, ex.Radius) {
			if e == src || !w.Alive(e) {
				continue
			}
			if !cs.Health.Update(e, func(h *component.HealthComponent) { h.Damage(ex.Damage) }) {
				continue
			}
			hits++
			if cs.Explode.Has(e) && s.dead(e) {
				s.pending = append(s.pending, e)
			}
		}

		s.statTriggered.Add(1)
		s.statHits.Add(int64(hits))
		w.PushSignal(event.EventExploded, &event.ExplodedPayload{Source: src, Pos: pos, Radius: ex.Radius, Hits: hits})
		s.log.WithFields(logrus.Fields{"entity": src, "hits": hits}).Info("exploded")
	}
}
