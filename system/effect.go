package system

import (
	"sync/atomic"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/vmath"
)

// EffectSystem applies per-tick behaviour of active Frozen, Burned and Paralyzed effects
type EffectSystem struct {
	world *engine.World

	statBurnDamage *atomic.Int64
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{world: world}
	s.statBurnDamage = world.Resource.Status.Ints.Get("effect.burn_damage")
	return s
}

func (s *EffectSystem) Name() string { return parameter.SystemEffect }
func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }
func (s *EffectSystem) After() []string { return []string{parameter.SystemPhysics} }
func (s *EffectSystem) Before() []string { return []string{parameter.SystemContact} }

func (s *EffectSystem) Update() {
	w := s.world
	cs := &w.Components
	phys := w.Resource.Physics

	// Frozen: continuous damping
	for _, e := range cs.Frozen.All() {
		f, ok := cs.Frozen.Get(e)
		if !ok {
			continue
		}
		lin, ang, ok := phys.Velocity(e)
		if !ok {
			continue
		}
		phys.SetVelocity(e, lin.Scale(f.Scale), ang*f.Scale)
	}

	// Burned: damage per elapsed interval
	for _, e := range cs.Burned.All() {
		b, ok := cs.Burned.Get(e)
		if !ok || !b.Interval.JustFinished() {
			continue
		}
		dmg := b.Damage * b.Interval.TimesFinished()
		if cs.Health.Update(e, func(h *component.HealthComponent) { h.Damage(dmg) }) {
			s.statBurnDamage.Add(int64(dmg))
		}
	}

	// Paralyzed: one-shot stop on the tick it was first added
	for _, e := range cs.Paralyzed.All() {
		if !cs.Paralyzed.Added(e) {
			continue
		}
		if _, ang, ok := phys.Velocity(e); ok {
			phys.SetVelocity(e, vmath.Vec2{}, ang)
		}
	}
}
