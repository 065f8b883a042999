package system

import (
	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
)

// EffectTimerSystem advances one active effect kind and removes it on the tick it finishes
// A nil filter ticks every carrier
type EffectTimerSystem[T any, PT interface {
	*T
	component.TimedEffect
}] struct {
	world    *engine.World
	store    *engine.Store[T]
	name     string
	priority int
	filter   func(e core.Entity) bool
}

func newEffectTimerSystem[T any, PT interface {
	*T
	component.TimedEffect
}](world *engine.World, store *engine.Store[T], name string, priority int, filter func(core.Entity) bool) *EffectTimerSystem[T, PT] {
	return &EffectTimerSystem[T, PT]{
		world:    world,
		store:    store,
		name:     name,
		priority: priority,
		filter:   filter,
	}
}

func NewFrozenTimerSystem(world *engine.World) engine.System {
	return newEffectTimerSystem[component.FrozenComponent](world, world.Components.Frozen,
		parameter.SystemFrozenTimer, parameter.PriorityEffectTimer, nil)
}

func NewBurnedTimerSystem(world *engine.World) engine.System {
	return newEffectTimerSystem[component.BurnedComponent](world, world.Components.Burned,
		parameter.SystemBurnedTimer, parameter.PriorityEffectTimer, nil)
}

func NewParalyzedTimerSystem(world *engine.World) engine.System {
	return newEffectTimerSystem[component.ParalyzedComponent](world, world.Components.Paralyzed,
		parameter.SystemParalyzedTimer, parameter.PriorityEffectTimer, nil)
}

// NewHealTimerSystem ticks Heal only while its carrier is held
func NewHealTimerSystem(world *engine.World) engine.System {
	return newEffectTimerSystem[component.HealComponent](world, world.Components.Heal,
		parameter.SystemHealTimer, parameter.PriorityEffectTimer, world.Components.Grabbed.Has)
}

func (s *EffectTimerSystem[T, PT]) Name() string { return s.name }
func (s *EffectTimerSystem[T, PT]) Priority() int { return s.priority }
func (s *EffectTimerSystem[T, PT]) After() []string {
	return []string{parameter.SystemFreeze, parameter.SystemBurn, parameter.SystemParalyze}
}
func (s *EffectTimerSystem[T, PT]) Before() []string {
	return []string{parameter.SystemEffect, parameter.SystemHeal}
}

func (s *EffectTimerSystem[T, PT]) Update() {
	dt := s.world.Resource.Time.DeltaTime
	for _, e := range s.store.All() {
		if s.filter != nil && !s.filter(e) {
			continue
		}
		expired := false
		s.store.Update(e, func(v *T) {
			expired = PT(v).TickEffect(dt)
		})
		if expired {
			s.store.Remove(e)
		}
	}
}
