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

// effectSource is a source component able to build its active effect
type effectSource[A any] interface {
	Effect() A
}

// EffectSourceSystem scans each source's current contacts and attaches a fresh active effect
// to every eligible partner; attaching overwrites and so restarts the partner's timers
type EffectSourceSystem[S effectSource[A], A any] struct {
	world    *engine.World
	log      *logrus.Entry
	sources  *engine.Store[S]
	targets  *engine.Store[A]
	eligible func(e core.Entity) bool
	kind     component.EffectKind
	name     string
	priority int

	statApplied *atomic.Int64
}

func newEffectSourceSystem[S effectSource[A], A any](
	world *engine.World,
	sources *engine.Store[S],
	targets *engine.Store[A],
	kind component.EffectKind,
	name string,
	priority int,
	eligible func(core.Entity) bool,
) *EffectSourceSystem[S, A] {
	s := &EffectSourceSystem[S, A]{
		world:    world,
		log:      logger.ForSystem(world.Resource.Log, name),
		sources:  sources,
		targets:  targets,
		eligible: eligible,
		kind:     kind,
		name:     name,
		priority: priority,
	}
	s.statApplied = world.Resource.Status.Ints.Get("effect.applied." + kind.String())
	return s
}

// NewFreezeSourceSystem freezes players and objects that are not freeze sources themselves
func NewFreezeSourceSystem(world *engine.World) engine.System {
	cs := &world.Components
	return newEffectSourceSystem[component.FreezeSourceComponent, component.FrozenComponent](
		world, cs.FreezeSource, cs.Frozen, component.EffectFreeze,
		parameter.SystemFreeze, parameter.PriorityFreeze,
		func(e core.Entity) bool {
			return (cs.Player.Has(e) || cs.Object.Has(e)) && !cs.FreezeSource.Has(e)
		},
	)
}

// NewBurnSourceSystem burns anything that is not a burn source
func NewBurnSourceSystem(world *engine.World) engine.System {
	cs := &world.Components
	return newEffectSourceSystem[component.BurnSourceComponent, component.BurnedComponent](
		world, cs.BurnSource, cs.Burned, component.EffectBurn,
		parameter.SystemBurn, parameter.PriorityBurn,
		func(e core.Entity) bool {
			return !cs.BurnSource.Has(e)
		},
	)
}

// NewParalyzeSourceSystem paralyzes players only
func NewParalyzeSourceSystem(world *engine.World) engine.System {
	cs := &world.Components
	return newEffectSourceSystem[component.ParalyzeSourceComponent, component.ParalyzedComponent](
		world, cs.ParalyzeSource, cs.Paralyzed, component.EffectParalyze,
		parameter.SystemParalyze, parameter.PriorityParalyze,
		cs.Player.Has,
	)
}

func (s *EffectSourceSystem[S, A]) Name() string { return s.name }
func (s *EffectSourceSystem[S, A]) Priority() int { return s.priority }
func (s *EffectSourceSystem[S, A]) After() []string { return []string{parameter.SystemPhysics} }
func (s *EffectSourceSystem[S, A]) Before() []string { return nil }

func (s *EffectSourceSystem[S, A]) Update() {
	w := s.world
	var applied map[core.Entity]struct{}

	for _, src := range s.sources.All() {
		if !live(w, src) {
			continue
		}
		cfg, ok := s.sources.Get(src)
		if !ok {
			continue
		}
		for _, partner := range w.Resource.Physics.ContactsWith(src) {
			if partner == src || !w.Alive(partner) || !s.eligible(partner) {
				continue
			}
			if _, done := applied[partner]; done {
				continue
			}
			if applied == nil {
				applied = make(map[core.Entity]struct{})
			}
			applied[partner] = struct{}{}

			s.targets.Set(partner, cfg.Effect())
			s.statApplied.Add(1)
			w.PushSignal(event.EventEffectApplied, &event.EffectPayload{Source: src, Target: partner, Kind: s.kind})
			s.log.WithFields(logrus.Fields{"source": src, "target": partner}).Debug("effect applied")
		}
	}
}
