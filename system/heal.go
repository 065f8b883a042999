package system

import (
	"sync/atomic"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/parameter"
)

// HealSystem pays out Heal pulses of held objects to their holder
type HealSystem struct {
	world *engine.World

	statHealed *atomic.Int64
}

func NewHealSystem(world *engine.World) engine.System {
	s := &HealSystem{world: world}
	s.statHealed = world.Resource.Status.Ints.Get("effect.healed")
	return s
}

func (s *HealSystem) Name() string { return parameter.SystemHeal }
func (s *HealSystem) Priority() int { return parameter.PriorityHeal }
func (s *HealSystem) After() []string { return []string{parameter.SystemHealTimer} }
func (s *HealSystem) Before() []string { return []string{parameter.SystemContact} }

func (s *HealSystem) Update() {
	w := s.world
	cs := &w.Components

	for _, e := range cs.Heal.All() {
		g, held := cs.Grabbed.Get(e)
		if !held {
			continue
		}
		h, ok := cs.Heal.Get(e)
		if !ok || !h.Timer.JustFinished() {
			continue
		}
		amount := h.HP * h.Timer.TimesFinished()
		if !cs.Health.Update(g.Holder, func(hp *component.HealthComponent) { hp.Heal(amount) }) {
			continue
		}
		s.statHealed.Add(int64(amount))

		pos, _ := w.Resource.Physics.Position(g.Holder)
		w.PushSignal(event.EventHealed, &event.HealedPayload{Holder: g.Holder, Pos: pos, Amount: amount})
	}
}
