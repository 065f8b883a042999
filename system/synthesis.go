package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/factory"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/parameter"
)

// SynthesisSystem executes the discrete inventory commands: select, stage, store, hold, clear, synthesize
// Every failure is a silent no-op
type SynthesisSystem struct {
	world *engine.World
	log   *logrus.Entry

	statStored  *atomic.Int64
	statHeld    *atomic.Int64
	statCrafted *atomic.Int64
	statMissed  *atomic.Int64
}

func NewSynthesisSystem(world *engine.World) engine.System {
	s := &SynthesisSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemSynthesis),
	}
	s.statStored = world.Resource.Status.Ints.Get("synthesis.stored")
	s.statHeld = world.Resource.Status.Ints.Get("synthesis.held")
	s.statCrafted = world.Resource.Status.Ints.Get("synthesis.crafted")
	s.statMissed = world.Resource.Status.Ints.Get("synthesis.missed")
	return s
}

func (s *SynthesisSystem) Name() string { return parameter.SystemSynthesis }
func (s *SynthesisSystem) Priority() int { return parameter.PrioritySynthesis }
func (s *SynthesisSystem) After() []string { return nil }
func (s *SynthesisSystem) Before() []string { return nil }

// Update is empty; commands arrive through the router before systems run
func (s *SynthesisSystem) Update() {}

func (s *SynthesisSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSelectSlot,
		event.EventStageSlot,
		event.EventStore,
		event.EventHoldSlot,
		event.EventClearBlueprint,
		event.EventSynthesize,
	}
}

func (s *SynthesisSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	player := w.Resource.Hand.Player
	if !w.Alive(player) {
		return
	}
	inv, ok := w.Components.Inventory.Get(player)
	if !ok {
		return
	}

	switch ev.Type {
	case event.EventSelectSlot:
		if p, ok := ev.Payload.(*event.SlotPayload); ok {
			s.selectSlot(player, inv, p.Slot)
		}
	case event.EventStageSlot:
		if p, ok := ev.Payload.(*event.SlotPayload); ok {
			s.stage(inv, p.Slot)
		}
	case event.EventStore:
		s.store(inv)
	case event.EventHoldSlot:
		if p, ok := ev.Payload.(*event.SlotPayload); ok {
			s.hold(inv, p.Slot)
		}
	case event.EventClearBlueprint:
		inv.Blueprint.Clear()
	case event.EventSynthesize:
		s.synthesize(inv)
	}
}

// selectSlot stages on the second consecutive select of the same slot
func (s *SynthesisSystem) selectSlot(player core.Entity, inv component.InventoryComponent, slot int) {
	if slot < 0 || slot >= inv.Storage.Size() {
		return
	}
	next := slot
	if inv.Selected == slot {
		s.stage(inv, slot)
		next = -1
	}
	s.world.Components.Inventory.Update(player, func(c *component.InventoryComponent) {
		c.Selected = next
	})
}

func (s *SynthesisSystem) stage(inv component.InventoryComponent, slot int) bool {
	t := inv.Storage.At(slot)
	if t == inventory.Empty {
		return false
	}
	return inv.Blueprint.Insert(t)
}

func (s *SynthesisSystem) store(inv component.InventoryComponent) {
	w := s.world
	hand := w.Resource.Hand
	if hand.State() != engine.HandHolding {
		return
	}
	held := hand.Held
	th, ok := w.Components.Throwable.Get(held)
	if !ok {
		return
	}
	slot, ok := inv.Storage.Insert(th.Type)
	if !ok {
		return
	}

	releaseHeld(w, hand.Player)
	w.DestroyEntity(held)
	s.statStored.Add(1)
	s.log.WithFields(logrus.Fields{"entity": held, "type": th.Type, "slot": slot}).Debug("stored")
}

func (s *SynthesisSystem) hold(inv component.InventoryComponent, slot int) {
	w := s.world
	hand := w.Resource.Hand
	if hand.State() != engine.HandEmpty {
		return
	}
	t := inv.Storage.At(slot)
	if t == inventory.Empty {
		return
	}
	pos, dir, ok := facing(w, hand.Player)
	if !ok {
		return
	}
	rot, _ := w.Resource.Physics.Rotation(hand.Player)

	cfg := w.Resource.Config.Interaction
	e, err := factory.SpawnObject(w, t, pos.Add(dir.Scale(cfg.HoldDistance)), rot)
	if err != nil {
		s.log.WithError(err).Warn("hold spawn failed")
		return
	}
	if !Attach(w, hand.Player, e, cfg.JointMin, cfg.JointMax, s.log) {
		w.DestroyEntity(e)
		return
	}
	inv.Storage.Remove(slot)
	s.statHeld.Add(1)
}

func (s *SynthesisSystem) synthesize(inv component.InventoryComponent) {
	res := inventory.Synthesize(s.world.Resource.Recipes, inv.Blueprint, inv.Storage)
	if res.Outcome != inventory.Crafted {
		s.statMissed.Add(1)
		s.log.WithField("outcome", res.Outcome).Debug("synthesis skipped")
		return
	}
	s.statCrafted.Add(1)
	s.world.PushSignal(event.EventCrafted, &event.CraftedPayload{Result: res.Type, Slot: res.Slot})
	s.log.WithFields(logrus.Fields{"result": res.Type, "slot": res.Slot}).Info("crafted")
}
