package engine

import (
	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
)

// ComponentStore holds one typed store per component
type ComponentStore struct {
	Player    *Store[component.PlayerComponent]
	Object    *Store[component.ObjectComponent]
	Throwable *Store[component.ThrowableComponent]
	Grabbed   *Store[component.GrabbedComponent]
	Inventory *Store[component.InventoryComponent]

	Health  *Store[component.HealthComponent]
	Dmg     *Store[component.DmgComponent]
	Explode *Store[component.ExplodeComponent]
	Undead  *Store[component.UndeadComponent]

	Sight          *Store[component.SightComponent]
	Heal           *Store[component.HealComponent]
	FreezeSource   *Store[component.FreezeSourceComponent]
	Frozen         *Store[component.FrozenComponent]
	BurnSource     *Store[component.BurnSourceComponent]
	Burned         *Store[component.BurnedComponent]
	ParalyzeSource *Store[component.ParalyzeSourceComponent]
	Paralyzed      *Store[component.ParalyzedComponent]

	all []AnyStore
}

func register[T any](cs *ComponentStore) *Store[T] {
	s := NewStore[T]()
	cs.all = append(cs.all, s)
	return s
}

func newComponentStore() ComponentStore {
	var cs ComponentStore
	cs.Player = register[component.PlayerComponent](&cs)
	cs.Object = register[component.ObjectComponent](&cs)
	cs.Throwable = register[component.ThrowableComponent](&cs)
	cs.Grabbed = register[component.GrabbedComponent](&cs)
	cs.Inventory = register[component.InventoryComponent](&cs)
	cs.Health = register[component.HealthComponent](&cs)
	cs.Dmg = register[component.DmgComponent](&cs)
	cs.Explode = register[component.ExplodeComponent](&cs)
	cs.Undead = register[component.UndeadComponent](&cs)
	cs.Sight = register[component.SightComponent](&cs)
	cs.Heal = register[component.HealComponent](&cs)
	cs.FreezeSource = register[component.FreezeSourceComponent](&cs)
	cs.Frozen = register[component.FrozenComponent](&cs)
	cs.BurnSource = register[component.BurnSourceComponent](&cs)
	cs.Burned = register[component.BurnedComponent](&cs)
	cs.ParalyzeSource = register[component.ParalyzeSourceComponent](&cs)
	cs.Paralyzed = register[component.ParalyzedComponent](&cs)
	return cs
}

// Immobilized reports whether e carries an effect that blocks movement and rotation
func (cs *ComponentStore) Immobilized(e core.Entity) bool {
	return cs.Paralyzed.Has(e) || cs.Frozen.Has(e)
}

// HasAny reports whether e holds at least one component
func (cs *ComponentStore) HasAny(e core.Entity) bool {
	for _, s := range cs.all {
		if s.Has(e) {
			return true
		}
	}
	return false
}

func (cs *ComponentStore) removeAll(e core.Entity) {
	for _, s := range cs.all {
		s.Remove(e)
	}
}

func (cs *ComponentStore) clearAdded() {
	for _, s := range cs.all {
		s.ClearAdded()
	}
}

func (cs *ComponentStore) clear() {
	for _, s := range cs.all {
		s.Clear()
	}
}
