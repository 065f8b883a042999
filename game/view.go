package game

import (
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/vmath"
)

// BodyRole classifies a body for presentation
type BodyRole uint8

const (
	RolePlayer BodyRole = iota
	RoleObject
	RoleWall
)

// BodyView is one drawable body
type BodyView struct {
	physics.Snapshot
	Role      BodyRole
	Type      inventory.Type
	HP        int
	Held      bool
	Highlight bool
	Frozen    bool
	Burned    bool
	Paralyzed bool
}

// View is a consistent copy of everything the presentation layer reads
type View struct {
	Frame     int64
	Phase     engine.Phase
	Zoom      float64
	Focus     vmath.Vec2
	PlayerHP  int
	Hand      engine.HandState
	Held      inventory.Type
	Storage   []inventory.Type
	Blueprint []inventory.Type
	Selected  int
	Bodies    []BodyView
}

// View copies the presentation state under the tick lock
func (s *Simulation) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.World
	cs := &w.Components
	res := &w.Resource

	v := View{
		Frame:    res.Time.Frame,
		Phase:    res.Game.Phase,
		Zoom:     res.Camera.Zoom,
		Hand:     res.Hand.State(),
		Selected: -1,
	}

	if pos, ok := res.Physics.Position(s.Player); ok {
		v.Focus = pos
	}
	if h, ok := cs.Health.Get(s.Player); ok {
		v.PlayerHP = h.HP
	}
	if inv, ok := cs.Inventory.Get(s.Player); ok {
		v.Storage = inv.Storage.Slots()
		v.Blueprint = inv.Blueprint.Slots()
		v.Selected = inv.Selected
	}
	if th, ok := cs.Throwable.Get(res.Hand.Held); ok {
		v.Held = th.Type
	}

	for _, snap := range s.Space.Snapshots() {
		b := BodyView{Snapshot: snap, Role: RoleObject}
		e := snap.Entity
		switch {
		case cs.Player.Has(e):
			b.Role = RolePlayer
		case cs.Undead.Has(e):
			b.Role = RoleWall
		}
		if th, ok := cs.Throwable.Get(e); ok {
			b.Type = th.Type
		}
		if h, ok := cs.Health.Get(e); ok {
			b.HP = h.HP
		}
		b.Held = cs.Grabbed.Has(e)
		b.Highlight = e != core.None && e == res.Range.Prev
		b.Frozen = cs.Frozen.Has(e)
		b.Burned = cs.Burned.Has(e)
		b.Paralyzed = cs.Paralyzed.Has(e)
		v.Bodies = append(v.Bodies, b)
	}
	return v
}
