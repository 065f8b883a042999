package system

import (
	"math"

	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/vmath"
)

// RotateSystem turns players toward the aim point
// Immobilized players and finished games are skipped before any write
type RotateSystem struct {
	world *engine.World
}

func NewRotateSystem(world *engine.World) engine.System {
	return &RotateSystem{world: world}
}

func (s *RotateSystem) Name() string { return parameter.SystemRotate }
func (s *RotateSystem) Priority() int { return parameter.PriorityRotate }
func (s *RotateSystem) After() []string { return nil }
func (s *RotateSystem) Before() []string { return []string{parameter.SystemPhysics} }

func (s *RotateSystem) Update() {
	w := s.world
	if w.Resource.Game.Phase == engine.PhaseEndGame {
		return
	}
	gain := w.Resource.Config.Movement.RotateGain

	for _, e := range w.Components.Player.All() {
		if w.Components.Immobilized(e) {
			continue
		}
		pos, dir, ok := facing(w, e)
		if !ok {
			continue
		}
		target := w.Resource.Input.Aim.Sub(pos)
		if target.IsZero() {
			continue
		}
		lin, _, _ := w.Resource.Physics.Velocity(e)
		w.Resource.Physics.SetVelocity(e, lin, dir.AngleTo(target)/math.Pi*gain)
	}
}

// MovementSystem applies input force with velocity-opposing friction
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string { return parameter.SystemMovement }
func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }
func (s *MovementSystem) After() []string { return nil }
func (s *MovementSystem) Before() []string { return []string{parameter.SystemPhysics} }

func (s *MovementSystem) Update() {
	w := s.world
	if w.Resource.Game.Phase == engine.PhaseEndGame {
		return
	}
	mv := w.Resource.Config.Movement
	dir := w.Resource.Input.Move.Normalize()

	for _, e := range w.Components.Player.All() {
		if w.Components.Immobilized(e) {
			continue
		}
		lin, _, ok := w.Resource.Physics.Velocity(e)
		if !ok {
			continue
		}
		force := dir.Scale(mv.Force)
		if lin.Len() > parameter.MoveStopSpeed {
			force = force.Sub(lin.Normalize().Scale(mv.Friction))
		}
		if force != (vmath.Vec2{}) {
			w.Resource.Physics.AddForce(e, force)
		}
	}
}
