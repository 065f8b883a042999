package system

import (
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
)

// PhysicsSystem steps the physics collaborator; the contact list is final after it
type PhysicsSystem struct {
	world *engine.World
}

func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{world: world}
}

func (s *PhysicsSystem) Name() string { return parameter.SystemPhysics }
func (s *PhysicsSystem) Priority() int { return parameter.PriorityPhysics }
func (s *PhysicsSystem) After() []string { return []string{parameter.SystemRotate, parameter.SystemMovement} }
func (s *PhysicsSystem) Before() []string { return nil }

func (s *PhysicsSystem) Update() {
	s.world.Resource.Physics.Step(s.world.Resource.Time.Seconds())
}
