package physics

import (
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/vmath"
)

// Contact is an unordered pair of touching entities
// Either side may be stale by the time it is consumed
type Contact struct {
	A, B core.Entity
}

// Other returns the partner of e in the pair, or None if e is not a member
func (c Contact) Other(e core.Entity) core.Entity {
	switch e {
	case c.A:
		return c.B
	case c.B:
		return c.A
	default:
		return core.None
	}
}

// RayHit is the nearest entity along a cast ray
type RayHit struct {
	Entity   core.Entity
	Distance float64
	Fraction float64 // Distance / max distance
}

// JointID identifies a live joint
type JointID uint64

// Joint is a prismatic constraint: B slides along A's local axis within [Min, Max]
type Joint struct {
	ID       JointID
	A, B     core.Entity
	Axis     vmath.Vec2
	Min, Max float64
}

// ContactFeed reports collisions for the current step
type ContactFeed interface {
	// ContactsStarted returns pairs that began touching during the last step
	ContactsStarted() []Contact
	// ContactsWith returns every entity currently touching e
	ContactsWith(e core.Entity) []core.Entity
}

// SpatialQuery answers ray and overlap queries against current body positions
type SpatialQuery interface {
	CastRay(origin, dir vmath.Vec2, maxDist float64, exclude core.Entity) (RayHit, bool)
	IntersectCircle(center vmath.Vec2, radius float64) []core.Entity
}

// JointService creates and removes joints
type JointService interface {
	CreatePrismatic(a, b core.Entity, axis vmath.Vec2, min, max float64) (JointID, error)
	RemoveJoint(id JointID) bool
	// RemoveJointsAttachedTo removes every joint touching e and returns how many were removed
	RemoveJointsAttachedTo(e core.Entity) int
	JointsAttachedTo(e core.Entity) []Joint
}

// Bodies reads and mutates rigid body state
// Mutators on unknown entities are no-ops
type Bodies interface {
	HasBody(e core.Entity) bool
	Position(e core.Entity) (vmath.Vec2, bool)
	Rotation(e core.Entity) (float64, bool)
	Velocity(e core.Entity) (linear vmath.Vec2, angular float64, ok bool)
	SetVelocity(e core.Entity, linear vmath.Vec2, angular float64)
	Mass(e core.Entity) (float64, bool)
	ApplyImpulse(e core.Entity, impulse vmath.Vec2)
	AddForce(e core.Entity, force vmath.Vec2)
}

// World is the full physics collaborator consumed by the simulation
type World interface {
	ContactFeed
	SpatialQuery
	JointService
	Bodies

	AddBody(e core.Entity, def BodyDef) error
	RemoveBody(e core.Entity)
	Step(dt float64)
}
