package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/vmath"
)

const dt = 1.0 / 60

func TestAddBodyRejectsDuplicates(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Circle(vmath.V(0, 0), 1, 1)))
	assert.ErrorIs(t, s.AddBody(1, Circle(vmath.V(0, 0), 1, 1)), ErrDuplicateBody)
	assert.Error(t, s.AddBody(core.None, Circle(vmath.V(0, 0), 1, 1)))
	assert.Error(t, s.AddBody(2, Polygon(vmath.V(0, 0), 1, vmath.V(0, 0), vmath.V(1, 0))))
}

func TestMassFromDensity(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 2, 2, 0.5)))
	m, ok := s.Mass(1)
	require.True(t, ok)
	assert.InDelta(t, 8, m, 1e-9)

	wall := Box(vmath.V(0, 0), 10, 1, 1)
	wall.Static = true
	require.NoError(t, s.AddBody(2, wall))
	m, _ = s.Mass(2)
	assert.Zero(t, m)
}

func TestPolygonColliderSitsAtBodyPosition(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(20, 10), 2, 2, 1)))

	assert.Equal(t, []core.Entity{1}, s.IntersectCircle(vmath.V(20, 10), 0.5))
	assert.Empty(t, s.IntersectCircle(vmath.V(0, 0), 0.5))

	require.NoError(t, s.AddBody(2, Box(vmath.V(23, 10), 2, 2, 1)))
	s.Step(dt)
	require.Len(t, s.ContactsStarted(), 1)
	assert.Equal(t, Contact{A: 1, B: 2}, s.ContactsStarted()[0])
}

func TestContactStartedReportedOnce(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Circle(vmath.V(0, 0), 2, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(3, 0), 2, 1)))

	s.Step(dt)
	started := s.ContactsStarted()
	require.Len(t, started, 1)
	assert.Equal(t, Contact{A: 1, B: 2}, started[0])
	assert.Equal(t, []core.Entity{2}, s.ContactsWith(1))

	// Separated by positional correction; pair may re-touch but never re-reports while held together
	s.Step(dt)
	for _, c := range s.ContactsStarted() {
		assert.NotEqual(t, Contact{A: 1, B: 2}, c, "still-touching pair must not restart")
	}
}

func TestContactVelocityIsPreResponse(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Circle(vmath.V(0, 0), 1, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(2.5, 0), 1, 1)))
	s.SetVelocity(1, vmath.V(120, 0), 0)

	s.Step(dt)
	require.Len(t, s.ContactsStarted(), 1)
	v, _, _ := s.Velocity(1)
	assert.InDelta(t, 120, v.X, 1e-9)

	// Response lands on the following step
	s.Step(dt)
	v, _, _ = s.Velocity(1)
	assert.Less(t, v.X, 120.0)
}

func TestCastRayNearest(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 2, 2, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(5, 0), 1, 1)))
	require.NoError(t, s.AddBody(3, Box(vmath.V(8, 0), 1, 1, 1)))

	hit, ok := s.CastRay(vmath.V(2.1, 0), vmath.V(1, 0), 4, 1)
	require.True(t, ok)
	assert.Equal(t, core.Entity(2), hit.Entity)
	assert.InDelta(t, 1.9, hit.Distance, 1e-9)
	assert.InDelta(t, 1.9/4, hit.Fraction, 1e-9)

	_, ok = s.CastRay(vmath.V(2.1, 0), vmath.V(0, 1), 4, 1)
	assert.False(t, ok)

	hit, ok = s.CastRay(vmath.V(6.5, 0), vmath.V(1, 0), 4, 1)
	require.True(t, ok)
	assert.Equal(t, core.Entity(3), hit.Entity)
}

func TestIntersectCircle(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Circle(vmath.V(0, 0), 1, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(15, 0), 2, 1)))
	require.NoError(t, s.AddBody(3, Circle(vmath.V(40, 0), 2, 1)))
	require.NoError(t, s.AddBody(4, Box(vmath.V(0, 20), 2, 2, 1)))

	got := s.IntersectCircle(vmath.V(0, 0), 20)
	assert.ElementsMatch(t, []core.Entity{1, 2, 4}, got)
}

func TestPrismaticJointLimits(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 2, 2, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(20, 3), 1, 1)))

	id, err := s.CreatePrismatic(1, 2, vmath.V(1, 0), 4, 7)
	require.NoError(t, err)

	s.Step(dt)
	p, _ := s.Position(2)
	assert.InDelta(t, 7, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	require.Len(t, s.JointsAttachedTo(1), 1)
	assert.True(t, s.RemoveJoint(id))
	assert.False(t, s.RemoveJoint(id))
	assert.Empty(t, s.JointsAttachedTo(2))
}

func TestPrismaticFollowsAnchorRotation(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 2, 2, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(5, 0), 1, 1)))
	_, err := s.CreatePrismatic(1, 2, vmath.V(1, 0), 4, 7)
	require.NoError(t, err)

	s.SetVelocity(1, vmath.Vec2{}, (math.Pi/2)/dt)
	s.Step(dt)

	// Rotated axis is +Y; the projected offset clamps to the lower limit
	p, _ := s.Position(2)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 4, p.Y, 1e-6)
}

func TestRemoveBodyDropsJoints(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 2, 2, 1)))
	require.NoError(t, s.AddBody(2, Circle(vmath.V(5, 0), 1, 1)))
	_, err := s.CreatePrismatic(1, 2, vmath.V(1, 0), 4, 7)
	require.NoError(t, err)

	s.RemoveBody(2)
	assert.False(t, s.HasBody(2))
	assert.Empty(t, s.JointsAttachedTo(1))
	assert.Zero(t, s.RemoveJointsAttachedTo(1))
}

func TestCreatePrismaticErrors(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 2, 2, 1)))

	_, err := s.CreatePrismatic(1, 9, vmath.V(1, 0), 4, 7)
	assert.ErrorIs(t, err, ErrNoBody)
	_, err = s.CreatePrismatic(1, 1, vmath.V(1, 0), 4, 7)
	assert.ErrorIs(t, err, ErrBadJoint)
}

func TestApplyImpulseAndForce(t *testing.T) {
	s := NewSpace()
	require.NoError(t, s.AddBody(1, Box(vmath.V(0, 0), 1, 1, 1))) // mass 4
	s.ApplyImpulse(1, vmath.V(8, 0))
	v, _, _ := s.Velocity(1)
	assert.InDelta(t, 2, v.X, 1e-9)

	s.AddForce(1, vmath.V(0, 240))
	s.Step(dt)
	v, _, _ = s.Velocity(1)
	assert.InDelta(t, 1, v.Y, 1e-9)
}
