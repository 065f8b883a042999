package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/vmath"
)

// assertHand checks the hand, Grabbed and joint agreement for player p
func assertHand(t *testing.T, w *engine.World, fp *fakePhysics, p, want core.Entity) {
	t.Helper()
	assert.Equal(t, want, w.Resource.Hand.Held)
	joints := fp.JointsAttachedTo(p)
	if want == core.None {
		assert.Empty(t, joints)
		assert.Zero(t, w.Components.Grabbed.Count())
		return
	}
	require.Len(t, joints, 1)
	assert.Equal(t, want, joints[0].B)
	g, ok := w.Components.Grabbed.Get(want)
	require.True(t, ok)
	assert.Equal(t, p, g.Holder)
	assert.Equal(t, 1, w.Components.Grabbed.Count())
}

func TestDetectRecordsThrowableCandidate(t *testing.T) {
	w, fp := newTestWorld(t)
	addPlayer(t, w)
	sq := spawn(t, w, inventory.Square, vmath.V(5, 0))
	fp.ray = &physics.RayHit{Entity: sq, Distance: 1, Fraction: 0.25}

	steps(t, w, 1)
	// Highlight rotates the buffer at the end of the tick
	assert.Equal(t, sq, w.Resource.Range.Prev)
	assert.Equal(t, core.None, w.Resource.Range.Cur)

	ev := drain(w, event.EventHighlightChanged)
	require.Len(t, ev, 1)
	assert.Equal(t, sq, ev[0].Payload.(*event.HighlightPayload).Cur)

	steps(t, w, 1)
	assert.Empty(t, drain(w, event.EventHighlightChanged))

	fp.ray = nil
	steps(t, w, 1)
	assert.Len(t, drain(w, event.EventHighlightChanged), 1)
	assert.Equal(t, core.None, w.Resource.Range.Prev)
}

func TestDetectIgnoresNonThrowable(t *testing.T) {
	w, fp := newTestWorld(t)
	addPlayer(t, w)
	wall := w.CreateEntity()
	fp.body(wall, vmath.V(5, 0), vmath.Vec2{})
	fp.ray = &physics.RayHit{Entity: wall}

	steps(t, w, 1)
	assert.Equal(t, core.None, w.Resource.Range.Prev)
}

func TestGrabThenThrow(t *testing.T) {
	w, fp := newTestWorld(t)
	p := addPlayer(t, w)
	sq := spawn(t, w, inventory.Square, vmath.V(5, 0))
	fp.ray = &physics.RayHit{Entity: sq}

	w.Resource.Input.Grab = true
	steps(t, w, 1)
	assertHand(t, w, fp, p, sq)
	j := fp.JointsAttachedTo(p)[0]
	assert.Equal(t, 4.0, j.Min)
	assert.Equal(t, 7.0, j.Max)
	assert.False(t, w.Resource.Input.Grab, "grab is an edge")

	// Held objects are not candidates and grab from Holding is a no-op
	other := spawn(t, w, inventory.Circle, vmath.V(6, 0))
	fp.ray = &physics.RayHit{Entity: other}
	w.Resource.Input.Grab = true
	steps(t, w, 1)
	assertHand(t, w, fp, p, sq)

	fp.bodies[p].rot = math.Pi / 2
	w.Resource.Input.Throw = true
	steps(t, w, 1)
	assertHand(t, w, fp, p, core.None)
	assert.InDelta(t, 0, fp.impulses[sq].X, 1e-9)
	assert.InDelta(t, 1000, fp.impulses[sq].Y, 1e-9)
	assert.Equal(t, int64(1), w.Resource.Status.Ints.Get("interaction.throws").Load())
}

func TestThrowFromEmptyIsNoop(t *testing.T) {
	w, fp := newTestWorld(t)
	p := addPlayer(t, w)
	w.Resource.Input.Throw = true
	steps(t, w, 1)
	assertHand(t, w, fp, p, core.None)
	assert.Zero(t, w.Resource.Status.Ints.Get("interaction.throws").Load())
}

func TestGrabRejectedJointLeavesStateUntouched(t *testing.T) {
	w, fp := newTestWorld(t)
	p := addPlayer(t, w)
	sq := spawn(t, w, inventory.Square, vmath.V(5, 0))
	fp.ray = &physics.RayHit{Entity: sq}
	fp.reject = true

	w.Resource.Input.Grab = true
	steps(t, w, 1)
	assertHand(t, w, fp, p, core.None)
}

func TestReleaseHeldIsIdempotent(t *testing.T) {
	w, fp := newTestWorld(t)
	p := addPlayer(t, w)
	sq := spawn(t, w, inventory.Square, vmath.V(5, 0))
	require.True(t, Attach(w, p, sq, 4, 7, w.Resource.Log))

	assert.Equal(t, sq, releaseHeld(w, p))
	assert.Equal(t, core.None, releaseHeld(w, p))
	assertHand(t, w, fp, p, core.None)
	assert.True(t, w.Alive(sq))
}

func TestMovementForceAndFriction(t *testing.T) {
	w, fp := newTestWorld(t)
	p := addPlayer(t, w)
	w.Resource.Input.Move = vmath.V(3, 0)
	steps(t, w, 1)
	assert.Equal(t, vmath.V(2000, 0), fp.forces[p])

	delete(fp.forces, p)
	fp.bodies[p].lin = vmath.V(0, 10)
	steps(t, w, 1)
	assert.InDelta(t, 2000, fp.forces[p].X, 1e-9)
	assert.InDelta(t, -600, fp.forces[p].Y, 1e-9)
}

func TestRotationTurnsTowardAim(t *testing.T) {
	w, fp := newTestWorld(t)
	p := addPlayer(t, w)
	w.Resource.Input.Aim = vmath.V(0, 10)
	steps(t, w, 1)
	assert.InDelta(t, 10, fp.bodies[p].ang, 1e-9)

	w.Resource.Game.Phase = engine.PhaseEndGame
	fp.bodies[p].ang = 0
	steps(t, w, 1)
	assert.Zero(t, fp.bodies[p].ang)
}
