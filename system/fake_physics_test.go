package system

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/factory"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/vmath"
)

type fakeBody struct {
	pos  vmath.Vec2
	rot  float64
	lin  vmath.Vec2
	ang  float64
	mass float64
}

// fakePhysics is a scripted collaborator: tests inject contacts, ray hits and overlaps
type fakePhysics struct {
	bodies  map[core.Entity]*fakeBody
	joints  map[physics.JointID]physics.Joint
	nextID  physics.JointID
	started []physics.Contact
	next    []physics.Contact
	touch   map[core.Entity][]core.Entity
	ray     *physics.RayHit
	overlap []core.Entity
	reject  bool

	impulses map[core.Entity]vmath.Vec2
	forces   map[core.Entity]vmath.Vec2
	steps    int
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{
		bodies:   make(map[core.Entity]*fakeBody),
		joints:   make(map[physics.JointID]physics.Joint),
		touch:    make(map[core.Entity][]core.Entity),
		impulses: make(map[core.Entity]vmath.Vec2),
		forces:   make(map[core.Entity]vmath.Vec2),
	}
}

var _ physics.World = (*fakePhysics)(nil)

func (f *fakePhysics) ContactsStarted() []physics.Contact { return f.started }
func (f *fakePhysics) ContactsWith(e core.Entity) []core.Entity { return f.touch[e] }

// link records a persistent two-way contact
func (f *fakePhysics) link(a, b core.Entity) {
	f.touch[a] = append(f.touch[a], b)
	f.touch[b] = append(f.touch[b], a)
}

func (f *fakePhysics) CastRay(origin, dir vmath.Vec2, maxDist float64, exclude core.Entity) (physics.RayHit, bool) {
	if f.ray == nil || f.ray.Entity == exclude {
		return physics.RayHit{}, false
	}
	return *f.ray, true
}

func (f *fakePhysics) IntersectCircle(center vmath.Vec2, radius float64) []core.Entity {
	return f.overlap
}

func (f *fakePhysics) CreatePrismatic(a, b core.Entity, axis vmath.Vec2, min, max float64) (physics.JointID, error) {
	if f.reject || !f.HasBody(a) || !f.HasBody(b) {
		return 0, errors.New("fake: joint rejected")
	}
	f.nextID++
	f.joints[f.nextID] = physics.Joint{ID: f.nextID, A: a, B: b, Axis: axis, Min: min, Max: max}
	return f.nextID, nil
}

func (f *fakePhysics) RemoveJoint(id physics.JointID) bool {
	_, ok := f.joints[id]
	delete(f.joints, id)
	return ok
}

func (f *fakePhysics) RemoveJointsAttachedTo(e core.Entity) int {
	n := 0
	for id, j := range f.joints {
		if j.A == e || j.B == e {
			delete(f.joints, id)
			n++
		}
	}
	return n
}

func (f *fakePhysics) JointsAttachedTo(e core.Entity) []physics.Joint {
	var out []physics.Joint
	for _, j := range f.joints {
		if j.A == e || j.B == e {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

func (f *fakePhysics) HasBody(e core.Entity) bool {
	_, ok := f.bodies[e]
	return ok
}

func (f *fakePhysics) Position(e core.Entity) (vmath.Vec2, bool) {
	if b, ok := f.bodies[e]; ok {
		return b.pos, true
	}
	return vmath.Vec2{}, false
}

func (f *fakePhysics) Rotation(e core.Entity) (float64, bool) {
	if b, ok := f.bodies[e]; ok {
		return b.rot, true
	}
	return 0, false
}

func (f *fakePhysics) Velocity(e core.Entity) (vmath.Vec2, float64, bool) {
	if b, ok := f.bodies[e]; ok {
		return b.lin, b.ang, true
	}
	return vmath.Vec2{}, 0, false
}

func (f *fakePhysics) SetVelocity(e core.Entity, lin vmath.Vec2, ang float64) {
	if b, ok := f.bodies[e]; ok {
		b.lin, b.ang = lin, ang
	}
}

func (f *fakePhysics) Mass(e core.Entity) (float64, bool) {
	if b, ok := f.bodies[e]; ok {
		return b.mass, true
	}
	return 0, false
}

func (f *fakePhysics) ApplyImpulse(e core.Entity, impulse vmath.Vec2) {
	if _, ok := f.bodies[e]; ok {
		f.impulses[e] = f.impulses[e].Add(impulse)
	}
}

func (f *fakePhysics) AddForce(e core.Entity, force vmath.Vec2) {
	if _, ok := f.bodies[e]; ok {
		f.forces[e] = f.forces[e].Add(force)
	}
}

func (f *fakePhysics) AddBody(e core.Entity, def physics.BodyDef) error {
	if f.HasBody(e) {
		return physics.ErrDuplicateBody
	}
	f.bodies[e] = &fakeBody{pos: def.Position, rot: def.Rotation, mass: 1}
	return nil
}

func (f *fakePhysics) RemoveBody(e core.Entity) {
	delete(f.bodies, e)
	f.RemoveJointsAttachedTo(e)
}

// Step publishes contacts queued with collide as this step's started list
func (f *fakePhysics) Step(dt float64) {
	f.steps++
	f.started, f.next = f.next, nil
}

// collide queues a contact-started pair for the next step
func (f *fakePhysics) collide(a, b core.Entity) {
	f.next = append(f.next, physics.Contact{A: a, B: b})
}

// body inserts a bare body for an already created entity
func (f *fakePhysics) body(e core.Entity, pos, vel vmath.Vec2) *fakeBody {
	b := &fakeBody{pos: pos, lin: vel, mass: 1}
	f.bodies[e] = b
	return b
}

// newTestWorld builds a world with every system registered and spawning off
func newTestWorld(t *testing.T) (*engine.World, *fakePhysics) {
	t.Helper()
	fp := newFakePhysics()
	w := engine.NewWorld(engine.Resource{
		Config:  config.Default(),
		Recipes: inventory.NewRecipeTable(inventory.DefaultRecipes),
		Physics: fp,
		Rand:    rand.New(rand.NewSource(1)),
	})
	w.Resource.Game.Phase = engine.PhaseInGame
	require.NoError(t, RegisterAll(w))
	w.SetEnabled(parameter.SystemSpawn, false)
	return w, fp
}

// steps advances n ticks at 60 Hz, sized the way the clock sizes them
func steps(t *testing.T, w *engine.World, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, w.Step(engine.StepDuration(60, w.Resource.Time.Frame+1)))
	}
}

// addPlayer spawns the player at the origin facing +X
func addPlayer(t *testing.T, w *engine.World) core.Entity {
	t.Helper()
	e, err := factory.SpawnPlayer(w, vmath.Vec2{})
	require.NoError(t, err)
	return e
}

// spawn creates a catalogue object of type typ at pos
func spawn(t *testing.T, w *engine.World, typ inventory.Type, pos vmath.Vec2) core.Entity {
	t.Helper()
	e, err := factory.SpawnObject(w, typ, pos, 0)
	require.NoError(t, err)
	return e
}

// addObject creates a throwable object of type typ with the given hp
func addObject(w *engine.World, fp *fakePhysics, typ inventory.Type, hp int, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	fp.body(e, pos, vmath.Vec2{})
	w.Components.Object.Set(e, component.ObjectComponent{})
	w.Components.Throwable.Set(e, component.ThrowableComponent{Type: typ})
	w.Components.Health.Set(e, component.HealthComponent{HP: hp})
	w.Components.Dmg.Set(e, component.DmgComponent{Amount: parameter.ObjectDamage})
	return e
}

func hp(w *engine.World, e core.Entity) int {
	h, _ := w.Components.Health.Get(e)
	return h.HP
}

// drain returns queued signals of type typ, discarding the rest
func drain(w *engine.World, typ event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Resource.Signals.Consume() {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}
