package physics

import (
	"math"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/vmath"
)

var (
	ErrNoBody        = errors.New("physics: no body for entity")
	ErrDuplicateBody = errors.New("physics: entity already has a body")
	ErrBadJoint      = errors.New("physics: invalid joint")
)

// Restitution applied to every contact response
const Restitution = 0.3

type body struct {
	entity core.Entity
	def    BodyDef

	pos, vel vmath.Vec2
	rot, ang float64
	force    vmath.Vec2
	invMass  float64
	mass     float64

	shape resolv.IShape
	poly  *resolv.ConvexPolygon
	local []vmath.Vec2
}

func (b *body) sync() {
	b.shape.SetPosition(b.pos.X, b.pos.Y)
	if b.poly != nil {
		b.poly.SetRotation(b.rot)
	}
}

type pairKey struct{ a, b core.Entity }

func keyOf(a, b core.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type manifold struct {
	normal vmath.Vec2 // from b toward a
}

type jointState struct {
	Joint
	relRot float64
}

// Space is a small rigid body world: semi-implicit Euler integration,
// resolv narrow phase, impulse contact response and hard prismatic joints
//
// Step order: respond to contacts found last step, integrate, enforce joints, detect contacts
// Velocities read between steps are therefore pre-response for new contacts
type Space struct {
	mu sync.RWMutex

	bodies map[core.Entity]*body
	order  []core.Entity

	contacts map[pairKey]manifold
	started  []Contact

	joints    map[JointID]*jointState
	nextJoint JointID
}

// NewSpace creates an empty Space
func NewSpace() *Space {
	return &Space{
		bodies:    make(map[core.Entity]*body),
		contacts:  make(map[pairKey]manifold),
		joints:    make(map[JointID]*jointState),
		nextJoint: 1,
	}
}

// AddBody registers a rigid body for e
func (s *Space) AddBody(e core.Entity, def BodyDef) error {
	if e == core.None {
		return errors.Wrap(ErrNoBody, "add body for null entity")
	}
	if def.Shape != ShapeCircle && len(def.localPoints()) < 3 {
		return errors.Errorf("physics: polygon for entity %d needs at least 3 points", e)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bodies[e]; ok {
		return errors.Wrapf(ErrDuplicateBody, "entity %d", e)
	}

	shape, poly := newCollider(def)
	b := &body{
		entity: e,
		def:    def,
		pos:    def.Position,
		rot:    def.Rotation,
		shape:  shape,
		poly:   poly,
		local:  def.localPoints(),
	}
	if !def.Static {
		density := def.Density
		if density <= 0 {
			density = 1
		}
		b.mass = def.area() * density
		if b.mass > 0 {
			b.invMass = 1 / b.mass
		}
	}
	s.bodies[e] = b
	s.order = append(s.order, e)
	return nil
}

// RemoveBody drops e, its joints and its contacts
func (s *Space) RemoveBody(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bodies[e]; !ok {
		return
	}
	delete(s.bodies, e)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.removeJointsLocked(e)
	for k := range s.contacts {
		if k.a == e || k.b == e {
			delete(s.contacts, k)
		}
	}
}

// Step advances the world by dt seconds
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.respondLocked()
	s.integrateLocked(dt)
	s.enforceJointsLocked()
	s.detectLocked()
}

func (s *Space) respondLocked() {
	for k, m := range s.contacts {
		a, b := s.bodies[k.a], s.bodies[k.b]
		if a == nil || b == nil {
			continue
		}
		inv := a.invMass + b.invMass
		if inv == 0 {
			continue
		}
		vn := a.vel.Sub(b.vel).Dot(m.normal)
		if vn >= 0 {
			continue
		}
		j := -(1 + Restitution) * vn / inv
		a.vel = a.vel.Add(m.normal.Scale(j * a.invMass))
		b.vel = b.vel.Sub(m.normal.Scale(j * b.invMass))
	}
}

func (s *Space) integrateLocked(dt float64) {
	for _, e := range s.order {
		b := s.bodies[e]
		if b.def.Static {
			continue
		}
		b.vel = b.vel.Add(b.force.Scale(b.invMass * dt))
		b.force = vmath.Vec2{}
		if b.def.LinearDamping > 0 {
			b.vel = b.vel.Scale(1 / (1 + dt*b.def.LinearDamping))
		}
		if b.def.AngularDamping > 0 {
			b.ang /= 1 + dt*b.def.AngularDamping
		}
		b.pos = b.pos.Add(b.vel.Scale(dt))
		b.rot += b.ang * dt
		b.sync()
	}
}

// enforceJointsLocked projects B onto A's axis within the limits and matches A's rotation
func (s *Space) enforceJointsLocked() {
	for _, j := range s.sortedJoints() {
		a, b := s.bodies[j.A], s.bodies[j.B]
		if a == nil || b == nil {
			continue
		}
		axis := j.Axis.Rotate(a.rot)
		t := vmath.Clamp(b.pos.Sub(a.pos).Dot(axis), j.Min, j.Max)
		b.pos = a.pos.Add(axis.Scale(t))
		b.rot = a.rot + j.relRot

		rel := b.vel.Sub(a.vel).Dot(axis)
		if (t <= j.Min && rel < 0) || (t >= j.Max && rel > 0) {
			rel = 0
		}
		b.vel = a.vel.Add(axis.Scale(rel))
		b.ang = a.ang
		b.sync()
	}
}

func (s *Space) detectLocked() {
	jointed := make(map[pairKey]struct{}, len(s.joints))
	for _, j := range s.joints {
		jointed[keyOf(j.A, j.B)] = struct{}{}
	}

	next := make(map[pairKey]manifold, len(s.contacts))
	s.started = s.started[:0]

	for i := 0; i < len(s.order); i++ {
		a := s.bodies[s.order[i]]
		for k := i + 1; k < len(s.order); k++ {
			b := s.bodies[s.order[k]]
			if a.def.Static && b.def.Static {
				continue
			}
			key := keyOf(a.entity, b.entity)
			if _, skip := jointed[key]; skip {
				continue
			}

			cs := a.shape.Intersection(0, 0, b.shape)
			if cs == nil {
				continue
			}

			mtv := vmath.V(cs.MTV[0], cs.MTV[1])
			if mtv.Dot(a.pos.Sub(b.pos)) < 0 {
				mtv = mtv.Neg()
			}
			normal := mtv.Normalize()
			if normal.IsZero() {
				normal = a.pos.Sub(b.pos).Normalize()
			}
			if key.a != a.entity {
				normal = normal.Neg()
			}
			next[key] = manifold{normal: normal}
			if _, was := s.contacts[key]; !was {
				s.started = append(s.started, Contact{A: key.a, B: key.b})
			}

			s.separate(a, b, mtv)
		}
	}
	s.contacts = next
}

// separate pushes the pair apart along mtv (which moves a out of b), split by inverse mass
func (s *Space) separate(a, b *body, mtv vmath.Vec2) {
	inv := a.invMass + b.invMass
	if inv == 0 {
		return
	}
	a.pos = a.pos.Add(mtv.Scale(a.invMass / inv))
	b.pos = b.pos.Sub(mtv.Scale(b.invMass / inv))
	a.sync()
	b.sync()
}

func (s *Space) sortedJoints() []*jointState {
	out := make([]*jointState, 0, len(s.joints))
	for _, j := range s.joints {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

// ContactsStarted returns pairs that began touching during the last Step
func (s *Space) ContactsStarted() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Contact, len(s.started))
	copy(out, s.started)
	return out
}

// ContactsWith returns entities currently touching e
func (s *Space) ContactsWith(e core.Entity) []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Entity
	for k := range s.contacts {
		switch e {
		case k.a:
			out = append(out, k.b)
		case k.b:
			out = append(out, k.a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CastRay returns the nearest body hit by a ray; dir need not be normalized
func (s *Space) CastRay(origin, dir vmath.Vec2, maxDist float64, exclude core.Entity) (RayHit, bool) {
	dir = dir.Normalize()
	if dir.IsZero() || maxDist <= 0 {
		return RayHit{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	best := RayHit{Distance: math.Inf(1)}
	for _, e := range s.order {
		if e == exclude {
			continue
		}
		b := s.bodies[e]
		var t float64
		var ok bool
		if b.def.Shape == ShapeCircle {
			t, ok = rayCircle(origin, dir, b.pos, b.def.Radius, maxDist)
		} else {
			t, ok = rayPolygon(origin, dir, worldPoints(b.local, b.pos, b.rot), maxDist)
		}
		if ok && t < best.Distance {
			best = RayHit{Entity: e, Distance: t, Fraction: t / maxDist}
		}
	}
	if best.Entity == core.None {
		return RayHit{}, false
	}
	return best, true
}

// IntersectCircle returns every body overlapping the circle, in insertion order
func (s *Space) IntersectCircle(center vmath.Vec2, radius float64) []core.Entity {
	query := resolv.NewCircle(center.X, center.Y, radius)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Entity
	for _, e := range s.order {
		b := s.bodies[e]
		if b.def.Shape == ShapeCircle {
			if b.pos.Dist(center) <= radius+b.def.Radius {
				out = append(out, e)
			}
			continue
		}
		if query.Intersection(0, 0, b.shape) != nil {
			out = append(out, e)
		}
	}
	return out
}

// CreatePrismatic joins b to a; b slides along a's local axis within [min, max]
func (s *Space) CreatePrismatic(a, b core.Entity, axis vmath.Vec2, min, max float64) (JointID, error) {
	if a == b || min > max || axis.IsZero() {
		return 0, errors.Wrapf(ErrBadJoint, "prismatic %d-%d [%v,%v]", a, b, min, max)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ba, bb := s.bodies[a], s.bodies[b]
	if ba == nil {
		return 0, errors.Wrapf(ErrNoBody, "joint anchor %d", a)
	}
	if bb == nil {
		return 0, errors.Wrapf(ErrNoBody, "joint target %d", b)
	}

	id := s.nextJoint
	s.nextJoint++
	s.joints[id] = &jointState{
		Joint:  Joint{ID: id, A: a, B: b, Axis: axis.Normalize(), Min: min, Max: max},
		relRot: bb.rot - ba.rot,
	}
	delete(s.contacts, keyOf(a, b))
	return id, nil
}

func (s *Space) RemoveJoint(id JointID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.joints[id]; !ok {
		return false
	}
	delete(s.joints, id)
	return true
}

func (s *Space) RemoveJointsAttachedTo(e core.Entity) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeJointsLocked(e)
}

func (s *Space) removeJointsLocked(e core.Entity) int {
	n := 0
	for id, j := range s.joints {
		if j.A == e || j.B == e {
			delete(s.joints, id)
			n++
		}
	}
	return n
}

// JointsAttachedTo returns joints touching e ordered by id
func (s *Space) JointsAttachedTo(e core.Entity) []Joint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Joint
	for _, j := range s.sortedJoints() {
		if j.A == e || j.B == e {
			out = append(out, j.Joint)
		}
	}
	return out
}

func (s *Space) HasBody(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bodies[e]
	return ok
}

func (s *Space) Position(e core.Entity) (vmath.Vec2, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bodies[e]; ok {
		return b.pos, true
	}
	return vmath.Vec2{}, false
}

func (s *Space) Rotation(e core.Entity) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bodies[e]; ok {
		return b.rot, true
	}
	return 0, false
}

func (s *Space) Velocity(e core.Entity) (vmath.Vec2, float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bodies[e]; ok {
		return b.vel, b.ang, true
	}
	return vmath.Vec2{}, 0, false
}

func (s *Space) SetVelocity(e core.Entity, linear vmath.Vec2, angular float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok && !b.def.Static {
		b.vel, b.ang = linear, angular
	}
}

func (s *Space) Mass(e core.Entity) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bodies[e]; ok {
		return b.mass, true
	}
	return 0, false
}

// ApplyImpulse changes velocity by impulse / mass
func (s *Space) ApplyImpulse(e core.Entity, impulse vmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok {
		b.vel = b.vel.Add(impulse.Scale(b.invMass))
	}
}

// AddForce accumulates a force applied during the next Step
func (s *Space) AddForce(e core.Entity, force vmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok {
		b.force = b.force.Add(force)
	}
}

// Snapshot is a read-only view of one body for presentation
type Snapshot struct {
	Entity   core.Entity
	Shape    ShapeKind
	Position vmath.Vec2
	Rotation float64
	Radius   float64
	Points   []vmath.Vec2 // world space, polygons only
	Static   bool
}

// Snapshots returns every body in insertion order
func (s *Space) Snapshots() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Snapshot, 0, len(s.order))
	for _, e := range s.order {
		b := s.bodies[e]
		snap := Snapshot{
			Entity:   e,
			Shape:    b.def.Shape,
			Position: b.pos,
			Rotation: b.rot,
			Radius:   b.def.Radius,
			Static:   b.def.Static,
		}
		if b.local != nil {
			snap.Points = worldPoints(b.local, b.pos, b.rot)
		}
		out = append(out, snap)
	}
	return out
}

var _ World = (*Space)(nil)
