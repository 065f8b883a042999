package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/shapecraft/vmath"
)

// ShapeKind selects the collider geometry
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
	ShapePolygon
)

// BodyDef describes a rigid body to add to a Space
type BodyDef struct {
	Shape       ShapeKind
	Radius      float64      // ShapeCircle
	HalfExtents vmath.Vec2   // ShapeBox
	Points      []vmath.Vec2 // ShapePolygon, local space, convex, wound consistently

	Position vmath.Vec2
	Rotation float64
	Density  float64
	Static   bool

	LinearDamping  float64
	AngularDamping float64
}

// Circle returns a dynamic circle definition
func Circle(pos vmath.Vec2, r, density float64) BodyDef {
	return BodyDef{Shape: ShapeCircle, Radius: r, Position: pos, Density: density}
}

// Box returns a dynamic box definition with half extents (hx, hy)
func Box(pos vmath.Vec2, hx, hy, density float64) BodyDef {
	return BodyDef{Shape: ShapeBox, HalfExtents: vmath.V(hx, hy), Position: pos, Density: density}
}

// Polygon returns a dynamic convex polygon definition
func Polygon(pos vmath.Vec2, density float64, pts ...vmath.Vec2) BodyDef {
	return BodyDef{Shape: ShapePolygon, Points: pts, Position: pos, Density: density}
}

// localPoints returns polygon vertices in body space; nil for circles
func (d BodyDef) localPoints() []vmath.Vec2 {
	switch d.Shape {
	case ShapeBox:
		hx, hy := d.HalfExtents.X, d.HalfExtents.Y
		return []vmath.Vec2{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}}
	case ShapePolygon:
		return d.Points
	default:
		return nil
	}
}

// area of the collider in square units
func (d BodyDef) area() float64 {
	switch d.Shape {
	case ShapeCircle:
		return math.Pi * d.Radius * d.Radius
	default:
		pts := d.localPoints()
		a := 0.0
		for i := range pts {
			j := (i + 1) % len(pts)
			a += pts[i].Cross(pts[j])
		}
		return math.Abs(a) / 2
	}
}

// newCollider builds the resolv shape for a definition
func newCollider(d BodyDef) (resolv.IShape, *resolv.ConvexPolygon) {
	if d.Shape == ShapeCircle {
		return resolv.NewCircle(d.Position.X, d.Position.Y, d.Radius), nil
	}

	pts := d.localPoints()
	flat := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	poly := resolv.NewConvexPolygon(d.Position.X, d.Position.Y, flat...)
	poly.SetRotation(d.Rotation)
	return poly, poly
}

// worldPoints transforms local vertices by position and rotation
func worldPoints(local []vmath.Vec2, pos vmath.Vec2, rot float64) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(local))
	for i, p := range local {
		out[i] = p.Rotate(rot).Add(pos)
	}
	return out
}

// rayCircle returns the distance along a unit ray to a circle, if hit within maxDist
func rayCircle(origin, dir, center vmath.Vec2, r, maxDist float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.LenSq() - r*r
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 || t > maxDist {
		return 0, false
	}
	return t, true
}

// rayPolygon returns the distance along a unit ray to the nearest polygon edge within maxDist
func rayPolygon(origin, dir vmath.Vec2, pts []vmath.Vec2, maxDist float64) (float64, bool) {
	best := math.Inf(1)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		edge := b.Sub(a)
		denom := dir.Cross(edge)
		if denom == 0 {
			continue
		}
		ao := a.Sub(origin)
		t := ao.Cross(edge) / denom
		u := ao.Cross(dir) / denom
		if t >= 0 && t <= maxDist && u >= 0 && u <= 1 && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
