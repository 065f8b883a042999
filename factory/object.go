package factory

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/vmath"
)

// ErrNotSpawnable is returned for Empty or unknown types
var ErrNotSpawnable = errors.New("factory: type has no object spec")

// ObjectSpec is everything needed to put one item type into the world
// Optional modifiers are nil when the type does not carry them
type ObjectSpec struct {
	Type   inventory.Type
	Body   physics.BodyDef
	Health int
	Dmg    int

	Heal           *component.HealComponent
	FreezeSource   *component.FreezeSourceComponent
	BurnSource     *component.BurnSourceComponent
	ParalyzeSource *component.ParalyzeSourceComponent
	Sight          *component.SightComponent
	Explode        *component.ExplodeComponent
}

// Spec returns the object spec for t at the origin
func Spec(t inventory.Type, cfg *config.Config) (ObjectSpec, error) {
	fx := cfg.Effects
	spec := ObjectSpec{
		Type:   t,
		Health: parameter.ObjectHealth,
		Dmg:    parameter.ObjectDamage,
	}

	switch t {
	case inventory.Square:
		spec.Body = physics.Box(vmath.Vec2{}, 2, 2, parameter.ObjectDensity)
		spec.Health = parameter.SquareHealth
		spec.ParalyzeSource = &component.ParalyzeSourceComponent{Duration: fx.ParalyzeDuration.Duration}

	case inventory.Circle:
		spec.Body = physics.Circle(vmath.Vec2{}, 2.5, parameter.ObjectDensity)
		spec.Sight = &component.SightComponent{Scale: fx.SightScale}
		spec.Explode = &component.ExplodeComponent{Radius: fx.ExplodeRadius, Damage: fx.ExplodeDamage}

	case inventory.Rect:
		spec.Body = physics.Box(vmath.Vec2{}, 4, 2, parameter.ObjectDensity)

	case inventory.Triangle:
		a := math.Sqrt(3)
		spec.Body = physics.Polygon(vmath.Vec2{}, parameter.ObjectDensity,
			vmath.V(-1.5, -1.5*a), vmath.V(3, 0), vmath.V(-1.5, 1.5*a))
		spec.Health = parameter.TriangleHealth
		spec.BurnSource = &component.BurnSourceComponent{
			Damage:   fx.BurnDamage,
			Duration: fx.BurnDuration.Duration,
			Interval: fx.BurnInterval.Duration,
		}

	case inventory.Heart:
		spec.Body = physics.Circle(vmath.Vec2{}, 3.2, parameter.ObjectDensity)
		heal := component.NewHeal(fx.HealAmount, fx.HealInterval.Duration)
		spec.Heal = &heal
		spec.FreezeSource = &component.FreezeSourceComponent{Scale: fx.FreezeScale, Duration: fx.FreezeDuration.Duration}

	case inventory.Rust:
		spec.Body = physics.Circle(vmath.Vec2{}, 5.2, parameter.RustDensity)

	default:
		return ObjectSpec{}, errors.Wrapf(ErrNotSpawnable, "type %s", t)
	}

	spec.Body.LinearDamping = parameter.LinearDamping
	spec.Body.AngularDamping = parameter.AngularDamping
	return spec, nil
}

// SpawnObject creates a throwable object of type t at pos with rotation rot
func SpawnObject(w *engine.World, t inventory.Type, pos vmath.Vec2, rot float64) (core.Entity, error) {
	spec, err := Spec(t, w.Resource.Config)
	if err != nil {
		return core.None, err
	}
	spec.Body.Position = pos
	spec.Body.Rotation = rot

	e := w.CreateEntity()
	if err := w.Resource.Physics.AddBody(e, spec.Body); err != nil {
		w.DestroyEntity(e)
		return core.None, errors.Wrapf(err, "spawn %s", t)
	}

	cs := &w.Components
	cs.Object.Set(e, component.ObjectComponent{})
	cs.Throwable.Set(e, component.ThrowableComponent{Type: t})
	cs.Health.Set(e, component.HealthComponent{HP: spec.Health})
	cs.Dmg.Set(e, component.DmgComponent{Amount: spec.Dmg})
	if spec.Heal != nil {
		cs.Heal.Set(e, *spec.Heal)
	}
	if spec.FreezeSource != nil {
		cs.FreezeSource.Set(e, *spec.FreezeSource)
	}
	if spec.BurnSource != nil {
		cs.BurnSource.Set(e, *spec.BurnSource)
	}
	if spec.ParalyzeSource != nil {
		cs.ParalyzeSource.Set(e, *spec.ParalyzeSource)
	}
	if spec.Sight != nil {
		cs.Sight.Set(e, *spec.Sight)
	}
	if spec.Explode != nil {
		cs.Explode.Set(e, *spec.Explode)
	}
	return e, nil
}
