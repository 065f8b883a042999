package factory

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/vmath"
)

// SpawnPlayer creates the player and registers it as the hand owner
func SpawnPlayer(w *engine.World, pos vmath.Vec2) (core.Entity, error) {
	e := w.CreateEntity()
	if err := w.Resource.Physics.AddBody(e, physics.Box(pos, 2, 2, parameter.PlayerDensity)); err != nil {
		w.DestroyEntity(e)
		return core.None, errors.Wrap(err, "spawn player")
	}

	inv := w.Resource.Config.Inventory
	cs := &w.Components
	cs.Player.Set(e, component.PlayerComponent{})
	cs.Health.Set(e, component.HealthComponent{HP: parameter.PlayerHealth})
	cs.Dmg.Set(e, component.DmgComponent{Amount: parameter.PlayerDamage})
	cs.Inventory.Set(e, component.NewInventory(inv.StorageSize, inv.BlueprintSize))

	w.Resource.Hand.Player = e
	return e, nil
}

// SpawnWalls creates the four static arena boundaries
func SpawnWalls(w *engine.World) ([]core.Entity, error) {
	halfM := parameter.ArenaHeight/2 + parameter.ArenaOffsetY
	halfN := parameter.ArenaWidth/2 + parameter.ArenaOffsetX

	defs := []struct{ pos, half vmath.Vec2 }{
		{vmath.V(0, halfM), vmath.V(halfN, parameter.ArenaOffsetY)},
		{vmath.V(0, -halfM), vmath.V(halfN, parameter.ArenaOffsetY)},
		{vmath.V(halfN, 0), vmath.V(parameter.ArenaOffsetX, halfM)},
		{vmath.V(-halfN, 0), vmath.V(parameter.ArenaOffsetX, halfM)},
	}

	walls := make([]core.Entity, 0, len(defs))
	for _, d := range defs {
		body := physics.Box(d.pos, d.half.X, d.half.Y, 0)
		body.Static = true

		e := w.CreateEntity()
		if err := w.Resource.Physics.AddBody(e, body); err != nil {
			w.DestroyEntity(e)
			return walls, errors.Wrap(err, "spawn wall")
		}
		w.Components.Undead.Set(e, component.UndeadComponent{})
		w.Components.Health.Set(e, component.HealthComponent{HP: parameter.WallHealth})
		w.Components.Dmg.Set(e, component.DmgComponent{Amount: parameter.WallDamage})
		walls = append(walls, e)
	}
	return walls, nil
}
