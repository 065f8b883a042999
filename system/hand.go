package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/vmath"
)

// releaseHeld drops whatever player holds: joints, Grabbed marker and hand slot
// Safe to call repeatedly and from any path (throw, death, store)
func releaseHeld(w *engine.World, player core.Entity) core.Entity {
	hand := w.Resource.Hand
	if player == core.None || hand.Player != player {
		return core.None
	}

	held := hand.Held
	removed := 0
	if w.Resource.Physics != nil {
		removed = w.Resource.Physics.RemoveJointsAttachedTo(player)
	}
	if held != core.None {
		w.Components.Grabbed.Remove(held)
	}
	for _, e := range w.Components.Grabbed.All() {
		if g, ok := w.Components.Grabbed.Get(e); ok && g.Holder == player {
			w.Components.Grabbed.Remove(e)
		}
	}
	hand.Held = core.None

	if held != core.None || removed > 0 {
		w.Resource.Log.WithFields(logrus.Fields{
			"player": player,
			"held":   held,
			"joints": removed,
		}).Debug("released held object")
	}
	return held
}

// facing returns the player's position and unit facing direction
func facing(w *engine.World, e core.Entity) (vmath.Vec2, vmath.Vec2, bool) {
	pos, ok := w.Resource.Physics.Position(e)
	if !ok {
		return vmath.Vec2{}, vmath.Vec2{}, false
	}
	rot, ok := w.Resource.Physics.Rotation(e)
	if !ok {
		return vmath.Vec2{}, vmath.Vec2{}, false
	}
	return pos, vmath.FromAngle(rot), true
}

// live reports whether e is still present in both the world and the physics collaborator
func live(w *engine.World, e core.Entity) bool {
	return e != core.None && w.Alive(e) && w.Resource.Physics.HasBody(e)
}
