package system

import "github.com/lixenwraith/shapecraft/engine"

// Constructors lists every gameplay system in no particular order; the schedule is resolved by the world
var Constructors = []func(*engine.World) engine.System{
	NewSynthesisSystem,
	NewSpawnSystem,
	NewRotateSystem,
	NewMovementSystem,
	NewPhysicsSystem,
	NewDetectSystem,
	NewGrabSystem,
	NewThrowSystem,
	NewHighlightSystem,
	NewFreezeSourceSystem,
	NewBurnSourceSystem,
	NewParalyzeSourceSystem,
	NewFrozenTimerSystem,
	NewBurnedTimerSystem,
	NewParalyzedTimerSystem,
	NewHealTimerSystem,
	NewEffectSystem,
	NewHealSystem,
	NewSightSystem,
	NewContactDamageSystem,
	NewExplosionSystem,
	NewDeathSystem,
	NewGameStateSystem,
	NewInvariantSystem,
}

// RegisterAll adds every gameplay system to the world and resolves the schedule
func RegisterAll(w *engine.World) error {
	for _, ctor := range Constructors {
		w.AddSystem(ctor(w))
	}
	return w.Build()
}
