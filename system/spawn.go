package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/component"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/factory"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/vmath"
)

// SpawnSystem drops a random basic object at the spawn point on a fixed interval
type SpawnSystem struct {
	world *engine.World
	log   *logrus.Entry
	timer component.Timer

	statSpawned *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world: world,
		log:   logger.ForSystem(world.Resource.Log, parameter.SystemSpawn),
	}
	s.statSpawned = world.Resource.Status.Ints.Get("spawn.objects")
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.timer = component.NewRepeatingTimer(s.world.Resource.Config.Spawn.Interval.Duration)
}

func (s *SpawnSystem) Name() string { return parameter.SystemSpawn }
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }
func (s *SpawnSystem) After() []string { return nil }
func (s *SpawnSystem) Before() []string { return []string{parameter.SystemPhysics} }

func (s *SpawnSystem) Update() {
	w := s.world
	if w.Resource.Game.Phase != engine.PhaseInGame {
		return
	}
	if !s.timer.Tick(w.Resource.Time.DeltaTime) {
		return
	}

	cfg := w.Resource.Config.Spawn
	if w.Components.Object.Count() >= cfg.MaxObjects {
		return
	}

	t := inventory.Basic[w.Resource.Rand.Intn(len(inventory.Basic))]
	e, err := factory.SpawnObject(w, t, vmath.V(cfg.X, cfg.Y), 0)
	if err != nil {
		s.log.WithError(err).Warn("spawn failed")
		return
	}
	s.statSpawned.Add(1)
	s.log.WithFields(logrus.Fields{"entity": e, "type": t}).Debug("spawned object")
}
