package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/factory"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/status"
	"github.com/lixenwraith/shapecraft/system"
	"github.com/lixenwraith/shapecraft/vmath"
)

// Simulation owns one game session: world, physics space and system schedule
// All methods are safe for concurrent use; ticks and input are serialized on one lock
type Simulation struct {
	mu sync.Mutex

	RunID  ulid.ULID
	Seed   int64
	World  *engine.World
	Space  *physics.Space
	Player core.Entity

	log *logrus.Entry
}

// New builds a session from cfg, spawning walls, the player and its starting Square
func New(cfg *config.Config, base *logrus.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	id := ulid.Make()

	if base == nil {
		base = logrus.New()
		base.SetLevel(logrus.PanicLevel)
	}
	log := base.WithField("run", id.String())

	space := physics.NewSpace()
	w := engine.NewWorld(engine.Resource{
		Config:  cfg,
		Recipes: inventory.NewRecipeTable(inventory.DefaultRecipes),
		Physics: space,
		Status:  status.NewRegistry(),
		Log:     log,
		Rand:    rng,
	})

	if err := system.RegisterAll(w); err != nil {
		return nil, err
	}

	s := &Simulation{
		RunID: id,
		Seed:  seed,
		World: w,
		Space: space,
		log:   log,
	}
	if err := s.setup(); err != nil {
		return nil, err
	}

	w.Resource.Game.Phase = engine.PhaseInGame
	log.WithFields(logrus.Fields{"seed": seed, "systems": len(w.Schedule())}).Info("session started")
	return s, nil
}

func (s *Simulation) setup() error {
	w := s.World
	if _, err := factory.SpawnWalls(w); err != nil {
		return err
	}

	p, err := factory.SpawnPlayer(w, vmath.V(parameter.PlayerX, parameter.PlayerY))
	if err != nil {
		return err
	}
	s.Player = p

	start := vmath.V(parameter.PlayerX+parameter.InitialOffset, parameter.PlayerY)
	sq, err := factory.SpawnObject(w, inventory.Square, start, 0)
	if err != nil {
		return err
	}
	if !system.Attach(w, p, sq, parameter.InitialJointMin, parameter.InitialJointMax, s.log) {
		return errors.New("attach starting object")
	}
	return nil
}

// Step advances the session by one fixed tick
func (s *Simulation) Step(dt time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.World.Step(dt)
}

// Input mutates the control state for the next tick
func (s *Simulation) Input(fn func(in *engine.InputResource)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.World.Resource.Input)
}

// Command queues a player command; it is applied at the start of the next tick
func (s *Simulation) Command(t event.EventType, payload any) {
	s.World.PushCommand(t, payload)
}

// Signals drains presentation signals emitted since the last call
func (s *Simulation) Signals() []event.GameEvent {
	return s.World.Resource.Signals.Consume()
}

// Over reports whether the session reached EndGame
func (s *Simulation) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.World.Resource.Game.Phase == engine.PhaseEndGame
}

// Metrics returns a sorted telemetry snapshot
func (s *Simulation) Metrics() []status.Metric {
	return s.World.Resource.Status.Snapshot()
}
