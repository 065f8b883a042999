package engine

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/status"
)

// World owns entities, component stores, resources and the system schedule
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resource   Resource

	commands *event.Queue
	router   *event.Router[*World]

	systems  []System
	schedule []System
	disabled map[string]bool
	dirty    bool
}

// NewWorld creates a world around the given resources
// Missing Time, Input, Hand, Range, Game, Camera and Signals are allocated
func NewWorld(res Resource) *World {
	if res.Time == nil {
		res.Time = &TimeResource{}
	}
	if res.Input == nil {
		res.Input = &InputResource{}
	}
	if res.Hand == nil {
		res.Hand = &HandResource{}
	}
	if res.Range == nil {
		res.Range = &RangeResource{}
	}
	if res.Game == nil {
		res.Game = &GameStateResource{}
	}
	if res.Camera == nil {
		res.Camera = &CameraResource{Zoom: 1}
	}
	if res.Signals == nil {
		res.Signals = event.NewQueue()
	}
	if res.Status == nil {
		res.Status = status.NewRegistry()
	}
	if res.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		res.Log = logrus.NewEntry(l)
	}

	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Resource:     res,
		commands:     event.NewQueue(),
		disabled:     make(map[string]bool),
	}
	w.router = event.NewRouter[*World](w.commands)
	w.router.Register(toggleHandler{})
	return w
}

// CreateEntity reserves a new entity id; ids are never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether e was created and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// DestroyEntity removes every component and the physics body of e
// Destroying a dead or unknown entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	_, ok := w.alive[e]
	delete(w.alive, e)
	w.mu.Unlock()
	if !ok {
		return
	}

	w.Components.removeAll(e)
	if w.Resource.Physics != nil {
		w.Resource.Physics.RemoveBody(e)
	}
}

// Clear destroys all entities
func (w *World) Clear() {
	w.mu.Lock()
	alive := w.alive
	w.alive = make(map[core.Entity]struct{})
	w.mu.Unlock()

	if w.Resource.Physics != nil {
		for e := range alive {
			w.Resource.Physics.RemoveBody(e)
		}
	}
	w.Components.clear()
	*w.Resource.Hand = HandResource{}
	*w.Resource.Range = RangeResource{}
}

// AddSystem registers a system; handlers are subscribed to the command router
func (w *World) AddSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, s)
	w.dirty = true
	if h, ok := s.(event.Handler[*World]); ok {
		w.router.Register(h)
	}
}

// Build resolves the schedule; called implicitly by Step when systems changed
func (w *World) Build() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	order, err := buildSchedule(w.systems)
	if err != nil {
		return errors.Wrap(err, "build schedule")
	}
	w.schedule = order
	w.dirty = false
	return nil
}

// Schedule returns the resolved system order
func (w *World) Schedule() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.schedule))
	copy(out, w.schedule)
	return out
}

// Init calls Init on every system implementing Initializer
func (w *World) Init() {
	for _, s := range w.Schedule() {
		if in, ok := s.(Initializer); ok {
			in.Init()
		}
	}
}

// SetEnabled toggles a system by name
func (w *World) SetEnabled(name string, enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if enabled {
		delete(w.disabled, name)
	} else {
		w.disabled[name] = true
	}
}

// Enabled reports whether the named system runs
func (w *World) Enabled(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.disabled[name]
}

// PushCommand queues a player command for the next Step; safe from any goroutine
// The command's Frame is assigned when Step dispatches it
func (w *World) PushCommand(t event.EventType, payload any) {
	w.commands.Push(event.GameEvent{Type: t, Payload: payload})
}

// PushSignal emits an outbound presentation signal
func (w *World) PushSignal(t event.EventType, payload any) {
	w.Resource.Signals.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.Resource.Time.Frame})
}

// Step runs one fixed tick: time, queued commands, systems in schedule order, end-of-tick reset
func (w *World) Step(dt time.Duration) error {
	w.mu.RLock()
	dirty := w.dirty
	w.mu.RUnlock()
	if dirty {
		if err := w.Build(); err != nil {
			return err
		}
	}

	t := w.Resource.Time
	t.DeltaTime = dt
	t.Elapsed += dt
	t.Frame++

	w.router.DispatchAt(w, t.Frame)

	w.mu.RLock()
	schedule := w.schedule
	w.mu.RUnlock()

	for _, s := range schedule {
		if !w.Enabled(s.Name()) {
			continue
		}
		s.Update()
	}

	w.Components.clearAdded()
	w.Resource.Input.endTick()
	w.Resource.Status.Ints.Get("engine.ticks").Add(1)
	return nil
}

// toggleHandler applies EventSystemToggle commands
type toggleHandler struct{}

func (toggleHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (toggleHandler) HandleEvent(w *World, ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SystemTogglePayload); ok {
		w.SetEnabled(p.System, p.Enabled)
	}
}
