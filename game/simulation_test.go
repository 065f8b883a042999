package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/inventory"
)

func newSim(t *testing.T) *Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.Sim.Seed = 7
	s, err := New(cfg, nil)
	require.NoError(t, err)
	return s
}

func TestNewStartsHoldingSquare(t *testing.T) {
	s := newSim(t)

	v := s.View()
	assert.Equal(t, engine.PhaseInGame, v.Phase)
	assert.Equal(t, engine.HandHolding, v.Hand)
	assert.Equal(t, inventory.Square, v.Held)
	assert.Equal(t, 100, v.PlayerHP)
	assert.Len(t, v.Storage, 8)
	assert.Len(t, v.Blueprint, 4)

	joints := s.Space.JointsAttachedTo(s.Player)
	require.Len(t, joints, 1)
	assert.Equal(t, 7.0, joints[0].Min)
	assert.Equal(t, 8.0, joints[0].Max)

	roles := map[BodyRole]int{}
	for _, b := range v.Bodies {
		roles[b.Role]++
	}
	assert.Equal(t, 1, roles[RolePlayer])
	assert.Equal(t, 4, roles[RoleWall])
	assert.Equal(t, 1, roles[RoleObject])
}

func TestSeedIsReproducible(t *testing.T) {
	a, b := newSim(t), newSim(t)
	assert.Equal(t, a.Seed, b.Seed)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestStoreThenHoldRoundTrip(t *testing.T) {
	s := newSim(t)
	dt := time.Second / 60

	s.Command(event.EventStore, nil)
	require.NoError(t, s.Step(dt))
	v := s.View()
	assert.Equal(t, engine.HandEmpty, v.Hand)
	assert.Equal(t, inventory.Square, v.Storage[0])

	s.Command(event.EventHoldSlot, &event.SlotPayload{Slot: 0})
	require.NoError(t, s.Step(dt))
	v = s.View()
	assert.Equal(t, engine.HandHolding, v.Hand)
	assert.Equal(t, inventory.Empty, v.Storage[0])
	assert.Len(t, s.Space.JointsAttachedTo(s.Player), 1)
}

func TestThrowReleasesStartingSquare(t *testing.T) {
	s := newSim(t)
	s.Input(func(in *engine.InputResource) { in.Throw = true })
	require.NoError(t, s.Step(time.Second/60))

	assert.Equal(t, engine.HandEmpty, s.View().Hand)
	assert.Empty(t, s.Space.JointsAttachedTo(s.Player))
}

func TestSimulationRunsWithoutInvariantViolations(t *testing.T) {
	s := newSim(t)
	for i := 0; i < 300; i++ {
		require.NoError(t, s.Step(time.Second/60))
	}
	assert.Zero(t, s.World.Resource.Status.Ints.Get("engine.invariant_violations").Load())
	assert.Equal(t, int64(300), s.World.Resource.Status.Ints.Get("engine.ticks").Load())
	assert.Positive(t, s.World.Resource.Status.Ints.Get("spawn.objects").Load())
}

func TestCommandConcurrentWithStep(t *testing.T) {
	s := newSim(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Command(event.EventClearBlueprint, nil)
		}
	}()
	for i := int64(1); i <= 200; i++ {
		require.NoError(t, s.Step(engine.StepDuration(60, i)))
	}
	wg.Wait()
	require.NoError(t, s.Step(engine.StepDuration(60, 201)))

	assert.Equal(t, int64(201), s.World.Resource.Status.Ints.Get("engine.ticks").Load())
	assert.Equal(t, time.Duration(201)*time.Second/60, s.World.Resource.Time.Elapsed)
}
