package system

import (
	"sync/atomic"

	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/parameter"
)

// GameStateSystem performs the single InGame to EndGame transition on player death
type GameStateSystem struct {
	world *engine.World

	statOver *atomic.Bool
}

func NewGameStateSystem(world *engine.World) engine.System {
	s := &GameStateSystem{world: world}
	s.statOver = world.Resource.Status.Bools.Get("game.over")
	return s
}

func (s *GameStateSystem) Name() string { return parameter.SystemGameState }
func (s *GameStateSystem) Priority() int { return parameter.PriorityGameState }
func (s *GameStateSystem) After() []string { return []string{parameter.SystemDeath} }
func (s *GameStateSystem) Before() []string { return nil }

func (s *GameStateSystem) Update() {
	g := s.world.Resource.Game
	if g.Phase != engine.PhaseInGame || !g.PlayerDead {
		return
	}
	g.Phase = engine.PhaseEndGame
	s.statOver.Store(true)
	logger.ForSystem(s.world.Resource.Log, parameter.SystemGameState).
		WithField("frame", s.world.Resource.Time.Frame).Info("game over")
}
