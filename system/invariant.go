package system

import (
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
)

// InvariantSystem checks the hand/Grabbed/joint agreement at the end of every tick
type InvariantSystem struct {
	world *engine.World
}

func NewInvariantSystem(world *engine.World) engine.System {
	return &InvariantSystem{world: world}
}

func (s *InvariantSystem) Name() string { return parameter.SystemInvariant }
func (s *InvariantSystem) Priority() int { return parameter.PriorityInvariant }
func (s *InvariantSystem) After() []string { return []string{parameter.SystemDeath} }
func (s *InvariantSystem) Before() []string { return nil }

func (s *InvariantSystem) Update() {
	w := s.world
	player := w.Resource.Hand.Player
	if player == core.None || !w.Alive(player) {
		return
	}

	grabbed := 0
	for _, e := range w.Components.Grabbed.All() {
		if g, ok := w.Components.Grabbed.Get(e); ok && g.Holder == player {
			grabbed++
		}
	}
	joints := len(w.Resource.Physics.JointsAttachedTo(player))

	held := w.Resource.Hand.Held
	if held == core.None {
		w.Assert(grabbed == 0 && joints == 0,
			"empty hand with %d grabbed and %d joints", grabbed, joints)
		return
	}
	g, ok := w.Components.Grabbed.Get(held)
	w.Assert(ok && g.Holder == player && grabbed == 1 && joints == 1,
		"held %d: grabbed=%v holder=%d count=%d joints=%d", held, ok, g.Holder, grabbed, joints)
}
