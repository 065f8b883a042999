package system

import (
	"math"

	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/parameter"
	"github.com/lixenwraith/shapecraft/status"
)

// SightSystem eases the camera zoom toward the widest Sight among held objects
type SightSystem struct {
	world *engine.World

	statZoom *status.AtomicFloat
}

func NewSightSystem(world *engine.World) engine.System {
	s := &SightSystem{world: world}
	s.statZoom = world.Resource.Status.Floats.Get("camera.zoom")
	s.statZoom.Set(world.Resource.Camera.Zoom)
	return s
}

func (s *SightSystem) Name() string { return parameter.SystemSight }
func (s *SightSystem) Priority() int { return parameter.PrioritySight }
func (s *SightSystem) After() []string { return nil }
func (s *SightSystem) Before() []string { return nil }

func (s *SightSystem) Update() {
	w := s.world
	cam := w.Resource.Config.Camera

	target := cam.ZoomMin
	for _, e := range w.Components.Sight.All() {
		if !w.Components.Grabbed.Has(e) {
			continue
		}
		if sc, ok := w.Components.Sight.Get(e); ok && sc.Scale > target {
			target = sc.Scale
		}
	}

	z := w.Resource.Camera.Zoom
	switch {
	case z < target:
		z = math.Min(z+cam.ZoomSpeed, target)
	case z > target:
		z = math.Max(z-cam.ZoomSpeed, target)
	}
	w.Resource.Camera.Zoom = z
	s.statZoom.Set(z)
}
