package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/game"
	"github.com/lixenwraith/shapecraft/physics"
	"github.com/lixenwraith/shapecraft/vmath"
)

// HUDRows is the number of rows reserved below the arena
const HUDRows = 3

// DefaultSpan is the world width visible at zoom 1
const DefaultSpan = 96.0

// Terminal draws simulation views onto a tcell screen
type Terminal struct {
	screen tcell.Screen
	camera *Camera
	bg     tcell.Style
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	w, h := screen.Size()
	t := &Terminal{
		screen: screen,
		camera: NewCamera(w, h-HUDRows, DefaultSpan),
		bg:     tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText),
	}
	return t
}

// Camera exposes the transform of the last drawn frame, used for mouse aim
func (t *Terminal) Camera() *Camera {
	return t.camera
}

// Resize adopts the current screen size
func (t *Terminal) Resize() {
	w, h := t.screen.Size()
	t.camera.ViewWidth = w
	t.camera.ViewHeight = max(h-HUDRows, 1)
	t.screen.Sync()
}

// Draw renders one frame and shows it
func (t *Terminal) Draw(v game.View) {
	t.screen.SetStyle(t.bg)
	t.screen.Clear()

	t.camera.Focus = v.Focus
	t.camera.Zoom = v.Zoom

	// Walls first so objects overdraw the arena edge
	for _, b := range v.Bodies {
		if b.Role == game.RoleWall {
			t.drawBody(b)
		}
	}
	for _, b := range v.Bodies {
		if b.Role == game.RoleObject {
			t.drawBody(b)
		}
	}
	for _, b := range v.Bodies {
		if b.Role == game.RolePlayer {
			t.drawBody(b)
		}
	}

	t.drawHUD(v)
	if v.Phase == engine.PhaseEndGame {
		t.drawGameOver()
	}
	t.screen.Show()
}

func (t *Terminal) bodyStyle(b game.BodyView) (rune, tcell.Style) {
	style := t.bg
	var glyph rune
	switch b.Role {
	case game.RoleWall:
		return '█', style.Foreground(RgbWall)
	case game.RolePlayer:
		glyph = '@'
		style = style.Foreground(RgbPlayer).Bold(true)
	default:
		glyph = TypeGlyph(b.Type)
		style = style.Foreground(TypeColor(b.Type))
	}

	switch {
	case b.Burned:
		style = style.Background(RgbBurnedBg)
	case b.Frozen:
		style = style.Background(RgbFrozenBg)
	case b.Paralyzed:
		style = style.Background(RgbParalyzedBg)
	}
	if b.Held {
		style = style.Bold(true)
	}
	if b.Highlight {
		style = style.Reverse(true)
	}
	return glyph, style
}

func (t *Terminal) drawBody(b game.BodyView) {
	glyph, style := t.bodyStyle(b)
	cam := t.camera
	u := cam.UnitsPerColumn()

	lo, hi := bounds(b.Snapshot)
	x0, y1, _ := cam.WorldToScreen(lo)
	x1, y0, _ := cam.WorldToScreen(hi)
	x0, x1 = max(x0, 0), min(x1, cam.ViewWidth-1)
	y0, y1 = max(y0, 0), min(y1, cam.ViewHeight-1)

	drawn := false
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			if contains(b.Snapshot, cam.ScreenToWorld(sx, sy), u) {
				t.screen.SetContent(sx, sy, glyph, nil, style)
				drawn = true
			}
		}
	}

	// Bodies smaller than a cell still get their center cell
	if !drawn {
		if sx, sy, ok := cam.WorldToScreen(b.Position); ok {
			t.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

func bounds(s physics.Snapshot) (lo, hi vmath.Vec2) {
	if s.Shape == physics.ShapeCircle || len(s.Points) == 0 {
		r := vmath.V(s.Radius, s.Radius)
		return s.Position.Sub(r), s.Position.Add(r)
	}
	lo, hi = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		lo = vmath.V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = vmath.V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	return lo, hi
}

// contains tests a cell center against the body outline, padded by half a cell
func contains(s physics.Snapshot, p vmath.Vec2, cell float64) bool {
	if s.Shape == physics.ShapeCircle || len(s.Points) < 3 {
		r := s.Radius + cell/2
		return p.Sub(s.Position).LenSq() <= r*r
	}
	// Convex polygon: p is inside when it lies on the same side of every edge
	sign := 0.0
	n := len(s.Points)
	for i := 0; i < n; i++ {
		a, b := s.Points[i], s.Points[(i+1)%n]
		c := b.Sub(a).Cross(p.Sub(a))
		if math.Abs(c) < 1e-9 {
			continue
		}
		if sign == 0 {
			sign = c
		} else if (c > 0) != (sign > 0) {
			return false
		}
	}
	return true
}
