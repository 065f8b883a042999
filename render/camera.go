package render

import (
	"math"

	"github.com/lixenwraith/shapecraft/vmath"
)

// Camera maps world units to terminal cells around a focus point
// A terminal row is twice as tall as a column is wide, so one row spans two column widths of world
// World Y points up; screen rows grow downward
type Camera struct {
	Focus      vmath.Vec2
	Zoom       float64 // >1 shows more world
	ViewWidth  int     // columns
	ViewHeight int     // rows
	Span       float64 // world units across the view at zoom 1
}

// NewCamera creates a camera for a view of the given size in cells
func NewCamera(viewW, viewH int, span float64) *Camera {
	return &Camera{Zoom: 1, ViewWidth: viewW, ViewHeight: viewH, Span: span}
}

// UnitsPerColumn is the world width covered by one terminal column
func (c *Camera) UnitsPerColumn() float64 {
	if c.ViewWidth <= 0 {
		return 1
	}
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	return c.Span * z / float64(c.ViewWidth)
}

// WorldToScreen returns the cell containing p; visible is false outside the view
func (c *Camera) WorldToScreen(p vmath.Vec2) (sx, sy int, visible bool) {
	u := c.UnitsPerColumn()
	sx = int(math.Floor((p.X-c.Focus.X)/u)) + c.ViewWidth/2
	sy = c.ViewHeight/2 - int(math.Floor((p.Y-c.Focus.Y)/(2*u))) - 1
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld returns the world point at the center of cell (sx, sy)
func (c *Camera) ScreenToWorld(sx, sy int) vmath.Vec2 {
	u := c.UnitsPerColumn()
	x := (float64(sx-c.ViewWidth/2) + 0.5) * u
	y := (float64(c.ViewHeight/2-sy-1) + 0.5) * 2 * u
	return c.Focus.Add(vmath.V(x, y))
}
