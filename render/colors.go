package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapecraft/inventory"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(90, 90, 110)   // Slate
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusText = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbDim        = tcell.NewRGBColor(90, 90, 90)

	RgbSquare   = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbCircle   = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbRect     = tcell.NewRGBColor(144, 238, 144) // Grass green
	RgbTriangle = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbHeart    = tcell.NewRGBColor(255, 120, 200) // Pink
	RgbRust     = tcell.NewRGBColor(183, 65, 14)   // Rust

	RgbFrozenBg    = tcell.NewRGBColor(20, 60, 90)
	RgbBurnedBg    = tcell.NewRGBColor(90, 25, 10)
	RgbParalyzedBg = tcell.NewRGBColor(80, 80, 0)

	RgbHealthHigh = tcell.NewRGBColor(0, 200, 0)
	RgbHealthMid  = tcell.NewRGBColor(255, 255, 0)
	RgbHealthLow  = tcell.NewRGBColor(255, 0, 0)
)

// TypeColor returns the foreground color of an item type
func TypeColor(t inventory.Type) tcell.Color {
	switch t {
	case inventory.Square:
		return RgbSquare
	case inventory.Circle:
		return RgbCircle
	case inventory.Rect:
		return RgbRect
	case inventory.Triangle:
		return RgbTriangle
	case inventory.Heart:
		return RgbHeart
	case inventory.Rust:
		return RgbRust
	default:
		return RgbDim
	}
}

// TypeGlyph returns the cell glyph of an item type
func TypeGlyph(t inventory.Type) rune {
	switch t {
	case inventory.Square:
		return '■'
	case inventory.Circle:
		return '●'
	case inventory.Rect:
		return '▬'
	case inventory.Triangle:
		return '▲'
	case inventory.Heart:
		return '♥'
	case inventory.Rust:
		return '✱'
	default:
		return '·'
	}
}

// HealthColor grades a health fraction from green to red
func HealthColor(frac float64) tcell.Color {
	switch {
	case frac > 0.6:
		return RgbHealthHigh
	case frac > 0.3:
		return RgbHealthMid
	default:
		return RgbHealthLow
	}
}
