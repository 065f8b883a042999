package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/shapecraft/game"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/parameter"
)

const hpBarWidth = 20

func (t *Terminal) drawHUD(v game.View) {
	w, h := t.screen.Size()
	top := h - HUDRows
	if top < 0 {
		return
	}
	hud := t.bg.Background(tcell.ColorBlack)
	for y := top; y < h; y++ {
		t.fillRow(y, w, hud)
	}

	// Row 1: health, hand, zoom, phase
	x := t.drawText(0, top, w, "HP ", hud)
	frac := float64(v.PlayerHP) / float64(parameter.PlayerHealth)
	filled := int(frac*hpBarWidth + 0.5)
	filled = max(0, min(filled, hpBarWidth))
	x = t.drawText(x, top, w, strings.Repeat("█", filled), hud.Foreground(HealthColor(frac)))
	x = t.drawText(x, top, w, strings.Repeat("░", hpBarWidth-filled), hud.Foreground(RgbDim))
	held := "-"
	if v.Held != inventory.Empty {
		held = v.Held.String()
	}
	t.drawText(x, top, w, fmt.Sprintf(" %3d  hand %s (%s)  zoom %.2f  %s", v.PlayerHP, v.Hand, held, v.Zoom, v.Phase), hud)

	// Row 2: storage with the selected slot marked
	t.drawSlots(top+1, w, "storage  ", v.Storage, v.Selected, hud)
	// Row 3: blueprint
	t.drawSlots(top+2, w, "blueprint", v.Blueprint, -1, hud)
}

func (t *Terminal) drawSlots(y, width int, label string, items []inventory.Type, selected int, base tcell.Style) {
	x := t.drawText(0, y, width, label+" ", base)
	for i, it := range items {
		style := base.Foreground(TypeColor(it))
		if i == selected {
			style = style.Reverse(true)
		}
		glyph := "·"
		if it != inventory.Empty {
			glyph = string(TypeGlyph(it))
		}
		x = t.drawText(x, y, width, fmt.Sprintf("%d%s", i+1, glyph), style)
		x = t.drawText(x, y, width, " ", base)
	}
}

func (t *Terminal) drawGameOver() {
	w, h := t.screen.Size()
	msg := " GAME OVER  press q to quit "
	mw := runewidth.StringWidth(msg)
	x := max((w-mw)/2, 0)
	y := max((h-HUDRows)/2, 0)
	t.drawText(x, y, w, msg, t.bg.Foreground(RgbHealthLow).Bold(true).Reverse(true))
}

func (t *Terminal) fillRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes s from column x, truncated at width, and returns the next free column
func (t *Terminal) drawText(x, y, width int, s string, style tcell.Style) int {
	if x >= width {
		return x
	}
	s = runewidth.Truncate(s, width-x, "…")
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
