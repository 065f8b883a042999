package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/event"
	"github.com/lixenwraith/shapecraft/vmath"
)

type recordSink struct {
	in       engine.InputResource
	commands []event.GameEvent
}

func (s *recordSink) Input(fn func(in *engine.InputResource)) { fn(&s.in) }

func (s *recordSink) Command(t event.EventType, payload any) {
	s.commands = append(s.commands, event.GameEvent{Type: t, Payload: payload})
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newController(t *testing.T) (*Controller, *recordSink, *time.Time) {
	t.Helper()
	km, err := ParseKeymap(config.DefaultKeys())
	require.NoError(t, err)
	sink := &recordSink{}
	c := NewController(km, sink, func(sx, sy int) vmath.Vec2 {
		return vmath.V(float64(sx), float64(-sy))
	})
	now := time.Unix(100, 0)
	c.now = func() time.Time { return now }
	return c, sink, &now
}

func TestParseKeymapRejectsUnknown(t *testing.T) {
	_, err := ParseKeymap(map[string]string{"jump": "j"})
	assert.Error(t, err)

	_, err = ParseKeymap(map[string]string{"throw": "ctrl-space"})
	assert.Error(t, err)

	_, err = ParseKeymap(map[string]string{"throw": "3"})
	assert.Error(t, err)
}

func TestLookupDefaults(t *testing.T) {
	km, err := ParseKeymap(config.DefaultKeys())
	require.NoError(t, err)

	a, slot := km.Lookup(runeKey(' '))
	assert.Equal(t, ActionThrow, a)
	assert.Equal(t, -1, slot)

	a, _ = km.Lookup(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, ActionSynthesize, a)

	a, slot = km.Lookup(runeKey('3'))
	assert.Equal(t, ActionNone, a)
	assert.Equal(t, 2, slot)

	a, _ = km.Lookup(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.Equal(t, ActionQuit, a)
}

func TestControllerCommands(t *testing.T) {
	c, sink, _ := newController(t)

	c.HandleEvent(runeKey('2'))
	c.HandleEvent(runeKey('h'))
	c.HandleEvent(runeKey('f'))
	c.HandleEvent(runeKey('c'))
	c.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	require.Len(t, sink.commands, 5)
	assert.Equal(t, event.EventSelectSlot, sink.commands[0].Type)
	assert.Equal(t, &event.SlotPayload{Slot: 1}, sink.commands[0].Payload)
	assert.Equal(t, event.EventHoldSlot, sink.commands[1].Type)
	assert.Equal(t, &event.SlotPayload{Slot: 1}, sink.commands[1].Payload)
	assert.Equal(t, event.EventStore, sink.commands[2].Type)
	assert.Equal(t, event.EventClearBlueprint, sink.commands[3].Type)
	assert.Equal(t, event.EventSynthesize, sink.commands[4].Type)
	assert.Equal(t, 1, c.Selected())
}

func TestControllerIntents(t *testing.T) {
	c, _, _ := newController(t)
	assert.Equal(t, IntentQuit, c.HandleEvent(runeKey('q')))
	assert.Equal(t, IntentPause, c.HandleEvent(runeKey('p')))
	assert.Equal(t, IntentMute, c.HandleEvent(runeKey('m')))
	assert.Equal(t, IntentResize, c.HandleEvent(tcell.NewEventResize(80, 24)))
}

func TestMovementDecays(t *testing.T) {
	c, sink, now := newController(t)

	c.HandleEvent(runeKey('w'))
	c.HandleEvent(runeKey('d'))
	c.Tick()
	assert.Equal(t, vmath.V(1, 1), sink.in.Move)

	*now = now.Add(MoveHold)
	c.Tick()
	assert.True(t, sink.in.Move.IsZero())
}

func TestMouseAimAndGrabEdge(t *testing.T) {
	c, sink, _ := newController(t)

	c.HandleEvent(tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone))
	assert.Equal(t, vmath.V(10, -4), sink.in.Aim)
	assert.True(t, sink.in.Grab)

	sink.in.Grab = false
	c.HandleEvent(tcell.NewEventMouse(11, 4, tcell.Button1, tcell.ModNone))
	assert.False(t, sink.in.Grab)
	assert.Equal(t, vmath.V(11, -4), sink.in.Aim)

	c.HandleEvent(tcell.NewEventMouse(11, 4, tcell.ButtonNone, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(11, 4, tcell.Button1, tcell.ModNone))
	assert.True(t, sink.in.Grab)
}
