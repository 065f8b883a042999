package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that are awkward as bare TOML strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys
var specialKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
}

// Keymap resolves tcell key events to actions
type Keymap struct {
	runes map[rune]Action
	keys  map[tcell.Key]Action
}

// ParseKeymap builds a keymap from action name to key name bindings
// Unknown actions and unparseable key names are errors
func ParseKeymap(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		runes: make(map[rune]Action, len(bindings)),
		keys:  make(map[tcell.Key]Action),
	}
	for name, keyStr := range bindings {
		action, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errors.Errorf("unknown action: %q", name)
		}
		keyStr = strings.TrimSpace(keyStr)

		if k, ok := specialKeys[strings.ToLower(keyStr)]; ok {
			km.keys[k] = action
			continue
		}
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, errors.Wrapf(err, "action %q", name)
		}
		if r >= '1' && r <= '9' {
			return nil, errors.Errorf("action %q: digit keys are reserved for slot selection", name)
		}
		km.runes[r] = action
	}
	return km, nil
}

// resolveRune converts a key string to a rune, accepting single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, errors.Errorf("invalid key: %q (expected single character or key name)", s)
}

// Lookup returns the action bound to ev, or the zero-based slot for digit keys
// slot is -1 when ev is not a digit
func (km *Keymap) Lookup(ev *tcell.EventKey) (action Action, slot int) {
	if ev.Key() == tcell.KeyCtrlC {
		return ActionQuit, -1
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= '1' && r <= '9' {
			return ActionNone, int(r - '1')
		}
		return km.runes[r], -1
	}
	return km.keys[ev.Key()], -1
}
