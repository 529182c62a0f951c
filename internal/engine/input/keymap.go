package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"

	"github.com/Faultbox/hyperview/internal/session"
)

// Keymap binds scancodes to session actions.
type Keymap map[sdl.Scancode]session.Action

// ScancodeLookup resolves an SDL key name such as "Space" or "F12".
type ScancodeLookup func(name string) sdl.Scancode

// NewKeymap builds a keymap from the config's action -> key name table using
// SDL's key name lookup.
func NewKeymap(keys map[string]string) (Keymap, error) {
	return ParseKeymap(keys, sdl.GetScancodeFromName)
}

// ParseKeymap builds a keymap with an explicit lookup. Every unknown action,
// unknown key name and doubly bound key is reported.
func ParseKeymap(keys map[string]string, lookup ScancodeLookup) (Keymap, error) {
	km := make(Keymap, len(keys))
	var err error

	for name, key := range keys {
		action, perr := session.ParseAction(name)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("keys: %w", perr))
			continue
		}
		sc := lookup(key)
		if sc == sdl.SCANCODE_UNKNOWN {
			err = multierr.Append(err, fmt.Errorf("keys: %s: unknown key %q", name, key))
			continue
		}
		if prev, dup := km[sc]; dup {
			err = multierr.Append(err, fmt.Errorf("keys: %q bound to both %s and %s", key, prev, action))
			continue
		}
		km[sc] = action
	}

	return km, err
}

// Actions returns the actions triggered by the key presses in events.
// Auto-repeat presses only count for repeatable actions.
func (km Keymap) Actions(events []Event) []session.Action {
	var out []session.Action
	for _, e := range events {
		if e.Type != EventKeyDown {
			continue
		}
		a, ok := km[e.Key]
		if !ok {
			continue
		}
		if e.Repeat && !a.Repeatable() {
			continue
		}
		out = append(out, a)
	}
	return out
}
