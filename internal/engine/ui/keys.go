package ui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/multierr"

	"github.com/Faultbox/hyperview/internal/session"
)

// namedKeys maps SDL key names, as used in the keys section of the config,
// to ImGui keys.
var namedKeys = map[string]imgui.Key{
	"Space":     imgui.KeySpace,
	"Escape":    imgui.KeyEscape,
	"Return":    imgui.KeyEnter,
	"Tab":       imgui.KeyTab,
	"Up":        imgui.KeyUpArrow,
	"Down":      imgui.KeyDownArrow,
	"Left":      imgui.KeyLeftArrow,
	"Right":     imgui.KeyRightArrow,
	"=":         imgui.KeyEqual,
	"-":         imgui.KeyMinus,
	"[":         imgui.KeyLeftBracket,
	"]":         imgui.KeyRightBracket,
	",":         imgui.KeyComma,
	".":         imgui.KeyPeriod,
	"Keypad +":  imgui.KeyKeypadAdd,
	"Keypad -":  imgui.KeyKeypadSubtract,
	"PageUp":    imgui.KeyPageUp,
	"PageDown":  imgui.KeyPageDown,
	"Home":      imgui.KeyHome,
	"End":       imgui.KeyEnd,
	"Backspace": imgui.KeyBackspace,
}

func init() {
	for i := 0; i < 26; i++ {
		namedKeys[string(rune('A'+i))] = imgui.KeyA + imgui.Key(i)
	}
	for i := 0; i < 10; i++ {
		namedKeys[string(rune('0'+i))] = imgui.Key0 + imgui.Key(i)
	}
	for i := 0; i < 12; i++ {
		namedKeys[fmt.Sprintf("F%d", i+1)] = imgui.KeyF1 + imgui.Key(i)
	}
}

// KeyByName resolves an SDL key name to the ImGui key.
func KeyByName(name string) (imgui.Key, bool) {
	k, ok := namedKeys[name]
	return k, ok
}

// Binding ties one key to one action.
type Binding struct {
	Key    imgui.Key
	Action session.Action
}

// Bindings is the ImGui counterpart of the SDL keymap, ordered by action.
type Bindings []Binding

// ParseBindings builds bindings from the config's action -> key name table.
// Every unknown action, unknown key name and doubly bound key is reported.
func ParseBindings(keys map[string]string) (Bindings, error) {
	var out Bindings
	var err error
	bound := make(map[imgui.Key]session.Action, len(keys))

	for name, keyName := range keys {
		action, perr := session.ParseAction(name)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("keys: %w", perr))
			continue
		}
		key, ok := KeyByName(keyName)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("keys: %s: unknown key %q", name, keyName))
			continue
		}
		if prev, dup := bound[key]; dup {
			err = multierr.Append(err, fmt.Errorf("keys: %q bound to both %s and %s", keyName, prev, action))
			continue
		}
		bound[key] = action
		out = append(out, Binding{Key: key, Action: action})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out, err
}

// Pressed returns the actions whose keys were pressed this frame. Must be
// called inside an ImGui frame.
func (b Bindings) Pressed() []session.Action {
	var out []session.Action
	for _, bd := range b {
		if imgui.IsKeyChordPressed(imgui.KeyChord(bd.Key)) {
			out = append(out, bd.Action)
		}
	}
	return out
}
