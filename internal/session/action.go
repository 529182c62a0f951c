package session

import (
	"fmt"
	"sort"

	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// Action is a discrete user command, triggered by a key or a GUI button.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionTogglePause
	ActionQuit

	ActionSelectXY
	ActionSelectXZ
	ActionSelectYZ
	ActionSelectXW
	ActionSelectYW
	ActionSelectZW

	ActionVelocityUp
	ActionVelocityDown

	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionWIn
	ActionWOut

	ActionScaleUp
	ActionScaleDown

	ActionToggleWireframe
	ActionToggleLighting
	ActionToggleTexture
	ActionToggleGhosts
	ActionScreenshot
)

var actionNames = map[Action]string{
	ActionReset:           "reset",
	ActionTogglePause:     "pause",
	ActionQuit:            "quit",
	ActionSelectXY:        "plane_xy",
	ActionSelectXZ:        "plane_xz",
	ActionSelectYZ:        "plane_yz",
	ActionSelectXW:        "plane_xw",
	ActionSelectYW:        "plane_yw",
	ActionSelectZW:        "plane_zw",
	ActionVelocityUp:      "velocity_up",
	ActionVelocityDown:    "velocity_down",
	ActionMoveLeft:        "move_left",
	ActionMoveRight:       "move_right",
	ActionMoveUp:          "move_up",
	ActionMoveDown:        "move_down",
	ActionWIn:             "w_in",
	ActionWOut:            "w_out",
	ActionScaleUp:         "scale_up",
	ActionScaleDown:       "scale_down",
	ActionToggleWireframe: "toggle_wireframe",
	ActionToggleLighting:  "toggle_lighting",
	ActionToggleTexture:   "toggle_texture",
	ActionToggleGhosts:    "toggle_ghosts",
	ActionScreenshot:      "screenshot",
}

// repeatable actions keep firing while their key is held.
var repeatable = map[Action]bool{
	ActionVelocityUp:   true,
	ActionVelocityDown: true,
	ActionMoveLeft:     true,
	ActionMoveRight:    true,
	ActionMoveUp:       true,
	ActionMoveDown:     true,
	ActionWIn:          true,
	ActionWOut:         true,
	ActionScaleUp:      true,
	ActionScaleDown:    true,
}

// Repeatable reports whether holding the key should keep triggering a.
func (a Action) Repeatable() bool {
	return repeatable[a]
}

// String returns the config key name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction resolves a config key name such as "plane_xw".
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// ActionNames returns every bindable action name, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for _, n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// selectedPlane maps a plane selection action to its plane.
func (a Action) selectedPlane() (transform4d.Plane, bool) {
	if a < ActionSelectXY || a > ActionSelectZW {
		return 0, false
	}
	return transform4d.Plane(a - ActionSelectXY), true
}
