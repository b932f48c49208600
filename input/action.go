package input

import (
	"fmt"
	"sort"
)

// Action is a bindable input function
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown
	ActionSprint
	ActionJump
	ActionFire
	ActionReload
	ActionSwitchNext
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionPause
	ActionQuit
)

// actionNames maps config action names to actions, "none" unbinds
var actionNames = map[string]Action{
	"none":         ActionNone,
	"forward":      ActionForward,
	"back":         ActionBack,
	"strafe_left":  ActionStrafeLeft,
	"strafe_right": ActionStrafeRight,
	"look_left":    ActionLookLeft,
	"look_right":   ActionLookRight,
	"look_up":      ActionLookUp,
	"look_down":    ActionLookDown,
	"sprint":       ActionSprint,
	"jump":         ActionJump,
	"fire":         ActionFire,
	"reload":       ActionReload,
	"switch_next":  ActionSwitchNext,
	"slot_1":       ActionSlot1,
	"slot_2":       ActionSlot2,
	"slot_3":       ActionSlot3,
	"pause":        ActionPause,
	"quit":         ActionQuit,
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", a)
}

// ActionNames lists valid action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for name := range actionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
