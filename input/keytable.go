package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write as config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns WASD movement, arrow look, space jump, f fire, r reload
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLookLeft,
			tcell.KeyRight:  ActionLookRight,
			tcell.KeyUp:     ActionLookUp,
			tcell.KeyDown:   ActionLookDown,
			tcell.KeyEnter:  ActionFire,
			tcell.KeyTab:    ActionSwitchNext,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlP:  ActionPause,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionStrafeLeft,
			'd': ActionStrafeRight,
			'j': ActionLookLeft,
			'l': ActionLookRight,
			'i': ActionLookUp,
			'k': ActionLookDown,
			' ': ActionJump,
			'f': ActionFire,
			'r': ActionReload,
			'q': ActionSwitchNext,
			'1': ActionSlot1,
			'2': ActionSlot2,
			'3': ActionSlot3,
			'p': ActionPause,
		},
	}
}

// Lookup resolves a key event, uppercase runes resolve through their lowercase binding
// sprint reports an uppercase rune or shift modifier
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (action Action, sprint bool) {
	sprint = ev.Modifiers()&tcell.ModShift != 0
	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()], sprint
	}

	r := ev.Rune()
	if a, ok := kt.Runes[r]; ok {
		return a, sprint
	}
	lower := []rune(strings.ToLower(string(r)))[0]
	if lower != r {
		return kt.Runes[lower], true
	}
	return ActionNone, sprint
}

// Apply overlays bindings from config: key name or single rune to action name
func (kt *KeyTable) Apply(bindings map[string]string) error {
	for keyName, actionName := range bindings {
		action, err := ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("binding %q: %w", keyName, err)
		}

		if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
			kt.Runes[r] = action
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[r] = action
			continue
		}
		key, ok := keyByName(keyName)
		if !ok {
			return fmt.Errorf("binding %q: unknown key", keyName)
		}
		kt.Keys[key] = action
	}
	return nil
}

// keyByName matches tcell key names case-insensitively ("Enter", "Ctrl-P")
func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
