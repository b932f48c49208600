package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLookupDefaults(t *testing.T) {
	kt := DefaultKeyTable()

	action, sprint := kt.Lookup(runeKey('w'))
	assert.Equal(t, ActionForward, action)
	assert.False(t, sprint)

	action, sprint = kt.Lookup(runeKey('W'))
	assert.Equal(t, ActionForward, action)
	assert.True(t, sprint, "uppercase sprints")

	action, _ = kt.Lookup(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, ActionFire, action)

	action, _ = kt.Lookup(runeKey('z'))
	assert.Equal(t, ActionNone, action)
}

func TestApplyBindings(t *testing.T) {
	kt := DefaultKeyTable()
	err := kt.Apply(map[string]string{
		"e":     "fire",
		"space": "reload",
		"Enter": "jump",
		"w":     "none",
	})
	require.NoError(t, err)

	assert.Equal(t, ActionFire, kt.Runes['e'])
	assert.Equal(t, ActionReload, kt.Runes[' '])
	assert.Equal(t, ActionJump, kt.Keys[tcell.KeyEnter])
	assert.Equal(t, ActionNone, kt.Runes['w'])
}

func TestApplyRejectsUnknown(t *testing.T) {
	kt := DefaultKeyTable()
	assert.Error(t, kt.Apply(map[string]string{"e": "teleport"}))
	assert.Error(t, kt.Apply(map[string]string{"NotAKey": "fire"}))
}

func TestParseAction(t *testing.T) {
	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.String())
	}
	_, err := ParseAction("")
	assert.Error(t, err)
}
