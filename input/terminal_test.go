package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSource() (*TerminalSource, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewTerminalSource(nil)
	s.SetClock(clock.now)
	return s, clock
}

func TestHeldKeyLapses(t *testing.T) {
	s, clock := newTestSource()
	s.HandleEvent(runeKey('w'))

	assert.Equal(t, 1.0, s.Poll().Vertical)

	clock.advance(DefaultHoldWindow / 2)
	assert.Equal(t, 1.0, s.Poll().Vertical, "still within hold window")

	clock.advance(DefaultHoldWindow)
	assert.Equal(t, 0.0, s.Poll().Vertical)
}

func TestOpposingKeysCancel(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(runeKey('a'))
	s.HandleEvent(runeKey('d'))

	assert.Equal(t, 0.0, s.Poll().Horizontal)
}

func TestUppercaseSprints(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(runeKey('W'))

	snap := s.Poll()
	assert.True(t, snap.Sprint)
	assert.Equal(t, 1.0, snap.Vertical)
}

func TestEdgesConsumedOnce(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(runeKey(' '))
	s.HandleEvent(runeKey('r'))
	s.HandleEvent(runeKey('2'))

	snap := s.Poll()
	assert.True(t, snap.Jump)
	assert.True(t, snap.Reload)
	assert.Equal(t, 2, snap.Switch)

	snap = s.Poll()
	assert.False(t, snap.Jump)
	assert.False(t, snap.Reload)
	assert.Equal(t, 0, snap.Switch)
}

func TestSystemActionsReturned(t *testing.T) {
	s, _ := newTestSource()
	assert.Equal(t, ActionQuit, s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, ActionPause, s.HandleEvent(runeKey('p')))
	assert.Equal(t, Snapshot{}, s.Poll())
}

func TestMouseMotionAndFire(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(12, 9, tcell.Button1, tcell.ModNone))

	snap := s.Poll()
	assert.InDelta(t, 2*mouseCellScale, snap.MouseX, 1e-9)
	assert.InDelta(t, mouseCellScale, snap.MouseY, 1e-9, "moving up looks up")
	assert.True(t, snap.Fire)

	snap = s.Poll()
	assert.Equal(t, 0.0, snap.MouseX, "motion consumed")
	assert.True(t, snap.Fire, "button still down")
}

func TestMouseAxisClamped(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(80, 0, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, 1.0, s.Poll().MouseX)
}
