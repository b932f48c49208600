package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-fps/vmath"
)

// DefaultHoldWindow bridges terminal key autorepeat gaps
// Terminals report presses only, a key counts as held until the window lapses
const DefaultHoldWindow = 150 * time.Millisecond

// mouseCellScale converts cell deltas to axis units
const mouseCellScale = 0.25

// TerminalSource turns tcell events into snapshots
// HandleEvent runs on the event goroutine, Poll on the tick goroutine
type TerminalSource struct {
	mu sync.Mutex

	keys       *KeyTable
	holdWindow time.Duration
	now        func() time.Time

	lastPress map[Action]time.Time
	sprintAt  time.Time

	jump   bool
	reload bool
	slot   int

	mouseX, mouseY float64
	lastMouseX     int
	lastMouseY     int
	mouseSeen      bool
	mouseFire      bool
}

func NewTerminalSource(keys *KeyTable) *TerminalSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &TerminalSource{
		keys:       keys,
		holdWindow: DefaultHoldWindow,
		now:        time.Now,
		lastPress:  make(map[Action]time.Time),
	}
}

// SetClock replaces the wall clock used for hold windows
func (s *TerminalSource) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// HandleEvent records a terminal event and returns the bound action
// Pause and Quit are returned for the caller and not recorded
func (s *TerminalSource) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return ActionNone
}

func (s *TerminalSource) handleKey(ev *tcell.EventKey) Action {
	action, sprint := s.keys.Lookup(ev)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sprint {
		s.sprintAt = now
	}

	switch action {
	case ActionPause, ActionQuit, ActionNone:
		return action
	case ActionJump:
		s.jump = true
	case ActionReload:
		s.reload = true
	case ActionSwitchNext:
		s.slot = SwitchCycle
	case ActionSlot1:
		s.slot = 1
	case ActionSlot2:
		s.slot = 2
	case ActionSlot3:
		s.slot = 3
	case ActionSprint:
		s.sprintAt = now
	default:
		s.lastPress[action] = now
	}
	return action
}

func (s *TerminalSource) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mouseSeen {
		s.mouseX += float64(x-s.lastMouseX) * mouseCellScale
		s.mouseY -= float64(y-s.lastMouseY) * mouseCellScale
	}
	s.lastMouseX, s.lastMouseY = x, y
	s.mouseSeen = true
	s.mouseFire = ev.Buttons()&tcell.Button1 != 0
}

func (s *TerminalSource) held(a Action, now time.Time) bool {
	t, ok := s.lastPress[a]
	return ok && now.Sub(t) <= s.holdWindow
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// Poll samples held keys and consumes edges and mouse motion
func (s *TerminalSource) Poll() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	snap := Snapshot{
		Vertical:   axis(s.held(ActionForward, now), s.held(ActionBack, now)),
		Horizontal: axis(s.held(ActionStrafeRight, now), s.held(ActionStrafeLeft, now)),
		MouseX:     vmath.Clamp(s.mouseX+axis(s.held(ActionLookRight, now), s.held(ActionLookLeft, now)), -1, 1),
		MouseY:     vmath.Clamp(s.mouseY+axis(s.held(ActionLookUp, now), s.held(ActionLookDown, now)), -1, 1),
		Sprint:     !s.sprintAt.IsZero() && now.Sub(s.sprintAt) <= s.holdWindow,
		Jump:       s.jump,
		Fire:       s.mouseFire || s.held(ActionFire, now),
		Reload:     s.reload,
		Switch:     s.slot,
	}

	s.jump, s.reload, s.slot = false, false, 0
	s.mouseX, s.mouseY = 0, 0
	return snap
}
