package engine_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/engine/mocks"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
	inputmocks "github.com/lixenwraith/vi-fps/input/mocks"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
)

// recordingSystem logs its updates into a shared trace and optionally emits an event
type recordingSystem struct {
	name     string
	priority int
	trace    *[]string
	emit     event.EventType
}

func (s *recordingSystem) Priority() int { return s.priority }

func (s *recordingSystem) Update(w *engine.World) {
	*s.trace = append(*s.trace, s.name)
	if s.emit != event.EventNone {
		w.Emit(s.emit, nil)
	}
}

// recordingHandler counts handled events
type recordingHandler struct {
	recordingSystem
	handled []event.GameEvent
}

func (h *recordingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventShot}
}

func (h *recordingHandler) HandleEvent(_ *engine.World, ev event.GameEvent) {
	h.handled = append(h.handled, ev)
}

func newTestActor() *engine.Actor {
	return engine.NewActor("tester", physics.NewKinematicBody(physics.NewTerrain(10), vmath.Vec3F{}), nil)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	var trace []string
	w := engine.NewWorld(newTestActor(), engine.Options{})
	w.AddSystem(&recordingSystem{name: "footstep", priority: parameter.PriorityFootstep, trace: &trace})
	w.AddSystem(&recordingSystem{name: "locomotion", priority: parameter.PriorityLocomotion, trace: &trace})
	w.AddSystem(&recordingSystem{name: "weapon", priority: parameter.PriorityWeapon, trace: &trace})

	w.Tick(16 * time.Millisecond)

	assert.Equal(t, []string{"locomotion", "weapon", "footstep"}, trace)
	assert.Len(t, w.Systems(), 3)
}

func TestTickAdvancesTimeAndPollsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := inputmocks.NewMockSource(ctrl)
	source.EXPECT().Poll().Return(input.Snapshot{Fire: true}).Times(2)

	w := engine.NewWorld(newTestActor(), engine.Options{Input: source})
	w.Tick(50 * time.Millisecond)
	w.Tick(50 * time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, w.Time.SimTime)
	assert.Equal(t, int64(2), w.Time.Frame)
	assert.InDelta(t, 0.05, w.Time.DeltaSeconds(), 1e-12)
	assert.True(t, w.Snapshot.Fire)
}

func TestTickCapsDelta(t *testing.T) {
	w := engine.NewWorld(newTestActor(), engine.Options{})

	w.Tick(time.Second)
	assert.Equal(t, parameter.MaxTickDelta, w.Time.DeltaTime)

	w.Tick(0)
	assert.Equal(t, int64(1), w.Time.Frame, "zero delta is not a tick")
}

func TestEventsDispatchedSameTick(t *testing.T) {
	var trace []string
	w := engine.NewWorld(newTestActor(), engine.Options{})

	handler := &recordingHandler{recordingSystem: recordingSystem{name: "audio", priority: parameter.PriorityAudio, trace: &trace}}
	w.AddSystem(handler)
	w.AddSystem(&recordingSystem{name: "weapon", priority: parameter.PriorityWeapon, trace: &trace, emit: event.EventShot})

	var observed []event.EventType
	w.Observe(func(ev event.GameEvent) { observed = append(observed, ev.Type) })

	w.Tick(16 * time.Millisecond)

	require.Len(t, handler.handled, 1)
	assert.Equal(t, int64(1), handler.handled[0].Frame)
	assert.Equal(t, []event.EventType{event.EventShot}, observed)
	assert.Equal(t, 0, w.Events.Len())
}

// floodSystem emits more events in one tick than the queue holds
type floodSystem struct{ count int }

func (s *floodSystem) Priority() int { return parameter.PriorityWeapon }

func (s *floodSystem) Update(w *engine.World) {
	for i := 0; i < s.count; i++ {
		w.Emit(event.EventShot, i)
	}
}

func TestEmitOverflowIsLoggedAndKeepsEarliest(t *testing.T) {
	var logs bytes.Buffer
	w := engine.NewWorld(newTestActor(), engine.Options{
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	w.AddSystem(&floodSystem{count: parameter.EventQueueSize + 3})

	var observed []event.GameEvent
	w.Observe(func(ev event.GameEvent) { observed = append(observed, ev) })

	w.Tick(16 * time.Millisecond)

	require.Len(t, observed, parameter.EventQueueSize)
	assert.Equal(t, 0, observed[0].Payload)
	assert.Equal(t, parameter.EventQueueSize-1, observed[len(observed)-1].Payload)
	assert.Equal(t, uint64(3), w.Events.Dropped())
	assert.Contains(t, logs.String(), "event queue full")
	assert.Contains(t, logs.String(), "dropped=3")
}

func TestInitLocksCursorOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)

	gomock.InOrder(
		presenter.EXPECT().SetCursorLocked(true).Times(1),
		presenter.EXPECT().SetCursorLocked(false).Times(1),
	)

	w := engine.NewWorld(newTestActor(), engine.Options{Presenter: presenter})
	w.Init()
	w.Init()
	w.Shutdown()
	w.Shutdown()
}

func TestNewActorSpawnState(t *testing.T) {
	a := newTestActor()

	assert.NotEqual(t, newTestActor().ID, a.ID)
	assert.Equal(t, 1.0, a.Locomotion.CurrentSpeedMultiplier)
	assert.Nil(t, a.Weapon(), "unarmed")
	assert.Equal(t, 0, a.Loadout.Len())
}

func TestCameraState(t *testing.T) {
	c := engine.NewCameraState()
	c.SetLocalRotation(vmath.Euler{Pitch: 10, Yaw: 2})
	c.SetNoise(0.1, 1)

	assert.Equal(t, vmath.Euler{Pitch: 10, Yaw: 2}, c.Rotation())
	amp, freq := c.Noise()
	assert.Equal(t, 0.1, amp)
	assert.Equal(t, 1.0, freq)
}
