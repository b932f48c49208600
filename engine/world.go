package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
)

// World wires one actor to its collaborators and runs the systems each tick
type World struct {
	Time     TimeResource
	Snapshot input.Snapshot

	Player *Actor

	Input     input.Source
	Camera    Camera
	Audio     audio.Player
	Raycaster physics.Raycaster
	Presenter Presenter
	Events    *event.EventQueue
	Rand      *vmath.FastRand
	Logger    *slog.Logger

	systems     []System
	router      *EventRouter
	observers   []func(event.GameEvent)
	initialized bool
	updateMutex sync.Mutex
}

// Options holds the collaborators of a World, nil fields get inert defaults
type Options struct {
	Input     input.Source
	Camera    Camera
	Audio     audio.Player
	Raycaster physics.Raycaster
	Presenter Presenter
	Logger    *slog.Logger
	Seed      uint64
}

func NewWorld(player *Actor, opts Options) *World {
	w := &World{
		Player:    player,
		Input:     opts.Input,
		Camera:    opts.Camera,
		Audio:     opts.Audio,
		Raycaster: opts.Raycaster,
		Presenter: opts.Presenter,
		Events:    event.NewEventQueue(parameter.EventQueueSize),
		Rand:      vmath.NewFastRand(opts.Seed),
		Logger:    opts.Logger,
	}
	if w.Input == nil {
		w.Input = input.None{}
	}
	if w.Camera == nil {
		w.Camera = NewCameraState()
	}
	if w.Audio == nil {
		w.Audio = audio.Discard{}
	}
	if w.Presenter == nil {
		w.Presenter = NopPresenter{}
	}
	if w.Logger == nil {
		w.Logger = slog.Default()
	}
	w.router = NewEventRouter(w.Events)
	return w
}

// AddSystem adds a system, keeps systems sorted by priority and registers event handlers
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Observe registers a callback receiving every dispatched event
func (w *World) Observe(fn func(event.GameEvent)) {
	w.observers = append(w.observers, fn)
}

// Init performs one-time startup side effects, the cursor lock among them
func (w *World) Init() {
	if w.initialized {
		return
	}
	w.Presenter.SetCursorLocked(true)
	w.initialized = true
	w.Logger.Info("world initialized", "actor", w.Player.Name, "actor_id", w.Player.ID, "systems", len(w.systems))
}

// Shutdown releases presentation state taken by Init
func (w *World) Shutdown() {
	if !w.initialized {
		return
	}
	w.Presenter.SetCursorLocked(false)
	w.initialized = false
}

// Tick advances the simulation by dt: sample input, run systems in order, dispatch events
// dt is capped at MaxTickDelta
func (w *World) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	w.Time.advance(dt)
	w.Snapshot = w.Input.Poll()

	for _, s := range w.systems {
		s.Update(w)
	}

	for _, ev := range w.router.DispatchAll(w) {
		for _, fn := range w.observers {
			fn(ev)
		}
	}
}

// Emit queues an event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	if !w.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.Time.Frame}) {
		w.Logger.Warn("event queue full, event dropped", "type", t, "frame", w.Time.Frame, "dropped", w.Events.Dropped())
	}
}

// RunSafe executes fn while holding the update lock, the tick and renderers share it
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}
