package engine

import (
	"github.com/lixenwraith/vi-fps/event"
)

// System advances one concern of the world each tick
// Systems run in ascending Priority order
type System interface {
	Priority() int
	Update(w *World)
}

// EventHandler processes specific event types
// Systems implementing it are registered with the router by AddSystem
type EventHandler interface {
	// HandleEvent processes a single event, called during the dispatch phase after all Update calls
	HandleEvent(w *World, ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
