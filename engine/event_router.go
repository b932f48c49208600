package engine

import (
	"github.com/lixenwraith/vi-fps/event"
)

// EventRouter dispatches queued events to registered handlers
//   - Single-threaded dispatch on the tick goroutine
//   - Multiple handlers per event type, invoked in registration order
//   - Events pushed during dispatch are delivered on the next tick
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Returns the dispatched events for observers
func (r *EventRouter) DispatchAll(w *World) []event.GameEvent {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(w, ev)
		}
	}
	return events
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
