package event

// EventQueue collects the events emitted during one tick until the router drains them
// It belongs to the tick goroutine: Push and Consume run under the world update lock
// and the queue does no locking of its own
//
// Overflow: once limit events are pending, further pushes are refused and counted
// so the earliest events of a tick are the ones delivered
type EventQueue struct {
	pending []GameEvent
	limit   int
	dropped uint64
}

func NewEventQueue(limit int) *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, limit),
		limit:   limit,
	}
}

// Push appends event, false when the queue is full and the event was dropped
func (eq *EventQueue) Push(event GameEvent) bool {
	if len(eq.pending) >= eq.limit {
		eq.dropped++
		return false
	}
	eq.pending = append(eq.pending, event)
	return true
}

// Consume returns pending events in emission order and empties the queue
// The returned slice is owned by the caller, pushes made afterwards go to a new batch
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	events := eq.pending
	eq.pending = make([]GameEvent, 0, eq.limit)
	return events
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.pending)
}

// Dropped returns the number of events refused since creation
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
