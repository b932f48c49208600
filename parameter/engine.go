package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultTickRate is the simulation tick frequency in Hz
	DefaultTickRate = 60

	// MaxTickDelta caps a single tick's delta after a stall so integration stays stable
	MaxTickDelta = 100 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize caps the events one tick may emit, extra events are dropped and logged
	EventQueueSize = 256
)

// Arena
const (
	// ArenaHalfExtent is the default half width of the square test arena
	ArenaHalfExtent = 25.0
)
