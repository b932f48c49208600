package engine

import (
	"sync"
	"time"
)

// TimeResource is the simulation clock, advanced once per tick
type TimeResource struct {
	// SimTime is the elapsed simulation time at the current tick
	SimTime time.Duration

	// DeltaTime is the length of the current tick
	DeltaTime time.Duration

	// Frame is the tick counter, 1 on the first tick
	Frame int64
}

// DeltaSeconds returns DeltaTime as float seconds for integration
func (t *TimeResource) DeltaSeconds() float64 {
	return t.DeltaTime.Seconds()
}

// advance moves the clock by one tick
func (t *TimeResource) advance(dt time.Duration) {
	t.DeltaTime = dt
	t.SimTime += dt
	t.Frame++
}

// Clock supplies wall time to the scheduler
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when advanced, scheduler tests step it tick by tick
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
