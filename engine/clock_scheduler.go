package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ClockScheduler drives World.Tick at a fixed interval on its own goroutine
// Every tick advances sim time by exactly tickInterval regardless of wall jitter
// Handles pause without busy-wait, sim time does not advance while paused
type ClockScheduler struct {
	world *World
	clock Clock

	tickInterval     time.Duration
	nextTickDeadline time.Time
	mu               sync.Mutex

	paused    atomic.Bool
	running   atomic.Bool
	tickCount atomic.Uint64

	// updateDone signals renderers that a tick completed, never blocks
	updateDone chan struct{}
}

// NewClockScheduler returns the scheduler and its tick notification channel
func NewClockScheduler(world *World, tickInterval time.Duration, clock Clock) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = systemClock{}
	}
	updateDone := make(chan struct{}, 1)
	return &ClockScheduler{
		world:            world,
		clock:            clock,
		tickInterval:     tickInterval,
		nextTickDeadline: clock.Now().Add(tickInterval),
		updateDone:       updateDone,
	}, updateDone
}

// Run ticks until ctx is cancelled, returns nil on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return nil
	}
	defer cs.running.Store(false)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		var sleepDuration time.Duration
		if cs.paused.Load() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			now := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				cs.Step()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Drop missed ticks after a stall instead of bursting
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()
			}
			sleepDuration = deadline.Sub(cs.clock.Now())
		}

		if sleepDuration < 0 {
			sleepDuration = 0
		}
		timer.Reset(sleepDuration)
	}
}

// Step runs exactly one tick under the world update lock
func (cs *ClockScheduler) Step() {
	cs.world.RunSafe(func() {
		cs.world.Tick(cs.tickInterval)
	})
	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// Pause stops ticking, safe from any goroutine
func (cs *ClockScheduler) Pause() {
	cs.paused.Store(true)
}

// Resume restarts ticking one interval from now
func (cs *ClockScheduler) Resume() {
	if cs.paused.CompareAndSwap(true, false) {
		cs.mu.Lock()
		cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
		cs.mu.Unlock()
	}
}

// TogglePause flips the pause state and reports the new state
func (cs *ClockScheduler) TogglePause() bool {
	if cs.paused.Load() {
		cs.Resume()
		return false
	}
	cs.Pause()
	return true
}

func (cs *ClockScheduler) IsPaused() bool          { return cs.paused.Load() }
func (cs *ClockScheduler) IsRunning() bool         { return cs.running.Load() }
func (cs *ClockScheduler) TickCount() uint64       { return cs.tickCount.Load() }
func (cs *ClockScheduler) Interval() time.Duration { return cs.tickInterval }
