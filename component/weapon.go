package component

import (
	"time"
)

// ReloadState is the Idle | Reloading{CompletesAt} variant of fire control
type ReloadState struct {
	Active      bool
	CompletesAt time.Duration
}

// FireComponent is the ammo, cooldown and reload state of one weapon instance
type FireComponent struct {
	// CurrentAmmo is real-valued to match magazine configuration
	CurrentAmmo float64

	// NextFireTime is the earliest sim time at which a shot is accepted
	NextFireTime time.Duration

	Reload ReloadState
}

// IsReloading reports whether the reload window is open
func (f *FireComponent) IsReloading() bool {
	return f.Reload.Active
}
