package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Weapon Event ===

	// EventShot signals an accepted shot
	// Trigger: FireControl | Consumer: AudioSystem, HUD | Payload: *ShotPayload
	EventShot

	// EventFireRejected signals a shoot request that changed no state
	// Trigger: FireControl | Consumer: AudioSystem (dry fire) | Payload: *FireRejectedPayload
	EventFireRejected

	// EventReloadStarted signals Idle -> Reloading
	// Trigger: FireControl | Consumer: AudioSystem | Payload: *ReloadPayload
	EventReloadStarted

	// EventReloadCompleted signals Reloading -> Idle with a full magazine
	// Trigger: FireControl tick | Consumer: AudioSystem | Payload: *ReloadPayload
	EventReloadCompleted

	// EventReloadCancelled signals Reloading -> Idle without refill
	// Trigger: weapon switch | Consumer: HUD | Payload: *ReloadPayload
	EventReloadCancelled

	// EventWeaponSwitched signals a loadout change
	// Trigger: WeaponSystem | Consumer: AudioSystem | Payload: *WeaponSwitchedPayload
	EventWeaponSwitched

	// EventProjectileHit signals a projectile contacting a target
	// Trigger: ProjectileSystem | Consumer: HUD | Payload: *ProjectileHitPayload
	EventProjectileHit

	// === Locomotion Event ===

	// EventFootstep signals a footstep trigger
	// Trigger: FootstepSystem | Consumer: AudioSystem | Payload: *FootstepPayload
	EventFootstep

	// EventJumped signals a grounded jump
	// Trigger: LocomotionSystem | Consumer: HUD | Payload: *JumpPayload
	EventJumped
)

var eventNames = map[EventType]string{
	EventNone:            "none",
	EventShot:            "shot",
	EventFireRejected:    "fire_rejected",
	EventReloadStarted:   "reload_started",
	EventReloadCompleted: "reload_completed",
	EventReloadCancelled: "reload_cancelled",
	EventWeaponSwitched:  "weapon_switched",
	EventProjectileHit:   "projectile_hit",
	EventFootstep:        "footstep",
	EventJumped:          "jumped",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
