package event

import (
	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/vmath"
)

// ShotPayload describes an accepted shot and its effect outcome
type ShotPayload struct {
	Weapon    string
	AmmoLeft  float64
	Origin    vmath.Vec3F
	Direction vmath.Vec3F

	// Hitscan outcome, zero for projectile weapons
	Hit      bool
	HitPoint vmath.Vec3F
	HitTag   string
}

// RejectReason explains why a shoot request changed no state
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectReloading
	RejectCooldown
	RejectEmpty
)

func (r RejectReason) String() string {
	switch r {
	case RejectReloading:
		return "reloading"
	case RejectCooldown:
		return "cooldown"
	case RejectEmpty:
		return "empty"
	}
	return "unknown"
}

// FireRejectedPayload carries the rejection reason
type FireRejectedPayload struct {
	Weapon string
	Reason RejectReason
}

// ReloadPayload carries the ammo count at the transition
type ReloadPayload struct {
	Weapon string
	Ammo   float64
}

// WeaponSwitchedPayload names the previous and new weapon
type WeaponSwitchedPayload struct {
	From, To string
}

// ProjectileHitPayload describes a projectile impact
type ProjectileHitPayload struct {
	Weapon string
	Point  vmath.Vec3F
	Tag    string
}

// FootstepPayload names the surface material and the selected clip
// Clip is empty when the material has no clips configured
type FootstepPayload struct {
	Material string
	Clip     audio.Clip
}

// JumpPayload carries the launch velocity
type JumpPayload struct {
	Velocity float64
}
