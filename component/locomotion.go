package component

// LocomotionComponent holds per-actor movement and camera pitch state
type LocomotionComponent struct {
	// VerticalVelocity is integrated under gravity while airborne (m/s, +Y up)
	VerticalVelocity float64

	// CurrentSpeed eases toward MoveSpeed * CurrentSpeedMultiplier
	CurrentSpeed float64

	// CurrentSpeedMultiplier eases between 1 and the sprint multiplier
	CurrentSpeedMultiplier float64

	// XRotation is camera pitch in degrees, clamped to [-90, 90]
	XRotation float64

	// Smoothed axes from the last tick
	SmoothMove, SmoothStrafe   float64
	SmoothMouseX, SmoothMouseY float64
}

// NewLocomotionComponent returns spawn state: at rest, walking multiplier
func NewLocomotionComponent() LocomotionComponent {
	return LocomotionComponent{CurrentSpeedMultiplier: 1}
}
