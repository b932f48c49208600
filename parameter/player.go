package parameter

// Movement defaults
const (
	MoveSpeed             = 5.0
	SprintSpeedMultiplier = 2.0
	SprintTransitSpeed    = 5.0
	Gravity               = 9.81
	JumpHeight            = 2.0

	// GroundedBias keeps a grounded body pressed against collision geometry
	GroundedBias = -0.5

	// MouseSensitivity is degrees per second at full axis deflection
	MouseSensitivity = 100.0

	// InputSmoothingFactor is the per-frame interpolation factor for raw axes
	InputSmoothingFactor = 0.5

	// InputSmoothingRate is the per-second convergence rate of exponential smoothing
	InputSmoothingRate = 30.0

	// PitchLimit clamps camera pitch to [-PitchLimit, PitchLimit] degrees
	PitchLimit = 90.0

	// EyeHeight is the camera offset above the body center
	EyeHeight = 0.6

	// MovingSpeedThreshold is the horizontal speed above which the actor counts as moving
	MovingSpeedThreshold = 0.1
)

// Footsteps
const (
	StepInterval = 0.5

	// StepRayDistance is the downward probe length for ground material
	StepRayDistance = 1.5
)

// Ground material tags reported by the raycast collaborator
const (
	MaterialGrass  = "Grass"
	MaterialGravel = "Gravel"
	MaterialGround = "Ground"
)
