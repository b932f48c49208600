package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityLocomotion = 10
	PriorityWeapon     = 20 // FireControl, then recoil apply or reset
	PriorityProjectile = 30
	PriorityCameraBob  = 40 // After locomotion so bob reads this tick's velocity
	PriorityFootstep   = 50
	PriorityAudio      = 900 // After game logic, drains tick events
)
