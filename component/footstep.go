package component

import (
	"time"
)

// FootstepComponent gates footstep triggering by sim time
type FootstepComponent struct {
	NextStepTime time.Duration
	LastMaterial string
	Steps        int
}
