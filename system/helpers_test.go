package system_test

import (
	"time"

	"github.com/lixenwraith/vi-fps/input"
)

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func inputWalk(ticks int) []input.Step {
	return []input.Step{{Ticks: ticks, Vertical: 1}}
}
