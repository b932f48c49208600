package component

import (
	"github.com/lixenwraith/vi-fps/vmath"
)

// RecoilComponent is the accumulated camera kick of one actor
// X is yaw kick, Y is pitch kick, both in degrees
type RecoilComponent struct {
	// Target accumulates per-shot kick and decays toward zero between shots
	Target vmath.Vec2F

	// Current eases toward Target and is what the camera applies
	Current vmath.Vec2F
}
