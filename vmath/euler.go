package vmath

import (
	"math"
)

// Euler holds rotation angles in degrees: Pitch about X, Yaw about Y, Roll about Z
type Euler struct {
	Pitch, Yaw, Roll float64
}

// RotateYaw rotates v about the up axis by yaw degrees
// Positive yaw turns +Z toward +X (clockwise seen from above)
func RotateYaw(v Vec3F, yaw float64) Vec3F {
	sin, cos := math.Sincos(yaw * Deg2Rad)
	return Vec3F{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Forward returns the unit look direction for an orientation
// Positive pitch looks down
func (e Euler) Forward() Vec3F {
	sinP, cosP := math.Sincos(e.Pitch * Deg2Rad)
	sinY, cosY := math.Sincos(e.Yaw * Deg2Rad)
	return Vec3F{
		X: sinY * cosP,
		Y: -sinP,
		Z: cosY * cosP,
	}
}

// WrapAngle maps degrees into (-180, 180]
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
