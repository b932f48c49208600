package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector, Y up, Z forward
type Vec3F struct {
	X, Y, Z float64
}

// Up is the world up axis
var Up = Vec3F{0, 1, 0}

// Down is the world down axis
var Down = Vec3F{0, -1, 0}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FHorizontal drops the vertical component
func V3FHorizontal(v Vec3F) Vec3F {
	return Vec3F{v.X, 0, v.Z}
}

// V3FHorizontalMag returns the magnitude on the XZ plane
func V3FHorizontalMag(v Vec3F) float64 {
	return math.Hypot(v.X, v.Z)
}
