package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FMoveTowards moves current toward target along the straight line by at most maxDelta
// Returns target exactly once within reach
func V2FMoveTowards(current, target Vec2F, maxDelta float64) Vec2F {
	delta := V2FSub(target, current)
	dist := V2FMag(delta)
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return V2FAdd(current, V2FScale(delta, maxDelta/dist))
}
