package physics

import (
	"github.com/lixenwraith/vi-fps/vmath"
)

// Body dimensions
const (
	DefaultHalfHeight = 1.0
	DefaultRadius     = 0.5
)

// KinematicBody is a capsule-like character body resolved against a Terrain
// Position is the body center, half a body height above the feet
type KinematicBody struct {
	terrain *Terrain

	position vmath.Vec3F
	velocity vmath.Vec3F
	heading  float64
	grounded bool

	HalfHeight float64
	Radius     float64
}

// NewKinematicBody places a body with its feet at spawn
func NewKinematicBody(terrain *Terrain, spawn vmath.Vec3F) *KinematicBody {
	b := &KinematicBody{
		terrain:    terrain,
		HalfHeight: DefaultHalfHeight,
		Radius:     DefaultRadius,
	}
	b.position = vmath.Vec3F{X: spawn.X, Y: spawn.Y + b.HalfHeight, Z: spawn.Z}
	b.grounded = b.position.Y <= terrain.Height+b.HalfHeight
	return b
}

// Move applies a displacement, sliding along bounds and boxes per axis
// Grounded is set when the downward component was stopped by the ground plane
func (b *KinematicBody) Move(displacement vmath.Vec3F, dt float64) {
	start := b.position
	next := start

	// X then Z, each reverted independently when blocked
	next.X = vmath.Clamp(start.X+displacement.X, b.terrain.MinX+b.Radius, b.terrain.MaxX-b.Radius)
	if b.terrain.blocked(next, b.Radius, b.HalfHeight) {
		next.X = start.X
	}
	next.Z = vmath.Clamp(start.Z+displacement.Z, b.terrain.MinZ+b.Radius, b.terrain.MaxZ-b.Radius)
	if b.terrain.blocked(next, b.Radius, b.HalfHeight) {
		next.Z = start.Z
	}

	next.Y = start.Y + displacement.Y
	floor := b.terrain.Height + b.HalfHeight
	b.grounded = false
	if next.Y <= floor {
		next.Y = floor
		b.grounded = true
	}

	if dt > 0 {
		b.velocity = vmath.V3FScale(vmath.V3FSub(next, start), 1/dt)
	}
	b.position = next
}

func (b *KinematicBody) Grounded() bool        { return b.grounded }
func (b *KinematicBody) Velocity() vmath.Vec3F { return b.velocity }
func (b *KinematicBody) Position() vmath.Vec3F { return b.position }
func (b *KinematicBody) Heading() float64      { return b.heading }
func (b *KinematicBody) Rotate(yaw float64)    { b.heading = vmath.WrapAngle(b.heading + yaw) }

// Feet returns the point under the body center touching the ground when grounded
func (b *KinematicBody) Feet() vmath.Vec3F {
	return vmath.Vec3F{X: b.position.X, Y: b.position.Y - b.HalfHeight, Z: b.position.Z}
}
