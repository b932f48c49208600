package physics

import (
	"github.com/lixenwraith/vi-fps/vmath"
)

//go:generate go tool mockgen -destination=./mocks/physics_mock.go -package=mocks . Body,Raycaster

// Body is the collision-aware transform of an actor
// Move resolves the displacement against geometry, Velocity reports the resolved result
type Body interface {
	Move(displacement vmath.Vec3F, dt float64)
	Grounded() bool
	Velocity() vmath.Vec3F
	Position() vmath.Vec3F

	// Heading is the actor yaw in degrees
	Heading() float64
	Rotate(yaw float64)
}

// Hit is a raycast contact
type Hit struct {
	Point    vmath.Vec3F
	Distance float64
	Tag      string
	Layer    uint32
}

// Raycaster answers ray queries filtered by a layer mask
// direction must be normalized; ok is false on no hit
type Raycaster interface {
	Raycast(origin, direction vmath.Vec3F, maxDistance float64, layers uint32) (hit Hit, ok bool)
}
