package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

func TestBodySpawnsGrounded(t *testing.T) {
	body := NewKinematicBody(NewTerrain(10), vmath.Vec3F{})

	assert.True(t, body.Grounded())
	assert.Equal(t, vmath.Vec3F{Y: DefaultHalfHeight}, body.Position())
	assert.Equal(t, vmath.Vec3F{}, body.Feet())
}

func TestBodyFallsAndLands(t *testing.T) {
	body := NewKinematicBody(NewTerrain(10), vmath.Vec3F{Y: 3})
	assert.False(t, body.Grounded())

	body.Move(vmath.Vec3F{Y: -1}, 0.1)
	assert.False(t, body.Grounded())
	assert.InDelta(t, -10.0, body.Velocity().Y, 1e-9)

	body.Move(vmath.Vec3F{Y: -5}, 0.1)
	assert.True(t, body.Grounded())
	assert.Equal(t, 0.0, body.Feet().Y)
	assert.InDelta(t, -20.0, body.Velocity().Y, 1e-9, "velocity reflects resolved motion")
}

func TestBodyGroundBiasKeepsContact(t *testing.T) {
	body := NewKinematicBody(NewTerrain(10), vmath.Vec3F{})

	body.Move(vmath.Vec3F{X: 0.1, Y: parameter.GroundedBias * 0.016}, 0.016)
	assert.True(t, body.Grounded())
	assert.InDelta(t, 0.0, body.Velocity().Y, 1e-9)
	assert.InDelta(t, 0.1/0.016, body.Velocity().X, 1e-9)
}

func TestBodySlidesAlongBox(t *testing.T) {
	terrain := NewTerrain(10)
	terrain.AddBox(Box{
		AABB:  AABB{Min: vmath.Vec3F{X: -5, Y: 0, Z: 2}, Max: vmath.Vec3F{X: 5, Y: 2, Z: 3}},
		Layer: parameter.LayerTarget,
	})
	body := NewKinematicBody(terrain, vmath.Vec3F{})

	// Diagonal into the wall: Z blocked, X proceeds
	body.Move(vmath.Vec3F{X: 1, Z: 1.8}, 0.1)
	assert.Equal(t, 1.0, body.Position().X)
	assert.Equal(t, 0.0, body.Position().Z)
}

func TestBodyClampedToBounds(t *testing.T) {
	body := NewKinematicBody(NewTerrain(10), vmath.Vec3F{})

	body.Move(vmath.Vec3F{X: 50, Z: -50}, 1)
	assert.Equal(t, 10-DefaultRadius, body.Position().X)
	assert.Equal(t, -10+DefaultRadius, body.Position().Z)
}

func TestBodyRotateWraps(t *testing.T) {
	body := NewKinematicBody(NewTerrain(10), vmath.Vec3F{})

	body.Rotate(170)
	body.Rotate(20)
	assert.InDelta(t, -170.0, body.Heading(), 1e-9)
}
