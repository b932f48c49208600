package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

func testTerrain() *Terrain {
	t := NewTerrain(20)
	t.AddRegion(Region{MinX: 0, MinZ: 0, MaxX: 10, MaxZ: 10, Material: parameter.MaterialGrass})
	t.AddRegion(Region{MinX: 5, MinZ: 5, MaxX: 10, MaxZ: 10, Material: parameter.MaterialGravel})
	t.AddBox(Box{
		AABB:  AABB{Min: vmath.Vec3F{X: -2, Y: 0, Z: 4}, Max: vmath.Vec3F{X: 2, Y: 2, Z: 6}},
		Tag:   "wall",
		Layer: parameter.LayerTarget,
	})
	return t
}

func TestMaterialAt(t *testing.T) {
	terrain := testTerrain()

	assert.Equal(t, parameter.MaterialGround, terrain.MaterialAt(-5, -5))
	assert.Equal(t, parameter.MaterialGrass, terrain.MaterialAt(2, 2))
	assert.Equal(t, parameter.MaterialGravel, terrain.MaterialAt(7, 7), "later region wins")
}

func TestRaycastGroundReportsMaterial(t *testing.T) {
	terrain := testTerrain()

	hit, ok := terrain.Raycast(vmath.Vec3F{X: 7, Y: 1, Z: 7}, vmath.Down, parameter.StepRayDistance, parameter.LayerTerrain)
	require.True(t, ok)
	assert.Equal(t, parameter.MaterialGravel, hit.Tag)
	assert.Equal(t, 1.0, hit.Distance)
	assert.Equal(t, parameter.LayerTerrain, hit.Layer)

	_, ok = terrain.Raycast(vmath.Vec3F{X: 7, Y: 2, Z: 7}, vmath.Down, parameter.StepRayDistance, parameter.LayerTerrain)
	assert.False(t, ok, "ground beyond ray length")

	_, ok = terrain.Raycast(vmath.Vec3F{X: 30, Y: 1, Z: 0}, vmath.Down, 5, parameter.LayerTerrain)
	assert.False(t, ok, "outside arena bounds")
}

func TestRaycastFiltersLayers(t *testing.T) {
	terrain := testTerrain()
	origin := vmath.Vec3F{Y: 1, Z: -5}
	dir := vmath.Vec3F{Z: 1}

	hit, ok := terrain.Raycast(origin, dir, 50, parameter.LayerTarget)
	require.True(t, ok)
	assert.Equal(t, "wall", hit.Tag)
	assert.InDelta(t, 9.0, hit.Distance, 1e-9)

	_, ok = terrain.Raycast(origin, dir, 50, parameter.LayerActor)
	assert.False(t, ok)
}

func TestRaycastNearestWins(t *testing.T) {
	terrain := testTerrain()

	// Steep downward ray hits the box top before the ground
	hit, ok := terrain.Raycast(vmath.Vec3F{Y: 5, Z: 5}, vmath.Down, 10, parameter.LayerAll)
	require.True(t, ok)
	assert.Equal(t, "wall", hit.Tag)
	assert.InDelta(t, 3.0, hit.Distance, 1e-9)
}

func TestRayAABB(t *testing.T) {
	box := AABB{Min: vmath.Vec3F{X: -1, Y: -1, Z: -1}, Max: vmath.Vec3F{X: 1, Y: 1, Z: 1}}

	dist, ok := RayAABB(vmath.Vec3F{X: -5}, vmath.Vec3F{X: 1}, box)
	require.True(t, ok)
	assert.Equal(t, 4.0, dist)

	dist, ok = RayAABB(vmath.Vec3F{}, vmath.Vec3F{X: 1}, box)
	require.True(t, ok)
	assert.Equal(t, 0.0, dist, "origin inside")

	_, ok = RayAABB(vmath.Vec3F{X: -5, Y: 3}, vmath.Vec3F{X: 1}, box)
	assert.False(t, ok)

	_, ok = RayAABB(vmath.Vec3F{X: 5}, vmath.Vec3F{X: 1}, box)
	assert.False(t, ok, "box behind origin")
}
