package config

import (
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
)

// Build creates the terrain described by the arena section
func (a ArenaConfig) Build() *physics.Terrain {
	terrain := physics.NewTerrain(a.HalfExtent)
	for _, r := range a.Regions {
		terrain.AddRegion(physics.Region{
			MinX: r.MinX, MinZ: r.MinZ,
			MaxX: r.MaxX, MaxZ: r.MaxZ,
			Material: r.Material,
		})
	}
	for _, t := range a.Targets {
		hw, hd := t.Width/2, t.Depth/2
		terrain.AddBox(physics.Box{
			AABB: physics.AABB{
				Min: vmath.Vec3F{X: t.X - hw, Y: terrain.Height, Z: t.Z - hd},
				Max: vmath.Vec3F{X: t.X + hw, Y: terrain.Height + t.Height, Z: t.Z + hd},
			},
			Tag:   t.Tag,
			Layer: parameter.LayerTarget,
		})
	}
	return terrain
}

// SpawnPoint is the feet position of the player on the ground
func (a ArenaConfig) SpawnPoint() vmath.Vec3F {
	return vmath.Vec3F{X: a.Spawn[0], Z: a.Spawn[1]}
}
