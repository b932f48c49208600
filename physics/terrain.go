package physics

import (
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

// Region tags a rectangle of the ground plane with a material (XZ extents)
type Region struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Material   string
}

func (r Region) contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Box is a solid, tagged obstacle on a collision layer
type Box struct {
	AABB
	Tag   string
	Layer uint32
}

// Terrain is a flat bounded ground plane with material regions and boxes
// It implements Raycaster for footstep probes and hitscan queries
type Terrain struct {
	Height float64

	// Horizontal walkable bounds
	MinX, MinZ float64
	MaxX, MaxZ float64

	DefaultMaterial string
	Regions         []Region
	Boxes           []Box
}

// NewTerrain creates a square arena of the given half extent centered on the origin
func NewTerrain(halfExtent float64) *Terrain {
	return &Terrain{
		MinX:            -halfExtent,
		MinZ:            -halfExtent,
		MaxX:            halfExtent,
		MaxZ:            halfExtent,
		DefaultMaterial: parameter.MaterialGround,
	}
}

// AddRegion registers a material rectangle, later regions take precedence
func (t *Terrain) AddRegion(r Region) {
	t.Regions = append(t.Regions, r)
}

// AddBox registers a solid box
func (t *Terrain) AddBox(b Box) {
	t.Boxes = append(t.Boxes, b)
}

// MaterialAt returns the ground material under (x, z)
func (t *Terrain) MaterialAt(x, z float64) string {
	for i := len(t.Regions) - 1; i >= 0; i-- {
		if t.Regions[i].contains(x, z) {
			return t.Regions[i].Material
		}
	}
	return t.DefaultMaterial
}

// Raycast returns the nearest contact among the ground plane and boxes on the requested layers
func (t *Terrain) Raycast(origin, direction vmath.Vec3F, maxDistance float64, layers uint32) (Hit, bool) {
	var best Hit
	found := false

	if layers&parameter.LayerTerrain != 0 {
		if dist, ok := RayPlaneY(origin, direction, t.Height); ok && dist <= maxDistance {
			p := vmath.V3FAdd(origin, vmath.V3FScale(direction, dist))
			if p.X >= t.MinX && p.X <= t.MaxX && p.Z >= t.MinZ && p.Z <= t.MaxZ {
				best = Hit{
					Point:    p,
					Distance: dist,
					Tag:      t.MaterialAt(p.X, p.Z),
					Layer:    parameter.LayerTerrain,
				}
				found = true
			}
		}
	}

	for _, b := range t.Boxes {
		if b.Layer&layers == 0 {
			continue
		}
		dist, ok := RayAABB(origin, direction, b.AABB)
		if !ok || dist > maxDistance {
			continue
		}
		if found && dist >= best.Distance {
			continue
		}
		best = Hit{
			Point:    vmath.V3FAdd(origin, vmath.V3FScale(direction, dist)),
			Distance: dist,
			Tag:      b.Tag,
			Layer:    b.Layer,
		}
		found = true
	}

	return best, found
}

// blocked reports whether a body column at p intersects any solid box
func (t *Terrain) blocked(p vmath.Vec3F, radius, halfHeight float64) bool {
	for _, b := range t.Boxes {
		box := b.Expand(radius)
		if p.X < box.Min.X || p.X > box.Max.X || p.Z < box.Min.Z || p.Z > box.Max.Z {
			continue
		}
		if p.Y+halfHeight < box.Min.Y || p.Y-halfHeight > box.Max.Y {
			continue
		}
		return true
	}
	return false
}
