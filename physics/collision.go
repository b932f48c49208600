package physics

import (
	"math"

	"github.com/lixenwraith/vi-fps/vmath"
)

// AABB is an axis-aligned box
type AABB struct {
	Min, Max vmath.Vec3F
}

// Contains reports whether p is inside the box, faces inclusive
func (b AABB) Contains(p vmath.Vec3F) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Expand grows the box by r on the horizontal axes
func (b AABB) Expand(r float64) AABB {
	return AABB{
		Min: vmath.Vec3F{X: b.Min.X - r, Y: b.Min.Y, Z: b.Min.Z - r},
		Max: vmath.Vec3F{X: b.Max.X + r, Y: b.Max.Y, Z: b.Max.Z + r},
	}
}

// RayAABB returns the entry distance of a ray into a box using the slab method
// Rays starting inside report distance 0
func RayAABB(origin, dir vmath.Vec3F, box AABB) (float64, bool) {
	tMin, tMax := 0.0, math.Inf(1)

	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// RayPlaneY returns the distance at which a ray crosses the horizontal plane y = height
// Only downward rays from above the plane hit
func RayPlaneY(origin, dir vmath.Vec3F, height float64) (float64, bool) {
	if dir.Y >= 0 || origin.Y < height {
		return 0, false
	}
	return (origin.Y - height) / -dir.Y, true
}
