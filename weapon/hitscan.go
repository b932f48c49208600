package weapon

import (
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
)

// Hitscan resolves a shot instantly along the aim ray
type Hitscan struct {
	raycaster physics.Raycaster
}

func NewHitscan(raycaster physics.Raycaster) *Hitscan {
	return &Hitscan{raycaster: raycaster}
}

func (h *Hitscan) Fire(origin, direction vmath.Vec3F, cfg *Config) ShotResult {
	hit, ok := h.raycaster.Raycast(origin, vmath.V3FNormalize(direction), cfg.ShootingRange, cfg.TargetLayers)
	if !ok {
		return ShotResult{}
	}
	return ShotResult{
		Hit:      true,
		Point:    hit.Point,
		Distance: hit.Distance,
		Tag:      hit.Tag,
	}
}
