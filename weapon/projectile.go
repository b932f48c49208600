package weapon

import (
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
)

// Round is a live projectile
type Round struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Age      float64
	Traveled float64

	lifetime float64
	maxRange float64
	layers   uint32
}

// Projectile spawns rounds that travel at finite speed and resolve on later ticks
type Projectile struct {
	raycaster physics.Raycaster
	rounds    []Round
}

func NewProjectile(raycaster physics.Raycaster) *Projectile {
	return &Projectile{raycaster: raycaster}
}

func (p *Projectile) Fire(origin, direction vmath.Vec3F, cfg *Config) ShotResult {
	p.rounds = append(p.rounds, Round{
		Position: origin,
		Velocity: vmath.V3FScale(vmath.V3FNormalize(direction), cfg.ProjectileSpeed),
		lifetime: cfg.ProjectileLifetime,
		maxRange: cfg.ShootingRange,
		layers:   cfg.TargetLayers,
	})
	return ShotResult{}
}

// Step advances every round by dt, sweeping its path for contacts
// Rounds that hit, outlive their lifetime or exceed range are removed
func (p *Projectile) Step(dt float64) []Impact {
	if len(p.rounds) == 0 || dt <= 0 {
		return nil
	}

	var impacts []Impact
	live := p.rounds[:0]
	for _, r := range p.rounds {
		speed := vmath.V3FMag(r.Velocity)
		segment := speed * dt
		if remaining := r.maxRange - r.Traveled; segment > remaining {
			segment = remaining
		}

		if segment > 0 {
			dir := vmath.V3FScale(r.Velocity, 1/speed)
			if hit, ok := p.raycaster.Raycast(r.Position, dir, segment, r.layers); ok {
				impacts = append(impacts, Impact{Point: hit.Point, Tag: hit.Tag})
				continue
			}
			r.Position = vmath.V3FAdd(r.Position, vmath.V3FScale(dir, segment))
			r.Traveled += segment
		}

		r.Age += dt
		if r.Age >= r.lifetime || r.Traveled >= r.maxRange {
			continue
		}
		live = append(live, r)
	}
	p.rounds = live
	return impacts
}

// Rounds returns a copy of the live rounds
func (p *Projectile) Rounds() []Round {
	out := make([]Round, len(p.rounds))
	copy(out, p.rounds)
	return out
}
