package weapon

import (
	"github.com/lixenwraith/vi-fps/component"
	"github.com/lixenwraith/vi-fps/vmath"
)

// RandomSource draws uniform values in [lo, hi]
type RandomSource interface {
	Range(lo, hi float64) float64
}

// ApplyRecoil adds a random kick to the target and steps current toward it
// The kick accumulates, current moves linearly by at most RecoilSpeed*dt
func ApplyRecoil(r *component.RecoilComponent, cfg *Config, dt float64, rng RandomSource) {
	kick := vmath.Vec2F{
		X: rng.Range(-cfg.MaxRecoil.X, cfg.MaxRecoil.X) * cfg.RecoilAmount,
		Y: rng.Range(-cfg.MaxRecoil.Y, cfg.MaxRecoil.Y) * cfg.RecoilAmount,
	}
	r.Target = vmath.V2FAdd(r.Target, kick)
	r.Current = vmath.V2FMoveTowards(r.Current, r.Target, cfg.RecoilSpeed*dt)
}

// ResetRecoil decays current and target toward zero by ResetRecoilSpeed*dt each
func ResetRecoil(r *component.RecoilComponent, cfg *Config, dt float64) {
	step := cfg.ResetRecoilSpeed * dt
	r.Current = vmath.V2FMoveTowards(r.Current, vmath.Vec2F{}, step)
	r.Target = vmath.V2FMoveTowards(r.Target, vmath.Vec2F{}, step)
}
