package weapon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-fps/component"
	"github.com/lixenwraith/vi-fps/vmath"
	"github.com/lixenwraith/vi-fps/weapon"
)

// maxRand always draws the upper bound
type maxRand struct{}

func (maxRand) Range(_, hi float64) float64 { return hi }

func recoilConfig() *weapon.Config {
	cfg := weapon.DefaultConfig()
	cfg.RecoilAmount = 2
	cfg.MaxRecoil = vmath.Vec2F{X: 1, Y: 3}
	cfg.RecoilSpeed = 10
	cfg.ResetRecoilSpeed = 4
	return &cfg
}

func TestApplyRecoilAccumulatesTarget(t *testing.T) {
	cfg := recoilConfig()
	var r component.RecoilComponent

	weapon.ApplyRecoil(&r, cfg, 0.01, maxRand{})
	assert.Equal(t, vmath.Vec2F{X: 2, Y: 6}, r.Target)

	weapon.ApplyRecoil(&r, cfg, 0.01, maxRand{})
	assert.Equal(t, vmath.Vec2F{X: 4, Y: 12}, r.Target, "kicks add, they do not replace")
}

func TestApplyRecoilStepsCurrentLinearly(t *testing.T) {
	cfg := recoilConfig()
	var r component.RecoilComponent
	dt := 0.05

	weapon.ApplyRecoil(&r, cfg, dt, maxRand{})

	assert.InDelta(t, cfg.RecoilSpeed*dt, vmath.V2FMag(r.Current), 1e-9)
	// Direction of travel is along the target
	assert.InDelta(t, r.Target.Y/r.Target.X, r.Current.Y/r.Current.X, 1e-9)
}

func TestApplyRecoilWithinBounds(t *testing.T) {
	cfg := recoilConfig()
	rng := vmath.NewFastRand(99)
	for i := 0; i < 1000; i++ {
		var r component.RecoilComponent
		weapon.ApplyRecoil(&r, cfg, 0.01, rng)
		require.LessOrEqual(t, math.Abs(r.Target.X), cfg.MaxRecoil.X*cfg.RecoilAmount)
		require.LessOrEqual(t, math.Abs(r.Target.Y), cfg.MaxRecoil.Y*cfg.RecoilAmount)
	}
}

func TestResetRecoilTerminates(t *testing.T) {
	cfg := recoilConfig()
	const eps = 1e-9

	for _, dt := range []float64{1.0 / 30, 1.0 / 60, 1.0 / 144, 0.2} {
		r := component.RecoilComponent{
			Target:  vmath.Vec2F{X: -3, Y: 8},
			Current: vmath.Vec2F{X: 1, Y: 5},
		}
		magnitude := math.Max(vmath.V2FMag(r.Target), vmath.V2FMag(r.Current))
		bound := int(math.Ceil(magnitude/(cfg.ResetRecoilSpeed*dt))) + 1

		ticks := 0
		for vmath.V2FMag(r.Current) > eps || vmath.V2FMag(r.Target) > eps {
			weapon.ResetRecoil(&r, cfg, dt)
			ticks++
			require.LessOrEqual(t, ticks, bound, "dt=%v", dt)
		}
		assert.Equal(t, vmath.Vec2F{}, r.Current)
		assert.Equal(t, vmath.Vec2F{}, r.Target)
	}
}
