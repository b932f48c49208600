package weapon

import (
	"fmt"

	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
)

//go:generate go tool mockgen -destination=./mocks/effect_mock.go -package=mocks . Effect

// ShotResult is the immediate outcome of a fire effect
// Projectile effects resolve later and report no hit here
type ShotResult struct {
	Hit      bool
	Point    vmath.Vec3F
	Distance float64
	Tag      string
}

// Effect is the weapon-specific fire behavior, injected into FireControl
type Effect interface {
	Fire(origin, direction vmath.Vec3F, cfg *Config) ShotResult
}

// Impact is a deferred hit reported by a Stepper
type Impact struct {
	Point vmath.Vec3F
	Tag   string
}

// Stepper is implemented by effects that need per-tick advancement
type Stepper interface {
	Step(dt float64) []Impact
}

// NewEffect builds the effect selected by cfg
func NewEffect(cfg *Config, raycaster physics.Raycaster) (Effect, error) {
	switch cfg.Effect {
	case EffectHitscan, "":
		return NewHitscan(raycaster), nil
	case EffectProjectile:
		return NewProjectile(raycaster), nil
	}
	return nil, fmt.Errorf("%w: %s: unknown effect %q", ErrInvalidConfig, cfg.Name, cfg.Effect)
}
