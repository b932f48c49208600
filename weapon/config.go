package weapon

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid weapon config")

// EffectKind selects the fire effect implementation
type EffectKind string

const (
	EffectHitscan    EffectKind = "hitscan"
	EffectProjectile EffectKind = "projectile"
)

// Config is the immutable per-weapon tuning record, shared read-only across instances
type Config struct {
	Name          string  `yaml:"name"`
	TargetLayers  uint32  `yaml:"target_layers"`
	ShootingRange float64 `yaml:"shooting_range"`

	// FireRate is shots per second
	FireRate float64 `yaml:"fire_rate"`

	MagazineSize float64 `yaml:"magazine_size"`

	// ReloadTime is in seconds
	ReloadTime float64 `yaml:"reload_time"`

	RecoilAmount     float64     `yaml:"recoil_amount"`
	MaxRecoil        vmath.Vec2F `yaml:"max_recoil"`
	RecoilSpeed      float64     `yaml:"recoil_speed"`
	ResetRecoilSpeed float64     `yaml:"reset_recoil_speed"`

	Effect             EffectKind `yaml:"effect"`
	ProjectileSpeed    float64    `yaml:"projectile_speed"`
	ProjectileLifetime float64    `yaml:"projectile_lifetime"`

	// AllowEmptyFire keeps the legacy behavior of firing past zero ammo when the cooldown allows
	AllowEmptyFire bool `yaml:"allow_empty_fire"`
}

// DefaultConfig returns the default rifle
func DefaultConfig() Config {
	return Config{
		Name:               parameter.RifleName,
		TargetLayers:       parameter.LayerTarget | parameter.LayerTerrain,
		ShootingRange:      parameter.RifleShootingRange,
		FireRate:           parameter.RifleFireRate,
		MagazineSize:       parameter.RifleMagazineSize,
		ReloadTime:         parameter.RifleReloadTime,
		RecoilAmount:       parameter.RifleRecoilAmount,
		MaxRecoil:          vmath.Vec2F{X: parameter.RifleMaxRecoilX, Y: parameter.RifleMaxRecoilY},
		RecoilSpeed:        parameter.RifleRecoilSpeed,
		ResetRecoilSpeed:   parameter.RifleResetSpeed,
		Effect:             EffectHitscan,
		ProjectileSpeed:    parameter.ProjectileSpeed,
		ProjectileLifetime: parameter.ProjectileLifetime,
	}
}

// Validate checks the preconditions the fire control relies on
func (c *Config) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidConfig)
	case c.FireRate <= 0:
		return fmt.Errorf("%w: %s: fire_rate must be positive, got %v", ErrInvalidConfig, c.Name, c.FireRate)
	case c.MagazineSize <= 0:
		return fmt.Errorf("%w: %s: magazine_size must be positive, got %v", ErrInvalidConfig, c.Name, c.MagazineSize)
	case c.ReloadTime < 0:
		return fmt.Errorf("%w: %s: reload_time must not be negative", ErrInvalidConfig, c.Name)
	case c.ShootingRange <= 0:
		return fmt.Errorf("%w: %s: shooting_range must be positive", ErrInvalidConfig, c.Name)
	case c.RecoilSpeed < 0 || c.ResetRecoilSpeed < 0:
		return fmt.Errorf("%w: %s: recoil speeds must not be negative", ErrInvalidConfig, c.Name)
	case c.MaxRecoil.X < 0 || c.MaxRecoil.Y < 0:
		return fmt.Errorf("%w: %s: max_recoil must not be negative", ErrInvalidConfig, c.Name)
	}

	switch c.Effect {
	case EffectHitscan:
	case EffectProjectile:
		if c.ProjectileSpeed <= 0 || c.ProjectileLifetime <= 0 {
			return fmt.Errorf("%w: %s: projectile speed and lifetime must be positive", ErrInvalidConfig, c.Name)
		}
	default:
		return fmt.Errorf("%w: %s: unknown effect %q", ErrInvalidConfig, c.Name, c.Effect)
	}
	return nil
}

// FireInterval is the minimum sim time between accepted shots
func (c *Config) FireInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FireRate)
}

// ReloadDuration is the reload window length
func (c *Config) ReloadDuration() time.Duration {
	return time.Duration(c.ReloadTime * float64(time.Second))
}
