package weapon

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/vi-fps/component"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/vmath"
)

// Shot is an accepted fire request
type Shot struct {
	Weapon    string
	AmmoLeft  float64
	Origin    vmath.Vec3F
	Direction vmath.Vec3F
	Result    ShotResult
}

// FireControl is the ammo, fire-rate and reload state machine of one weapon instance
// States: Idle, Reloading{CompletesAt}. Time is the caller's sim clock
type FireControl struct {
	cfg    *Config
	effect Effect
	state  component.FireComponent
	logger *slog.Logger
}

// NewFireControl creates a weapon instance with a full magazine
func NewFireControl(cfg *Config, effect Effect, logger *slog.Logger) *FireControl {
	if logger == nil {
		logger = slog.Default()
	}
	return &FireControl{
		cfg:    cfg,
		effect: effect,
		state:  component.FireComponent{CurrentAmmo: cfg.MagazineSize},
		logger: logger.With("weapon", cfg.Name),
	}
}

func (fc *FireControl) Config() *Config                { return fc.cfg }
func (fc *FireControl) Effect() Effect                 { return fc.effect }
func (fc *FireControl) State() component.FireComponent { return fc.state }
func (fc *FireControl) Ammo() float64                  { return fc.state.CurrentAmmo }
func (fc *FireControl) IsReloading() bool              { return fc.state.IsReloading() }
func (fc *FireControl) NextFireTime() time.Duration    { return fc.state.NextFireTime }

// Update completes a pending reload once its window has elapsed
// Returns true on the Reloading -> Idle transition
func (fc *FireControl) Update(now time.Duration) bool {
	if !fc.state.Reload.Active || now < fc.state.Reload.CompletesAt {
		return false
	}
	fc.state.CurrentAmmo = fc.cfg.MagazineSize
	fc.state.Reload = component.ReloadState{}
	fc.logger.Info("reloaded", "ammo", fc.state.CurrentAmmo)
	return true
}

// TryReload enters Reloading when idle and the magazine is not full
func (fc *FireControl) TryReload(now time.Duration) bool {
	if fc.state.Reload.Active {
		fc.logger.Debug("reload rejected", "reason", "already reloading")
		return false
	}
	if fc.state.CurrentAmmo >= fc.cfg.MagazineSize {
		fc.logger.Debug("reload rejected", "reason", "magazine full")
		return false
	}
	fc.state.Reload = component.ReloadState{
		Active:      true,
		CompletesAt: now + fc.cfg.ReloadDuration(),
	}
	fc.logger.Info("reloading", "ammo", fc.state.CurrentAmmo, "completes_at", fc.state.Reload.CompletesAt)
	return true
}

// CancelReload leaves Reloading without restoring ammo
func (fc *FireControl) CancelReload() bool {
	if !fc.state.Reload.Active {
		return false
	}
	fc.state.Reload = component.ReloadState{}
	fc.logger.Debug("reload cancelled", "ammo", fc.state.CurrentAmmo)
	return true
}

// TryShoot fires when idle, off cooldown and loaded
// A rejected request changes no state and reports why
func (fc *FireControl) TryShoot(now time.Duration, origin, direction vmath.Vec3F) (Shot, event.RejectReason) {
	if fc.state.Reload.Active {
		fc.logger.Debug("fire rejected", "reason", event.RejectReloading)
		return Shot{}, event.RejectReloading
	}

	if fc.state.CurrentAmmo <= 0 {
		if !fc.cfg.AllowEmptyFire {
			fc.logger.Debug("fire rejected", "reason", event.RejectEmpty)
			return Shot{}, event.RejectEmpty
		}
		fc.logger.Debug("out of ammo", "ammo", fc.state.CurrentAmmo)
	}

	if now < fc.state.NextFireTime {
		return Shot{}, event.RejectCooldown
	}

	fc.state.NextFireTime = now + fc.cfg.FireInterval()
	fc.state.CurrentAmmo--

	shot := Shot{
		Weapon:    fc.cfg.Name,
		AmmoLeft:  fc.state.CurrentAmmo,
		Origin:    origin,
		Direction: direction,
	}
	if fc.effect != nil {
		shot.Result = fc.effect.Fire(origin, direction, fc.cfg)
	}
	fc.logger.Debug("shot", "ammo", fc.state.CurrentAmmo, "hit", shot.Result.Hit, "tag", shot.Result.Tag)
	return shot, event.RejectNone
}
