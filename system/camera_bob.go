package system

import (
	"github.com/lixenwraith/vi-fps/component"
	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

// BobInput is the per-tick motion sample for camera bob
type BobInput struct {
	Grounded        bool
	HorizontalSpeed float64
	SpeedMultiplier float64
	DT              float64
}

// StepBob eases the noise gains toward their targets
// Targets are zero unless grounded and moving, gains never snap
func StepBob(b *component.BobComponent, cfg *config.BobConfig, player *config.PlayerConfig, in BobInput) {
	var targetAmplitude, targetFrequency float64

	if in.Grounded && in.HorizontalSpeed > parameter.MovingSpeedThreshold {
		speedFactor := vmath.Clamp01(in.HorizontalSpeed / (player.MoveSpeed * player.SprintSpeedMultiplier))
		targetAmplitude = cfg.Amplitude * in.SpeedMultiplier * speedFactor
		targetFrequency = cfg.Frequency * in.SpeedMultiplier * speedFactor
	}

	rate := cfg.Smoothing * in.DT
	b.Amplitude = vmath.Lerp(b.Amplitude, targetAmplitude, rate)
	b.Frequency = vmath.Lerp(b.Frequency, targetFrequency, rate)
}

// CameraBobSystem feeds walking sway to the camera noise
type CameraBobSystem struct {
	cfg    config.BobConfig
	player config.PlayerConfig
}

func NewCameraBobSystem(cfg config.BobConfig, player config.PlayerConfig) *CameraBobSystem {
	return &CameraBobSystem{cfg: cfg, player: player}
}

func (s *CameraBobSystem) Priority() int {
	return parameter.PriorityCameraBob
}

func (s *CameraBobSystem) Update(w *engine.World) {
	actor := w.Player
	if actor == nil || actor.Body == nil {
		return
	}

	StepBob(&actor.Bob, &s.cfg, &s.player, BobInput{
		Grounded:        actor.Body.Grounded(),
		HorizontalSpeed: vmath.V3FHorizontalMag(actor.Body.Velocity()),
		SpeedMultiplier: actor.Locomotion.CurrentSpeedMultiplier,
		DT:              w.Time.DeltaSeconds(),
	})
	w.Camera.SetNoise(actor.Bob.Amplitude, actor.Bob.Frequency)
}
