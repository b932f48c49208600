package system

import (
	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/parameter"
)

// AudioSystem turns gameplay events into clip playback
// Decouples weapon and locomotion systems from the audio backend
type AudioSystem struct {
	enabled bool
}

func NewAudioSystem(enabled bool) *AudioSystem {
	return &AudioSystem{enabled: enabled}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update(w *engine.World) {}

// SetEnabled mutes or unmutes playback
func (s *AudioSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShot,
		event.EventFireRejected,
		event.EventReloadStarted,
		event.EventReloadCompleted,
		event.EventWeaponSwitched,
		event.EventProjectileHit,
		event.EventFootstep,
		event.EventJumped,
	}
}

// HandleEvent plays the clip mapped to an event
func (s *AudioSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if !s.enabled || w.Audio == nil {
		return
	}

	switch ev.Type {
	case event.EventShot:
		w.Audio.Play(audio.ClipGunshot)
		if payload, ok := ev.Payload.(*event.ShotPayload); ok && payload.Hit {
			w.Audio.Play(audio.ClipImpact)
		}
	case event.EventFireRejected:
		if payload, ok := ev.Payload.(*event.FireRejectedPayload); ok && payload.Reason == event.RejectEmpty {
			w.Audio.Play(audio.ClipDryFire)
		}
	case event.EventReloadStarted:
		w.Audio.Play(audio.ClipReload)
	case event.EventReloadCompleted:
		w.Audio.Play(audio.ClipReloadDone)
	case event.EventWeaponSwitched:
		w.Audio.Play(audio.ClipSwitch)
	case event.EventProjectileHit:
		w.Audio.Play(audio.ClipImpact)
	case event.EventFootstep:
		if payload, ok := ev.Payload.(*event.FootstepPayload); ok && payload.Clip != "" {
			w.Audio.Play(payload.Clip)
		}
	case event.EventJumped:
		w.Audio.Play(audio.ClipJump)
	}
}
