package system

import (
	"time"

	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

// FootstepSystem triggers material-dependent footstep clips at a speed-scaled cadence
type FootstepSystem struct {
	cfg config.FootstepConfig
}

func NewFootstepSystem(cfg config.FootstepConfig) *FootstepSystem {
	return &FootstepSystem{cfg: cfg}
}

func (s *FootstepSystem) Priority() int {
	return parameter.PriorityFootstep
}

// material probes the ground under the body, no hit or unknown tags are plain ground
func (s *FootstepSystem) material(w *engine.World, origin vmath.Vec3F) string {
	if w.Raycaster == nil {
		return parameter.MaterialGround
	}
	hit, ok := w.Raycaster.Raycast(origin, vmath.Down, s.cfg.RayDistance, parameter.LayerTerrain)
	if !ok {
		return parameter.MaterialGround
	}
	switch hit.Tag {
	case parameter.MaterialGrass, parameter.MaterialGravel:
		return hit.Tag
	}
	return parameter.MaterialGround
}

func (s *FootstepSystem) Update(w *engine.World) {
	actor := w.Player
	if actor == nil || actor.Body == nil {
		return
	}

	body := actor.Body
	if !body.Grounded() || vmath.V3FHorizontalMag(body.Velocity()) <= parameter.MovingSpeedThreshold {
		return
	}

	state := &actor.Footstep
	now := w.Time.SimTime
	if now < state.NextStepTime {
		return
	}

	material := s.material(w, body.Position())
	var clip audio.Clip
	if clips := s.cfg.Clips[material]; len(clips) > 0 {
		clip = clips[w.Rand.Intn(len(clips))]
	}

	interval := s.cfg.StepInterval / actor.Locomotion.CurrentSpeedMultiplier
	state.NextStepTime = now + time.Duration(interval*float64(time.Second))
	state.LastMaterial = material
	state.Steps++

	w.Emit(event.EventFootstep, &event.FootstepPayload{Material: material, Clip: clip})
}
