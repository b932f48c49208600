package system

import (
	"math"

	"github.com/lixenwraith/vi-fps/component"
	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

// LocomotionInput is the per-tick sample the locomotion step consumes
type LocomotionInput struct {
	Input    input.Snapshot
	Grounded bool

	// Heading is the actor yaw before this tick's turn
	Heading float64

	// Recoil is the camera offset applied on the previous tick
	Recoil vmath.Vec2F

	DT float64
}

// LocomotionOutput is what the caller writes to the body and camera
type LocomotionOutput struct {
	Displacement   vmath.Vec3F
	Yaw            float64
	CameraRotation vmath.Euler
	Jumped         bool
}

// smooth eases an axis toward its raw value
// Reference mode scales the raw value by a constant factor every tick, independent of dt
func smooth(prev, raw float64, p *config.PlayerConfig, dt float64) float64 {
	if p.SmoothingMode == config.SmoothingExponential {
		return vmath.Lerp(prev, raw, 1-math.Exp(-p.SmoothingRate*dt))
	}
	return vmath.Lerp(0, raw, p.InputSmoothing)
}

// StepLocomotion advances locomotion state by one tick
func StepLocomotion(s *component.LocomotionComponent, p *config.PlayerConfig, in LocomotionInput) LocomotionOutput {
	dt := in.DT
	var out LocomotionOutput

	s.SmoothMove = smooth(s.SmoothMove, in.Input.Vertical, p, dt)
	s.SmoothStrafe = smooth(s.SmoothStrafe, in.Input.Horizontal, p, dt)
	s.SmoothMouseX = smooth(s.SmoothMouseX, in.Input.MouseX, p, dt)
	s.SmoothMouseY = smooth(s.SmoothMouseY, in.Input.MouseY, p, dt)

	// Camera-relative on the horizontal plane, pitch ignored
	move := vmath.RotateYaw(vmath.Vec3F{X: s.SmoothStrafe, Z: s.SmoothMove}, in.Heading+in.Recoil.X)

	targetMultiplier := 1.0
	if in.Input.Sprint {
		targetMultiplier = p.SprintSpeedMultiplier
	}
	rate := p.SprintTransitSpeed * dt
	s.CurrentSpeedMultiplier = vmath.Lerp(s.CurrentSpeedMultiplier, targetMultiplier, rate)
	s.CurrentSpeed = vmath.Lerp(s.CurrentSpeed, p.MoveSpeed*s.CurrentSpeedMultiplier, rate)
	move = vmath.V3FScale(move, s.CurrentSpeed)

	if in.Grounded {
		s.VerticalVelocity = parameter.GroundedBias
		if in.Input.Jump {
			s.VerticalVelocity = math.Sqrt(2 * p.JumpHeight * p.Gravity)
			out.Jumped = true
		}
	} else {
		s.VerticalVelocity -= p.Gravity * dt
	}
	move.Y = s.VerticalVelocity
	out.Displacement = vmath.V3FScale(move, dt)

	lookX := s.SmoothMouseX * p.MouseSensitivity * dt
	lookY := s.SmoothMouseY * p.MouseSensitivity * dt
	s.XRotation = vmath.Clamp(s.XRotation-lookY, -p.PitchLimit, p.PitchLimit)
	out.Yaw = lookX

	out.CameraRotation = vmath.Euler{Pitch: s.XRotation + in.Recoil.Y, Yaw: in.Recoil.X}
	return out
}

// LocomotionSystem moves the player body and orients the camera
type LocomotionSystem struct {
	cfg config.PlayerConfig
}

func NewLocomotionSystem(cfg config.PlayerConfig) *LocomotionSystem {
	return &LocomotionSystem{cfg: cfg}
}

func (s *LocomotionSystem) Priority() int {
	return parameter.PriorityLocomotion
}

func (s *LocomotionSystem) Update(w *engine.World) {
	actor := w.Player
	if actor == nil || actor.Body == nil {
		return
	}
	dt := w.Time.DeltaSeconds()

	out := StepLocomotion(&actor.Locomotion, &s.cfg, LocomotionInput{
		Input:    w.Snapshot,
		Grounded: actor.Body.Grounded(),
		Heading:  actor.Body.Heading(),
		Recoil:   actor.Recoil.Current,
		DT:       dt,
	})

	actor.Body.Move(out.Displacement, dt)
	actor.Body.Rotate(out.Yaw)
	w.Camera.SetLocalRotation(out.CameraRotation)

	if out.Jumped {
		w.Emit(event.EventJumped, &event.JumpPayload{Velocity: actor.Locomotion.VerticalVelocity})
		w.Logger.Debug("jumped", "velocity", actor.Locomotion.VerticalVelocity)
	}
}
