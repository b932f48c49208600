package main

import (
	"log/slog"

	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
	"github.com/lixenwraith/vi-fps/system"
	"github.com/lixenwraith/vi-fps/vmath"
)

// summary is the end state of a replay
type summary struct {
	Ticks    int
	Position vmath.Vec3F
	Heading  float64
	Pitch    float64
	Weapon   string
	Ammo     float64
	Steps    int
	Events   map[event.EventType]int
	Clips    []audio.Clip
}

// replay runs a script to completion at the configured tick rate
// traceTicks logs per-tick state at debug level
func replay(cfg *config.Config, script *input.Script, logger *slog.Logger, traceTicks bool) (summary, error) {
	source := input.NewScriptedSource(script)
	sound := audio.NewRecorder()

	setup, err := system.NewSetup(cfg, engine.Options{
		Input:  source,
		Audio:  sound,
		Logger: logger,
	})
	if err != nil {
		return summary{}, err
	}
	w := setup.World

	result := summary{Events: make(map[event.EventType]int)}
	w.Observe(func(ev event.GameEvent) {
		result.Events[ev.Type]++
		logger.Debug("event", "frame", ev.Frame, "type", ev.Type, "payload", ev.Payload)
	})

	w.Init()
	defer w.Shutdown()

	interval := cfg.TickInterval()
	for !source.Done() {
		w.Tick(interval)
		result.Ticks++

		if traceTicks {
			pos := setup.Body.Position()
			attrs := []any{
				"frame", w.Time.Frame,
				"t", w.Time.SimTime,
				"x", pos.X, "y", pos.Y, "z", pos.Z,
				"heading", setup.Body.Heading(),
				"pitch", w.Player.Locomotion.XRotation,
				"grounded", setup.Body.Grounded(),
				"recoil_x", w.Player.Recoil.Current.X,
				"recoil_y", w.Player.Recoil.Current.Y,
			}
			if fc := w.Player.Weapon(); fc != nil {
				attrs = append(attrs, "weapon", fc.Config().Name, "ammo", fc.Ammo(), "reloading", fc.IsReloading())
			}
			logger.Debug("tick", attrs...)
		}
	}

	result.Position = setup.Body.Position()
	result.Heading = setup.Body.Heading()
	result.Pitch = w.Player.Locomotion.XRotation
	result.Steps = w.Player.Footstep.Steps
	result.Clips = sound.Clips()
	if fc := w.Player.Weapon(); fc != nil {
		result.Weapon = fc.Config().Name
		result.Ammo = fc.Ammo()
	}
	return result, nil
}
