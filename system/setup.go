package system

import (
	"fmt"

	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/weapon"
)

// PlayerName is the actor name used by the commands
const PlayerName = "player"

// Setup is an assembled world and the terrain it runs on
type Setup struct {
	World   *engine.World
	Terrain *physics.Terrain
	Body    *physics.KinematicBody
	Audio   *AudioSystem
}

// NewSetup builds the arena, the player with its loadout and all systems from cfg
// opts.Raycaster defaults to the arena terrain and opts.Seed to cfg.Seed
func NewSetup(cfg *config.Config, opts engine.Options) (*Setup, error) {
	terrain := cfg.Arena.Build()
	if opts.Raycaster == nil {
		opts.Raycaster = terrain
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}

	loadout, err := weapon.BuildLoadout(cfg.Weapons, opts.Raycaster, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("building loadout: %w", err)
	}

	body := physics.NewKinematicBody(terrain, cfg.Arena.SpawnPoint())
	actor := engine.NewActor(PlayerName, body, loadout)
	w := engine.NewWorld(actor, opts)

	audioSystem := NewAudioSystem(cfg.Audio.Enabled)
	Register(w, cfg, audioSystem)

	return &Setup{World: w, Terrain: terrain, Body: body, Audio: audioSystem}, nil
}

// Register adds the tick systems in their fixed order
func Register(w *engine.World, cfg *config.Config, audioSystem *AudioSystem) {
	w.AddSystem(NewLocomotionSystem(cfg.Player))
	w.AddSystem(NewWeaponSystem())
	w.AddSystem(NewProjectileSystem())
	w.AddSystem(NewCameraBobSystem(cfg.Bob, cfg.Player))
	w.AddSystem(NewFootstepSystem(cfg.Footstep))
	if audioSystem != nil {
		w.AddSystem(audioSystem)
	}
}
