package system

import (
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/weapon"
)

// ProjectileSystem advances in-flight rounds of every weapon in the loadout
// Rounds keep flying after their weapon is holstered
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) Update(w *engine.World) {
	actor := w.Player
	if actor == nil {
		return
	}
	dt := w.Time.DeltaSeconds()

	for _, fc := range actor.Loadout.Weapons() {
		stepper, ok := fc.Effect().(weapon.Stepper)
		if !ok {
			continue
		}
		for _, impact := range stepper.Step(dt) {
			w.Emit(event.EventProjectileHit, &event.ProjectileHitPayload{
				Weapon: fc.Config().Name,
				Point:  impact.Point,
				Tag:    impact.Tag,
			})
			w.Logger.Debug("projectile hit", "weapon", fc.Config().Name, "tag", impact.Tag)
		}
	}
}
