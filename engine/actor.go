package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-fps/component"
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/weapon"
)

// Actor is a player-controlled character and the state it owns
// All state is created at spawn and mutated only by the owning world's tick
type Actor struct {
	ID   uuid.UUID
	Name string

	Body    physics.Body
	Loadout *weapon.Loadout

	Locomotion component.LocomotionComponent
	Recoil     component.RecoilComponent
	Bob        component.BobComponent
	Footstep   component.FootstepComponent
}

// NewActor spawns an actor at rest with a fresh identity
func NewActor(name string, body physics.Body, loadout *weapon.Loadout) *Actor {
	if loadout == nil {
		loadout = weapon.NewLoadout()
	}
	return &Actor{
		ID:         uuid.New(),
		Name:       name,
		Body:       body,
		Loadout:    loadout,
		Locomotion: component.NewLocomotionComponent(),
	}
}

// Weapon returns the equipped fire control, nil when unarmed
func (a *Actor) Weapon() *weapon.FireControl {
	return a.Loadout.Equipped()
}
