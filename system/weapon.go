package system

import (
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
	"github.com/lixenwraith/vi-fps/weapon"
)

// WeaponSystem drives the equipped weapon: switch, reload, shoot, then recoil
// Recoil kicks on a tick with an accepted shot and decays on every other tick
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) Update(w *engine.World) {
	actor := w.Player
	if actor == nil || actor.Body == nil {
		return
	}

	s.handleSwitch(w, actor)

	fc := actor.Weapon()
	if fc == nil {
		return
	}
	now := w.Time.SimTime
	dt := w.Time.DeltaSeconds()
	name := fc.Config().Name

	if fc.Update(now) {
		w.Emit(event.EventReloadCompleted, &event.ReloadPayload{Weapon: name, Ammo: fc.Ammo()})
	}

	if w.Snapshot.Reload && fc.TryReload(now) {
		w.Emit(event.EventReloadStarted, &event.ReloadPayload{Weapon: name, Ammo: fc.Ammo()})
	}

	fired := false
	if w.Snapshot.Fire {
		origin, direction := aim(actor)
		shot, reason := fc.TryShoot(now, origin, direction)
		switch reason {
		case event.RejectNone:
			fired = true
			w.Emit(event.EventShot, &event.ShotPayload{
				Weapon:    shot.Weapon,
				AmmoLeft:  shot.AmmoLeft,
				Origin:    shot.Origin,
				Direction: shot.Direction,
				Hit:       shot.Result.Hit,
				HitPoint:  shot.Result.Point,
				HitTag:    shot.Result.Tag,
			})
		case event.RejectCooldown:
			// Held trigger between shots, not worth an event
		default:
			w.Emit(event.EventFireRejected, &event.FireRejectedPayload{Weapon: name, Reason: reason})
		}
	}

	if fired {
		weapon.ApplyRecoil(&actor.Recoil, fc.Config(), dt, w.Rand)
	} else {
		weapon.ResetRecoil(&actor.Recoil, fc.Config(), dt)
	}
}

func (s *WeaponSystem) handleSwitch(w *engine.World, actor *engine.Actor) {
	request := w.Snapshot.Switch
	if request == 0 {
		return
	}

	var (
		prev      *weapon.FireControl
		cancelled bool
		ok        bool
	)
	if request == input.SwitchCycle {
		prev, cancelled, ok = actor.Loadout.Cycle()
	} else {
		prev, cancelled, ok = actor.Loadout.Switch(request - 1)
	}
	if !ok {
		w.Logger.Debug("switch ignored", "slot", request, "weapons", actor.Loadout.Len())
		return
	}

	if cancelled {
		w.Emit(event.EventReloadCancelled, &event.ReloadPayload{Weapon: prev.Config().Name, Ammo: prev.Ammo()})
	}
	next := actor.Weapon()
	w.Emit(event.EventWeaponSwitched, &event.WeaponSwitchedPayload{From: prev.Config().Name, To: next.Config().Name})
	w.Logger.Info("weapon switched", "from", prev.Config().Name, "to", next.Config().Name)
}

// aim returns the eye position and the view direction including recoil
func aim(actor *engine.Actor) (origin, direction vmath.Vec3F) {
	origin = vmath.V3FAdd(actor.Body.Position(), vmath.V3FScale(vmath.Up, parameter.EyeHeight))
	view := vmath.Euler{
		Pitch: actor.Locomotion.XRotation + actor.Recoil.Current.Y,
		Yaw:   actor.Body.Heading() + actor.Recoil.Current.X,
	}
	return origin, view.Forward()
}
