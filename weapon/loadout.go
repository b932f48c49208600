package weapon

import (
	"log/slog"

	"github.com/lixenwraith/vi-fps/physics"
)

// Loadout holds weapon instances of which exactly one is equipped
// Each instance keeps its own ammo across switches
type Loadout struct {
	weapons  []*FireControl
	equipped int
}

func NewLoadout(weapons ...*FireControl) *Loadout {
	return &Loadout{weapons: weapons}
}

// Equipped returns the active weapon, nil for an empty loadout
func (l *Loadout) Equipped() *FireControl {
	if len(l.weapons) == 0 {
		return nil
	}
	return l.weapons[l.equipped]
}

func (l *Loadout) Len() int                { return len(l.weapons) }
func (l *Loadout) Index() int              { return l.equipped }
func (l *Loadout) Weapons() []*FireControl { return l.weapons }

// Switch equips the weapon at index, cancelling a reload in progress on the previous one
// Returns false for an out-of-range or already equipped index
func (l *Loadout) Switch(index int) (prev *FireControl, reloadCancelled bool, ok bool) {
	if index < 0 || index >= len(l.weapons) || index == l.equipped {
		return nil, false, false
	}
	prev = l.weapons[l.equipped]
	reloadCancelled = prev.CancelReload()
	l.equipped = index
	return prev, reloadCancelled, true
}

// Cycle equips the next weapon, wrapping around
func (l *Loadout) Cycle() (prev *FireControl, reloadCancelled bool, ok bool) {
	if len(l.weapons) < 2 {
		return nil, false, false
	}
	return l.Switch((l.equipped + 1) % len(l.weapons))
}

// BuildLoadout creates one fire control per config, equipping the first
func BuildLoadout(cfgs []Config, raycaster physics.Raycaster, logger *slog.Logger) (*Loadout, error) {
	weapons := make([]*FireControl, 0, len(cfgs))
	for i := range cfgs {
		cfg := &cfgs[i]
		effect, err := NewEffect(cfg, raycaster)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, NewFireControl(cfg, effect, logger))
	}
	return NewLoadout(weapons...), nil
}
