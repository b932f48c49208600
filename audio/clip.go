package audio

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-fps/parameter"
)

// Clip names a sound. Variants append an index: "grass_2"
type Clip string

const (
	ClipGunshot    Clip = "gunshot"
	ClipDryFire    Clip = "dry_fire"
	ClipReload     Clip = "reload"
	ClipReloadDone Clip = "reload_done"
	ClipSwitch     Clip = "switch"
	ClipImpact     Clip = "impact"
	ClipJump       Clip = "jump"
)

// Footstep clip families, one per ground material
const (
	ClipGrass  Clip = "grass"
	ClipGravel Clip = "gravel"
	ClipGround Clip = "ground"
)

// Family strips a trailing variant index
func (c Clip) Family() Clip {
	name := string(c)
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return c
	}
	if _, err := strconv.Atoi(name[i+1:]); err != nil {
		return c
	}
	return Clip(name[:i])
}

// Variant returns the trailing index, 0 when absent
func (c Clip) Variant() int {
	name := string(c)
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return 0
	}
	return n
}

// Variants expands a family into numbered clips 1..n
func Variants(family Clip, n int) []Clip {
	clips := make([]Clip, n)
	for i := range clips {
		clips[i] = Clip(string(family) + "_" + strconv.Itoa(i+1))
	}
	return clips
}

// DefaultFootstepClips maps ground material tags to their clip sets
func DefaultFootstepClips() map[string][]Clip {
	return map[string][]Clip{
		parameter.MaterialGrass:  Variants(ClipGrass, parameter.FootstepVariants),
		parameter.MaterialGravel: Variants(ClipGravel, parameter.FootstepVariants),
		parameter.MaterialGround: Variants(ClipGround, parameter.FootstepVariants),
	}
}
