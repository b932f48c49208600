package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is linear gain applied to every clip
	AudioMasterVolume = 0.6
)

// Footstep clip shaping, variants detune by FootstepDetuneStep per index
const (
	FootstepDuration   = 90 * time.Millisecond
	FootstepAttack     = 4 * time.Millisecond
	FootstepRelease    = 70 * time.Millisecond
	FootstepDetuneStep = 0.08
	FootstepVariants   = 3
)

// Gunshot
const (
	GunshotDuration = 160 * time.Millisecond
	GunshotAttack   = 1 * time.Millisecond
	GunshotRelease  = 140 * time.Millisecond
)

// Dry fire click
const (
	DryFireDuration = 30 * time.Millisecond
	DryFireAttack   = 1 * time.Millisecond
	DryFireRelease  = 20 * time.Millisecond
)

// Reload and switch cues
const (
	ReloadNoteDuration = 70 * time.Millisecond
	ReloadNoteAttack   = 5 * time.Millisecond
	ReloadNoteRelease  = 40 * time.Millisecond
	SwitchDuration     = 60 * time.Millisecond
	ImpactDuration     = 120 * time.Millisecond
)
