package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSaw
	WaveNoise
)

// oscillator generates raw waves for shapes the generators package lacks
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a finite oscillator, seed only affects noise
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, seed uint64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(seed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Range(-1, 1)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// lowPass is a one-pole smoothing filter, alpha in (0, 1], lower is darker
type lowPass struct {
	streamer beep.Streamer
	alpha    float64
	prev     [2]float64
}

func newLowPass(s beep.Streamer, alpha float64) beep.Streamer {
	return &lowPass{streamer: s, alpha: vmath.Clamp(alpha, 0.01, 1)}
}

func (f *lowPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			f.prev[ch] += f.alpha * (samples[i][ch] - f.prev[ch])
			samples[i][ch] = f.prev[ch]
		}
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.streamer.Err() }

// envelope applies linear attack and release over a fixed length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s and ends it after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.totalSamples - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain, zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a sine of fixed length
func tone(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist
		return newVolume(NewOscillator(0, duration, WaveNoise, rate, 1), 0)
	}
	return beep.Take(rate.N(duration), sine)
}

// detune returns the pitch factor of a variant
func detune(variant int) float64 {
	if variant <= 1 {
		return 1
	}
	return 1 + float64(variant-1)*parameter.FootstepDetuneStep
}

// Synthesize builds the streamer for a clip at unity gain
// Unknown families report false
func Synthesize(clip Clip, rate beep.SampleRate) (beep.Streamer, bool) {
	family := clip.Family()
	variant := clip.Variant()
	pitch := detune(variant)
	seed := uint64(variant) + 1

	switch family {
	case ClipGrass:
		noise := NewOscillator(0, parameter.FootstepDuration, WaveNoise, rate, seed)
		soft := newLowPass(noise, 0.12*pitch)
		return NewEnvelope(soft, parameter.FootstepDuration, parameter.FootstepAttack, parameter.FootstepRelease, rate), true

	case ClipGravel:
		noise := NewOscillator(0, parameter.FootstepDuration, WaveNoise, rate, seed)
		crunch := NewOscillator(180*pitch, parameter.FootstepDuration, WaveSquare, rate, seed)
		mixed := beep.Mix(newVolume(newLowPass(noise, 0.6), 0.8), newVolume(crunch, 0.15))
		return NewEnvelope(mixed, parameter.FootstepDuration, parameter.FootstepAttack, parameter.FootstepRelease, rate), true

	case ClipGround:
		thud := tone(rate, 90*pitch, parameter.FootstepDuration)
		dust := newLowPass(NewOscillator(0, parameter.FootstepDuration, WaveNoise, rate, seed), 0.05)
		mixed := beep.Mix(newVolume(thud, 0.7), newVolume(dust, 0.4))
		return NewEnvelope(mixed, parameter.FootstepDuration, parameter.FootstepAttack, parameter.FootstepRelease, rate), true

	case ClipGunshot:
		blast := NewOscillator(0, parameter.GunshotDuration, WaveNoise, rate, seed)
		body := tone(rate, 70, parameter.GunshotDuration)
		mixed := beep.Mix(newVolume(blast, 0.8), newVolume(body, 0.5))
		return NewEnvelope(mixed, parameter.GunshotDuration, parameter.GunshotAttack, parameter.GunshotRelease, rate), true

	case ClipDryFire:
		click := NewOscillator(1200, parameter.DryFireDuration, WaveSquare, rate, seed)
		return NewEnvelope(newVolume(click, 0.4), parameter.DryFireDuration, parameter.DryFireAttack, parameter.DryFireRelease, rate), true

	case ClipReload:
		n1 := NewEnvelope(tone(rate, 330, parameter.ReloadNoteDuration), parameter.ReloadNoteDuration, parameter.ReloadNoteAttack, parameter.ReloadNoteRelease, rate)
		n2 := NewEnvelope(tone(rate, 247, parameter.ReloadNoteDuration), parameter.ReloadNoteDuration, parameter.ReloadNoteAttack, parameter.ReloadNoteRelease, rate)
		return beep.Seq(n1, n2), true

	case ClipReloadDone:
		n1 := NewEnvelope(tone(rate, 494, parameter.ReloadNoteDuration), parameter.ReloadNoteDuration, parameter.ReloadNoteAttack, parameter.ReloadNoteRelease, rate)
		n2 := NewEnvelope(tone(rate, 659, parameter.ReloadNoteDuration), parameter.ReloadNoteDuration, parameter.ReloadNoteAttack, parameter.ReloadNoteRelease, rate)
		return beep.Seq(n1, n2), true

	case ClipSwitch:
		saw := NewOscillator(220, parameter.SwitchDuration, WaveSaw, rate, seed)
		return NewEnvelope(newVolume(saw, 0.3), parameter.SwitchDuration, parameter.DryFireAttack, parameter.SwitchDuration/2, rate), true

	case ClipImpact:
		hit := newLowPass(NewOscillator(0, parameter.ImpactDuration, WaveNoise, rate, seed), 0.3)
		return NewEnvelope(hit, parameter.ImpactDuration, parameter.GunshotAttack, parameter.ImpactDuration, rate), true

	case ClipJump:
		return NewEnvelope(tone(rate, 140, parameter.SwitchDuration), parameter.SwitchDuration, parameter.FootstepAttack, parameter.SwitchDuration/2, rate), true
	}
	return nil, false
}
