package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-fps/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// drainLen streams s to exhaustion and returns the sample count and peak amplitude
func drainLen(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := buf[j][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestSynthesizeKnownClips(t *testing.T) {
	clips := []Clip{
		"grass_1", "gravel_2", "ground_3",
		ClipGunshot, ClipDryFire, ClipReload, ClipReloadDone,
		ClipSwitch, ClipImpact, ClipJump,
	}
	for _, clip := range clips {
		t.Run(string(clip), func(t *testing.T) {
			s, ok := Synthesize(clip, testRate)
			require.True(t, ok)

			n, peak := drainLen(s)
			assert.Positive(t, n)
			assert.Positive(t, peak, "clip is audible")
		})
	}
}

func TestSynthesizeLengths(t *testing.T) {
	s, _ := Synthesize("grass_1", testRate)
	n, _ := drainLen(s)
	assert.Equal(t, testRate.N(parameter.FootstepDuration), n)

	s, _ = Synthesize(ClipReload, testRate)
	n, _ = drainLen(s)
	assert.Equal(t, 2*testRate.N(parameter.ReloadNoteDuration), n)
}

func TestSynthesizeUnknownClip(t *testing.T) {
	_, ok := Synthesize("laser", testRate)
	assert.False(t, ok)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	s := NewEnvelope(NewOscillator(440, parameter.GunshotDuration, WaveSquare, testRate, 1),
		parameter.GunshotDuration, parameter.GunshotDuration/2, 0, testRate)

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 4, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.Less(t, buf[3][0], 0.01)
}

func TestNoiseDeterministicPerSeed(t *testing.T) {
	a := NewOscillator(0, parameter.FootstepDuration, WaveNoise, testRate, 7)
	b := NewOscillator(0, parameter.FootstepDuration, WaveNoise, testRate, 7)

	bufA := make([][2]float64, 64)
	bufB := make([][2]float64, 64)
	a.Stream(bufA)
	b.Stream(bufB)
	assert.Equal(t, bufA, bufB)
}
