package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReplaySampleScript(t *testing.T) {
	cfg, err := config.Load("../../config/vi-fps.yaml")
	require.NoError(t, err)

	script, err := input.LoadScript("walk_and_shoot.yaml")
	require.NoError(t, err)

	result, err := replay(&cfg, script, quietLogger(), true)
	require.NoError(t, err)

	assert.Equal(t, script.TotalTicks(), result.Ticks)
	assert.Equal(t, 1, result.Events[event.EventJumped])
	assert.Equal(t, 1, result.Events[event.EventReloadStarted])
	assert.Equal(t, 1, result.Events[event.EventReloadCompleted])
	assert.Equal(t, 1, result.Events[event.EventWeaponSwitched])
	assert.GreaterOrEqual(t, result.Events[event.EventFootstep], 4)
	assert.Equal(t, "launcher", result.Weapon)
	assert.Equal(t, 3.0, result.Ammo)
	// Spawned at z=-10 facing +Z
	assert.Greater(t, result.Position.Z, -10.0)

	var gunshots int
	for _, c := range result.Clips {
		if c == audio.ClipGunshot {
			gunshots++
		}
	}
	assert.Equal(t, result.Events[event.EventShot], gunshots)
}

func TestReplayIsDeterministic(t *testing.T) {
	script := &input.Script{Steps: []input.Step{
		{Ticks: 30, Vertical: 1, Horizontal: 0.5, MouseX: 0.3},
		{Ticks: 20, Fire: true},
	}}

	cfg := config.Default()
	first, err := replay(&cfg, script, quietLogger(), false)
	require.NoError(t, err)

	cfg = config.Default()
	second, err := replay(&cfg, script, quietLogger(), false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 50, first.Ticks)
}
