package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkAndShoot = `
name: walk-and-shoot
steps:
  - ticks: 2
    vertical: 1
    sprint: true
    jump: true
  - ticks: 3
    fire: true
    switch: 2
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(walkAndShoot))
	require.NoError(t, err)

	assert.Equal(t, "walk-and-shoot", s.Name)
	assert.Len(t, s.Steps, 2)
	assert.Equal(t, 5, s.TotalTicks())
}

func TestParseScriptRejectsEmptyStep(t *testing.T) {
	_, err := ParseScript([]byte("steps:\n  - ticks: 0\n"))
	assert.Error(t, err)
}

func TestScriptedSourceReplay(t *testing.T) {
	s, err := ParseScript([]byte(walkAndShoot))
	require.NoError(t, err)
	src := NewScriptedSource(s)

	first := src.Poll()
	assert.Equal(t, 1.0, first.Vertical)
	assert.True(t, first.Sprint)
	assert.True(t, first.Jump)

	second := src.Poll()
	assert.False(t, second.Jump, "jump is an edge")
	assert.True(t, second.Sprint)

	third := src.Poll()
	assert.True(t, third.Fire)
	assert.Equal(t, 2, third.Switch)
	assert.Equal(t, 0.0, third.Vertical)

	fourth := src.Poll()
	assert.True(t, fourth.Fire, "fire repeats while held")
	assert.Equal(t, 0, fourth.Switch)

	src.Poll()
	assert.True(t, src.Done())
	assert.Equal(t, Snapshot{}, src.Poll())
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(walkAndShoot), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalTicks())

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
