package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step holds one input state for a number of ticks
// Jump and Switch fire on the first tick only, Fire and Reload repeat every tick
type Step struct {
	Ticks      int     `yaml:"ticks"`
	Vertical   float64 `yaml:"vertical"`
	Horizontal float64 `yaml:"horizontal"`
	MouseX     float64 `yaml:"mouse_x"`
	MouseY     float64 `yaml:"mouse_y"`
	Sprint     bool    `yaml:"sprint"`
	Jump       bool    `yaml:"jump"`
	Fire       bool    `yaml:"fire"`
	Reload     bool    `yaml:"reload"`
	Switch     int     `yaml:"switch"`
}

// Script is a recorded input sequence
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// TotalTicks is the script length
func (s *Script) TotalTicks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// ParseScript decodes a YAML input script
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing input script: %w", err)
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return nil, fmt.Errorf("input script step %d: ticks must be positive, got %d", i, st.Ticks)
		}
	}
	return &s, nil
}

// LoadScript reads a YAML input script
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ScriptedSource replays a Script one tick per Poll, then reports no input
type ScriptedSource struct {
	script *Script
	step   int
	tick   int
}

func NewScriptedSource(script *Script) *ScriptedSource {
	return &ScriptedSource{script: script}
}

// Done reports whether every step has been consumed
func (s *ScriptedSource) Done() bool {
	return s.step >= len(s.script.Steps)
}

func (s *ScriptedSource) Poll() Snapshot {
	if s.Done() {
		return Snapshot{}
	}

	st := s.script.Steps[s.step]
	first := s.tick == 0
	snap := Snapshot{
		Vertical:   st.Vertical,
		Horizontal: st.Horizontal,
		MouseX:     st.MouseX,
		MouseY:     st.MouseY,
		Sprint:     st.Sprint,
		Jump:       st.Jump && first,
		Fire:       st.Fire,
		Reload:     st.Reload,
	}
	if first {
		snap.Switch = st.Switch
	}

	s.tick++
	if s.tick >= st.Ticks {
		s.step++
		s.tick = 0
	}
	return snap
}
