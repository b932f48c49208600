package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/weapon"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// MinTickRate is the slowest rate whose step World.Tick applies uncapped
const MinTickRate = int(time.Second / parameter.MaxTickDelta)

// Input smoothing modes
const (
	// SmoothingReference halves raw input every tick, frame-rate dependent
	SmoothingReference = "reference"
	// SmoothingExponential converges at a fixed rate per second
	SmoothingExponential = "exponential"
)

// Config holds everything needed to assemble a world
type Config struct {
	Tick     TickConfig     `yaml:"tick"`
	Player   PlayerConfig   `yaml:"player"`
	Bob      BobConfig      `yaml:"bob"`
	Footstep FootstepConfig `yaml:"footstep"`
	Arena    ArenaConfig    `yaml:"arena"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`

	// WeaponCatalog is an optional file of extra weapons, relative to the config file
	WeaponCatalog string `yaml:"weapon_catalog"`

	// Weapons is decoded separately so each entry overlays weapon defaults
	Weapons []weapon.Config `yaml:"-"`

	// Keys overrides terminal bindings: key name to action name
	Keys map[string]string `yaml:"keys"`

	// Seed drives recoil and footstep clip selection
	Seed uint64 `yaml:"seed"`
}

// TickConfig sets the fixed simulation rate
type TickConfig struct {
	RateHz int `yaml:"rate_hz"`
}

// PlayerConfig is the locomotion and look tuning
type PlayerConfig struct {
	MoveSpeed             float64 `yaml:"move_speed"`
	SprintSpeedMultiplier float64 `yaml:"sprint_speed_multiplier"`
	SprintTransitSpeed    float64 `yaml:"sprint_transit_speed"`
	Gravity               float64 `yaml:"gravity"`
	JumpHeight            float64 `yaml:"jump_height"`
	MouseSensitivity      float64 `yaml:"mouse_sensitivity"`
	InputSmoothing        float64 `yaml:"input_smoothing"`
	SmoothingMode         string  `yaml:"smoothing_mode"`

	// SmoothingRate is the per-second convergence rate of exponential smoothing
	SmoothingRate float64 `yaml:"smoothing_rate"`
	PitchLimit    float64 `yaml:"pitch_limit"`
}

// BobConfig is the camera bob tuning
type BobConfig struct {
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Smoothing float64 `yaml:"smoothing"`
}

// FootstepConfig is the footstep cadence and clip sets per ground material
type FootstepConfig struct {
	StepInterval float64                 `yaml:"step_interval"`
	RayDistance  float64                 `yaml:"ray_distance"`
	Clips        map[string][]audio.Clip `yaml:"clips"`
}

// ArenaConfig describes the flat test terrain
type ArenaConfig struct {
	HalfExtent float64        `yaml:"half_extent"`
	Spawn      [2]float64     `yaml:"spawn"`
	Regions    []RegionConfig `yaml:"regions"`
	Targets    []TargetConfig `yaml:"targets"`
}

// RegionConfig is a material rectangle on the ground plane
type RegionConfig struct {
	MinX     float64 `yaml:"min_x"`
	MinZ     float64 `yaml:"min_z"`
	MaxX     float64 `yaml:"max_x"`
	MaxZ     float64 `yaml:"max_z"`
	Material string  `yaml:"material"`
}

// TargetConfig is a box standing on the ground, centered at (X, Z)
type TargetConfig struct {
	Tag    string  `yaml:"tag"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height"`
}

// AudioConfig controls speaker output
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig controls slog output
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a config that runs without a file
func Default() Config {
	return Config{
		Tick: TickConfig{RateHz: parameter.DefaultTickRate},
		Player: PlayerConfig{
			MoveSpeed:             parameter.MoveSpeed,
			SprintSpeedMultiplier: parameter.SprintSpeedMultiplier,
			SprintTransitSpeed:    parameter.SprintTransitSpeed,
			Gravity:               parameter.Gravity,
			JumpHeight:            parameter.JumpHeight,
			MouseSensitivity:      parameter.MouseSensitivity,
			InputSmoothing:        parameter.InputSmoothingFactor,
			SmoothingMode:         SmoothingReference,
			SmoothingRate:         parameter.InputSmoothingRate,
			PitchLimit:            parameter.PitchLimit,
		},
		Bob: BobConfig{
			Frequency: parameter.BobFrequency,
			Amplitude: parameter.BobAmplitude,
			Smoothing: parameter.BobSmoothing,
		},
		Footstep: FootstepConfig{
			StepInterval: parameter.StepInterval,
			RayDistance:  parameter.StepRayDistance,
			Clips:        audio.DefaultFootstepClips(),
		},
		Arena: ArenaConfig{
			HalfExtent: parameter.ArenaHalfExtent,
		},
		Audio:   AudioConfig{Enabled: true, Volume: parameter.AudioMasterVolume},
		Log:     LogConfig{Level: "info"},
		Weapons: []weapon.Config{weapon.DefaultConfig()},
		Seed:    1,
	}
}

// Load reads a YAML config over Default
// A missing file returns defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := cfg.parse(data, filepath.Dir(path)); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default, catalog paths resolve against dir
func Parse(data []byte, dir string) (Config, error) {
	cfg := Default()
	err := cfg.parse(data, dir)
	return cfg, err
}

func (c *Config) parse(data []byte, dir string) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	inline, err := weapon.ParseCatalog(data)
	if err != nil {
		return err
	}
	if len(inline) > 0 {
		c.Weapons = inline
	}

	if c.WeaponCatalog != "" {
		path := c.WeaponCatalog
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		extra, err := weapon.LoadCatalog(path)
		if err != nil {
			return err
		}
		if len(inline) == 0 {
			c.Weapons = nil
		}
		c.Weapons = append(c.Weapons, extra...)
	}

	return c.Validate()
}

// Validate checks ranges the systems rely on
func (c *Config) Validate() error {
	switch {
	case c.Tick.RateHz < MinTickRate:
		return fmt.Errorf("%w: tick.rate_hz must be at least %d, got %d", ErrInvalid, MinTickRate, c.Tick.RateHz)
	case c.Player.MoveSpeed < 0:
		return fmt.Errorf("%w: player.move_speed must not be negative", ErrInvalid)
	case c.Player.SprintSpeedMultiplier <= 0:
		return fmt.Errorf("%w: player.sprint_speed_multiplier must be positive", ErrInvalid)
	case c.Player.SprintTransitSpeed < 0:
		return fmt.Errorf("%w: player.sprint_transit_speed must not be negative", ErrInvalid)
	case c.Player.Gravity <= 0:
		return fmt.Errorf("%w: player.gravity must be positive", ErrInvalid)
	case c.Player.JumpHeight < 0:
		return fmt.Errorf("%w: player.jump_height must not be negative", ErrInvalid)
	case c.Player.PitchLimit <= 0 || c.Player.PitchLimit > 90:
		return fmt.Errorf("%w: player.pitch_limit must be in (0, 90]", ErrInvalid)
	case c.Footstep.StepInterval <= 0:
		return fmt.Errorf("%w: footstep.step_interval must be positive", ErrInvalid)
	case c.Footstep.RayDistance <= 0:
		return fmt.Errorf("%w: footstep.ray_distance must be positive", ErrInvalid)
	case c.Bob.Smoothing < 0:
		return fmt.Errorf("%w: bob.smoothing must not be negative", ErrInvalid)
	case c.Arena.HalfExtent <= 0:
		return fmt.Errorf("%w: arena.half_extent must be positive", ErrInvalid)
	case len(c.Weapons) == 0:
		return fmt.Errorf("%w: no weapons", ErrInvalid)
	}

	switch c.Player.SmoothingMode {
	case SmoothingReference:
	case SmoothingExponential:
		if c.Player.SmoothingRate <= 0 {
			return fmt.Errorf("%w: player.smoothing_rate must be positive for exponential smoothing", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown player.smoothing_mode %q", ErrInvalid, c.Player.SmoothingMode)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	for i := range c.Weapons {
		if err := c.Weapons[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TickInterval is the fixed simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Tick.RateHz)
}

// SlogLevel parses Level: debug, info, warn, error
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
