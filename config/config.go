// Package config holds tunable game values, loaded from YAML over the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/surf-scout/parameter"
)

// Config is the complete set of session values
type Config struct {
	Seed       uint64 `yaml:"seed"`
	SeedPhrase string `yaml:"seed_phrase"`

	Camera  CameraConfig  `yaml:"camera"`
	Rails   RailConfig    `yaml:"rails"`
	Jump    JumpConfig    `yaml:"jump"`
	Posture PostureConfig `yaml:"posture"`
	Speed   SpeedConfig   `yaml:"speed"`
	Session SessionConfig `yaml:"session"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Audio   AudioConfig   `yaml:"audio"`
}

// CameraConfig places the camera; scene bounds derive from it
type CameraConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Angle   float64 `yaml:"angle"`
	HalfFOV float64 `yaml:"half_fov"`
}

type RailConfig struct {
	Width       float64 `yaml:"width"`
	SwitchSpeed float64 `yaml:"switch_speed"`
	Stretch     float64 `yaml:"stretch"`
}

// JumpProfile is one jump strength with its paired gravity
type JumpProfile struct {
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"`
}

// Velocity is the launch speed reaching Height under Gravity
func (p JumpProfile) Velocity() float64 {
	return math.Sqrt(2 * p.Gravity * p.Height)
}

// Airtime is the time from launch back to the launch height
func (p JumpProfile) Airtime() float64 {
	return 2 * p.Velocity() / p.Gravity
}

type JumpConfig struct {
	High        JumpProfile `yaml:"high"`
	Low         JumpProfile `yaml:"low"`
	FallGravity float64     `yaml:"fall_gravity"`
}

type PostureConfig struct {
	DuckSpeed     float64 `yaml:"duck_speed"`
	SwaySpeed     float64 `yaml:"sway_speed"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
}

type SpeedConfig struct {
	Base             float64 `yaml:"base"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	EaseTau          float64 `yaml:"ease_tau"`
}

type SessionConfig struct {
	MaxLives          int           `yaml:"max_lives"`
	Invulnerable      time.Duration `yaml:"invulnerable"`
	FlashPeriod       time.Duration `yaml:"flash_period"`
	DifficultyMin     int           `yaml:"difficulty_min"`
	DifficultyMax     int           `yaml:"difficulty_max"`
	DifficultyInitial int           `yaml:"difficulty_initial"`
	ScorePerUnit      float64       `yaml:"score_per_unit"`
	MaxFrameDelta     time.Duration `yaml:"max_frame_delta"`
}

type SpawnConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Trial        string `yaml:"trial"`
	MaxObstacles int    `yaml:"max_obstacles"`
}

// AudioConfig controls event cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the stock game tuning
func Default() *Config {
	return &Config{
		Seed: 1,
		Camera: CameraConfig{
			X:       parameter.CameraX,
			Y:       parameter.CameraY,
			Z:       parameter.CameraZ,
			Angle:   parameter.CameraAngle,
			HalfFOV: parameter.CameraHalfFOV,
		},
		Rails: RailConfig{
			Width:       parameter.RailWidth,
			SwitchSpeed: parameter.RailSwitchSpeed,
			Stretch:     parameter.RailStretch,
		},
		Jump: JumpConfig{
			High:        JumpProfile{Height: parameter.JumpHighHeight, Gravity: parameter.JumpHighGravity},
			Low:         JumpProfile{Height: parameter.JumpLowHeight, Gravity: parameter.JumpLowGravity},
			FallGravity: parameter.FallGravity,
		},
		Posture: PostureConfig{
			DuckSpeed:     parameter.DuckAngularSpeed,
			SwaySpeed:     parameter.SwayAngularSpeed,
			SwayAmplitude: parameter.SwayAmplitude,
		},
		Speed: SpeedConfig{
			Base:             parameter.BaseSpeed,
			SprintMultiplier: parameter.SprintMultiplier,
			EaseTau:          parameter.SpeedEaseTau,
		},
		Session: SessionConfig{
			MaxLives:          parameter.MaxLives,
			Invulnerable:      parameter.InvulnerableDuration,
			FlashPeriod:       parameter.InvulnerableFlashPeriod,
			DifficultyMin:     parameter.DifficultyMin,
			DifficultyMax:     parameter.DifficultyMax,
			DifficultyInitial: parameter.DifficultyInitial,
			ScorePerUnit:      parameter.ScorePerUnit,
			MaxFrameDelta:     parameter.MaxFrameDelta,
		},
		Spawn: SpawnConfig{
			Enabled:      true,
			Trial:        parameter.SpawnTrialBernoulli,
			MaxObstacles: parameter.MaxObstacles,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Camera.Angle > c.Camera.HalfFOV && c.Camera.Angle < math.Pi/2,
		"camera.angle %.3f must be in (half_fov, π/2)", c.Camera.Angle)
	check(c.Camera.Y > 0, "camera.y must be positive")
	check(c.SceneFar() > c.SceneNear(), "scene far %.1f must exceed near %.1f", c.SceneFar(), c.SceneNear())
	check(c.Rails.Width > 0, "rails.width must be positive")
	check(c.Rails.SwitchSpeed > 0, "rails.switch_speed must be positive")
	check(c.Jump.High.Height > 0 && c.Jump.High.Gravity > 0, "jump.high needs positive height and gravity")
	check(c.Jump.Low.Height > 0 && c.Jump.Low.Gravity > 0, "jump.low needs positive height and gravity")
	check(c.Jump.FallGravity > 0, "jump.fall_gravity must be positive")
	check(c.Posture.DuckSpeed > 0, "posture.duck_speed must be positive")
	check(c.Speed.Base > 0, "speed.base must be positive")
	check(c.Speed.SprintMultiplier >= 1, "speed.sprint_multiplier must be >= 1")
	check(c.Speed.EaseTau >= 0, "speed.ease_tau must not be negative")
	check(c.Session.MaxLives > 0, "session.max_lives must be positive")
	check(c.Session.Invulnerable >= 0, "session.invulnerable must not be negative")
	check(c.Session.FlashPeriod > 0, "session.flash_period must be positive")
	check(c.Session.DifficultyMin+parameter.DifficultyOffset > 0,
		"session.difficulty_min must exceed %d", -parameter.DifficultyOffset)
	check(c.Session.DifficultyMin <= c.Session.DifficultyMax, "session difficulty range is empty")
	check(c.Session.MaxFrameDelta > 0, "session.max_frame_delta must be positive")
	check(c.Spawn.Trial == parameter.SpawnTrialBernoulli || c.Spawn.Trial == parameter.SpawnTrialLegacy,
		"spawn.trial %q must be %q or %q", c.Spawn.Trial, parameter.SpawnTrialBernoulli, parameter.SpawnTrialLegacy)
	check(c.Spawn.MaxObstacles >= 0, "spawn.max_obstacles must not be negative")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %.2f must be in [0, 1]", c.Audio.Volume)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SceneFar is the spawn boundary: the farthest visible travel distance
func (c *Config) SceneFar() float64 {
	far := c.Camera.Y/math.Tan(c.Camera.Angle-c.Camera.HalfFOV) - c.Camera.Z
	return math.Ceil(far/parameter.SceneRounding) * parameter.SceneRounding
}

// SceneNear is the despawn boundary behind the player
func (c *Config) SceneNear() float64 {
	return math.Floor(-c.Camera.Z/parameter.SceneRounding) * parameter.SceneRounding
}

func (c *Config) TunnelLength() float64 {
	return c.SceneFar() - c.SceneNear()
}

func (c *Config) TunnelWidth() float64 {
	return parameter.RailCount*c.Rails.Width + parameter.TunnelMargin
}

// RNGSeed returns the seed phrase hash when a phrase is set, else Seed
func (c *Config) RNGSeed() uint64 {
	if c.SeedPhrase != "" {
		return xxhash.Sum64String(c.SeedPhrase)
	}
	return c.Seed
}

// ClampDifficulty restricts d to the configured range
func (c *Config) ClampDifficulty(d int) int {
	if d < c.Session.DifficultyMin {
		return c.Session.DifficultyMin
	}
	if d > c.Session.DifficultyMax {
		return c.Session.DifficultyMax
	}
	return d
}
