package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSceneMatchesCamera(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 40.0, cfg.SceneFar())
	assert.Equal(t, -10.0, cfg.SceneNear())
	assert.Equal(t, 50.0, cfg.TunnelLength())
	assert.Equal(t, 6.5, cfg.TunnelWidth())
}

func TestJumpProfileArc(t *testing.T) {
	p := JumpProfile{Height: 1.5, Gravity: 15}
	v := p.Velocity()
	assert.InDelta(t, 1.5, v*v/(2*15), 1e-12)
	assert.InDelta(t, 2*v/15, p.Airtime(), 1e-12)
}

func TestParseOverlaysDefaults(t *testing.T) {
	src := `
seed: 99
speed:
  base: 15
session:
  max_lives: 1
  invulnerable: 1500ms
spawn:
  trial: legacy
`
	cfg, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 15.0, cfg.Speed.Base)
	assert.Equal(t, 1, cfg.Session.MaxLives)
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.Invulnerable)
	assert.Equal(t, "legacy", cfg.Spawn.Trial)
	// Untouched sections keep defaults
	assert.Equal(t, 2.0, cfg.Rails.Width)
	assert.True(t, cfg.Spawn.Enabled)
}

func TestParseEmptyInputIsDefault(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("speeed:\n  base: 3\n"))
	require.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Rails.Width = 0
	cfg.Session.DifficultyMin = 5
	cfg.Session.DifficultyMax = 2
	cfg.Spawn.Trial = "modulo"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "rails.width")
	assert.Contains(t, msg, "difficulty range")
	assert.Contains(t, msg, "spawn.trial")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rails:\n  width: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Rails.Width)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Rails.Width)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRNGSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 12
	assert.Equal(t, uint64(12), cfg.RNGSeed())

	cfg.SeedPhrase = "tunnel run"
	assert.Equal(t, xxhash.Sum64String("tunnel run"), cfg.RNGSeed())
}

func TestClampDifficulty(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.ClampDifficulty(-4))
	assert.Equal(t, 10, cfg.ClampDifficulty(42))
	assert.Equal(t, 3, cfg.ClampDifficulty(3))
}
