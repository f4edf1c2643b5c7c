package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/input"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/vmath"
)

const frameMs = 1000.0 / 60

// newScenario starts a run at difficulty 1 and speed 15 with spawning off,
// then places one road block at the far boundary on the center rail
func newScenario(t *testing.T, lives int) *engine.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Spawn.Enabled = false
	cfg.Speed.Base = 15
	cfg.Session.DifficultyInitial = 1
	cfg.Session.MaxLives = lives
	require.NoError(t, cfg.Validate())

	s := engine.NewSession(cfg, obstacle.DefaultCatalog(), vmath.NewFastRand(3), zap.NewNop())
	RegisterAll(s, cfg)
	s.Frame(0, 0, input.Intents{Start: true})
	require.Equal(t, engine.PhaseRunning, s.Phase())

	w := s.World()
	require.Equal(t, 15.0, w.State.Speed)
	require.Equal(t, 1, w.State.Difficulty)
	w.Obstacles.Spawn(roadBlock, 0)
	s.DrainEvents()
	return s
}

func TestScenarioGroundHitWithLivesToSpare(t *testing.T) {
	s := newScenario(t, 3)
	w := s.World()
	elapsed := 0.0

	for w.Obstacles.Len() > 0 && w.Obstacles.At(0).Distance > 0 {
		elapsed += frameMs
		s.Frame(elapsed, frameMs, input.Intents{})
	}

	hits := eventsOf(s.DrainEvents(), event.EventPlayerHit)
	require.Len(t, hits, 1)
	assert.Equal(t, 2, w.State.Lives)
	assert.True(t, w.State.IsInvulnerable())
	assert.Equal(t, engine.PhaseRunning, s.Phase())

	// Let the obstacle pass out of view; no further damage
	for i := 0; i < 120; i++ {
		elapsed += frameMs
		s.Frame(elapsed, frameMs, input.Intents{})
	}
	assert.Empty(t, eventsOf(s.DrainEvents(), event.EventPlayerHit))
	assert.Equal(t, 2, w.State.Lives)
	assert.Equal(t, 0, w.Obstacles.Len())
	assert.Equal(t, engine.PhaseRunning, s.Phase())
}

func TestScenarioLastLifeEndsRunAndFreezesScore(t *testing.T) {
	s := newScenario(t, 1)
	w := s.World()
	elapsed := 0.0

	for s.Phase() == engine.PhaseRunning && elapsed < 10_000 {
		elapsed += frameMs
		s.Frame(elapsed, frameMs, input.Intents{})
	}
	require.Equal(t, engine.PhaseGameOver, s.Phase())
	assert.Equal(t, 0, w.State.Lives)

	events := s.DrainEvents()
	assert.Len(t, eventsOf(events, event.EventPlayerHit), 1)
	over := eventsOf(events, event.EventGameOver)
	require.Len(t, over, 1)

	score := w.State.Score
	assert.Greater(t, score, 0.0)
	assert.Equal(t, score, over[0].Value)
	for i := 0; i < 60; i++ {
		elapsed += frameMs
		s.Frame(elapsed, frameMs, input.Intents{JumpHigh: true, SpeedToggle: true})
	}
	assert.Equal(t, score, w.State.Score)
	assert.Equal(t, engine.PhaseGameOver, s.Phase())
}

// TestDeterministicReplay runs two sessions on the same seed, delta sequence
// and intents and expects identical outcomes
func TestDeterministicReplay(t *testing.T) {
	run := func() (float64, int, []obstacle.Instance, engine.Phase) {
		cfg := config.Default()
		cfg.Session.MaxLives = 100
		s := engine.NewSession(cfg, obstacle.DefaultCatalog(), vmath.NewFastRand(99), zap.NewNop())
		RegisterAll(s, cfg)

		script := vmath.NewFastRand(5)
		elapsed := 0.0
		s.Frame(elapsed, 0, input.Intents{Start: true})
		for i := 0; i < 1500; i++ {
			delta := 5 + 30*script.Float64()
			elapsed += delta
			var in input.Intents
			switch script.Intn(40) {
			case 0:
				in.JumpHigh = true
			case 1:
				in.MoveLeft = true
			case 2:
				in.MoveRight = true
			case 3:
				in.DuckHeld = true
			case 4:
				in.SpeedToggle = true
			}
			s.Frame(elapsed, delta, in)
		}

		w := s.World()
		insts := make([]obstacle.Instance, w.Obstacles.Len())
		for i := range insts {
			insts[i] = *w.Obstacles.At(i)
		}
		return w.State.Score, w.State.Lives, insts, s.Phase()
	}

	score1, lives1, pool1, phase1 := run()
	score2, lives2, pool2, phase2 := run()

	assert.Equal(t, score1, score2)
	assert.Equal(t, lives1, lives2)
	assert.Equal(t, pool1, pool2)
	assert.Equal(t, phase1, phase2)
	assert.Greater(t, score1, 0.0)
}
