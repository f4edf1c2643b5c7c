package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/input"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/render"
	"github.com/lixenwraith/surf-scout/vmath"
)

// Session is the frame-driven controller. It owns the world, applies the
// meta intents (start, pause, difficulty, refill) and runs the systems
// while Running.
type Session struct {
	world *World
	log   *zap.Logger

	elapsedMs float64
}

// NewSession creates an idle session; systems are added by the caller
func NewSession(cfg *config.Config, catalog *obstacle.Catalog, rng vmath.Source, logger *zap.Logger) *Session {
	w := NewWorld(cfg, catalog, rng, logger)
	return &Session{world: w, log: w.Logger}
}

// World exposes the simulation state
func (s *Session) World() *World {
	return s.world
}

// AddSystem registers a Running-phase system
func (s *Session) AddSystem(sys System) {
	s.world.AddSystem(sys)
}

// Phase returns the current session phase
func (s *Session) Phase() Phase {
	return s.world.State.Phase
}

// Frame advances the session once. elapsedMs is monotonic session time and
// deltaMs the time since the previous frame; both are untrusted.
func (s *Session) Frame(elapsedMs, deltaMs float64, in input.Intents) {
	w := s.world
	dt := SanitizeDelta(deltaMs, w.Config.Session.MaxFrameDelta)
	if elapsedMs > s.elapsedMs {
		s.elapsedMs = elapsedMs
	}

	w.Frame++
	w.Intents = in

	s.applyMeta(in)

	if w.State.Phase != PhaseRunning {
		return
	}

	w.Update(dt)

	if w.State.Phase == PhaseGameOver {
		w.PushEvent(event.EventGameOver, w.State.Lives, w.State.Score)
		s.log.Info("game over",
			zap.Stringer("run_id", w.RunID),
			zap.Float64("score", w.State.Score),
			zap.Int("lives", w.State.Lives),
			zap.Int("difficulty", w.State.Difficulty),
			zap.Float64("run_time", w.State.RunTime),
		)
	}
}

func (s *Session) applyMeta(in input.Intents) {
	w := s.world
	gs := w.State

	if in.DifficultyInc != in.DifficultyDec {
		delta := 1
		if in.DifficultyDec {
			delta = -1
		}
		if gs.AdjustDifficulty(delta) {
			w.PushEvent(event.EventDifficultyChanged, gs.Difficulty, 0)
			s.log.Debug("difficulty changed", zap.Int("difficulty", gs.Difficulty))
		}
	}

	if in.DebugRefill {
		gs.Refill()
		w.PushEvent(event.EventLivesRefilled, gs.Lives, 0)
		s.log.Debug("lives refilled", zap.Int("lives", gs.Lives))
	}

	switch {
	case in.Start && (gs.Phase == PhaseIdle || gs.Phase == PhaseGameOver):
		s.Start()
	case in.PauseToggle && gs.Phase == PhaseRunning:
		s.setPhase(PhasePaused)
		w.PushEvent(event.EventPaused, 0, gs.Score)
	case in.PauseToggle && gs.Phase == PhasePaused:
		s.setPhase(PhaseRunning)
		w.PushEvent(event.EventResumed, 0, gs.Score)
	}
}

// Start resets the run and enters Running. The difficulty the operator has
// chosen carries over into the new run.
func (s *Session) Start() {
	difficulty := s.world.State.Difficulty
	s.Reset()
	s.world.State.Difficulty = difficulty
	s.setPhase(PhaseRunning)
	s.world.PushEvent(event.EventSessionStart, s.world.State.Difficulty, 0)
	s.log.Info("run started",
		zap.Stringer("run_id", s.world.RunID),
		zap.Int("difficulty", s.world.State.Difficulty),
		zap.Int("lives", s.world.State.Lives),
	)
}

// Reset clears score, lives, difficulty, the obstacle pool and every player
// sub-state, and begins a new run id. The phase is unchanged.
func (s *Session) Reset() {
	w := s.world
	w.State.Reset()
	w.Obstacles.Clear()
	w.Player.Reset()
	w.RunID = uuid.New()
}

func (s *Session) setPhase(to Phase) {
	from := s.world.State.Phase
	if !CanTransition(from, to) {
		s.log.Warn("illegal phase transition", zap.Stringer("from", from), zap.Stringer("to", to))
		return
	}
	s.world.State.Phase = to
	s.log.Debug("phase", zap.Stringer("from", from), zap.Stringer("to", to))
}

// DrainEvents returns the events produced since the last drain
func (s *Session) DrainEvents() []event.GameEvent {
	return s.world.eventQueue.Consume()
}

// Snapshot is the status summary for a HUD
type Snapshot struct {
	Phase      Phase
	RunID      uuid.UUID
	Score      float64
	Lives      int
	MaxLives   int
	Difficulty int
	Speed      float64
	Sprint     bool
	ElapsedMs  float64
}

func (s *Session) Snapshot() Snapshot {
	gs := s.world.State
	return Snapshot{
		Phase:      gs.Phase,
		RunID:      s.world.RunID,
		Score:      gs.Score,
		Lives:      gs.Lives,
		MaxLives:   s.world.Config.Session.MaxLives,
		Difficulty: gs.Difficulty,
		Speed:      gs.Speed,
		Sprint:     gs.Sprint,
		ElapsedMs:  s.elapsedMs,
	}
}

// Render hands every visible entity to sink. Callable in any phase; does not
// touch simulation state.
func (s *Session) Render(sink render.Sink) {
	w := s.world
	cfg := w.Config
	render.Draw(sink, render.Scene{
		Obstacles:    w.Obstacles,
		Player:       w.Player,
		Near:         cfg.SceneNear(),
		Far:          cfg.SceneFar(),
		TunnelWidth:  cfg.TunnelWidth(),
		TunnelHeight: cfg.Camera.Y + parameter.TunnelTopRise,
		RailWidth:    cfg.Rails.Width,
		RailScroll:   render.RailScroll(w.State.Travelled, cfg.Rails.Width, cfg.Rails.Stretch),
		ScoutVisible: w.State.Visible(),
	})
}
