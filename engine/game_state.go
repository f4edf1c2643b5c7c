package engine

import (
	"math"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/invariant"
)

// GameState is the session's scoring and progression state. Owned by the
// frame loop; systems mutate it only inside World.Update.
type GameState struct {
	Phase Phase

	Lives      int
	Score      float64
	Difficulty int

	// Speed eases toward the normal or sprint target
	Speed  float64
	Sprint bool

	// Invulnerable is the remaining window in seconds; InvulnerableFor is the
	// length of the current window, used to phase the flash
	Invulnerable    float64
	InvulnerableFor float64

	// Travelled is the distance covered this run; drives rail scrolling
	Travelled float64
	// RunTime is Running seconds this run, pauses excluded
	RunTime float64

	cfg *config.Config
}

// NewGameState creates an idle state with a full reset applied
func NewGameState(cfg *config.Config) *GameState {
	gs := &GameState{cfg: cfg}
	gs.Reset()
	gs.Phase = PhaseIdle
	return gs
}

// Reset restores lives, score and speed. Difficulty returns to the
// configured initial level. Phase is left to the caller.
func (gs *GameState) Reset() {
	gs.Lives = gs.cfg.Session.MaxLives
	gs.Score = 0
	gs.Difficulty = gs.cfg.ClampDifficulty(gs.cfg.Session.DifficultyInitial)
	gs.Speed = gs.cfg.Speed.Base
	gs.Sprint = false
	gs.Invulnerable = 0
	gs.InvulnerableFor = 0
	gs.Travelled = 0
	gs.RunTime = 0
}

// TargetSpeed is the speed the easing converges to
func (gs *GameState) TargetSpeed() float64 {
	if gs.Sprint {
		return gs.cfg.Speed.Base * gs.cfg.Speed.SprintMultiplier
	}
	return gs.cfg.Speed.Base
}

// Multiplier scales score with difficulty: 1 at min, 2 at max
func (gs *GameState) Multiplier() float64 {
	lo, hi := gs.cfg.Session.DifficultyMin, gs.cfg.Session.DifficultyMax
	if hi == lo {
		return 1
	}
	return 1 + float64(gs.Difficulty-lo)/float64(hi-lo)
}

// AdjustDifficulty moves the level by delta within range; reports a change
func (gs *GameState) AdjustDifficulty(delta int) bool {
	next := gs.cfg.ClampDifficulty(gs.Difficulty + delta)
	if next == gs.Difficulty {
		return false
	}
	gs.Difficulty = next
	return true
}

// IsInvulnerable reports whether collisions are currently ignored
func (gs *GameState) IsInvulnerable() bool {
	return gs.Invulnerable > 0
}

// Damage removes one life. Returns true when no lives remain; otherwise the
// invulnerability window opens.
func (gs *GameState) Damage() bool {
	if !invariant.Check(gs.Lives > 0, "damage with no lives left") {
		gs.Lives = 0
		return true
	}
	gs.Lives--
	if gs.Lives == 0 {
		return true
	}
	gs.InvulnerableFor = gs.cfg.Session.Invulnerable.Seconds()
	gs.Invulnerable = gs.InvulnerableFor
	return false
}

// Tick counts down the invulnerability window
func (gs *GameState) Tick(dt float64) {
	if gs.Invulnerable > 0 {
		gs.Invulnerable = math.Max(0, gs.Invulnerable-dt)
	}
}

// Refill restores lives to the maximum
func (gs *GameState) Refill() {
	gs.Lives = gs.cfg.Session.MaxLives
}

// Visible reports whether the scout is drawn this frame. While invulnerable
// it alternates hidden/visible every half flash period, starting hidden.
func (gs *GameState) Visible() bool {
	if !gs.IsInvulnerable() {
		return true
	}
	half := gs.cfg.Session.FlashPeriod.Seconds() / 2
	if half <= 0 {
		return true
	}
	since := gs.InvulnerableFor - gs.Invulnerable
	return int(since/half)%2 == 1
}
