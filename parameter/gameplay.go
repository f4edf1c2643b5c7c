package parameter

import "time"

// Lives and damage
const (
	// MaxLives is the number of ground hits survivable plus one
	MaxLives = 3

	// InvulnerableDuration follows every non-lethal hit
	InvulnerableDuration = 2 * time.Second

	// InvulnerableFlashPeriod is one visible/hidden cycle while invulnerable
	InvulnerableFlashPeriod = 200 * time.Millisecond
)

// Difficulty
const (
	DifficultyMin     = 0
	DifficultyMax     = 10
	DifficultyInitial = 1

	// DifficultyOffset is added to the level in spawn rate and spacing formulas
	DifficultyOffset = 5
)

// Speed and score
const (
	// BaseSpeed is the normal travel speed in world units per second
	BaseSpeed = 10.0

	// SprintMultiplier scales BaseSpeed while the speed toggle is on
	SprintMultiplier = 2.0

	// SpeedEaseTau is the smoothing time constant toward the target speed
	SpeedEaseTau = 0.4

	// ScorePerUnit converts travelled distance into score
	ScorePerUnit = 1.0
)

// Spawning
const (
	// MaxObstacles caps live obstacles; 0 disables the cap
	MaxObstacles = 6

	// SpawnTrialBernoulli and SpawnTrialLegacy select the per-frame spawn test
	SpawnTrialBernoulli = "bernoulli"
	SpawnTrialLegacy    = "legacy"
)
