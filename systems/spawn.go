package systems

import (
	"math"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/vmath"
)

// TrialFunc decides from a uniform draw r whether a spawn happens this frame
type TrialFunc func(r, rate, dt float64) bool

// BernoulliTrial succeeds with probability rate*dt
func BernoulliTrial(r, rate, dt float64) bool {
	p := vmath.Clamp(rate*dt, 0, 1)
	return r < p
}

// LegacyTrial reproduces the frames-per-object modulo test: with
// n = floor(1/(rate*dt)), succeed when floor(r*n) mod n equals floor(n/2).
// Never succeeds when n < 1, i.e. when more than one spawn per frame is due.
func LegacyTrial(r, rate, dt float64) bool {
	if rate*dt <= 0 {
		return false
	}
	n := math.Floor(1 / (rate * dt))
	if n < 1 || math.IsInf(n, 0) {
		return false
	}
	return math.Mod(math.Floor(r*n), n) == math.Floor(n/2)
}

// SpawnRate is the expected obstacles per second at a difficulty
func SpawnRate(difficulty int, tunnelLength, baseSpeed float64) float64 {
	return float64(difficulty+parameter.DifficultyOffset) / tunnelLength * baseSpeed
}

// MinSpacing is the least same-rail gap allowed between obstacle faces
func MinSpacing(difficulty int, tunnelLength float64) float64 {
	return tunnelLength / float64(difficulty+parameter.DifficultyOffset)
}

// SpacingClear reports whether a new instance of type typeIndex spawned at
// the far boundary on rail keeps at least spacing to every same-rail instance
func SpacingClear(pool *obstacle.Pool, typeIndex, rail int, spacing float64) bool {
	cat := pool.Catalog()
	nearFace := pool.Far() - cat.Type(typeIndex).NearExtent()
	for i := 0; i < pool.Len(); i++ {
		inst := pool.At(i)
		if inst.Rail != rail {
			continue
		}
		farFace := inst.Distance + cat.Type(inst.TypeIndex).FarExtent()
		if nearFace-farFace < spacing {
			return false
		}
	}
	return true
}

// SpawnSystem proposes at most one obstacle per frame
type SpawnSystem struct {
	enabled      bool
	maxObstacles int
	trial        TrialFunc
}

func NewSpawnSystem(cfg *config.Config) *SpawnSystem {
	trial := BernoulliTrial
	if cfg.Spawn.Trial == parameter.SpawnTrialLegacy {
		trial = LegacyTrial
	}
	return &SpawnSystem{
		enabled:      cfg.Spawn.Enabled,
		maxObstacles: cfg.Spawn.MaxObstacles,
		trial:        trial,
	}
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update draws the trial, then a rail and a type, and spawns unless the
// rail is still too crowded near the far boundary
func (s *SpawnSystem) Update(w *engine.World, dt float64) {
	if !s.enabled || dt <= 0 {
		return
	}
	pool := w.Obstacles
	if s.maxObstacles > 0 && pool.Len() >= s.maxObstacles {
		return
	}

	cfg := w.Config
	d := w.State.Difficulty
	length := cfg.TunnelLength()
	if !s.trial(vmath.Unit(w.Rand.Float64()), SpawnRate(d, length, cfg.Speed.Base), dt) {
		return
	}

	rail := parameter.RailMin + vmath.Pick(w.Rand, parameter.RailCount)
	typeIndex := vmath.Pick(w.Rand, pool.Catalog().Len())
	if !SpacingClear(pool, typeIndex, rail, MinSpacing(d, length)) {
		return
	}

	inst := pool.Spawn(typeIndex, rail)
	w.PushEvent(event.EventObstacleSpawned, inst.Rail, float64(inst.TypeIndex))
}
