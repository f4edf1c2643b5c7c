package systems

import (
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/vmath"
)

// ScoreSystem eases travel speed and integrates distance into score
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

func (s *ScoreSystem) Update(w *engine.World, dt float64) {
	gs := w.State
	cfg := w.Config

	if w.Intents.SpeedToggle {
		gs.Sprint = !gs.Sprint
	}
	gs.Speed = vmath.ApproachExp(gs.Speed, gs.TargetSpeed(), cfg.Speed.EaseTau, dt)

	step := gs.Speed * dt
	gs.Travelled += step
	gs.Score += step * gs.Multiplier() * cfg.Session.ScorePerUnit
	gs.RunTime += dt
}
