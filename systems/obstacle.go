package systems

import (
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/parameter"
)

// ObstacleSystem moves every live obstacle toward the player and removes
// those that have fully left the view
type ObstacleSystem struct{}

func NewObstacleSystem() *ObstacleSystem {
	return &ObstacleSystem{}
}

func (s *ObstacleSystem) Priority() int {
	return parameter.PriorityObstacle
}

func (s *ObstacleSystem) Update(w *engine.World, dt float64) {
	w.Obstacles.AdvanceAll(dt, w.State.Speed)
	w.Obstacles.Prune()
}
