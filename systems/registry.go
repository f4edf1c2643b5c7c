// Package systems holds the Running-phase stages of a frame: motion,
// obstacle travel, spawning, collision and scoring.
package systems

import (
	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/engine"
)

// RegisterAll adds every frame system to the session
func RegisterAll(s *engine.Session, cfg *config.Config) {
	s.AddSystem(NewMotionSystem())
	s.AddSystem(NewObstacleSystem())
	s.AddSystem(NewSpawnSystem(cfg))
	s.AddSystem(NewCollisionSystem())
	s.AddSystem(NewScoreSystem())
}
