package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/vmath"
)

// CollisionSystem resolves player/obstacle contact into damage or game over
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update counts down invulnerability, then disarms every armed obstacle the
// player touches this frame. A roof strike ends the run and outranks ground
// hits; otherwise any ground contact costs one life. Roofs at or below the
// player's height are floors and never contacts.
func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	gs := w.State
	gs.Tick(dt)
	if gs.IsInvulnerable() {
		return
	}

	pool := w.Obstacles
	cat := pool.Catalog()
	pb := w.Player.Bound()
	h := w.Player.CurrH

	var roof, ground *obstacle.Instance
	for i := 0; i < pool.Len(); i++ {
		inst := pool.At(i)
		if !inst.HitZoneActive {
			continue
		}
		typ := cat.Type(inst.TypeIndex)
		if supportLevel(typ, h) || !vmath.BoundsOverlap(pb, pool.Bound(inst)) {
			continue
		}

		inst.HitZoneActive = false
		switch {
		case typ.IsRoof():
			if roof == nil {
				roof = inst
			}
		case ground == nil:
			ground = inst
		}
	}

	switch {
	case roof != nil:
		w.PushEvent(event.EventRoofStrike, roof.Rail, roof.Distance)
		w.Logger.Info("roof strike",
			zap.Stringer("run_id", w.RunID),
			zap.String("obstacle", cat.Type(roof.TypeIndex).Name),
			zap.Int("rail", roof.Rail),
		)
		w.EndRun()

	case ground != nil:
		dead := gs.Damage()
		w.PushEvent(event.EventPlayerHit, gs.Lives, ground.Distance)
		w.Logger.Info("player hit",
			zap.Stringer("run_id", w.RunID),
			zap.String("obstacle", cat.Type(ground.TypeIndex).Name),
			zap.Int("lives", gs.Lives),
		)
		if dead {
			w.EndRun()
		}
	}
}
