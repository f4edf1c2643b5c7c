package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/parameter"
)

// MotionSystem steps the player's state machines against the current floor
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update re-derives the floor from roof obstacles, then steps the player
func (s *MotionSystem) Update(w *engine.World, dt float64) {
	floor, _ := Support(w, w.Player.CurrH)
	r := w.Player.Update(dt, floor, w.Intents)

	if r.Jumped {
		w.PushEvent(event.EventJump, int(r.JumpKind), w.Player.VelY)
	}
	if r.Landed {
		w.PushEvent(event.EventLanded, w.Player.Rail(), w.Player.CurrH)
	}
	if r.Fell {
		w.Logger.Debug("support lost", zap.Float64("height", w.Player.CurrH))
	}
	if r.SwitchStart {
		w.PushEvent(event.EventRailSwitch, r.TargetRail, w.Player.CurrX)
	}
	if r.DuckStart {
		w.PushEvent(event.EventDuck, w.Player.Rail(), 0)
	}
}
