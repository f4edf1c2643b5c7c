package systems

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/vmath"
)

const frame = 1.0 / 60

// Catalog indices of the default set
const (
	roadBlock = 0
	hurdle    = 1
	gate      = 2
	train     = 3
)

// scriptedSource replays fixed draws in a loop
type scriptedSource struct {
	vals []float64
	i    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newRunningWorld(t *testing.T, mutate func(cfg *config.Config)) *engine.World {
	t.Helper()
	cfg := config.Default()
	cfg.Spawn.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}
	w := engine.NewWorld(cfg, obstacle.DefaultCatalog(), vmath.NewFastRand(7), zap.NewNop())
	w.State.Phase = engine.PhaseRunning
	return w
}

// place spawns an obstacle and moves it to distance
func place(w *engine.World, typeIndex, rail int, distance float64) *obstacle.Instance {
	w.Obstacles.Spawn(typeIndex, rail)
	inst := w.Obstacles.At(w.Obstacles.Len() - 1)
	inst.Distance = distance
	return inst
}

func eventsOf(events []event.GameEvent, typ event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}
