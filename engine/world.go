package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/input"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/player"
	"github.com/lixenwraith/surf-scout/vmath"
)

// World holds everything a frame mutates. Single goroutine: the frame loop
// owns it and no locking is done.
type World struct {
	Config    *config.Config
	Obstacles *obstacle.Pool
	Player    *player.Motion
	State     *GameState
	Rand      vmath.Source
	Logger    *zap.Logger

	// Intents are the inputs of the frame in progress
	Intents input.Intents
	Frame   uint64
	RunID   uuid.UUID

	eventQueue *event.EventQueue
	systems    []System
}

// NewWorld creates an idle world; logger may be nil
func NewWorld(cfg *config.Config, catalog *obstacle.Catalog, rng vmath.Source, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		Config:     cfg,
		Obstacles:  obstacle.NewPool(catalog, cfg.SceneFar(), cfg.SceneNear(), cfg.Rails.Width),
		Player:     player.NewMotion(player.ParamsFrom(cfg)),
		State:      NewGameState(cfg),
		Rand:       rng,
		Logger:     logger,
		eventQueue: event.NewEventQueue(parameter.EventQueueSize),
		systems:    make([]System, 0),
	}
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems in priority order. A system that ends the run
// stops the pass so later stages see a frozen state.
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		if w.State.Phase != PhaseRunning {
			return
		}
		system.Update(w, dt)
	}
}

// PushEvent records a game event tagged with the current run and frame
func (w *World) PushEvent(eventType event.EventType, i int, v float64) {
	w.eventQueue.Push(event.GameEvent{
		Type:  eventType,
		RunID: w.RunID,
		Frame: w.Frame,
		Int:   i,
		Value: v,
	})
}

// Events returns the world's event queue
func (w *World) Events() *event.EventQueue {
	return w.eventQueue
}

// EndRun latches game over
func (w *World) EndRun() {
	if w.State.Phase == PhaseRunning {
		w.State.Phase = PhaseGameOver
	}
}
