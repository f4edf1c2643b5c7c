package event

import "github.com/google/uuid"

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Session ===

	// EventSessionStart fires when a run begins after reset
	EventSessionStart
	// EventPaused and EventResumed track the pause toggle
	EventPaused
	EventResumed
	// EventGameOver fires once per run; Value = final score
	EventGameOver
	// EventDifficultyChanged fires on operator adjustment; Int = new level
	EventDifficultyChanged
	// EventLivesRefilled fires on the debug refill intent
	EventLivesRefilled

	// === Player ===

	// EventJump fires at takeoff; Int = 0 high, 1 low
	EventJump
	// EventLanded fires when an arc returns to the floor; Value = floor height
	EventLanded
	// EventRailSwitch fires when a switch starts; Int = target rail
	EventRailSwitch
	// EventDuck fires when ducking begins
	EventDuck

	// === Obstacles ===

	// EventObstacleSpawned fires per accepted spawn; Int = rail
	EventObstacleSpawned
	// EventPlayerHit fires on non-lethal damage; Int = lives left
	EventPlayerHit
	// EventRoofStrike fires when a roof obstacle is struck at body height
	EventRoofStrike
)

var typeNames = map[EventType]string{
	EventNone:              "none",
	EventSessionStart:      "session_start",
	EventPaused:            "paused",
	EventResumed:           "resumed",
	EventGameOver:          "game_over",
	EventDifficultyChanged: "difficulty_changed",
	EventLivesRefilled:     "lives_refilled",
	EventJump:              "jump",
	EventLanded:            "landed",
	EventRailSwitch:        "rail_switch",
	EventDuck:              "duck",
	EventObstacleSpawned:   "obstacle_spawned",
	EventPlayerHit:         "player_hit",
	EventRoofStrike:        "roof_strike",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is one notable occurrence inside a frame
type GameEvent struct {
	Type  EventType
	RunID uuid.UUID
	Frame uint64
	Int   int
	Value float64
}
