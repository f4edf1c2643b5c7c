// Package input turns terminal key events into per-frame player intents.
package input

// Intents is the player's input for one frame. Every field except DuckHeld
// is edge-triggered: true only on the frame the action was requested.
type Intents struct {
	Start         bool
	JumpHigh      bool
	JumpLow       bool
	MoveLeft      bool
	MoveRight     bool
	DuckHeld      bool // level-triggered
	SpeedToggle   bool
	PauseToggle   bool
	DifficultyInc bool
	DifficultyDec bool
	DebugRefill   bool
}

// Any reports whether any intent is set
func (in Intents) Any() bool {
	return in != Intents{}
}

// Action identifies one bindable intent
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionJumpHigh
	ActionJumpLow
	ActionMoveLeft
	ActionMoveRight
	ActionDuck
	ActionSpeedToggle
	ActionPauseToggle
	ActionDifficultyInc
	ActionDifficultyDec
	ActionDebugRefill
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionStart:         "start",
	ActionJumpHigh:      "jump_high",
	ActionJumpLow:       "jump_low",
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionDuck:          "duck",
	ActionSpeedToggle:   "speed_toggle",
	ActionPauseToggle:   "pause_toggle",
	ActionDifficultyInc: "difficulty_inc",
	ActionDifficultyDec: "difficulty_dec",
	ActionDebugRefill:   "debug_refill",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// apply sets the edge-triggered field for a; duck and quit are handled by the caller
func (in *Intents) apply(a Action) {
	switch a {
	case ActionStart:
		in.Start = true
	case ActionJumpHigh:
		in.JumpHigh = true
	case ActionJumpLow:
		in.JumpLow = true
	case ActionMoveLeft:
		in.MoveLeft = true
	case ActionMoveRight:
		in.MoveRight = true
	case ActionSpeedToggle:
		in.SpeedToggle = true
	case ActionPauseToggle:
		in.PauseToggle = true
	case ActionDifficultyInc:
		in.DifficultyInc = true
	case ActionDifficultyDec:
		in.DifficultyDec = true
	case ActionDebugRefill:
		in.DebugRefill = true
	}
}
