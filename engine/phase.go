package engine

// Phase is the overall session state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// phaseTransitions lists the legal targets of each phase
var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver},
	PhasePaused:   {PhaseRunning},
	PhaseGameOver: {PhaseRunning},
}

// CanTransition reports whether from -> to is a legal phase change
func CanTransition(from, to Phase) bool {
	for _, p := range phaseTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
