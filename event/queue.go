package event

// EventQueue buffers events produced during a frame for consumers that run
// after it (audio, logging). Single goroutine: the frame loop both pushes
// and consumes.
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, capacity)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Clear drops pending events
func (eq *EventQueue) Clear() {
	eq.events = eq.events[:0]
}
