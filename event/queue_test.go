package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue(4)
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventJump})
	q.Push(GameEvent{Type: EventLanded})
	q.Push(GameEvent{Type: EventPlayerHit, Int: 2})
	assert.Equal(t, 3, q.Len())

	got := q.Consume()
	assert.Equal(t, []EventType{EventJump, EventLanded, EventPlayerHit}, []EventType{got[0].Type, got[1].Type, got[2].Type})
	assert.Equal(t, 0, q.Len())

	// Consumed slice is detached from the buffer
	q.Push(GameEvent{Type: EventDuck})
	assert.Equal(t, EventJump, got[0].Type)
}

func TestClear(t *testing.T) {
	q := NewEventQueue(0)
	q.Push(GameEvent{Type: EventGameOver})
	q.Clear()
	assert.Nil(t, q.Consume())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "game_over", EventGameOver.String())
	assert.Equal(t, "unknown", EventType(999).String())
}
