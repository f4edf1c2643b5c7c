package parameter

import "time"

// Game Loop
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after stalls
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the initial capacity of the per-frame event buffer
	EventQueueSize = 64
)
