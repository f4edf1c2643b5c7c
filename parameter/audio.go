package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the linear gain applied to every cue
	AudioVolume = 0.3
)

// Cue tones
const (
	CueStartFreq     = 660.0
	CueStartDuration = 120 * time.Millisecond

	CueJumpFreq     = 880.0
	CueJumpDuration = 60 * time.Millisecond

	CueSwitchFreq     = 520.0
	CueSwitchDuration = 30 * time.Millisecond

	CueHitFreq     = 180.0
	CueHitDuration = 200 * time.Millisecond

	CueGameOverFreq     = 110.0
	CueGameOverDuration = 600 * time.Millisecond
)
