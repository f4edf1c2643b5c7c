// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/parameter"
)

// CuePlayer mixes event cues into the speaker. A player that failed to
// open the device, or was disabled, accepts events and stays silent.
type CuePlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates an unopened player
func NewCuePlayer(cfg config.AudioConfig) *CuePlayer {
	vol := cfg.Volume
	if !cfg.Enabled {
		vol = 0
	}
	return &CuePlayer{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: vol,
		mixer:  &beep.Mixer{},
	}
}

// Open initializes the speaker and starts the mixer
func (p *CuePlayer) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.volume <= 0 {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all cues and releases the speaker
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// HandleEvents plays the cue of each event; returns the cues started
func (p *CuePlayer) HandleEvents(events []event.GameEvent) int {
	n := 0
	for _, ev := range events {
		if p.Play(CueFor(ev)) {
			n++
		}
	}
	return n
}

// Play starts a cue; reports whether it reached the mixer
func (p *CuePlayer) Play(cue Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || cue == CueNone {
		return false
	}
	s := NewCueStreamer(cue, p.rate, p.volume)
	if s == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}
