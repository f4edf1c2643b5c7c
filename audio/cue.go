package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/surf-scout/event"
	"github.com/lixenwraith/surf-scout/parameter"
)

// Cue is a short sound tied to a game event
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueJump
	CueSwitch
	CueHit
	CueGameOver
)

// CueFor maps a game event to its cue
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventSessionStart, event.EventResumed:
		return CueStart
	case event.EventJump:
		return CueJump
	case event.EventRailSwitch:
		return CueSwitch
	case event.EventPlayerHit:
		return CueHit
	case event.EventGameOver:
		return CueGameOver
	}
	return CueNone
}

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 20 * time.Millisecond
)

// NewCueStreamer builds the finite streamer for a cue at linear volume
func NewCueStreamer(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueStart:
		first := sineTone(rate, parameter.CueStartFreq, parameter.CueStartDuration)
		second := sineTone(rate, parameter.CueStartFreq*1.5, parameter.CueStartDuration)
		s = beep.Seq(first, second)
	case CueJump:
		osc := NewOscillator(parameter.CueJumpFreq, 4000, parameter.CueJumpDuration, WaveSine, rate)
		s = NewEnvelope(osc, parameter.CueJumpDuration, cueAttack, cueRelease, rate)
	case CueSwitch:
		osc := NewOscillator(0, 0, parameter.CueSwitchDuration, WaveNoise, rate)
		s = newVolume(NewEnvelope(osc, parameter.CueSwitchDuration, cueAttack, cueRelease, rate), 0.4)
	case CueHit:
		osc := NewOscillator(parameter.CueHitFreq, -300, parameter.CueHitDuration, WaveSquare, rate)
		s = NewEnvelope(osc, parameter.CueHitDuration, cueAttack, parameter.CueHitDuration/2, rate)
	case CueGameOver:
		osc := NewOscillator(parameter.CueGameOverFreq*2, -parameter.CueGameOverFreq*2, parameter.CueGameOverDuration, WaveSaw, rate)
		s = NewEnvelope(osc, parameter.CueGameOverDuration, cueAttack, parameter.CueGameOverDuration/2, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// sineTone is a plain enveloped sine of fixed length
func sineTone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		// Only fails above the Nyquist frequency
		return beep.Silence(rate.N(d))
	}
	return NewEnvelope(beep.Take(rate.N(d), tone), d, cueAttack, cueRelease, rate)
}
