package engine

import "time"

// Clock is a source of monotonic wall time
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock turns successive clock readings into elapsed and delta
// milliseconds for Session.Frame
type FrameClock struct {
	clock Clock
	start time.Time
	last  time.Time
}

func NewFrameClock(clock Clock) *FrameClock {
	now := clock.Now()
	return &FrameClock{clock: clock, start: now, last: now}
}

// Tick returns milliseconds since creation and since the previous Tick
func (fc *FrameClock) Tick() (elapsedMs, deltaMs float64) {
	now := fc.clock.Now()
	elapsedMs = float64(now.Sub(fc.start)) / float64(time.Millisecond)
	deltaMs = float64(now.Sub(fc.last)) / float64(time.Millisecond)
	fc.last = now
	return elapsedMs, deltaMs
}

// SanitizeDelta converts an untrusted frame delta in milliseconds to seconds,
// mapping negative or NaN input to zero and capping stalls at max
func SanitizeDelta(deltaMs float64, max time.Duration) float64 {
	if deltaMs != deltaMs || deltaMs <= 0 {
		return 0
	}
	capMs := float64(max) / float64(time.Millisecond)
	if max > 0 && deltaMs > capMs {
		deltaMs = capMs
	}
	return deltaMs / 1000
}
