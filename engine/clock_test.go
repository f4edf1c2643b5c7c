package engine

import "time"

// stepClock is a Clock for tests. Each Now returns the current reading and
// then moves it forward by step; Advance jumps it explicitly.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func newStepClock(start time.Time, step time.Duration) *stepClock {
	return &stepClock{now: start, step: step}
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *stepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
