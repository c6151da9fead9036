package blockbreaker

import "time"

// DefaultMaxFrameDelta caps a single frame step.
const DefaultMaxFrameDelta = 1.0 / 30

// FrameClock turns frame timestamps into clamped step lengths in seconds.
// There is no fixed-step accumulator: one frame is one step.
type FrameClock struct {
	MaxDelta float64

	last    time.Time
	started bool
}

// NewFrameClock creates a clock that clamps steps to maxDelta seconds.
func NewFrameClock(maxDelta float64) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}
	return &FrameClock{MaxDelta: maxDelta}
}

// Tick records now and returns the seconds since the previous tick.
// The first tick and backwards jumps return 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, c.MaxDelta)
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
