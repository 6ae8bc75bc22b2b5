package game

import "time"

// FrameClock measures the time between frames. Steps longer than MaxStep
// are clamped so a stalled frame does not spin the scene by a large angle.
type FrameClock struct {
	MaxStep time.Duration

	now  func() time.Time
	last time.Time
}

// NewFrameClock creates a clock reading the wall time.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	return &FrameClock{MaxStep: maxStep, now: time.Now}
}

// Step returns the seconds since the previous call. The first call
// returns 0.
func (c *FrameClock) Step() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.MaxStep > 0 && dt > c.MaxStep {
		dt = c.MaxStep
	}
	return dt.Seconds()
}
