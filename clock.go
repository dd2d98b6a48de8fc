package smoke

import "time"

// Clock provides the render-clock time in milliseconds. The core APIs
// all take explicit now parameters; Clock exists for hosts and demos
// that need a concrete time source to feed them.
type Clock interface {
	Now() float64
}

// SystemClock reports monotonic milliseconds elapsed since its
// creation, backed by the runtime's monotonic clock.
type SystemClock struct {
	epoch time.Time
}

// NewSystemClock creates a clock whose zero is the moment of creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// Now returns milliseconds since the clock was created.
func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.epoch)) / float64(time.Millisecond)
}

// ManualClock is a test clock advanced explicitly by the caller.
type ManualClock struct {
	t float64
}

// NewManualClock creates a manual clock starting at t milliseconds.
func NewManualClock(t float64) *ManualClock {
	return &ManualClock{t: t}
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	return c.t
}

// Advance moves the clock forward by d milliseconds.
func (c *ManualClock) Advance(d float64) {
	c.t += d
}

// Set jumps the clock to t milliseconds.
func (c *ManualClock) Set(t float64) {
	c.t = t
}
