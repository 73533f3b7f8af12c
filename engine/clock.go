package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/junk-mart/constants"
)

// TimeProvider is the source of wall time for the frame clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock turns wall time into per-frame deltas for Shop.Tick
// Paused time is never reported and deltas are clamped to MaxTickDelta
type FrameClock struct {
	mu       sync.Mutex
	provider TimeProvider
	last     time.Time
	paused   bool
}

// NewFrameClock starts measuring from the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider, last: provider.Now()}
}

// Delta returns the time elapsed since the previous call
func (c *FrameClock) Delta() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return 0
	}
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > constants.MaxTickDelta {
		return constants.MaxTickDelta
	}
	return dt
}

// Pause freezes the clock, e.g. while the terminal has lost focus
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume continues measuring from now, discarding the paused interval
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.provider.Now()
}

func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
