package animation

import (
	"sync"
	"time"
)

// Clock reports the time elapsed since an arbitrary fixed origin.
type Clock interface {
	Now() time.Duration
}

// ManualClock is a Clock that only moves when told to.
// It is safe for concurrent use.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// WallClock measures real time since its creation.
type WallClock struct {
	origin time.Time
}

// NewWallClock returns a clock whose origin is the current instant.
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// Now returns the wall time elapsed since the clock was created.
func (c *WallClock) Now() time.Duration { return time.Since(c.origin) }
