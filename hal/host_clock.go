//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostClock holds the current frame time. Wall mode samples time.Now on each
// step; fixed mode advances by a constant frame duration so runs replay exactly.
type hostClock struct {
	mu    sync.Mutex
	now   time.Time
	fixed time.Duration
	wall  func() time.Time
}

func newHostClock() *hostClock {
	c := &hostClock{wall: time.Now}
	c.now = c.wall()
	return c
}

func (c *hostClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// setFixed switches to fixed steps of d starting at start.
func (c *hostClock) setFixed(start time.Time, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = start
	c.fixed = d
}

func (c *hostClock) step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fixed > 0 {
		c.now = c.now.Add(c.fixed)
		return
	}
	c.now = c.wall()
}
