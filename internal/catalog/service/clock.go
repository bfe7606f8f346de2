package service

import (
	"sync"
	"time"
)

// Clock issues timestamps for catalog records.
type Clock interface {
	Now() time.Time
}

// MonotonicClock returns strictly increasing UTC instants truncated to
// microseconds, the finest precision every store keeps.
type MonotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewMonotonicClock wraps now; nil means time.Now.
func NewMonotonicClock(now func() time.Time) *MonotonicClock {
	if now == nil {
		now = time.Now
	}
	return &MonotonicClock{now: now}
}

// Now returns an instant later than every instant returned before.
func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// after returns now, or just past floor when now does not exceed it.
func after(now, floor time.Time) time.Time {
	if now.After(floor) {
		return now
	}
	return floor.Add(time.Microsecond)
}
