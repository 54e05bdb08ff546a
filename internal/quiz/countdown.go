package quiz

import (
	"sync"
	"time"
)

// countdown is a cancellable one-shot scheduler for the per-second tick. The
// engine arms it whenever a round is running unpaused and stops it on every
// exit from that condition. A generation counter makes sure a callback that
// was already in flight when the state changed is discarded instead of
// mutating a session it no longer belongs to.
type countdown struct {
	mu       sync.Mutex
	gen      uint64
	timer    *time.Timer
	interval time.Duration
}

func newCountdown(interval time.Duration) *countdown {
	return &countdown{interval: interval}
}

// arm invalidates any pending callback and schedules fn after one interval,
// handing it the generation it was armed with. With a non-positive interval
// the countdown is inert; tests drive ticks themselves.
func (c *countdown) arm(fn func(gen uint64)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.interval <= 0 {
		return
	}

	gen := c.gen
	c.timer = time.AfterFunc(c.interval, func() {
		fn(gen)
	})
}

// stop invalidates any pending callback.
func (c *countdown) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *countdown) valid(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen == gen
}
