package ws

import "time"

// cmdWindow is a fixed-window command counter for one session.
type cmdWindow struct {
	window time.Duration
	max    int

	start time.Time
	count int
}

// allow counts one command at now and reports whether it fits the window,
// plus how long until the window resets when it does not.
func (c *cmdWindow) allow(now time.Time) (ok bool, retryAfter time.Duration) {
	if c.window <= 0 || c.max <= 0 {
		return true, 0
	}
	if c.start.IsZero() || now.Sub(c.start) >= c.window {
		c.start = now
		c.count = 0
	}
	c.count++
	if c.count <= c.max {
		return true, 0
	}
	return false, c.start.Add(c.window).Sub(now)
}
