package game

import "time"

// Clock supplies the elapsed time per frame in seconds.
type Clock interface {
	Delta() float64
}

// WallClock measures real time between calls. The first call returns 0.
type WallClock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewWallClock creates a clock backed by time.Now
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Delta implements Clock. time.Now carries a monotonic reading, so the
// result never goes negative.
func (c *WallClock) Delta() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}
	d := t.Sub(c.last).Seconds()
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}

// FixedClock always reports the same step, e.g. 1.0/60.
type FixedClock float64

// Delta implements Clock
func (c FixedClock) Delta() float64 {
	return float64(c)
}
