package session

import "time"

// Clock is sampled once at the start of every tick and command.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, whose monotonic reading keeps durations immune to wall
// clock jumps.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	T time.Time
}

func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{T: t}
}

func (c *ManualClock) Now() time.Time {
	return c.T
}

func (c *ManualClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
