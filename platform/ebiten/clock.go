package ebiten

import "time"

// Clock reports wall time in seconds since it was created.
type Clock struct {
	start time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (c *Clock) Now() float64 {
	return time.Since(c.start).Seconds()
}
