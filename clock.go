package shapes

import (
	"math"
	"time"
)

// Clock tracks wall-clock time between frames.
type Clock struct {
	Time time.Time
	Dt   time.Duration

	now func() time.Time
}

func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc returns a clock reading time from now. Tests pass a fixed source.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{
		Time: now(),
		now:  now,
	}
}

func (c *Clock) Now() time.Time {
	return c.now()
}

// Tick records the time of the current frame.
func (c *Clock) Tick(now time.Time) {
	c.Dt = now.Sub(c.Time)
	c.Time = now
}

// RotationAngle returns the wall-clock time in seconds reduced to one turn.
// Reducing in float64 keeps the angle precise once it is narrowed to float32.
func RotationAngle(t time.Time) float32 {
	secs := float64(t.UnixNano()) / float64(time.Second)
	return float32(math.Mod(secs, 2*math.Pi))
}
