package frame

import "time"

// DefaultSpeed is the animation time scale used by the shader shell.
const DefaultSpeed float32 = 0.75

// Clock accumulates scaled animation time across frames.
type Clock struct {
	Speed float32

	time       float32
	lastUpdate time.Time
}

func NewClock(speed float32) *Clock {
	return &Clock{Speed: speed}
}

// Advance moves the clock to now and returns the animation time. The first
// call only anchors the clock.
func (c *Clock) Advance(now time.Time) float32 {
	if !c.lastUpdate.IsZero() {
		dt := float32(now.Sub(c.lastUpdate).Seconds())
		if dt > 0 {
			c.time += c.Speed * dt
		}
	}
	c.lastUpdate = now
	return c.time
}

func (c *Clock) Time() float32 {
	return c.time
}
