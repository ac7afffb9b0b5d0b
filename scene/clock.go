package scene

import "time"

// Clock accumulates animation time in seconds.
type Clock struct {
	elapsed float32
}

// Advance moves the clock forward. Non-positive steps are ignored so the
// elapsed time never decreases.
func (c *Clock) Advance(step time.Duration) {
	if step <= 0 {
		return
	}
	c.elapsed += float32(step.Seconds())
}

func (c *Clock) Elapsed() float32 { return c.elapsed }
