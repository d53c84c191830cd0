package stabilizer

import "time"

// DefaultDropInterval is the time between automatic one-row drops.
const DefaultDropInterval = 800 * time.Millisecond

// Gravity accumulates elapsed time between refresh ticks and reports when
// the active piece is due to fall one row.
type Gravity struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewGravity returns an accumulator for the given drop interval.
// Non-positive intervals fall back to DefaultDropInterval.
func NewGravity(interval time.Duration) Gravity {
	if interval <= 0 {
		interval = DefaultDropInterval
	}
	return Gravity{interval: interval}
}

// Advance adds dt to the accumulator. Once the total exceeds the interval
// the accumulator is reset and Advance returns true; at most one drop is
// reported per call.
func (g *Gravity) Advance(dt time.Duration) bool {
	if dt > 0 {
		g.elapsed += dt
	}
	if g.elapsed > g.interval {
		g.elapsed = 0
		return true
	}
	return false
}

// Reset clears the accumulated time.
func (g *Gravity) Reset() {
	g.elapsed = 0
}

// Interval returns the configured drop interval.
func (g Gravity) Interval() time.Duration {
	return g.interval
}

// Elapsed returns the time accumulated since the last drop.
func (g Gravity) Elapsed() time.Duration {
	return g.elapsed
}
