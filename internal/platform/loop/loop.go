// Package loop drives a game session without a terminal: a fixed-rate
// ticker calls a step function until the step asks to stop or the context
// is cancelled. The ticker is always stopped on return.
package loop

import (
	"context"
	"errors"
	"time"
)

// ErrBadPeriod is returned when Run is given a non-positive period.
var ErrBadPeriod = errors.New("loop: period must be positive")

// StepFunc advances the simulation by elapsed and reports whether the loop
// should keep running.
type StepFunc func(elapsed time.Duration) bool

// Run calls step once per period with the time since the previous call.
// It returns nil when step returns false and ctx.Err() when the context is
// cancelled first.
func Run(ctx context.Context, period time.Duration, step StepFunc) error {
	if period <= 0 {
		return ErrBadPeriod
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if !step(elapsed) {
				return nil
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Period converts a tick rate in Hz to a ticker period.
func Period(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}
