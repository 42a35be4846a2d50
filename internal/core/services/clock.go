package services

import (
	"context"
	"time"

	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

var (
	_ driven.Clock   = SystemClock{}
	_ driven.Sleeper = TimerSleeper{}
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// TimerSleeper sleeps on a timer, waking early when the context is done.
type TimerSleeper struct{}

// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
