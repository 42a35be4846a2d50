package driven

import (
	"context"
	"time"
)

// Sleeper suspends the caller for d or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}
