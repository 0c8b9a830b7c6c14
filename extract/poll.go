package extract

import (
	"context"
	"time"
)

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration)

// Sleep is the real-time SleepFunc.
func Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// poll evaluates cond up to attempts times, sleeping interval after each
// miss. It reports whether cond held before the attempts ran out or ctx
// ended.
func poll(ctx context.Context, attempts int, interval time.Duration, sleep SleepFunc, cond func() bool) bool {
	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		if cond() {
			return true
		}
		sleep(ctx, interval)
	}
	return false
}
