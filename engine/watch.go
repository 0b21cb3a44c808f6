package engine

import (
	"context"
	"time"
)

// WatchNewDay polls the rollover guard on the given interval and delivers
// one value on the returned channel as soon as a new calendar day may
// begin, then closes it. The channel closes without a value when ctx is
// cancelled first.
//
// This is a liveness check, not a scheduler: it simply re-runs the same
// guard StartNewDay uses until the wall clock crosses midnight.
func (e *Engine) WatchNewDay(ctx context.Context, interval time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if e.NewDayAvailable() {
					ch <- now
					return
				}
			}
		}
	}()

	return ch
}
