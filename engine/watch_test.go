package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchNewDayUnlocks(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	// Pin "today", close it out, then flip the clock to tomorrow while
	// the watcher is polling.
	var day atomic.Int64
	base := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	eng.SetClock(func() time.Time {
		return base.AddDate(0, 0, int(day.Load()))
	})

	_, err := eng.StartNewDay()
	require.NoError(t, err)
	require.False(t, eng.NewDayAvailable())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch := eng.WatchNewDay(ctx, 5*time.Millisecond)
	day.Store(1)

	_, ok := <-ch
	assert.True(t, ok, "watcher should fire once the date changes")
	assert.True(t, eng.NewDayAvailable())
}

func TestWatchNewDayCancelled(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	eng.SetClock(func() time.Time {
		return time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	})

	_, err := eng.StartNewDay()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := eng.WatchNewDay(ctx, 5*time.Millisecond)
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "channel closes without a value on cancel")
}
