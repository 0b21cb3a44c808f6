package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydwhelan/riskday/policy"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	eng, err := New(testSettings())
	require.NoError(t, err)
	return eng
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	_, err := New(policy.Settings{})
	assert.Error(t, err)
}

func TestRecordTradeWin(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	res, err := eng.RecordTrade(Win)
	require.NoError(t, err)

	assert.NotEmpty(t, res.Trade.ID)
	assert.Equal(t, Win, res.Trade.Outcome)
	assert.InDelta(t, 57.75, res.Trade.PnL, 1e-9) // 11.55 * 5.0
	assert.InDelta(t, 11.55, res.Trade.RiskAtEntry, 1e-9)
	assert.InDelta(t, 5.0, res.Trade.RealizedR(), 1e-9)

	assert.InDelta(t, 30.6075, res.State.CurrentRisk, 1e-9)
	assert.InDelta(t, 57.75, res.State.CumulativePnL, 1e-9)
	assert.Equal(t, 1, res.State.Stage)
}

func TestRecordTradeLoss(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	_, err := eng.RecordTrade(Win)
	require.NoError(t, err)

	res, err := eng.RecordTrade(Loss)
	require.NoError(t, err)

	assert.InDelta(t, -30.6075, res.Trade.PnL, 1e-9)
	assert.InDelta(t, 30.6075, res.Trade.RiskAtEntry, 1e-9)
	assert.InDelta(t, -1.0, res.Trade.RealizedR(), 1e-9)

	assert.InDelta(t, 20.507025, res.State.CurrentRisk, 1e-9)
	assert.InDelta(t, 27.1425, res.State.CumulativePnL, 1e-9)
	assert.Equal(t, 0, res.State.Stage)
}

func TestRecordTradeManualAmount(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	// The sign of the amount is forced to match the outcome.
	win, err := eng.RecordTradeAmount(Win, -25)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, win.Trade.PnL, 1e-9)

	loss, err := eng.RecordTradeAmount(Loss, 10)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, loss.Trade.PnL, 1e-9)
}

func TestRecordTradeRejectedAfterTarget(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t) // target $140

	_, err := eng.RecordTradeAmount(Win, 150)
	require.NoError(t, err)

	// Wins are locked, but a loss that actually happened may still be logged.
	_, err = eng.RecordTrade(Win)
	assert.ErrorIs(t, err, ErrTargetReached)
	assert.Len(t, eng.SessionTrades(), 1)

	_, err = eng.RecordTrade(Loss)
	assert.NoError(t, err)
}

func TestRecordTradeRejectedAfterLossLimit(t *testing.T) {
	t.Parallel()

	cfg := policy.Settings{
		Balance:        1000,
		MaxRiskPct:     5.0,
		DailyRiskPct:   1.0,
		DailyTargetPct: 2.0,
		CompoundPct:    100,
		RewardRisk:     2.0,
	}
	eng, err := New(cfg)
	require.NoError(t, err)

	// One full-size loss exhausts the $10 pool.
	_, err = eng.RecordTrade(Loss)
	require.NoError(t, err)

	_, err = eng.RecordTrade(Loss)
	assert.ErrorIs(t, err, ErrLossLimitReached)
	_, err = eng.RecordTrade(Win)
	assert.ErrorIs(t, err, ErrLossLimitReached)
	assert.Len(t, eng.SessionTrades(), 1)
}

// Target was hit, then a loss dragged P&L back under it: win eligibility
// returns because the flags recompute fresh each time.
func TestRecordTradeTargetRegainedAfterLoss(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	_, err := eng.RecordTradeAmount(Win, 150)
	require.NoError(t, err)
	_, err = eng.RecordTrade(Win)
	require.ErrorIs(t, err, ErrTargetReached)

	_, err = eng.RecordTradeAmount(Loss, 50)
	require.NoError(t, err)

	_, err = eng.RecordTrade(Win)
	assert.NoError(t, err)
}

func TestUndoLastTrade(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	_, err := eng.RecordTrade(Win)
	require.NoError(t, err)
	before := eng.State()

	_, err = eng.RecordTrade(Win)
	require.NoError(t, err)

	after, ok := eng.UndoLastTrade()
	assert.True(t, ok)
	assert.Equal(t, before, after)
	assert.Len(t, eng.SessionTrades(), 1)
}

func TestUndoEmptySession(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	state, ok := eng.UndoLastTrade()
	assert.False(t, ok)
	assert.InDelta(t, 11.55, state.CurrentRisk, 1e-9)
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	bad := testSettings()
	bad.Balance = -1

	err := eng.SetConfig(bad)
	assert.Error(t, err)
	assert.Equal(t, testSettings(), eng.Config())
}

func TestStartNewDay(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	eng.SetClock(func() time.Time {
		return time.Date(2024, 3, 5, 15, 45, 0, 0, time.UTC)
	})

	_, err := eng.RecordTrade(Win) // +57.75
	require.NoError(t, err)
	_, err = eng.RecordTrade(Loss) // -30.6075
	require.NoError(t, err)

	day, err := eng.StartNewDay()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 5, 15, 45, 0, 0, time.UTC), day.Date)
	assert.InDelta(t, 7000.0, day.StartBalance, 1e-9)
	assert.InDelta(t, 7027.1425, day.EndBalance, 1e-9)
	assert.InDelta(t, 27.1425, day.Net(), 1e-9)
	assert.Len(t, day.Trades, 2)

	// Balance rebased, session cleared, day at the head of history.
	assert.InDelta(t, 7027.1425, eng.Config().Balance, 1e-9)
	assert.Empty(t, eng.SessionTrades())
	history := eng.History()
	require.Len(t, history, 1)
	assert.Equal(t, day.Date, history[0].Date)
}

func TestStartNewDayDuplicateDateRejected(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	eng.SetClock(func() time.Time { return now })

	_, err := eng.StartNewDay()
	require.NoError(t, err)
	assert.False(t, eng.NewDayAvailable())

	balance := eng.Config().Balance
	_, err = eng.StartNewDay()
	assert.ErrorIs(t, err, ErrDayAlreadyClosed)
	assert.Len(t, eng.History(), 1)
	assert.Equal(t, balance, eng.Config().Balance)

	// Guard clears once the calendar date changes.
	now = now.Add(24 * time.Hour)
	assert.True(t, eng.NewDayAvailable())
	_, err = eng.StartNewDay()
	assert.NoError(t, err)
}

func TestRecordTradeUsesClock(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	at := time.Date(2024, 3, 5, 15, 45, 0, 0, time.UTC)
	eng.SetClock(func() time.Time { return at })

	res, err := eng.RecordTrade(Win)
	require.NoError(t, err)
	assert.Equal(t, at, res.Trade.At)
}
