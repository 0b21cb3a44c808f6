package engine

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rydwhelan/riskday/pkg/id"
	"github.com/rydwhelan/riskday/policy"
)

// Engine owns the three records: settings, the open session, and the
// archived-day history. Every mutation is a single atomic append or
// replace under the lock, and all derived values (risk, P&L, limits) are
// recomputed from the log on each query rather than cached.
type Engine struct {
	mu      sync.Mutex
	cfg     policy.Settings
	session Session
	history []ArchivedDay

	now func() time.Time
}

// New builds an engine with an empty session and no history.
func New(cfg policy.Settings) (*Engine, error) {
	return Restore(cfg, Session{}, nil)
}

// Restore builds an engine from persisted records.
func Restore(cfg policy.Settings, session Session, history []ArchivedDay) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("restore engine: %w", err)
	}
	return &Engine{
		cfg:     cfg,
		session: session,
		history: history,
		now:     time.Now,
	}, nil
}

// SetClock overrides the wall clock. Tests use this to control rollover
// dates and trade timestamps.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// Config returns the current settings.
func (e *Engine) Config() policy.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// SetConfig replaces all six policy fields. An invalid replacement is
// refused and the previous settings stay in effect.
func (e *Engine) SetConfig(cfg policy.Settings) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set config: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	return nil
}

// SessionTrades returns a copy of the open session's trade log.
func (e *Engine) SessionTrades() []Trade {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Trade(nil), e.session.Trades...)
}

// History returns a copy of the archived days, newest first.
func (e *Engine) History() []ArchivedDay {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ArchivedDay(nil), e.history...)
}

// State derives the current risk, P&L, and stage from the open session.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return DeriveState(e.cfg, e.session.Trades)
}

// Limits evaluates the daily stop and target against the derived state.
func (e *Engine) Limits() Limits {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EvaluateLimits(e.cfg, DeriveState(e.cfg, e.session.Trades))
}

// TradeResult is returned by the mutating calls so the caller can refresh
// its display without a second query.
type TradeResult struct {
	Trade  Trade
	State  State
	Limits Limits
}

// RecordTrade logs a trade at the policy's computed size: wins pay
// currentRisk * rewardRisk, losses cost currentRisk.
func (e *Engine) RecordTrade(outcome Outcome) (TradeResult, error) {
	return e.record(outcome, 0, false)
}

// RecordTradeAmount logs a trade with a manual dollar amount. The sign is
// forced to match the outcome.
func (e *Engine) RecordTradeAmount(outcome Outcome, amount float64) (TradeResult, error) {
	return e.record(outcome, amount, true)
}

func (e *Engine) record(outcome Outcome, amount float64, manual bool) (TradeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := DeriveState(e.cfg, e.session.Trades)
	limits := EvaluateLimits(e.cfg, state)

	// Loss limit blocks everything; a hit target still allows logging a
	// loss that actually happened.
	if limits.LossLimitHit {
		return TradeResult{State: state, Limits: limits}, ErrLossLimitReached
	}
	if limits.TargetHit && outcome == Win {
		return TradeResult{State: state, Limits: limits}, ErrTargetReached
	}

	var pnl float64
	switch {
	case outcome == Win && manual:
		pnl = math.Abs(amount)
	case outcome == Win:
		pnl = state.CurrentRisk * e.cfg.RewardRisk
	case manual:
		pnl = -math.Abs(amount)
	default:
		pnl = -state.CurrentRisk
	}

	trade := Trade{
		ID:          id.New(),
		Outcome:     outcome,
		PnL:         pnl,
		RiskAtEntry: state.CurrentRisk,
		At:          e.now(),
	}
	e.session.Trades = append(e.session.Trades, trade)

	next := DeriveState(e.cfg, e.session.Trades)
	return TradeResult{
		Trade:  trade,
		State:  next,
		Limits: EvaluateLimits(e.cfg, next),
	}, nil
}

// UndoLastTrade removes the most recently logged trade. Returns false
// without changing anything when the session is empty. One level deep, no
// redo.
func (e *Engine) UndoLastTrade() (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.session.Trades)
	if n == 0 {
		return DeriveState(e.cfg, e.session.Trades), false
	}
	e.session.Trades = e.session.Trades[:n-1]
	return DeriveState(e.cfg, e.session.Trades), true
}

// NewDayAvailable reports whether a rollover may run: at most one archived
// day per calendar date.
func (e *Engine) NewDayAvailable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.newDayAvailableLocked()
}

func (e *Engine) newDayAvailableLocked() bool {
	if len(e.history) == 0 {
		return true
	}
	return !sameDate(e.history[0].Date, e.now())
}

// StartNewDay archives the open session, rebases the balance by the day's
// P&L, and opens an empty session. This is the only trading operation that
// mutates the balance.
func (e *Engine) StartNewDay() (ArchivedDay, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.newDayAvailableLocked() {
		return ArchivedDay{}, ErrDayAlreadyClosed
	}

	dayPnL := e.session.PnL()
	day := ArchivedDay{
		Date:         e.now(),
		StartBalance: e.cfg.Balance,
		EndBalance:   e.cfg.Balance + dayPnL,
		Trades:       append([]Trade(nil), e.session.Trades...),
	}

	e.history = append([]ArchivedDay{day}, e.history...)
	e.cfg.Balance += dayPnL
	e.session = Session{}

	return day, nil
}

// ProjectWinStreak runs the win recurrence forward from the current state.
func (e *Engine) ProjectWinStreak(depth int) []ProjectionRow {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ProjectWinStreak(e.cfg, DeriveState(e.cfg, e.session.Trades), depth)
}

// ProjectLossStreak runs the loss recurrence forward from the current state.
func (e *Engine) ProjectLossStreak(depth int) []ProjectionRow {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ProjectLossStreak(e.cfg, DeriveState(e.cfg, e.session.Trades), depth)
}

// GlobalStats aggregates every trade in history plus the open session.
func (e *Engine) GlobalStats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeGlobalStats(e.history, e.session)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
