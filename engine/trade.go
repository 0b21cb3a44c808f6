package engine

import "time"

// Outcome classifies a logged trade.
type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
)

// Trade is one logged result. RiskAtEntry is the risk size in effect the
// moment the trade was recorded; it never changes afterwards.
type Trade struct {
	ID          string
	Outcome     Outcome
	PnL         float64
	RiskAtEntry float64
	At          time.Time
}

// RealizedR returns the trade's reward-to-risk multiple. Losses report
// exactly -1.0R regardless of the actual pnl/risk ratio; that is a display
// convention, not a rounding accident.
func (t Trade) RealizedR() float64 {
	if t.Outcome == Loss {
		return -1.0
	}
	if t.RiskAtEntry == 0 {
		return 0
	}
	return t.PnL / t.RiskAtEntry
}

// Session is the currently-open trading day. Exactly one exists at a time.
type Session struct {
	Trades []Trade
}

// PnL sums the session's trade results.
func (s Session) PnL() float64 {
	var total float64
	for _, t := range s.Trades {
		total += t.PnL
	}
	return total
}

// ArchivedDay is a frozen copy of a closed-out session. Created once per
// calendar date by the rollover; immutable after creation.
type ArchivedDay struct {
	Date         time.Time
	StartBalance float64
	EndBalance   float64
	Trades       []Trade
}

// Net is the day's realized result.
func (d ArchivedDay) Net() float64 {
	return d.EndBalance - d.StartBalance
}
