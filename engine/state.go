package engine

import (
	"math"

	"github.com/rydwhelan/riskday/policy"
)

// State is derived, never stored: it is recomputed from the settings and
// the open session's trade log on every query, so it can never drift from
// its inputs.
type State struct {
	CurrentRisk   float64
	CumulativePnL float64
	Stage         int
}

// DailyRiskBudget is the dollar amount the day may lose in total.
func DailyRiskBudget(cfg policy.Settings) float64 {
	return cfg.Balance * cfg.DailyRiskPct / 100
}

// MaxRiskCap is the hard ceiling on a single trade's risk.
func MaxRiskCap(cfg policy.Settings) float64 {
	return cfg.Balance * cfg.MaxRiskPct / 100
}

// DailyTarget is the dollar profit at which the day stops.
func DailyTarget(cfg policy.Settings) float64 {
	return cfg.Balance * cfg.DailyTargetPct / 100
}

// PoolRemaining is the day's remaining loss-absorption capacity.
func PoolRemaining(cfg policy.Settings, s State) float64 {
	return DailyRiskBudget(cfg) + s.CumulativePnL
}

// DeriveState replays the full trade log in order and returns the current
// risk size, cumulative P&L, and stage count.
//
// Wins grow risk additively by a fraction of the realized profit. Losses
// recompute risk from the remaining daily pool instead of decrementing the
// prior value. The asymmetry is policy: a loss can drive risk to exactly 0
// when the pool is exhausted, while a win never lifts it past the cap.
func DeriveState(cfg policy.Settings, trades []Trade) State {
	budget := DailyRiskBudget(cfg)
	riskCap := MaxRiskCap(cfg)
	reinvest := cfg.CompoundPct / 100

	s := State{CurrentRisk: math.Min(budget*reinvest, riskCap)}

	for _, t := range trades {
		s.CumulativePnL += t.PnL
		if t.Outcome == Win {
			s.Stage++
			s.CurrentRisk = math.Min(s.CurrentRisk+t.PnL*reinvest, riskCap)
		} else {
			s.Stage--
			s.CurrentRisk = math.Min(math.Max(0, (budget+s.CumulativePnL)*reinvest), riskCap)
		}
	}

	return s
}
