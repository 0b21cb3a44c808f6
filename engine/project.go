package engine

import (
	"math"

	"github.com/rydwhelan/riskday/policy"
)

// DefaultProjectionDepth is how many hypothetical trades a streak
// projection runs forward.
const DefaultProjectionDepth = 8

// ProjectionRow is one step of a hypothetical streak.
type ProjectionRow struct {
	Stage         int
	Risk          float64
	CumulativePnL float64
}

// ProjectWinStreak simulates depth consecutive wins from the given state.
// Read-only: it forks from the current risk and P&L without touching the
// trade log, and each step applies the same growth recurrence as the fold
// in DeriveState.
func ProjectWinStreak(cfg policy.Settings, s State, depth int) []ProjectionRow {
	if depth <= 0 {
		depth = DefaultProjectionDepth
	}

	riskCap := MaxRiskCap(cfg)
	reinvest := cfg.CompoundPct / 100

	risk := s.CurrentRisk
	pnl := s.CumulativePnL

	rows := make([]ProjectionRow, 0, depth)
	for i := 1; i <= depth; i++ {
		profit := risk * cfg.RewardRisk
		pnl += profit
		rows = append(rows, ProjectionRow{Stage: s.Stage + i, Risk: risk, CumulativePnL: pnl})
		risk = math.Min(risk+profit*reinvest, riskCap)
	}
	return rows
}

// ProjectLossStreak simulates depth consecutive losses from the given
// state, drawing each step's risk from the shrinking daily pool exactly as
// the loss branch of DeriveState would.
func ProjectLossStreak(cfg policy.Settings, s State, depth int) []ProjectionRow {
	if depth <= 0 {
		depth = DefaultProjectionDepth
	}

	riskCap := MaxRiskCap(cfg)
	reinvest := cfg.CompoundPct / 100

	pool := PoolRemaining(cfg, s)
	pnl := s.CumulativePnL

	rows := make([]ProjectionRow, 0, depth)
	for i := 1; i <= depth; i++ {
		risk := math.Min(pool*reinvest, riskCap)
		pool -= risk
		pnl -= risk
		rows = append(rows, ProjectionRow{Stage: s.Stage - i, Risk: risk, CumulativePnL: pnl})
	}
	return rows
}
