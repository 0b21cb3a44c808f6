package engine

import (
	"errors"

	"github.com/rydwhelan/riskday/policy"
)

// Rejection reasons surfaced to the caller so a front end can disable
// controls preemptively. All of them leave state untouched.
var (
	ErrLossLimitReached = errors.New("daily loss limit reached, no further trades today")
	ErrTargetReached    = errors.New("daily profit target reached, wins can no longer be logged")
	ErrDayAlreadyClosed = errors.New("a day has already been closed out for today's date")
)

// Limits reports whether the daily stop-loss or profit-target has been
// reached. Both flags are recomputed fresh from the derived state on every
// evaluation; neither latches.
type Limits struct {
	TargetHit    bool
	LossLimitHit bool
}

// EvaluateLimits classifies the derived state against the daily limits.
//
// The loss limit trips when risk or the remaining pool falls under a
// dollar. Sub-dollar risk sizes are not tradeable, so this is the
// practical floor rather than an exact zero test.
func EvaluateLimits(cfg policy.Settings, s State) Limits {
	return Limits{
		TargetHit:    s.CumulativePnL >= DailyTarget(cfg),
		LossLimitHit: s.CurrentRisk < 1.0 || PoolRemaining(cfg, s) <= 1.0,
	}
}
