package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateLimitsFresh(t *testing.T) {
	t.Parallel()

	cfg := testSettings()
	lim := EvaluateLimits(cfg, DeriveState(cfg, nil))

	assert.False(t, lim.TargetHit)
	assert.False(t, lim.LossLimitHit)
}

func TestEvaluateLimitsTargetHit(t *testing.T) {
	t.Parallel()

	cfg := testSettings() // dailyTargetUsd = 140

	tests := []struct {
		name string
		pnl  float64
		want bool
	}{
		{"below target", 139.99, false},
		{"exactly at target", 140.0, true},
		{"above target", 210.79, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lim := EvaluateLimits(cfg, State{CurrentRisk: 30, CumulativePnL: tt.pnl})
			assert.Equal(t, tt.want, lim.TargetHit)
		})
	}
}

func TestEvaluateLimitsLossLimit(t *testing.T) {
	t.Parallel()

	cfg := testSettings() // dailyRiskBudget = 35

	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"healthy", State{CurrentRisk: 11.55, CumulativePnL: 0}, false},
		{"risk under a dollar", State{CurrentRisk: 0.99, CumulativePnL: 0}, true},
		{"risk at zero", State{CurrentRisk: 0, CumulativePnL: -35}, true},
		{"pool at a dollar", State{CurrentRisk: 5, CumulativePnL: -34}, true},
		{"pool just above a dollar", State{CurrentRisk: 5, CumulativePnL: -33.9}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lim := EvaluateLimits(cfg, tt.state)
			assert.Equal(t, tt.want, lim.LossLimitHit)
		})
	}
}

// Both flags recompute fresh each evaluation: losing back below a
// previously-hit target restores win eligibility.
func TestEvaluateLimitsTargetNotLatched(t *testing.T) {
	t.Parallel()

	cfg := testSettings()

	hit := EvaluateLimits(cfg, State{CurrentRisk: 30, CumulativePnL: 150})
	assert.True(t, hit.TargetHit)

	back := EvaluateLimits(cfg, State{CurrentRisk: 30, CumulativePnL: 100})
	assert.False(t, back.TargetHit)
}
