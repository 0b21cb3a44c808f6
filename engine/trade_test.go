package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealizedR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		trade Trade
		want  float64
	}{
		{"policy win", Trade{Outcome: Win, PnL: 57.75, RiskAtEntry: 11.55}, 5.0},
		{"manual partial win", Trade{Outcome: Win, PnL: 5, RiskAtEntry: 10}, 0.5},
		{"zero risk win", Trade{Outcome: Win, PnL: 5, RiskAtEntry: 0}, 0},
		// Losses are -1.0R by convention, whatever the actual ratio.
		{"policy loss", Trade{Outcome: Loss, PnL: -11.55, RiskAtEntry: 11.55}, -1.0},
		{"manual small loss", Trade{Outcome: Loss, PnL: -2, RiskAtEntry: 30}, -1.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.trade.RealizedR(), 1e-9)
		})
	}
}

func TestSessionPnL(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Session{}.PnL())

	s := Session{Trades: []Trade{
		{Outcome: Win, PnL: 57.75},
		{Outcome: Loss, PnL: -30.6075},
	}}
	assert.InDelta(t, 27.1425, s.PnL(), 1e-9)
}

func TestArchivedDayNet(t *testing.T) {
	t.Parallel()

	d := ArchivedDay{StartBalance: 7000, EndBalance: 7027.1425}
	assert.InDelta(t, 27.1425, d.Net(), 1e-9)
}
