package engine

// Stats aggregates every trade across the archived history plus the open
// session.
type Stats struct {
	Trades int
	Wins   int
	Losses int

	WinRate      float64 // percent
	ProfitFactor float64
	AvgRealizedR float64 // winning trades only
	NetPnL       float64
	Expectancy   float64 // net P&L per trade
}

// ComputeGlobalStats folds over all archived days and the open session.
//
// ProfitFactor is grossProfit/grossLoss when there are losses; with profit
// but no losses it reports the sentinel 100 ("undefined but positive")
// instead of dividing by zero.
func ComputeGlobalStats(history []ArchivedDay, session Session) Stats {
	var st Stats
	var grossProfit, grossLoss, sumR float64

	tally := func(trades []Trade) {
		for _, t := range trades {
			st.Trades++
			if t.Outcome == Win {
				st.Wins++
				grossProfit += t.PnL
				sumR += t.RealizedR()
			} else {
				st.Losses++
				grossLoss += -t.PnL
			}
		}
	}

	for _, d := range history {
		tally(d.Trades)
	}
	tally(session.Trades)

	if st.Trades > 0 {
		st.WinRate = float64(st.Wins) / float64(st.Trades) * 100
		st.Expectancy = (grossProfit - grossLoss) / float64(st.Trades)
	}
	switch {
	case grossLoss > 0:
		st.ProfitFactor = grossProfit / grossLoss
	case grossProfit > 0:
		st.ProfitFactor = 100
	}
	if st.Wins > 0 {
		st.AvgRealizedR = sumR / float64(st.Wins)
	}
	st.NetPnL = grossProfit - grossLoss

	return st
}
