package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/engine"
	"github.com/rydwhelan/riskday/policy"
	"github.com/rydwhelan/riskday/store"
)

var rootCmd = &cobra.Command{
	Use:   "riskday",
	Short: "A compounding risk calculator for discretionary day traders",
	Long: `Riskday tracks a running risk budget through a trading day: risk grows
on wins, is recomputed from the remaining daily pool on losses, and trading
locks once the daily stop-loss or profit target is reached.

It provides tools for:
  - Logging wins and losses (policy-sized or manual amounts)
  - Enforcing daily stop-loss and profit-target limits
  - Projecting best/worst-case win and loss streaks
  - Rolling the session into history and rebasing the balance each day
  - Cross-day statistics: win rate, profit factor, expectancy`,
}

var dbPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "./riskday.sqlite", "path to SQLite database")
}

// openEngine loads the three persisted records and rebuilds the engine.
// The caller owns the returned store and must Close it.
func openEngine() (*engine.Engine, *store.SQLite, error) {
	st, err := store.NewSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}

	cfg, ok, err := st.LoadSettings()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		cfg = policy.Default()
	}

	session, err := st.LoadSession()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load session: %w", err)
	}

	history, err := st.LoadHistory()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load history: %w", err)
	}

	eng, err := engine.Restore(cfg, session, history)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}

// saveEngine persists all three records in one transaction.
func saveEngine(eng *engine.Engine, st *store.SQLite) error {
	session := engine.Session{Trades: eng.SessionTrades()}
	if err := st.SaveAll(eng.Config(), session, eng.History()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
