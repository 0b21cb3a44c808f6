package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/engine"
	"github.com/rydwhelan/riskday/policy"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current day's risk state and limits",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := eng.Config()
	state := eng.State()
	limits := eng.Limits()

	target := engine.DailyTarget(cfg)
	budget := engine.DailyRiskBudget(cfg)
	pool := engine.PoolRemaining(cfg, state)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"Balance", fmt.Sprintf("$%.0f", cfg.Balance+state.CumulativePnL)},
		{"Daily Target", fmt.Sprintf("$%.0f", target)},
		{"Daily Stop", fmt.Sprintf("-$%.0f", budget)},
		{"Current Risk", fmt.Sprintf("$%.2f", state.CurrentRisk)},
		{"Session PnL", fmt.Sprintf("$%.1f", state.CumulativePnL)},
		{"Pool Remaining", fmt.Sprintf("$%.1f", math.Max(0, pool))},
		{"Stage", fmt.Sprintf("%+d", state.Stage)},
	})
	t.Render()

	fmt.Println(statusNote(cfg, state, limits))
	fmt.Printf("log win: %s  log loss: %s  newday: %s\n",
		enabled(!limits.TargetHit && !limits.LossLimitHit),
		enabled(!limits.LossLimitHit),
		enabled(eng.NewDayAvailable()),
	)
	return nil
}

func statusNote(cfg policy.Settings, state engine.State, limits engine.Limits) string {
	target := engine.DailyTarget(cfg)
	budget := engine.DailyRiskBudget(cfg)

	switch {
	case limits.TargetHit:
		gainPct := state.CumulativePnL / target * 100
		return fmt.Sprintf("TARGET REACHED: %.0f%% ($%.0f / $%.0f)", gainPct, state.CumulativePnL, target)
	case limits.LossLimitHit:
		return fmt.Sprintf("LOSS LIMIT HIT: ($%.0f / $%.0f)", math.Abs(state.CumulativePnL), budget)
	default:
		prefix := "Up"
		if state.CumulativePnL < 0 {
			prefix = "Down"
		}
		progressPct := state.CumulativePnL / cfg.Balance * 100
		return fmt.Sprintf("%s by %.1f%% ($%.1f)", prefix, math.Abs(progressPct), state.CumulativePnL)
	}
}

func enabled(ok bool) string {
	if ok {
		return "enabled"
	}
	return "disabled"
}
