package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/engine"
)

var logCmd = &cobra.Command{
	Use:   "log <win|loss>",
	Short: "Record a trade result",
	Long: `Record a win or loss against the current risk size.

Without --amount, a win pays currentRisk * rewardRisk and a loss costs
currentRisk. With --amount, the given dollar figure is used instead (sign
is forced to match the outcome).

Examples:
  riskday log win
  riskday log loss
  riskday log win --amount 42.50`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

var logAmount float64

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().Float64VarP(&logAmount, "amount", "a", 0, "manual P&L amount in dollars")
}

func runLog(cmd *cobra.Command, args []string) error {
	outcome, err := parseOutcome(args[0])
	if err != nil {
		return err
	}

	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	var res engine.TradeResult
	if cmd.Flags().Changed("amount") {
		res, err = eng.RecordTradeAmount(outcome, logAmount)
	} else {
		res, err = eng.RecordTrade(outcome)
	}
	if err != nil {
		return err
	}

	if err := saveEngine(eng, st); err != nil {
		return err
	}

	fmt.Printf("Logged %s: $%.2f (%.1fR at $%.2f risk)\n",
		res.Trade.Outcome, res.Trade.PnL, res.Trade.RealizedR(), res.Trade.RiskAtEntry)
	fmt.Printf("Next risk: $%.2f  Session PnL: $%.1f  Stage: %+d\n",
		res.State.CurrentRisk, res.State.CumulativePnL, res.State.Stage)

	if res.Limits.TargetHit {
		fmt.Println("Daily profit target reached. Wins are locked.")
	}
	if res.Limits.LossLimitHit {
		fmt.Println("Daily loss limit reached. Trading is locked.")
	}
	return nil
}

func parseOutcome(s string) (engine.Outcome, error) {
	switch s {
	case "win":
		return engine.Win, nil
	case "loss":
		return engine.Loss, nil
	default:
		return "", fmt.Errorf("outcome must be 'win' or 'loss', got %q", s)
	}
}
