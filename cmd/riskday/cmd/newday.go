package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/store"
)

var newdayCmd = &cobra.Command{
	Use:   "newday",
	Short: "Archive the open session and rebase the balance",
	Long: `Close out the current trading day: the session's trades are frozen into
history, the balance is rebased by the day's P&L, and an empty session
opens. At most one rollover per calendar date.`,
	Args: cobra.NoArgs,
	RunE: runNewday,
}

func init() {
	rootCmd.AddCommand(newdayCmd)
}

func runNewday(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(eng.SessionTrades()) == 0 {
		fmt.Println("Warning: no trades in session; balance rolls forward unchanged.")
	}

	day, err := eng.StartNewDay()
	if err != nil {
		return err
	}

	if err := saveEngine(eng, st); err != nil {
		return err
	}

	fmt.Printf("Closed %s: $%.2f -> $%.2f (net $%.2f, %d trades)\n",
		day.Date.Format(store.DateLayout), day.StartBalance, day.EndBalance, day.Net(), len(day.Trades))
	fmt.Printf("New day open at balance $%.2f\n", eng.Config().Balance)
	return nil
}
