package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics across all days",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	s := eng.GlobalStats()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"Trades", fmt.Sprintf("%d (%dW / %dL)", s.Trades, s.Wins, s.Losses)},
		{"Win Rate", fmt.Sprintf("%.1f%%", s.WinRate)},
		{"Profit Factor", fmt.Sprintf("%.2f", s.ProfitFactor)},
		{"Avg Realized R", fmt.Sprintf("%.2fR", s.AvgRealizedR)},
		{"Net PnL", fmt.Sprintf("$%.2f", s.NetPnL)},
		{"Expectancy", fmt.Sprintf("$%.2f / trade", s.Expectancy)},
	})
	t.Render()
	return nil
}
