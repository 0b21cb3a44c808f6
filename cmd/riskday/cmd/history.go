package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/engine"
	"github.com/rydwhelan/riskday/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the open session and archived days, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	session := eng.SessionTrades()
	history := eng.History()

	if len(session) == 0 && len(history) == 0 {
		fmt.Println("No trades recorded yet.")
		return nil
	}

	if len(session) > 0 {
		fmt.Println("Current Session")
		renderTrades(session)
	}

	for _, d := range history {
		fmt.Printf("%s (Net: $%.2f)\n", d.Date.Format(store.DateLayout), d.Net())
		renderTrades(d.Trades)
	}
	return nil
}

// renderTrades prints a day's trades newest first.
func renderTrades(trades []engine.Trade) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Time", "Type", "PnL"})
	for i := len(trades) - 1; i >= 0; i-- {
		tr := trades[i]
		t.AppendRow(table.Row{
			tr.At.Format(store.TimeLayout),
			strings.ToUpper(string(tr.Outcome)),
			fmt.Sprintf("$%.2f", tr.PnL),
		})
	}
	t.Render()
}
