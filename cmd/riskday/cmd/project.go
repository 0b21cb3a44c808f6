package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/engine"
)

var projectCmd = &cobra.Command{
	Use:   "project <win|loss>",
	Short: "Project a hypothetical win or loss streak",
	Long: `Run the compounding recurrence forward from the current state without
touching the trade log: a win streak shows how risk grows toward the cap,
a loss streak shows the daily pool draining.

Examples:
  riskday project win
  riskday project loss --depth 12`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

var projectDepth int

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().IntVarP(&projectDepth, "depth", "n", engine.DefaultProjectionDepth, "number of streak steps")
}

func runProject(cmd *cobra.Command, args []string) error {
	outcome, err := parseOutcome(args[0])
	if err != nil {
		return err
	}

	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	var rows []engine.ProjectionRow
	if outcome == engine.Win {
		rows = eng.ProjectWinStreak(projectDepth)
	} else {
		rows = eng.ProjectLossStreak(projectDepth)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Stage", "Risk", "Total PnL"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			fmt.Sprintf("%+d", r.Stage),
			fmt.Sprintf("$%.1f", r.Risk),
			fmt.Sprintf("$%.1f", r.CumulativePnL),
		})
	}
	t.Render()
	return nil
}
