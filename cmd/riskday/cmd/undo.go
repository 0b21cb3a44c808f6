package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the most recently logged trade",
	Long: `Remove the last trade from the open session. One level deep, no redo;
this is a safety valve for a mis-click, not a history editor.`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	state, ok := eng.UndoLastTrade()
	if !ok {
		fmt.Println("Nothing to undo: the session has no trades.")
		return nil
	}

	if err := saveEngine(eng, st); err != nil {
		return err
	}

	fmt.Printf("Undone. Risk: $%.2f  Session PnL: $%.1f  Stage: %+d\n",
		state.CurrentRisk, state.CumulativePnL, state.Stage)
	return nil
}
