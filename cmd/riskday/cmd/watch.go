package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Wait until the next trading day unlocks",
	Long: `Poll the wall clock until a new calendar day may begin. Useful after a
rollover: the command returns (and prints a note) the moment the
duplicate-rollover guard clears at midnight. Ctrl-C to stop early.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var watchInterval time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", time.Minute, "poll interval")
}

func runWatch(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	if eng.NewDayAvailable() {
		fmt.Println("A new trading day is already available.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Today is already closed out; polling every %s...\n", watchInterval)

	now, ok := <-eng.WatchNewDay(ctx, watchInterval)
	if !ok {
		return ctx.Err()
	}

	fmt.Printf("New trading day unlocked at %s.\n", now.Format("3:04pm"))
	return nil
}
