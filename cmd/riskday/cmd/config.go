package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rydwhelan/riskday/policy"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update the risk policy",
	Long: `View or update the six policy fields. Updates are validated as a whole;
an invalid combination is refused and the previous settings stay in effect.

Subcommands:
  show - Display the current settings
  set  - Update one or more fields
  init - Write a starter settings file

Examples:
  riskday config show
  riskday config set --balance 10000 --daily-risk 0.5
  riskday config init -o riskday.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update one or more policy fields",
	Args:  cobra.NoArgs,
	RunE:  runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter settings file with defaults",
	RunE:  runConfigInit,
}

var (
	setBalance     float64
	setMaxRisk     float64
	setDailyRisk   float64
	setDailyTarget float64
	setCompound    float64
	setRewardRisk  float64

	configInitOutput string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)

	configSetCmd.Flags().Float64Var(&setBalance, "balance", 0, "account balance in dollars")
	configSetCmd.Flags().Float64Var(&setMaxRisk, "max-risk", 0, "max risk per trade, percent of balance")
	configSetCmd.Flags().Float64Var(&setDailyRisk, "daily-risk", 0, "daily stop-loss, percent of balance")
	configSetCmd.Flags().Float64Var(&setDailyTarget, "daily-target", 0, "daily profit target, percent of balance")
	configSetCmd.Flags().Float64Var(&setCompound, "compound", 0, "reinvestment rate, percent of realized profit")
	configSetCmd.Flags().Float64Var(&setRewardRisk, "rr", 0, "reward-to-risk ratio for policy-sized wins")

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "riskday.yaml", "output settings file path")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := eng.Config()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"balance", fmt.Sprintf("$%.2f", cfg.Balance)},
		{"max_risk_pct", fmt.Sprintf("%g%%", cfg.MaxRiskPct)},
		{"daily_risk_pct", fmt.Sprintf("%g%%", cfg.DailyRiskPct)},
		{"daily_target_pct", fmt.Sprintf("%g%%", cfg.DailyTargetPct)},
		{"compound_pct", fmt.Sprintf("%g%%", cfg.CompoundPct)},
		{"reward_risk", fmt.Sprintf("%g", cfg.RewardRisk)},
	})
	t.Render()
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	eng, st, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := eng.Config()

	if cmd.Flags().Changed("balance") {
		cfg.Balance = setBalance
	}
	if cmd.Flags().Changed("max-risk") {
		cfg.MaxRiskPct = setMaxRisk
	}
	if cmd.Flags().Changed("daily-risk") {
		cfg.DailyRiskPct = setDailyRisk
	}
	if cmd.Flags().Changed("daily-target") {
		cfg.DailyTargetPct = setDailyTarget
	}
	if cmd.Flags().Changed("compound") {
		cfg.CompoundPct = setCompound
	}
	if cmd.Flags().Changed("rr") {
		cfg.RewardRisk = setRewardRisk
	}

	if err := eng.SetConfig(cfg); err != nil {
		return err
	}
	if err := saveEngine(eng, st); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return runConfigShow(cmd, args)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := policy.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Printf("Created default settings: %s\n", configInitOutput)
	return nil
}
