package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/interest"
)

func newInterestCommand(cfg *config.Config) *cobra.Command {
	interestCmd := &cobra.Command{
		Use:   "interest",
		Short: "Closed-form interest calculators",
	}

	interestCmd.AddCommand(
		newSimpleInterestCommand(cfg),
		newCompoundInterestCommand(cfg),
	)

	return interestCmd
}

func newSimpleInterestCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "simple <principal> <rate-percent> <years>",
		Short: "Compute simple interest P(1 + rt)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, ratePercent, years, err := parseInterestArgs(args)
			if err != nil {
				return err
			}

			amount := interest.Simple(principal, ratePercent, years)
			fmt.Fprintf(cmd.OutOrStdout(), "Simple interest result: %s %s\n",
				core.FormatAmount(amount), cfg.Currency)
			return nil
		},
	}
}

func newCompoundInterestCommand(cfg *config.Config) *cobra.Command {
	var perYear int

	cmd := &cobra.Command{
		Use:   "compound <principal> <rate-percent> <years>",
		Short: "Compute compound interest P(1 + r/n)^(nt)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, ratePercent, years, err := parseInterestArgs(args)
			if err != nil {
				return err
			}

			amount, err := interest.Compound(principal, ratePercent, years, perYear)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Compound interest result: %s %s\n",
				core.FormatAmount(amount), cfg.Currency)
			return nil
		},
	}

	cmd.Flags().IntVar(&perYear, "per-year", 1, "compounding periods per year (e.g. 12 for monthly)")

	return cmd
}

func parseInterestArgs(args []string) (principal, ratePercent, years float64, err error) {
	names := []string{"principal", "rate-percent", "years"}
	vals := make([]float64, 3)
	for i, raw := range args {
		vals[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s %q: expected a decimal number", names[i], raw)
		}
	}
	return vals[0], vals[1], vals[2], nil
}
