package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

func newIncomeCommand(svc *ledger.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "income <amount> [category]",
		Short: "Record an income entry",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd, svc, cfg, core.Income, args)
		},
	}
}

func newExpenseCommand(svc *ledger.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "expense <amount> [category]",
		Short: "Record an expense entry",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd, svc, cfg, core.Expense, args)
		},
	}
}

func runRecord(cmd *cobra.Command, svc *ledger.Service, cfg *config.Config, kind core.Kind, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	category := ""
	if len(args) == 2 {
		category = args[1]
	}

	id, err := svc.Record(cmd.Context(), kind, amount, category)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s #%d: %s %s\n",
		kind, id, core.FormatAmount(amount), cfg.Currency)
	return nil
}

// parseAmount turns a raw argument into a non-negative amount. Sign is
// carried by the command (income/expense), never by the amount itself.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: expected a decimal number", raw)
	}
	if amount < 0 {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", raw)
	}
	return amount, nil
}
