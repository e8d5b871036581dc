package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

func newSummaryCommand(svc *ledger.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total income, total expense, and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := svc.Summarize(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total income:  %s %s\n", core.FormatAmount(sum.TotalIncome), cfg.Currency)
			fmt.Fprintf(out, "Total expense: %s %s\n", core.FormatAmount(sum.TotalExpense), cfg.Currency)
			fmt.Fprintf(out, "Balance:       %s %s\n", core.FormatAmount(sum.Balance), cfg.Currency)
			return nil
		},
	}
}
