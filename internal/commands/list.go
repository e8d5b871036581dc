package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

func newListCommand(svc *ledger.Service, cfg *config.Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := svc.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(txs) == 0 {
				fmt.Fprintln(out, "No transactions recorded.")
				return nil
			}
			for _, tx := range txs {
				fmt.Fprintf(out, "#%d  %s  %-7s %12s %s  %s\n",
					tx.ID,
					tx.Date.Format(core.DateLayout),
					tx.Kind,
					core.FormatAmount(tx.Amount),
					cfg.Currency,
					tx.Category)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of transactions to show")

	return cmd
}
