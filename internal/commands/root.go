// Package commands defines the fintrack CLI. Commands parse and render
// only; all typed values go straight to the ledger service or the
// interest calculators.
package commands

import (
	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(svc *ledger.Service, cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fintrack",
		Short: "Personal income and expense ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newIncomeCommand(svc, cfg),
		newExpenseCommand(svc, cfg),
		newSummaryCommand(svc, cfg),
		newListCommand(svc, cfg),
		newInterestCommand(cfg),
	)

	return rootCmd
}
