package commands

import (
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "expenses",
		Short:   "Classify and summarize German bank exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newClassifyCommand(),
		newImportCommand(),
		newSummaryCommand(),
		newDetailsCommand(),
		newCategoriesCommand(),
		newLogCommand(),
	)

	return rootCmd
}
