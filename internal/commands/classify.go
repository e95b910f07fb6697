package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/importer"
)

func newClassifyCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "classify <input> [output]",
		Short: "Classify one bank export",
		Long: "Classify one bank export and write it with a Kategorie column.\n" +
			"Without output, the result goes next to the input as <name>_classified.csv.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, repoDir)
			if err != nil {
				return err
			}

			input := args[0]
			output := filepath.Join(filepath.Dir(input), importer.ClassifiedName(input))
			if len(args) > 1 {
				output = args[1]
			}
			return runClassify(cmd, ws, input, output)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}

func runClassify(cmd *cobra.Command, ws *workspace, input, output string) error {
	cat, err := ws.categorizer()
	if err != nil {
		return err
	}

	batch, err := importer.ParseFile(input, ws.parseOptions())
	if err != nil {
		return err
	}
	for _, issue := range batch.Issues {
		ws.log.Warn().Err(issue).Str("file", input).Msg("row issue")
	}

	classified := cat.ClassifyBatch(batch)
	if err := importer.WriteFile(output, classified); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Classified %d rows from %s -> %s\n", len(classified.Transactions), input, output)
	return nil
}
