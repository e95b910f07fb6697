package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/categorizer"
	"github.com/expenses-dev/expenses/internal/model"
)

func newCategoriesCommand() *cobra.Command {
	var repoDir, explain string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the category lexicon in tie-break order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, repoDir)
			if err != nil {
				return err
			}
			lex, err := ws.lexicon()
			if err != nil {
				return err
			}
			if explain != "" {
				return runExplain(cmd.OutOrStdout(), categorizer.New(lex, ws.log), lex, explain)
			}
			return runCategories(cmd.OutOrStdout(), lex)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&explain, "explain", "", "show keyword overlap per category for this text")

	return cmd
}

func runCategories(out io.Writer, lex *categorizer.Lexicon) error {
	for i, c := range lex.Categories() {
		fmt.Fprintf(out, "%2d. %s: %s\n", i+1, c.Name, strings.Join(c.Keywords, ", "))
	}
	fmt.Fprintf(out, "fallback: %s\n", model.FallbackCategory)
	return nil
}

func runExplain(out io.Writer, cat *categorizer.Categorizer, lex *categorizer.Lexicon, text string) error {
	overlap := cat.Overlap(text)
	for _, name := range lex.Names() {
		fmt.Fprintf(out, "%-20s %d\n", name, overlap[name])
	}
	fmt.Fprintf(out, "=> %s\n", cat.Classify(text))
	return nil
}
