package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/importer"
	"github.com/expenses-dev/expenses/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	var repoDir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses and category totals per statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, repoDir)
			if err != nil {
				return err
			}
			return runSummary(cmd.OutOrStdout(), ws, asJSON)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the dashboard data as JSON")

	return cmd
}

func runSummary(out io.Writer, ws *workspace, asJSON bool) error {
	store, err := ws.statements()
	if err != nil {
		return err
	}
	tabs := summary.Dashboard(store.Batches())

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tabs)
	}

	for _, s := range store.Skipped() {
		color.New(color.FgYellow).Fprintf(out, "skipped %s: %v\n", filepath.Base(s.Source), s.Err)
	}
	if len(tabs) == 0 {
		fmt.Fprintf(out, "No classified statements in %s.\n", store.Dir())
		return nil
	}

	heading := color.New(color.Bold)
	income := color.New(color.FgGreen)
	expense := color.New(color.FgRed)
	for i, tab := range tabs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		heading.Fprintf(out, "%s", tab.Label)
		fmt.Fprintf(out, "  %s  (%s)\n", tab.Span, filepath.Base(tab.Source))
		income.Fprintf(out, "  Einnahmen %14s\n", euro(tab.Direction.Income))
		expense.Fprintf(out, "  Ausgaben  %14s\n", euro(tab.Direction.Expense))
		fmt.Fprintf(out, "  Saldo     %14s\n", euro(tab.Direction.Net()))
		for _, ct := range tab.Categories {
			name := ct.Category
			if name == "" {
				name = "(ohne Kategorie)"
			}
			fmt.Fprintf(out, "    %-20s %14s\n", name, euro(ct.Amount))
		}
		if tab.Issues > 0 {
			color.New(color.FgYellow).Fprintf(out, "  %d row issue(s)\n", tab.Issues)
		}
	}
	return nil
}

func euro(d decimal.Decimal) string {
	return importer.FormatAmount(d) + " €"
}
