package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/model"
	"github.com/expenses-dev/expenses/internal/summary"
)

const (
	directionIncome  = "income"
	directionExpense = "expense"
)

func newDetailsCommand() *cobra.Command {
	var repoDir, category, direction string

	cmd := &cobra.Command{
		Use:   "details <file>",
		Short: "List the rows behind a category or the income/expense split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, repoDir)
			if err != nil {
				return err
			}
			return runDetails(cmd.OutOrStdout(), ws, args[0], category, direction)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&category, "category", "", "expenses in this category")
	cmd.Flags().StringVar(&direction, "direction", "", "income or expense")
	cmd.MarkFlagsMutuallyExclusive("category", "direction")
	cmd.MarkFlagsOneRequired("category", "direction")

	return cmd
}

func runDetails(out io.Writer, ws *workspace, file, category, direction string) error {
	store, err := ws.statements()
	if err != nil {
		return err
	}
	batch, ok := store.Get(file)
	if !ok {
		return fmt.Errorf("no classified statement %q in %s", file, store.Dir())
	}

	var title string
	var txns []model.Transaction
	switch {
	case category != "":
		title = "Details for category: " + category
		txns = summary.ExpensesInCategory(batch.Transactions, category)
	case direction == directionExpense:
		title = "Expenses"
		txns = summary.Expenses(batch.Transactions)
	case direction == directionIncome:
		title = "Income"
		txns = summary.Income(batch.Transactions)
	default:
		return fmt.Errorf("invalid direction %q (want %s or %s)", direction, directionIncome, directionExpense)
	}

	fmt.Fprintln(out, title)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Buchungsdatum\tPartei\tVerwendungszweck\tBetrag (€)\t")
	for _, r := range summary.Rows(txns) {
		amount := ""
		if r.Amount != nil {
			amount = euro(*r.Amount)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.Date, r.Party, r.Purpose, amount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d row(s)\n", len(txns))
	return nil
}
