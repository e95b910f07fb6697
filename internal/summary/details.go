package summary

import (
	"sort"

	"github.com/expenses-dev/expenses/internal/model"
)

// Expenses returns the expense rows sorted by amount, largest outflow first.
func Expenses(txns []model.Transaction) []model.Transaction {
	out := filter(txns, model.Transaction.IsExpense)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Decimal.LessThan(out[j].Amount.Decimal)
	})
	return out
}

// Income returns the income rows sorted by amount, largest first.
func Income(txns []model.Transaction) []model.Transaction {
	out := filter(txns, model.Transaction.IsIncome)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Decimal.GreaterThan(out[j].Amount.Decimal)
	})
	return out
}

// ExpensesInCategory returns the expense rows of one category in batch order.
func ExpensesInCategory(txns []model.Transaction, category string) []model.Transaction {
	return filter(txns, func(t model.Transaction) bool {
		return t.Category == category && t.IsExpense()
	})
}

func filter(txns []model.Transaction, keep func(model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
