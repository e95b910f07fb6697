// Package summary derives the figures shown per statement: date span,
// expense totals per category, and the income/expense split.
// Rows with an unknown amount are left out of every sum.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expenses-dev/expenses/internal/model"
)

// UnknownPeriod is returned by DateSpan when no booking date is known.
const UnknownPeriod = "Zeitraum unbekannt"

const spanDateFormat = "02.01.2006"

// Direction is the income/expense split of a set of transactions.
// Expense is positive (sum of absolute values).
type Direction struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns Income minus Expense.
func (d Direction) Net() decimal.Decimal {
	return d.Income.Sub(d.Expense)
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DateSpan formats the earliest and latest booking date as
// "03.01.2025 bis 31.01.2025".
func DateSpan(txns []model.Transaction) string {
	var lo, hi model.Transaction
	found := false
	for _, t := range txns {
		if !t.HasDate() {
			continue
		}
		if !found {
			lo, hi, found = t, t, true
			continue
		}
		if t.BookingDate.Before(lo.BookingDate) {
			lo = t
		}
		if t.BookingDate.After(hi.BookingDate) {
			hi = t
		}
	}
	if !found {
		return UnknownPeriod
	}
	return lo.BookingDate.Format(spanDateFormat) + " bis " + hi.BookingDate.Format(spanDateFormat)
}

// SplitByCategory sums the absolute expense amount per category.
// Unclassified rows are collected under the empty category name.
func SplitByCategory(txns []model.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		out[t.Category] = out[t.Category].Add(t.Amount.Decimal.Abs())
	}
	return out
}

// CategoryTotals is SplitByCategory sorted by amount, largest first,
// then by category name.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	split := SplitByCategory(txns)
	out := make([]CategoryTotal, 0, len(split))
	for cat, amt := range split {
		out = append(out, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// SplitByDirection sums positive amounts as income and the absolute
// value of negative amounts as expense.
func SplitByDirection(txns []model.Transaction) Direction {
	d := Direction{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range txns {
		switch {
		case t.IsIncome():
			d.Income = d.Income.Add(t.Amount.Decimal)
		case t.IsExpense():
			d.Expense = d.Expense.Add(t.Amount.Decimal.Abs())
		}
	}
	return d
}
