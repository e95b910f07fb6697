package summary

import (
	"github.com/shopspring/decimal"

	"github.com/expenses-dev/expenses/internal/model"
)

// Row is one transaction as handed to the display layer.
// Party is the payee for expenses and the payer for income.
type Row struct {
	Date     string           `json:"date"`
	Party    string           `json:"party"`
	Purpose  string           `json:"purpose"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
}

// Tab is the display contract for one statement.
type Tab struct {
	Source     string          `json:"source"`
	Label      string          `json:"label"`
	Span       string          `json:"span"`
	Direction  Direction       `json:"direction"`
	Categories []CategoryTotal `json:"categories"`
	Expenses   []Row           `json:"expenses"`
	Income     []Row           `json:"income"`
	Rows       int             `json:"rows"`
	Issues     int             `json:"issues"`
}

// Build derives the Tab for b.
func Build(b *model.Batch) Tab {
	txns := b.Transactions
	return Tab{
		Source:     b.Source,
		Label:      TabLabel(b.Source),
		Span:       DateSpan(txns),
		Direction:  SplitByDirection(txns),
		Categories: CategoryTotals(txns),
		Expenses:   Rows(Expenses(txns)),
		Income:     Rows(Income(txns)),
		Rows:       len(txns),
		Issues:     len(b.Issues),
	}
}

// Dashboard builds one Tab per batch, in the given order.
func Dashboard(batches []*model.Batch) []Tab {
	tabs := make([]Tab, 0, len(batches))
	for _, b := range batches {
		tabs = append(tabs, Build(b))
	}
	return tabs
}

// Rows converts transactions into display rows.
func Rows(txns []model.Transaction) []Row {
	out := make([]Row, 0, len(txns))
	for _, t := range txns {
		r := Row{
			Party:    t.Counterparty,
			Purpose:  t.Purpose,
			Category: t.Category,
		}
		if t.IsIncome() {
			r.Party = t.Payer
		}
		if t.HasDate() {
			r.Date = t.BookingDate.Format(spanDateFormat)
		}
		if t.Amount.Valid {
			amt := t.Amount.Decimal
			r.Amount = &amt
		}
		out = append(out, r)
	}
	return out
}
