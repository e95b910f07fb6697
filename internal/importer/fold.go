package importer

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expenses-dev/expenses/internal/model"
)

// Compensation rows: internal reconciliation bookings the bank marks in the purpose.
const (
	CompensationMarker  = "Ausgleich"
	CompensationPurpose = "Ausgleich Verrechnet"
	CompensationType    = "Zusammenfassung"
)

// FoldCompensation removes every row whose purpose contains CompensationMarker
// (case-sensitive) and appends one synthetic row carrying their summed amount.
// Date, value date and status come from the first matching row in input order,
// so txns must not be re-sorted beforehand. Null amounts do not contribute;
// if every folded amount is null the summary amount is null too.
// Without a purpose column txns are returned unchanged.
func FoldCompensation(txns []model.Transaction, columns []string) []model.Transaction {
	if !slices.Contains(columns, model.ColPurpose) {
		return txns
	}

	var (
		kept  []model.Transaction
		first *model.Transaction
		total decimal.NullDecimal
	)
	for i := range txns {
		t := txns[i]
		if !isCompensation(t) {
			kept = append(kept, t)
			continue
		}
		if first == nil {
			first = &txns[i]
		}
		if t.Amount.Valid {
			total = decimal.NewNullDecimal(total.Decimal.Add(t.Amount.Decimal))
		}
	}
	if first == nil {
		return txns
	}

	raw := make(map[string]string, len(columns))
	for _, col := range columns {
		raw[col] = ""
	}
	for _, col := range []string{model.ColBookingDate, model.ColValueDate, model.ColStatus} {
		if _, ok := raw[col]; ok {
			raw[col] = first.Raw[col]
		}
	}
	raw[model.ColPurpose] = CompensationPurpose
	if _, ok := raw[model.ColType]; ok {
		raw[model.ColType] = CompensationType
	}

	summary := model.Transaction{
		BookingDate: first.BookingDate,
		Purpose:     CompensationPurpose,
		Amount:      total,
		Category:    model.FallbackCategory,
		Synthetic:   true,
		Raw:         raw,
	}
	return append(kept, summary)
}

func isCompensation(t model.Transaction) bool {
	return strings.Contains(t.Purpose, CompensationMarker)
}
