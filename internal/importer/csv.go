package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/expenses-dev/expenses/internal/model"
)

// OutputColumns returns the batch header with the category column appended
// unless it is already present.
func OutputColumns(b *model.Batch) []string {
	cols := append([]string(nil), b.Columns...)
	if !b.HasColumn(model.ColCategory) {
		cols = append(cols, model.ColCategory)
	}
	return cols
}

// Write writes a batch as a semicolon-delimited classified file.
func Write(w io.Writer, b *model.Batch) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	cols := OutputColumns(b)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range b.Transactions {
		if err := cw.Write(MarshalTransaction(txn, cols)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes a batch to path, replacing any existing file.
func WriteFile(path string, b *model.Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// MarshalTransaction converts a transaction to a row in column order.
// Known amounts are re-rendered in German notation; unknown ones keep their raw text.
func MarshalTransaction(txn model.Transaction, cols []string) []string {
	row := make([]string, len(cols))
	for i, col := range cols {
		switch col {
		case model.ColAmount:
			if txn.Amount.Valid {
				row[i] = FormatAmount(txn.Amount.Decimal)
			} else {
				row[i] = txn.Raw[col]
			}
		case model.ColCategory:
			row[i] = txn.Category
		default:
			row[i] = txn.Raw[col]
		}
	}
	return row
}
