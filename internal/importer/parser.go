package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/expenses-dev/expenses/internal/model"
)

// Options controls parsing.
type Options struct {
	// SkipOffsets overrides DefaultSkipOffsets when non-empty.
	SkipOffsets []int
	// ZeroMissingAmounts treats empty or "nan" amounts as 0 instead of null.
	// Older exports relied on this; leave it off unless you need their sums.
	ZeroMissingAmounts bool
}

func (o Options) offsets() []int {
	if len(o.SkipOffsets) > 0 {
		return o.SkipOffsets
	}
	return DefaultSkipOffsets
}

// ParseFile opens path and parses it as a bank export.
func ParseFile(path string, opts Options) (*model.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path, opts)
}

// Parse reads a semicolon-delimited export and returns its normalized batch.
// The first skip offset whose header carries the required columns and at least
// one data row wins; if none does, a *MalformedInputError is returned.
// Reconciliation rows are folded into a single summary row before returning.
func Parse(r io.Reader, source string, opts Options) (*model.Batch, error) {
	data, err := io.ReadAll(unicode.UTF8BOM.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	offsets := opts.offsets()
	for _, s := range Strategies(offsets) {
		tbl, ok := s.Read(data)
		if !ok {
			continue
		}
		b := buildBatch(tbl, source, opts)
		b.SkipOffset = s.Skip
		b.Transactions = FoldCompensation(b.Transactions, b.Columns)
		return b, nil
	}

	return nil, &MalformedInputError{Source: source, Offsets: offsets}
}

func buildBatch(tbl Table, source string, opts Options) *model.Batch {
	idx := make(map[string]int, len(tbl.Header))
	for i, col := range tbl.Header {
		if _, dup := idx[col]; !dup {
			idx[col] = i
		}
	}

	b := &model.Batch{
		Source:       source,
		Columns:      tbl.Header,
		Transactions: make([]model.Transaction, 0, len(tbl.Rows)),
	}

	for i, rec := range tbl.Rows {
		row := i + 1
		raw := make(map[string]string, len(tbl.Header))
		for j, col := range tbl.Header {
			if _, seen := raw[col]; !seen {
				raw[col] = rec[j]
			}
		}

		txn := model.Transaction{Raw: raw}
		txn.Counterparty = strings.TrimSpace(raw[model.ColPayee])
		txn.Payer = strings.TrimSpace(raw[model.ColPayer])
		txn.Purpose = strings.TrimSpace(raw[model.ColPurpose])
		txn.Category = strings.TrimSpace(raw[model.ColCategory])

		if d, err := ParseDate(raw[model.ColBookingDate]); err == nil {
			txn.BookingDate = d
		}

		// Rows folded into the compensation summary vanish, and so do their issues.
		_, hasPurpose := idx[model.ColPurpose]
		folded := hasPurpose && isCompensation(txn)

		amount, err := NormalizeAmount(raw[model.ColAmount], opts.ZeroMissingAmounts)
		if err != nil && !folded {
			b.Issues = append(b.Issues, &AmountParseError{Row: row, Value: raw[model.ColAmount], Err: err})
		}
		txn.Amount = amount

		for _, field := range []string{model.ColPayee, model.ColPurpose} {
			j, ok := idx[field]
			if !ok || j >= tbl.Short[i] {
				txn.Incomplete = true
				if !folded {
					b.Issues = append(b.Issues, &MissingFieldError{Row: row, Field: field})
				}
			}
		}

		b.Transactions = append(b.Transactions, txn)
	}
	return b
}
