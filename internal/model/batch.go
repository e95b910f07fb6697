package model

import "time"

// Batch holds the transactions parsed from one source file (one statement period).
// A Batch is treated as immutable; re-importing a file produces a new Batch.
type Batch struct {
	Source       string   // file identity, usually the path
	Columns      []string // header as read from the file
	SkipOffset   int      // leading lines skipped before the header
	Transactions []Transaction
	Issues       []error // row-level problems (missing fields, bad amounts)
}

// HasColumn reports whether the source header contains name.
func (b *Batch) HasColumn(name string) bool {
	for _, c := range b.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EarliestDate returns the minimum parsed booking date.
// ok is false when no row has a parseable date.
func (b *Batch) EarliestDate() (earliest time.Time, ok bool) {
	for _, t := range b.Transactions {
		if !t.HasDate() {
			continue
		}
		if !ok || t.BookingDate.Before(earliest) {
			earliest = t.BookingDate
			ok = true
		}
	}
	return earliest, ok
}

// Clone returns a deep copy of b.
func (b *Batch) Clone() *Batch {
	c := &Batch{
		Source:     b.Source,
		Columns:    append([]string(nil), b.Columns...),
		SkipOffset: b.SkipOffset,
		Issues:     append([]error(nil), b.Issues...),
	}
	c.Transactions = make([]Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		c.Transactions[i] = t.Clone()
	}
	return c
}
