package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/expenses-dev/expenses/internal/model"
)

// Delimiter separates fields in bank exports and classified files.
const Delimiter = ';'

// DefaultSkipOffsets lists the banner line counts tried, in order.
// Four banner lines is the most common layout, so it goes first.
var DefaultSkipOffsets = []int{4, 0, 1, 2, 3, 5}

// RequiredColumns must all be present for a header to be accepted.
var RequiredColumns = []string{model.ColBookingDate, model.ColAmount}

// HasRequiredColumns reports whether header contains every required column.
func HasRequiredColumns(header []string) bool {
	for _, req := range RequiredColumns {
		found := false
		for _, col := range header {
			if col == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Table is the delimited content found by a Strategy.
type Table struct {
	Header []string
	Rows   [][]string
	Short  []int // per row: field count before padding
}

// Strategy reads a table after skipping a fixed number of leading lines.
type Strategy struct {
	Skip int
}

// Strategies builds one Strategy per offset, preserving order.
func Strategies(offsets []int) []Strategy {
	out := make([]Strategy, len(offsets))
	for i, off := range offsets {
		out[i] = Strategy{Skip: off}
	}
	return out
}

// Read skips s.Skip lines of data, takes the next non-blank line as the header
// and returns the remaining rows. Rows wider than the header are dropped, shorter
// rows are padded, fully empty rows are removed. ok is false when the header
// lacks a required column or no data row remains.
func (s Strategy) Read(data []byte) (tbl Table, ok bool) {
	rest, found := skipLines(data, s.Skip)
	if !found {
		return Table{}, false
	}

	cr := csv.NewReader(bytes.NewReader(rest))
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return Table{}, false
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if !HasRequiredColumns(header) {
		return Table{}, false
	}
	tbl.Header = header

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Bad line: skip it and keep going.
			continue
		}
		if len(rec) > len(header) {
			continue
		}
		if isEmptyRecord(rec) {
			continue
		}
		n := len(rec)
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		tbl.Rows = append(tbl.Rows, rec)
		tbl.Short = append(tbl.Short, n)
	}

	return tbl, len(tbl.Rows) > 0
}

// skipLines drops the first n lines of data. found is false if data has fewer lines.
func skipLines(data []byte, n int) (rest []byte, found bool) {
	rest = data
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(rest, '\n')
		if idx < 0 {
			return nil, false
		}
		rest = rest[idx+1:]
	}
	return rest, true
}

func isEmptyRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
