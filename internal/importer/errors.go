package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput matches any *MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// ErrMissingAmount is wrapped by AmountParseError when the amount cell is empty.
var ErrMissingAmount = errors.New("missing amount")

// MalformedInputError reports that no skip offset produced a usable header.
type MalformedInputError struct {
	Source  string
	Offsets []int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: no header with columns %s at skip offsets %v",
		e.Source, strings.Join(RequiredColumns, ", "), e.Offsets)
}

// Is makes errors.Is(err, ErrMalformedInput) succeed.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// MissingFieldError marks a row that lacks a field needed for classification.
// The row stays in the batch with an empty category.
type MissingFieldError struct {
	Row   int // 1-based data row
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: missing field %q", e.Row, e.Field)
}

// AmountParseError marks a row whose amount could not be normalized.
// The row's amount is null and is excluded from sums.
type AmountParseError struct {
	Row   int
	Value string
	Err   error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("row %d: parsing amount %q: %v", e.Row, e.Value, e.Err)
}

func (e *AmountParseError) Unwrap() error { return e.Err }
