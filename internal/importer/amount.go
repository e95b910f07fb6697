package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the booking date layout of the exports (day.month.two-digit-year).
const DateFormat = "2.1.06"

// NormalizeAmount converts a German formatted amount ("1.234,56") to a decimal.
// "." is a thousands separator and is dropped, "," becomes the decimal point.
//
// Empty cells and the literal "nan" are missing amounts: they yield a null
// decimal and ErrMissingAmount unless zeroMissing is set, in which case they
// become zero.
func NormalizeAmount(s string, zeroMissing bool) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		if zeroMissing {
			return decimal.NewNullDecimal(decimal.Zero), nil
		}
		return decimal.NullDecimal{}, ErrMissingAmount
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// FormatAmount renders d in the export's German notation, e.g. -1234.5 -> "-1.234,50".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// ParseDate parses a booking date such as "03.01.25".
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}
