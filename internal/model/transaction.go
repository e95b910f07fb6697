package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names used by German bank exports.
const (
	ColBookingDate = "Buchungsdatum"
	ColValueDate   = "Wertstellung"
	ColStatus      = "Status"
	ColPayer       = "Zahlungspflichtige*r"
	ColPayee       = "Zahlungsempfänger*in"
	ColPurpose     = "Verwendungszweck"
	ColType        = "Umsatztyp"
	ColIBAN        = "IBAN"
	ColAmount      = "Betrag (€)"
	ColCreditorID  = "Gläubiger-ID"
	ColMandateRef  = "Mandatsreferenz"
	ColCustomerRef = "Kundenreferenz"
	ColCategory    = "Kategorie"
)

// FallbackCategory is assigned when no lexicon keyword matches.
const FallbackCategory = "sonstiges"

// Transaction is one normalized row of a bank export.
type Transaction struct {
	BookingDate  time.Time           // zero if unparseable
	Counterparty string              // Zahlungsempfänger*in
	Payer        string              // Zahlungspflichtige*r
	Purpose      string              // Verwendungszweck
	Amount       decimal.NullDecimal // negative = expense, positive = income; !Valid = unparseable
	Category     string              // empty = unclassified
	Synthetic    bool                // compensation summary row
	Incomplete   bool                // lacks counterparty or purpose; never classified

	// Raw holds the original cell values keyed by column name.
	Raw map[string]string
}

// HasDate reports whether the booking date was parsed.
func (t Transaction) HasDate() bool {
	return !t.BookingDate.IsZero()
}

// IsExpense reports whether the amount is known and negative.
func (t Transaction) IsExpense() bool {
	return t.Amount.Valid && t.Amount.Decimal.IsNegative()
}

// IsIncome reports whether the amount is known and positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.Valid && t.Amount.Decimal.IsPositive()
}

// ClassificationText is the text matched against the lexicon.
func (t Transaction) ClassificationText() string {
	return t.Counterparty + " " + t.Purpose
}

// Clone returns a deep copy of t.
func (t Transaction) Clone() Transaction {
	c := t
	if t.Raw != nil {
		c.Raw = make(map[string]string, len(t.Raw))
		for k, v := range t.Raw {
			c.Raw[k] = v
		}
	}
	return c
}
