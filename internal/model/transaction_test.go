package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestDirection(t *testing.T) {
	assert.True(t, Transaction{Amount: amount("-1")}.IsExpense())
	assert.False(t, Transaction{Amount: amount("-1")}.IsIncome())
	assert.True(t, Transaction{Amount: amount("2.5")}.IsIncome())

	zero := Transaction{Amount: amount("0")}
	assert.False(t, zero.IsExpense())
	assert.False(t, zero.IsIncome())

	null := Transaction{}
	assert.False(t, null.IsExpense())
	assert.False(t, null.IsIncome())
}

func TestClassificationText(t *testing.T) {
	txn := Transaction{Counterparty: "REWE Markt GmbH", Purpose: "REWE SAGT DANKE", Payer: "ignored"}
	assert.Equal(t, "REWE Markt GmbH REWE SAGT DANKE", txn.ClassificationText())
}

func TestClone_DeepCopiesRaw(t *testing.T) {
	txn := Transaction{Raw: map[string]string{ColPurpose: "Miete"}}
	c := txn.Clone()
	c.Raw[ColPurpose] = "changed"
	assert.Equal(t, "Miete", txn.Raw[ColPurpose])

	assert.Nil(t, Transaction{}.Clone().Raw)
}

func TestBatch_EarliestDate(t *testing.T) {
	b := &Batch{Transactions: []Transaction{
		{BookingDate: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
		{},
		{BookingDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}
	got, ok := b.EarliestDate()
	assert.True(t, ok)
	assert.Equal(t, 2, got.Day())

	_, ok = (&Batch{Transactions: []Transaction{{}}}).EarliestDate()
	assert.False(t, ok)
}

func TestBatch_HasColumn(t *testing.T) {
	b := &Batch{Columns: []string{ColBookingDate, ColAmount}}
	assert.True(t, b.HasColumn(ColAmount))
	assert.False(t, b.HasColumn(ColCategory))
}

func TestBatch_Clone(t *testing.T) {
	b := &Batch{
		Source:       "a.csv",
		Columns:      []string{ColBookingDate},
		Transactions: []Transaction{{Category: "wohnen", Raw: map[string]string{ColBookingDate: "01.01.25"}}},
	}
	c := b.Clone()
	c.Columns[0] = "x"
	c.Transactions[0].Category = "x"
	c.Transactions[0].Raw[ColBookingDate] = "x"

	assert.Equal(t, ColBookingDate, b.Columns[0])
	assert.Equal(t, "wohnen", b.Transactions[0].Category)
	assert.Equal(t, "01.01.25", b.Transactions[0].Raw[ColBookingDate])
}
