package summary

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/categorizer"
	"github.com/expenses-dev/expenses/internal/importer"
	"github.com/expenses-dev/expenses/internal/model"
)

func tx(date, category, amount string) model.Transaction {
	t := model.Transaction{Category: category}
	if date != "" {
		t.BookingDate, _ = time.Parse("2006-01-02", date)
	}
	if amount != "" {
		t.Amount = decimal.NewNullDecimal(decimal.RequireFromString(amount))
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func classifiedJanuary(t *testing.T) *model.Batch {
	t.Helper()
	lex, err := categorizer.LoadLexicon("../../testdata/categories.yaml")
	require.NoError(t, err)
	b, err := importer.ParseFile("../../testdata/giro_2025_01.csv", importer.Options{})
	require.NoError(t, err)
	return categorizer.New(lex, zerolog.Nop()).ClassifyBatch(b)
}

func TestDateSpan(t *testing.T) {
	txns := []model.Transaction{
		tx("2025-01-15", "", "-1"),
		tx("2025-01-03", "", "-1"),
		tx("", "", "-1"),
		tx("2025-01-31", "", "-1"),
	}
	assert.Equal(t, "03.01.2025 bis 31.01.2025", DateSpan(txns))
}

func TestDateSpan_Unknown(t *testing.T) {
	assert.Equal(t, UnknownPeriod, DateSpan(nil))
	assert.Equal(t, UnknownPeriod, DateSpan([]model.Transaction{}))
	assert.Equal(t, UnknownPeriod, DateSpan([]model.Transaction{tx("", "x", "1")}))
}

func TestDateSpan_SingleDay(t *testing.T) {
	assert.Equal(t, "05.02.2025 bis 05.02.2025", DateSpan([]model.Transaction{tx("2025-02-05", "", "1")}))
}

func TestSplitByCategory(t *testing.T) {
	txns := []model.Transaction{
		tx("2025-01-01", "lebensmittel", "-10.50"),
		tx("2025-01-02", "lebensmittel", "-4.50"),
		tx("2025-01-03", "wohnen", "-500"),
		tx("2025-01-04", "einkommen", "2500"),
		tx("2025-01-05", "wohnen", ""),
		tx("2025-01-06", "", "-3"),
	}

	got := SplitByCategory(txns)
	require.Len(t, got, 3)
	assert.True(t, got["lebensmittel"].Equal(dec("15")))
	assert.True(t, got["wohnen"].Equal(dec("500")))
	assert.True(t, got[""].Equal(dec("3")))
	_, ok := got["einkommen"]
	assert.False(t, ok)
}

func TestCategoryTotals_Order(t *testing.T) {
	txns := []model.Transaction{
		tx("", "b", "-5"),
		tx("", "a", "-5"),
		tx("", "c", "-100"),
	}

	got := CategoryTotals(txns)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Category)
	assert.Equal(t, "a", got[1].Category)
	assert.Equal(t, "b", got[2].Category)
}

func TestSplitByDirection(t *testing.T) {
	txns := []model.Transaction{
		tx("", "", "-10"),
		tx("", "", "-0.5"),
		tx("", "", "100"),
		tx("", "", "0"),
		tx("", "", ""),
	}

	d := SplitByDirection(txns)
	assert.True(t, d.Income.Equal(dec("100")))
	assert.True(t, d.Expense.Equal(dec("10.5")))
	assert.True(t, d.Net().Equal(dec("89.5")))
}

func TestSplitByDirection_Empty(t *testing.T) {
	d := SplitByDirection(nil)
	assert.True(t, d.Income.IsZero())
	assert.True(t, d.Expense.IsZero())
}

func TestSummaryOfTestdata(t *testing.T) {
	b := classifiedJanuary(t)

	assert.Equal(t, "03.01.2025 bis 31.01.2025", DateSpan(b.Transactions))

	d := SplitByDirection(b.Transactions)
	assert.True(t, d.Income.Equal(dec("2500")), d.Income.String())
	assert.True(t, d.Expense.Equal(dec("1432.73")), d.Expense.String())

	split := SplitByCategory(b.Transactions)
	assert.True(t, split["lebensmittel"].Equal(dec("45.67")))
	assert.True(t, split["restaurant"].Equal(dec("32.5")))
	assert.True(t, split["sonstiges"].Equal(dec("120")))
	assert.True(t, split["wohnen"].Equal(dec("1234.56")))

	totals := CategoryTotals(b.Transactions)
	require.Len(t, totals, 4)
	assert.Equal(t, "wohnen", totals[0].Category)
	assert.Equal(t, "sonstiges", totals[1].Category)
}
