package summary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/model"
)

func TestExpenses_SortedAscending(t *testing.T) {
	b := classifiedJanuary(t)

	got := Expenses(b.Transactions)
	require.Len(t, got, 5)
	assert.True(t, got[0].Amount.Decimal.Equal(dec("-1234.56")))
	assert.Equal(t, "Tankstelle Aral", got[1].Counterparty)
	assert.True(t, got[2].Synthetic)
	assert.True(t, got[4].Amount.Decimal.Equal(dec("-32.5")))
}

func TestIncome_SortedDescending(t *testing.T) {
	txns := []model.Transaction{tx("", "", "10"), tx("", "", "-3"), tx("", "", "250"), tx("", "", "")}

	got := Income(txns)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Decimal.Equal(dec("250")))
	assert.True(t, got[1].Amount.Decimal.Equal(dec("10")))
}

func TestExpensesInCategory(t *testing.T) {
	b := classifiedJanuary(t)

	got := ExpensesInCategory(b.Transactions, "sonstiges")
	require.Len(t, got, 2)
	assert.Equal(t, "Tankstelle Aral", got[0].Counterparty)
	assert.Equal(t, "Ausgleich Verrechnet", got[1].Purpose)

	assert.Empty(t, ExpensesInCategory(b.Transactions, "einkommen"))
	assert.Empty(t, ExpensesInCategory(b.Transactions, "unbekannt"))
}

func TestBuild(t *testing.T) {
	b := classifiedJanuary(t)

	tab := Build(b)
	assert.Equal(t, "giro 2025", tab.Label)
	assert.Equal(t, "03.01.2025 bis 31.01.2025", tab.Span)
	assert.Equal(t, 6, tab.Rows)
	assert.Len(t, tab.Expenses, 5)
	require.Len(t, tab.Income, 1)
	assert.Equal(t, "Arbeitgeber AG", tab.Income[0].Party)
	assert.Equal(t, "Hausverwaltung Schmidt", tab.Expenses[0].Party)
	assert.Equal(t, "31.01.2025", tab.Expenses[0].Date)
}

func TestRows_NullAmount(t *testing.T) {
	rows := Rows([]model.Transaction{tx("", "x", "")})
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Amount)
	assert.Equal(t, "", rows[0].Date)
}

func TestDashboard_JSON(t *testing.T) {
	tabs := Dashboard([]*model.Batch{classifiedJanuary(t), batch("leer_2025_02.csv")})
	require.Len(t, tabs, 2)
	assert.Equal(t, UnknownPeriod, tabs[1].Span)

	data, err := json.Marshal(tabs)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "giro 2025", decoded[0]["label"])
	dir := decoded[0]["direction"].(map[string]any)
	assert.Equal(t, "2500", dir["income"])
	assert.Equal(t, "1432.73", dir["expense"])
}
