package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(t *testing.T, s string) decimal.NullDecimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func TestStatementKind_Filename(t *testing.T) {
	tests := []struct {
		name string
		kind StatementKind
		want string
	}{
		{name: "income statement", kind: StatementIncome, want: "clean_income_statement.csv"},
		{name: "balance sheet", kind: StatementBalanceSheet, want: "clean_balance_sheet.csv"},
		{name: "cash flow", kind: StatementCashFlow, want: "clean_cash_flow.csv"},
		{name: "unknown kind", kind: StatementKind("equity"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Filename())
		})
	}
}

func TestStatementKind_Title(t *testing.T) {
	tests := []struct {
		name string
		kind StatementKind
		want string
	}{
		{name: "income statement", kind: StatementIncome, want: "Income Statement"},
		{name: "balance sheet", kind: StatementBalanceSheet, want: "Balance Sheet"},
		{name: "cash flow", kind: StatementCashFlow, want: "Cash Flow"},
		{name: "unknown kind falls back to the raw value", kind: StatementKind("equity"), want: "equity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Title())
		})
	}
}

func TestStatementKinds_FixedOrder(t *testing.T) {
	kinds := StatementKinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, StatementIncome, kinds[0])
	assert.Equal(t, StatementBalanceSheet, kinds[1])
	assert.Equal(t, StatementCashFlow, kinds[2])
}

func TestRawStatement_Set(t *testing.T) {
	s := NewRawStatement()
	s.Set("Revenue", "2024-06-30", num(t, "400"))
	s.Set("Revenue", "2023-06-30", num(t, "380"))
	s.Set("Gross Profit", "2024-06-30", num(t, "180"))
	s.Set("Gross Profit", "2023-06-30", num(t, "170"))

	// labels register in first-appearance order, once each
	assert.Equal(t, []string{"Revenue", "Gross Profit"}, s.RowLabels)
	assert.Equal(t, []string{"2024-06-30", "2023-06-30"}, s.ColLabels)

	// overwriting a cell does not duplicate labels
	s.Set("Revenue", "2024-06-30", num(t, "401"))
	assert.Equal(t, []string{"Revenue", "Gross Profit"}, s.RowLabels)
	assert.Equal(t, "401", s.Cell("Revenue", "2024-06-30").Decimal.String())
}

func TestRawStatement_Set_NilCells(t *testing.T) {
	var s RawStatement
	s.Set("Revenue", "2024-06-30", num(t, "400"))
	assert.True(t, s.Cell("Revenue", "2024-06-30").Valid)
}

func TestRawStatement_Cell_AbsentValues(t *testing.T) {
	s := NewRawStatement()
	s.Set("Inventory", "2024-06-30", decimal.NullDecimal{})

	// an explicitly absent cell and a never-written cell are the same
	assert.False(t, s.Cell("Inventory", "2024-06-30").Valid)
	assert.False(t, s.Cell("Inventory", "2023-06-30").Valid)

	// but the explicit one still registered its labels
	assert.Equal(t, []string{"Inventory"}, s.RowLabels)
	assert.Equal(t, []string{"2024-06-30"}, s.ColLabels)

	// zero-value grid reads safely
	var empty RawStatement
	assert.False(t, empty.Cell("anything", "anywhere").Valid)
}

func TestRawStatement_IsEmpty(t *testing.T) {
	var s RawStatement
	assert.True(t, s.IsEmpty())

	s = NewRawStatement()
	assert.True(t, s.IsEmpty())

	s.Set("Revenue", "2024-06-30", num(t, "400"))
	assert.False(t, s.IsEmpty())
}

func TestCanonicalStatement_Value(t *testing.T) {
	stmt := CanonicalStatement{
		Kind:    StatementIncome,
		Periods: []string{"2024-06-30", "2023-06-30"},
		Rows: []LineItemRow{
			{LineItem: "Revenue", Values: []decimal.NullDecimal{num(t, "400"), num(t, "380")}},
			{LineItem: "Truncated", Values: []decimal.NullDecimal{num(t, "1")}},
		},
	}

	v, ok := stmt.Value("Revenue", "2023-06-30")
	require.True(t, ok)
	assert.Equal(t, "380", v.Decimal.String())

	_, ok = stmt.Value("Revenue", "2022-06-30")
	assert.False(t, ok, "unknown period")

	_, ok = stmt.Value("Net Income", "2024-06-30")
	assert.False(t, ok, "unknown line item")

	_, ok = stmt.Value("Truncated", "2023-06-30")
	assert.False(t, ok, "row shorter than the period axis")
}

func TestCanonicalStatement_IsEmpty(t *testing.T) {
	assert.True(t, CanonicalStatement{Kind: StatementIncome}.IsEmpty())
	assert.False(t, CanonicalStatement{
		Kind: StatementIncome,
		Rows: []LineItemRow{{LineItem: "Revenue"}},
	}.IsEmpty())
}

func TestFinancialReport_Statement(t *testing.T) {
	var nilReport *FinancialReport
	assert.True(t, nilReport.Statement(StatementIncome).IsEmpty())

	report := &FinancialReport{Ticker: "AAPL"}
	assert.True(t, report.Statement(StatementIncome).IsEmpty(), "nil statements map")

	income := NewRawStatement()
	income.Set("Revenue", "2024-06-30", num(t, "400"))
	report.Statements = map[StatementKind]RawStatement{StatementIncome: income}

	assert.False(t, report.Statement(StatementIncome).IsEmpty())
	assert.True(t, report.Statement(StatementCashFlow).IsEmpty(), "missing kind")
}
