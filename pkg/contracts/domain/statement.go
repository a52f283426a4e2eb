package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementKind identifies one of the three financial statements handled
// by the pipeline. The string value is what appears in the `statement`
// column of exported CSV files.
type StatementKind string

const (
	StatementIncome       StatementKind = "income"
	StatementBalanceSheet StatementKind = "balance_sheet"
	StatementCashFlow     StatementKind = "cash_flow"
)

// StatementKinds returns the three statement kinds in processing order.
func StatementKinds() []StatementKind {
	return []StatementKind{StatementIncome, StatementBalanceSheet, StatementCashFlow}
}

// Filename returns the output file name for the statement kind.
func (k StatementKind) Filename() string {
	switch k {
	case StatementIncome:
		return "clean_income_statement.csv"
	case StatementBalanceSheet:
		return "clean_balance_sheet.csv"
	case StatementCashFlow:
		return "clean_cash_flow.csv"
	default:
		return ""
	}
}

// Title returns a human-readable name for log and console output.
func (k StatementKind) Title() string {
	switch k {
	case StatementIncome:
		return "Income Statement"
	case StatementBalanceSheet:
		return "Balance Sheet"
	case StatementCashFlow:
		return "Cash Flow"
	default:
		return string(k)
	}
}

// CellKey addresses a single value in a RawStatement by its row and
// column labels.
type CellKey struct {
	Row string
	Col string
}

// RawStatement holds a statement grid exactly as the provider delivered
// it: ordered row labels, ordered column labels, and sparse cells. The
// orientation is whatever the provider used; callers must not assume
// which axis carries the reporting periods.
type RawStatement struct {
	RowLabels []string                       `json:"row_labels"`
	ColLabels []string                       `json:"col_labels"`
	Cells     map[CellKey]decimal.NullDecimal `json:"-"`
}

// NewRawStatement returns an empty grid ready for Set calls.
func NewRawStatement() RawStatement {
	return RawStatement{Cells: make(map[CellKey]decimal.NullDecimal)}
}

// Set stores a cell value, registering the row and column labels in
// first-appearance order.
func (s *RawStatement) Set(row, col string, v decimal.NullDecimal) {
	if s.Cells == nil {
		s.Cells = make(map[CellKey]decimal.NullDecimal)
	}
	key := CellKey{Row: row, Col: col}
	if _, ok := s.Cells[key]; !ok {
		if !containsLabel(s.RowLabels, row) {
			s.RowLabels = append(s.RowLabels, row)
		}
		if !containsLabel(s.ColLabels, col) {
			s.ColLabels = append(s.ColLabels, col)
		}
	}
	s.Cells[key] = v
}

// Cell returns the value at (row, col). Cells never written report as
// absent, the same as cells written with an invalid NullDecimal.
func (s RawStatement) Cell(row, col string) decimal.NullDecimal {
	if s.Cells == nil {
		return decimal.NullDecimal{}
	}
	return s.Cells[CellKey{Row: row, Col: col}]
}

// IsEmpty reports whether the grid has no rows or no columns.
func (s RawStatement) IsEmpty() bool {
	return len(s.RowLabels) == 0 || len(s.ColLabels) == 0
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// Orientation describes which axis of a RawStatement carries the
// reporting periods.
type Orientation string

const (
	// OrientationItemsAsRows is the canonical layout: line items down,
	// periods across.
	OrientationItemsAsRows Orientation = "items_as_rows"
	// OrientationPeriodsAsRows is the transposed layout some providers
	// deliver: periods down, line items across.
	OrientationPeriodsAsRows Orientation = "periods_as_rows"
	// OrientationUnknown means neither axis could be identified; the
	// grid is read as already canonical.
	OrientationUnknown Orientation = "unknown"
)

// LineItemRow is one row of a canonical statement table. Values is
// index-aligned with the statement's Periods; an invalid NullDecimal
// marks a value the provider did not report.
type LineItemRow struct {
	LineItem string                `json:"line_item"`
	Values   []decimal.NullDecimal `json:"values"`
}

// CanonicalStatement is the normalized form of a statement: rows are
// line items, columns are reporting periods in provider order.
type CanonicalStatement struct {
	Kind    StatementKind `json:"kind" validate:"required"`
	Periods []string      `json:"periods"`
	Rows    []LineItemRow `json:"rows"`
}

// IsEmpty reports whether the statement has no data rows.
func (s CanonicalStatement) IsEmpty() bool {
	return len(s.Rows) == 0
}

// Value returns the cell for a line item and period, and whether both
// labels exist in the table.
func (s CanonicalStatement) Value(lineItem, period string) (decimal.NullDecimal, bool) {
	col := -1
	for i, p := range s.Periods {
		if p == period {
			col = i
			break
		}
	}
	if col < 0 {
		return decimal.NullDecimal{}, false
	}
	for _, row := range s.Rows {
		if row.LineItem == lineItem {
			if col >= len(row.Values) {
				return decimal.NullDecimal{}, false
			}
			return row.Values[col], true
		}
	}
	return decimal.NullDecimal{}, false
}

// FinancialReport is the result of one provider fetch: the three raw
// statement grids plus company metadata carried for logging.
type FinancialReport struct {
	Ticker      string                         `json:"ticker" validate:"required"`
	CompanyName string                         `json:"company_name,omitempty"`
	Currency    string                         `json:"currency,omitempty"`
	Statements  map[StatementKind]RawStatement `json:"statements"`
	FetchedAt   time.Time                      `json:"fetched_at"`
}

// Statement returns the raw grid for a kind, or an empty grid when the
// provider returned nothing for it.
func (r *FinancialReport) Statement(kind StatementKind) RawStatement {
	if r == nil || r.Statements == nil {
		return RawStatement{}
	}
	return r.Statements[kind]
}
