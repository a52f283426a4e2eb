package dataprocessing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stmtcli/pkg/contracts/domain"
)

// Normalizer reshapes raw statement grids into the canonical layout:
// line items as rows, reporting periods as columns.
type Normalizer struct{}

// NewNormalizer creates a new statement normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// dateLayouts are the label formats recognized as reporting periods
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"Jan 2006",
	"January 2006",
	"2006",
}

// financeTerms mark labels that read like statement line items. Matching
// is case-insensitive substring, so camelCase provider keys like
// totalRevenue count as well.
var financeTerms = []string{
	"revenue", "income", "profit", "loss", "expense", "cost",
	"asset", "liabilit", "equity", "cash", "debt", "depreciation",
	"amortization", "inventory", "receivable", "payable", "dividend",
	"share", "stock", "tax", "ebit", "interest", "capital",
}

// Normalize reshapes a raw grid into a canonical statement. Orientation
// is detected at runtime and the grid transposed when periods arrived as
// rows. Line-item labels pass through verbatim, period order is kept as
// delivered, and cells the provider never reported stay absent.
func (n *Normalizer) Normalize(raw domain.RawStatement, kind domain.StatementKind) domain.CanonicalStatement {
	stmt := domain.CanonicalStatement{Kind: kind}
	if raw.IsEmpty() {
		return stmt
	}

	itemLabels := raw.RowLabels
	periodLabels := raw.ColLabels
	cell := func(item, period string) decimal.NullDecimal {
		return raw.Cell(item, period)
	}

	if n.DetectOrientation(raw) == domain.OrientationPeriodsAsRows {
		itemLabels, periodLabels = raw.ColLabels, raw.RowLabels
		cell = func(item, period string) decimal.NullDecimal {
			return raw.Cell(period, item)
		}
	}

	stmt.Periods = append([]string(nil), periodLabels...)
	stmt.Rows = make([]domain.LineItemRow, 0, len(itemLabels))
	for _, item := range itemLabels {
		row := domain.LineItemRow{
			LineItem: item,
			Values:   make([]decimal.NullDecimal, len(periodLabels)),
		}
		for i, period := range periodLabels {
			row.Values[i] = cell(item, period)
		}
		stmt.Rows = append(stmt.Rows, row)
	}

	return stmt
}

// DetectOrientation identifies which axis of a raw grid carries the
// reporting periods. The axis whose labels parse as dates wins; when
// neither axis is date-like, the axis whose labels read like financial
// terms is taken as the line-item axis. A grid that gives no signal is
// read as already canonical.
func (n *Normalizer) DetectOrientation(raw domain.RawStatement) domain.Orientation {
	rowDates := countDateLike(raw.RowLabels)
	colDates := countDateLike(raw.ColLabels)

	switch {
	case colDates > rowDates:
		return domain.OrientationItemsAsRows
	case rowDates > colDates:
		return domain.OrientationPeriodsAsRows
	}

	rowTerms := countFinanceTerms(raw.RowLabels)
	colTerms := countFinanceTerms(raw.ColLabels)

	switch {
	case rowTerms > colTerms:
		return domain.OrientationItemsAsRows
	case colTerms > rowTerms:
		return domain.OrientationPeriodsAsRows
	}

	return domain.OrientationUnknown
}

// countDateLike counts labels that parse under any known period layout
func countDateLike(labels []string) int {
	count := 0
	for _, label := range labels {
		if isDateLike(label) {
			count++
		}
	}
	return count
}

func isDateLike(label string) bool {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return true
		}
	}
	return false
}

// countFinanceTerms counts labels containing a statement vocabulary term
func countFinanceTerms(labels []string) int {
	count := 0
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, term := range financeTerms {
			if strings.Contains(lower, term) {
				count++
				break
			}
		}
	}
	return count
}
