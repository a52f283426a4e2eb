package exporter

import (
	"github.com/shopspring/decimal"
)

// formatValue renders a statement cell for CSV output. Values the
// provider never reported become empty fields, not "NaN", "None", or
// zero. Present values keep the provider's precision: plain decimal
// notation, no exponent, no rounding.
func formatValue(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.String()
}
