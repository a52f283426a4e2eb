package yfinance

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"stmtcli/pkg/contracts/domain"
)

// statementPaths locates each statement's history array inside a
// quoteSummary result entry.
var statementPaths = map[domain.StatementKind]string{
	domain.StatementIncome:       "incomeStatementHistory.incomeStatementHistory",
	domain.StatementBalanceSheet: "balanceSheetHistory.balanceSheetStatements",
	domain.StatementCashFlow:     "cashflowStatementHistory.cashflowStatements",
}

// parseQuoteSummary turns a quoteSummary response body into a report.
// The provider signals failures inside a 200 response through the
// error field, so both the envelope and the result list are checked.
func parseQuoteSummary(body []byte, ticker string) (*domain.FinancialReport, error) {
	root := gjson.ParseBytes(body)

	if errNode := root.Get("quoteSummary.error"); errNode.Exists() && errNode.Type != gjson.Null {
		desc := errNode.Get("description").String()
		if desc == "" {
			desc = errNode.Get("code").String()
		}
		return nil, fmt.Errorf("provider error: %s", desc)
	}

	results := root.Get("quoteSummary.result")
	if !results.IsArray() || len(results.Array()) == 0 {
		return nil, fmt.Errorf("no data in response for %s", ticker)
	}
	result := results.Array()[0]

	report := &domain.FinancialReport{
		Ticker:      ticker,
		CompanyName: result.Get("price.shortName").String(),
		Currency:    result.Get("price.currency").String(),
		Statements:  make(map[domain.StatementKind]domain.RawStatement, len(statementPaths)),
	}

	for _, kind := range domain.StatementKinds() {
		report.Statements[kind] = parseStatement(result.Get(statementPaths[kind]))
	}

	return report, nil
}

// parseStatement reads one statement history into a raw grid laid out
// the way the provider delivers it: one row per reporting period, one
// column per line item. Period rows keep array order and line-item
// columns keep first-appearance document order; neither is sorted.
func parseStatement(history gjson.Result) domain.RawStatement {
	stmt := domain.NewRawStatement()
	if !history.IsArray() {
		return stmt
	}

	history.ForEach(func(_, entry gjson.Result) bool {
		period := entry.Get("endDate.fmt").String()
		if period == "" {
			return true
		}
		entry.ForEach(func(key, field gjson.Result) bool {
			name := key.String()
			// endDate and maxAge describe the entry, they are not line items
			if name == "endDate" || name == "maxAge" {
				return true
			}
			stmt.Set(period, name, parseValue(field))
			return true
		})
		return true
	})

	return stmt
}

// parseValue extracts the number from a {raw, fmt} leaf. An empty
// object means the provider did not report the value for that period.
// The raw JSON literal is parsed directly so the provider's precision
// survives untouched.
func parseValue(field gjson.Result) decimal.NullDecimal {
	raw := field.Get("raw")
	if !raw.Exists() {
		// some fields arrive as bare numbers instead of {raw, fmt}
		if field.Type == gjson.Number {
			raw = field
		} else {
			return decimal.NullDecimal{}
		}
	}

	d, err := decimal.NewFromString(raw.Raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
