// Package yfinance fetches financial statements from the Yahoo Finance
// quoteSummary API. One call retrieves the income statement, balance
// sheet, and cash flow histories plus company metadata; the statements
// come back as raw grids in the provider's own orientation (reporting
// periods as rows, line items as columns).
//
// The client makes exactly one attempt per run. Transport errors, bad
// status codes, and provider error envelopes all surface as fetch
// failures; a statement module missing from the response is not an
// error and yields an empty grid.
package yfinance
