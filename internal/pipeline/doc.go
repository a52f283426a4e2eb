// Package pipeline drives one complete run: fetch the three financial
// statements for a ticker, normalize each into the canonical layout,
// and export each to its clean CSV file.
//
// The pipeline is strictly sequential. One provider call fetches all
// three statements, so a fetch failure aborts the run before any file
// exists. Statements are then processed in fixed order: income,
// balance_sheet, cash_flow. A write failure stops the run at that
// statement; files already written stay in place.
package pipeline
