// Package exporter provides CSV export functionality for cleaned
// financial statements.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, and UTF-8 BOM for Excel compatibility.
//
// StatementExporter: Writes canonical statements to their fixed output
// files (clean_income_statement.csv, clean_balance_sheet.csv,
// clean_cash_flow.csv) with the line_item, statement, period-columns
// header layout. Absent values export as empty fields and files are
// replaced on every run.
//
// Example usage:
//
//	exp := exporter.NewStatementExporter(cfg.Export)
//
//	path, err := exp.Export(stmt, ".")
//	if err != nil {
//	    return err
//	}
package exporter
