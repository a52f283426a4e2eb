package exporter

import (
	"log/slog"
	"path/filepath"

	"github.com/shopspring/decimal"

	"stmtcli/internal/config"
	clierrors "stmtcli/internal/errors"
	"stmtcli/pkg/contracts/domain"
)

// StatementExporter writes canonical statements to the fixed set of
// clean CSV files, one per statement kind.
type StatementExporter struct {
	writer      *CSVWriter
	excelCompat bool
}

// NewStatementExporter creates a statement exporter from export configuration
func NewStatementExporter(cfg config.ExportConfig) *StatementExporter {
	return &StatementExporter{
		writer:      NewCSVWriter(),
		excelCompat: cfg.ExcelCompat,
	}
}

// Export writes one statement into dir and returns the file path. The
// header row is line_item, statement, then the statement's periods in
// table order. An empty statement still produces its file, header only.
// Every write replaces whatever is at the path; a failed write leaves
// files from earlier statements in place.
func (e *StatementExporter) Export(stmt domain.CanonicalStatement, dir string) (string, error) {
	path := filepath.Join(dir, stmt.Kind.Filename())

	headers := make([]string, 0, len(stmt.Periods)+2)
	headers = append(headers, "line_item", "statement")
	headers = append(headers, stmt.Periods...)

	records := make([][]string, 0, len(stmt.Rows))
	for _, row := range stmt.Rows {
		record := make([]string, 0, len(stmt.Periods)+2)
		record = append(record, row.LineItem, string(stmt.Kind))
		// every row spans every period column, short rows pad with absent
		for i := range stmt.Periods {
			var v decimal.NullDecimal
			if i < len(row.Values) {
				v = row.Values[i]
			}
			record = append(record, formatValue(v))
		}
		records = append(records, record)
	}

	if err := e.writer.WriteCSV(path, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: e.excelCompat,
	}); err != nil {
		return "", clierrors.WriteError(path, err)
	}

	slog.Debug("statement exported",
		slog.String("kind", string(stmt.Kind)),
		slog.String("path", path),
		slog.Int("line_items", len(stmt.Rows)),
		slog.Int("periods", len(stmt.Periods)))

	return path, nil
}
