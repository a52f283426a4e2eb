package pipeline

import (
	"context"
	"log/slog"

	"stmtcli/internal/dataprocessing"
	"stmtcli/pkg/contracts/domain"
)

// StatementFetcher retrieves all statements for a ticker in one call
type StatementFetcher interface {
	FetchStatements(ctx context.Context, ticker string) (*domain.FinancialReport, error)
}

// StatementExporter writes one canonical statement and returns its path
type StatementExporter interface {
	Export(stmt domain.CanonicalStatement, dir string) (string, error)
}

// ExportResult records the outcome for one exported statement
type ExportResult struct {
	Kind    domain.StatementKind
	Path    string
	Rows    int
	Periods int
	Empty   bool
}

// RunResult summarizes one pipeline run
type RunResult struct {
	Ticker      string
	CompanyName string
	Currency    string
	Exports     []ExportResult
}

// Runner executes the sequential fetch, normalize, export pipeline
type Runner struct {
	fetcher    StatementFetcher
	normalizer *dataprocessing.Normalizer
	exporter   StatementExporter
	logger     *slog.Logger
}

// NewRunner creates a pipeline runner
func NewRunner(fetcher StatementFetcher, exporter StatementExporter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		fetcher:    fetcher,
		normalizer: dataprocessing.NewNormalizer(),
		exporter:   exporter,
		logger:     logger,
	}
}

// Run fetches the ticker's statements and exports the three clean CSV
// files into destDir. The returned RunResult lists the files written so
// far even when Run fails partway: a fetch failure means no files at
// all, a write failure means everything before the failing statement is
// on disk and stays there.
func (r *Runner) Run(ctx context.Context, ticker, destDir string) (*RunResult, error) {
	result := &RunResult{Ticker: ticker}

	r.logger.InfoContext(ctx, "pipeline run started",
		slog.String("ticker", ticker),
		slog.String("dest_dir", destDir))

	report, err := r.fetcher.FetchStatements(ctx, ticker)
	if err != nil {
		r.logger.ErrorContext(ctx, "fetch failed",
			slog.String("ticker", ticker),
			slog.String("error", err.Error()))
		return result, err
	}
	result.CompanyName = report.CompanyName
	result.Currency = report.Currency

	for _, kind := range domain.StatementKinds() {
		raw := report.Statement(kind)
		orientation := r.normalizer.DetectOrientation(raw)
		stmt := r.normalizer.Normalize(raw, kind)

		path, err := r.exporter.Export(stmt, destDir)
		if err != nil {
			r.logger.ErrorContext(ctx, "export failed",
				slog.String("statement", string(kind)),
				slog.String("error", err.Error()))
			return result, err
		}

		r.logger.InfoContext(ctx, "statement exported",
			slog.String("statement", string(kind)),
			slog.String("orientation", string(orientation)),
			slog.String("path", path),
			slog.Int("line_items", len(stmt.Rows)),
			slog.Int("periods", len(stmt.Periods)))

		result.Exports = append(result.Exports, ExportResult{
			Kind:    kind,
			Path:    path,
			Rows:    len(stmt.Rows),
			Periods: len(stmt.Periods),
			Empty:   stmt.IsEmpty(),
		})
	}

	r.logger.InfoContext(ctx, "pipeline run completed",
		slog.String("ticker", ticker),
		slog.Int("files", len(result.Exports)))

	return result, nil
}
