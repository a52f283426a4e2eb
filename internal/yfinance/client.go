package yfinance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"stmtcli/internal/config"
	clierrors "stmtcli/internal/errors"
	"stmtcli/pkg/contracts/domain"
)

// quoteSummaryModules is the fixed module list requested per run: the
// three statement histories plus price for company metadata.
const quoteSummaryModules = "price,incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory"

// Client fetches financial statements from the Yahoo Finance quoteSummary API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a client from provider configuration
func New(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		logger:     logger,
	}
}

// FetchStatements retrieves the three statements for a ticker in one
// quoteSummary call. Exactly one attempt is made; any failure is final.
func (c *Client) FetchStatements(ctx context.Context, ticker string) (*domain.FinancialReport, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, clierrors.FetchError(ticker, err)
		}
	}

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(ticker), quoteSummaryModules)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, clierrors.FetchError(ticker, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, clierrors.FetchError(ticker, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clierrors.FetchError(ticker, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "provider request failed",
			slog.String("ticker", ticker),
			slog.Int("status", resp.StatusCode))
		return nil, clierrors.FetchError(ticker, fmt.Errorf("provider returned status %d", resp.StatusCode))
	}

	report, err := parseQuoteSummary(body, ticker)
	if err != nil {
		return nil, clierrors.FetchError(ticker, err)
	}
	report.FetchedAt = time.Now()

	c.logger.InfoContext(ctx, "statements fetched",
		slog.String("ticker", ticker),
		slog.String("company", report.CompanyName),
		slog.String("currency", report.Currency),
		slog.Duration("elapsed", time.Since(start)))

	return report, nil
}
