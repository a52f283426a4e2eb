package config

import "time"

// Application constants - all hardcoded values for the statement tool
const (
	// Application Info
	AppName = "stmtcli"

	// Provider Defaults
	DefaultProviderBaseURL = "https://query1.finance.yahoo.com"
	DefaultUserAgent       = "Mozilla/5.0 (compatible; stmtcli/1.0)"

	// Network Timeouts
	DefaultHTTPTimeout = 30 * time.Second

	// Rate Limiting
	DefaultRateLimitRPS   = 2.0 // requests per second against the provider
	DefaultRateLimitBurst = 1

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Output
	SnapshotTimeFormat = "20060102_150405"
)
