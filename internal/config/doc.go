// Package config provides centralized configuration management for the
// statement export tool. It handles loading configuration from multiple
// sources, validation, and provides a type-safe API for accessing
// configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml or configs/config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern STMT_* for namespacing:
//
//	STMT_PROVIDER_BASE_URL=https://query1.finance.yahoo.com
//	STMT_PROVIDER_TIMEOUT=30s
//	STMT_EXPORT_DIR=./out
//	STMT_EXPORT_EXCEL_COMPAT=false
//	STMT_LOGGING_LEVEL=debug
//
// # Validation
//
// All configuration is validated at load time through struct tags:
// required fields present, the provider URL well formed, log level and
// output among the accepted values. Invalid configuration fails the run
// before any network or file activity.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
