package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	clierrors "stmtcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Provider ProviderConfig `yaml:"provider" envconfig:"PROVIDER"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// ProviderConfig contains financial-data provider configuration
type ProviderConfig struct {
	BaseURL   string          `yaml:"base_url" envconfig:"BASE_URL" validate:"required,url"`
	Timeout   time.Duration   `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
	UserAgent string          `yaml:"user_agent" envconfig:"USER_AGENT" validate:"required"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration. RPS and Burst
// are only checked when Enabled is true.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gte=0"`
}

// ExportConfig contains CSV output configuration
type ExportConfig struct {
	Dir         string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Snapshot    bool   `yaml:"snapshot" envconfig:"SNAPSHOT"`
	ExcelCompat bool   `yaml:"excel_compat" envconfig:"EXCEL_COMPAT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"required,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// Load loads configuration from defaults, an optional YAML file, and
// environment variables, in that order of precedence (env wins).
func Load() (*Config, error) {
	return LoadFromFile(getConfigFilePath())
}

// LoadFromFile loads configuration like Load but from an explicit file
// path. An empty path skips the file layer. Failures of any layer carry
// the CONFIG_INVALID error code.
func LoadFromFile(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, clierrors.ConfigError(fmt.Errorf("failed to load config from file: %w", err))
		}
	}

	if err := envconfig.Process("STMT", cfg); err != nil {
		return nil, clierrors.ConfigError(fmt.Errorf("failed to load config from env: %w", err))
	}

	if err := cfg.validate(); err != nil {
		return nil, clierrors.ConfigError(err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg. Keys
// absent from the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	return nil
}

// validate validates the configuration
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid %s: failed %s validation", e.Namespace(), e.Tag())
		}
		return err
	}

	if c.Provider.RateLimit.Enabled {
		if c.Provider.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate limit rps must be positive when enabled")
		}
		if c.Provider.RateLimit.Burst < 1 {
			return fmt.Errorf("rate limit burst must be at least 1 when enabled")
		}
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:   DefaultProviderBaseURL,
			Timeout:   DefaultHTTPTimeout,
			UserAgent: DefaultUserAgent,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     DefaultRateLimitRPS,
				Burst:   DefaultRateLimitBurst,
			},
		},
		Export: ExportConfig{
			Dir:         ".",
			Snapshot:    false,
			ExcelCompat: true,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   "file",
			FilePath: "logs/stmtcli.log",
		},
	}
}
