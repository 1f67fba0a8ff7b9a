package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Propex
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Clients     ClientsConfig  `toml:"clients"`
	Scenario    ScenarioConfig `toml:"scenario"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	RateLimit int    `toml:"rate_limit"` // requests per second across all callers, 0 disables
	Burst     int    `toml:"burst"`
}

// ClientsConfig holds collaborator client configurations
type ClientsConfig struct {
	Forecasting  ForecastingConfig  `toml:"forecasting"`
	Amortization AmortizationConfig `toml:"amortization"`
}

// ForecastingConfig holds forecasting service configuration
type ForecastingConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *ForecastingConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 30*time.Second)
}

// AmortizationConfig holds amortization service configuration
type AmortizationConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	CacheTTL  string `toml:"cache_ttl"` // "0" disables the response cache
}

// GetTimeout parses and returns the timeout duration
func (c *AmortizationConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 30*time.Second)
}

// GetCacheTTL parses and returns the response cache lifetime
func (c *AmortizationConfig) GetCacheTTL() time.Duration {
	return parseDuration(c.CacheTTL, 10*time.Minute)
}

// ScenarioConfig holds scenario engine limits
type ScenarioConfig struct {
	MaxConcurrency int    `toml:"max_concurrency"`
	RequestTimeout string `toml:"request_timeout"`
}

// GetRequestTimeout parses and returns the whole-run deadline
func (c *ScenarioConfig) GetRequestTimeout() time.Duration {
	return parseDuration(c.RequestTimeout, 2*time.Minute)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "0" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			RateLimit: 50,
			Burst:     100,
		},
		Clients: ClientsConfig{
			Forecasting: ForecastingConfig{
				BaseURL:   "http://localhost:8081/forecast",
				RateLimit: 20,
				Timeout:   "30s",
			},
			Amortization: AmortizationConfig{
				BaseURL:   "http://localhost:8082/amortization",
				RateLimit: 20,
				Timeout:   "30s",
				CacheTTL:  "10m",
			},
		},
		Scenario: ScenarioConfig{
			MaxConcurrency: 8,
			RequestTimeout: "2m",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Outputs:    []string{"console"},
			FilePath:   "./logs/propex.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is read first; variables already
// set in the process environment take precedence over it.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Scenario.MaxConcurrency < 1 {
		config.Scenario.MaxConcurrency = 1
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PROPEX_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("PROPEX_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("PROPEX_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("PROPEX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("FORECASTING_URL"); v != "" {
		config.Clients.Forecasting.BaseURL = v
	}

	if v := os.Getenv("AMORTIZATION_URL"); v != "" {
		config.Clients.Amortization.BaseURL = v
	}

	if v := os.Getenv("PROPEX_MAX_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Scenario.MaxConcurrency = n
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ValidateRequired returns the names of settings that must be present
// before the server can reach its collaborators.
func (c *Config) ValidateRequired() []string {
	var missing []string
	if strings.TrimSpace(c.Clients.Forecasting.BaseURL) == "" {
		missing = append(missing, "clients.forecasting.base_url")
	}
	if strings.TrimSpace(c.Clients.Amortization.BaseURL) == "" {
		missing = append(missing, "clients.amortization.base_url")
	}
	return missing
}
