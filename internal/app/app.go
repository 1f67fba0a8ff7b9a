// Package app wires configuration, logging, collaborator clients and the
// scenario service into one core shared by the server and the CLI
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/propex/internal/clients/amortization"
	"github.com/bobmcallan/propex/internal/clients/forecast"
	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/interfaces"
	"github.com/bobmcallan/propex/internal/services/scenario"
)

// App holds all initialized clients and services.
// It is the shared core used by both cmd/propex-server and cmd/propex.
type App struct {
	Config             *common.Config
	Logger             *common.Logger
	ForecastClient     interfaces.ForecastClient
	AmortizationClient interfaces.AmortizationClient
	ScenarioService    interfaces.ScenarioService
	StartupTime        time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// resolveConfigPath picks the config file: the given path, PROPEX_CONFIG,
// propex.toml next to the binary, then config/propex.toml for development.
func resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("PROPEX_CONFIG"); env != "" {
		return env
	}
	configPath = filepath.Join(getBinaryDir(), "propex.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return "config/propex.toml"
	}
	return configPath
}

// NewApp loads configuration and initializes the clients and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	config, err := common.LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if missing := config.ValidateRequired(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required config: %v", missing)
	}

	// Resolve relative log file path to binary directory
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(getBinaryDir(), config.Logging.FilePath)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	a := NewAppWithConfig(config, logger)
	a.StartupTime = startupStart

	logger.Info().
		Str("forecasting", config.Clients.Forecasting.BaseURL).
		Str("amortization", config.Clients.Amortization.BaseURL).
		Int("max_concurrency", config.Scenario.MaxConcurrency).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// NewAppWithConfig builds the clients and services from an already loaded
// config and logger
func NewAppWithConfig(config *common.Config, logger *common.Logger) *App {
	fc := forecast.NewClient(
		forecast.WithBaseURL(config.Clients.Forecasting.BaseURL),
		forecast.WithLogger(logger),
		forecast.WithRateLimit(config.Clients.Forecasting.RateLimit),
		forecast.WithTimeout(config.Clients.Forecasting.GetTimeout()),
	)

	ac := amortization.NewClient(
		amortization.WithBaseURL(config.Clients.Amortization.BaseURL),
		amortization.WithLogger(logger),
		amortization.WithRateLimit(config.Clients.Amortization.RateLimit),
		amortization.WithTimeout(config.Clients.Amortization.GetTimeout()),
		amortization.WithCacheTTL(config.Clients.Amortization.GetCacheTTL()),
	)

	svc := scenario.NewService(fc, ac, logger,
		scenario.WithMaxConcurrency(config.Scenario.MaxConcurrency),
		scenario.WithRunTimeout(config.Scenario.GetRequestTimeout()),
	)

	return &App{
		Config:             config,
		Logger:             logger,
		ForecastClient:     fc,
		AmortizationClient: ac,
		ScenarioService:    svc,
		StartupTime:        time.Now(),
	}
}

// Close releases resources held by the App.
func (a *App) Close() {
	a.Logger.Debug().Dur("uptime", time.Since(a.StartupTime)).Msg("App closed")
}
