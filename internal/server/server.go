// Package server exposes the scenario engine over HTTP
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bobmcallan/propex/internal/app"
	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/interfaces"
)

// Server wraps the HTTP server and the services it exposes.
type Server struct {
	scenarios interfaces.ScenarioService
	server    *http.Server
	logger    *common.Logger
}

// NewServer creates a new HTTP REST API server.
func NewServer(a *app.App) *Server {
	return newServer(a.Config, a.Logger, a.ScenarioService)
}

func newServer(config *common.Config, logger *common.Logger, scenarios interfaces.ScenarioService) *Server {
	s := &Server{
		scenarios: scenarios,
		logger:    logger,
	}

	r := chi.NewRouter()
	// Outermost first
	r.Use(recoveryMiddleware(logger))
	r.Use(corsMiddleware)
	r.Use(correlationIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(rateLimitMiddleware(newLimiter(config.Server.RateLimit, config.Server.Burst), logger))
	s.registerRoutes(r)

	// Scenario runs wait on the collaborators, so the write timeout must
	// outlast the whole-run deadline
	writeTimeout := config.Scenario.GetRequestTimeout() + 30*time.Second

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
