package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/models"
)

// registerRoutes sets up all REST API routes on the router.
func (s *Server) registerRoutes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Not found", codeNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", codeMethodNotAllowed)
	})

	r.Route("/api", func(r chi.Router) {
		// System
		r.Get("/health", s.handleHealth)
		r.Head("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
		r.Head("/version", s.handleVersion)

		// Scenarios
		r.Post("/scenarios", s.handleScenario)
		r.Post("/scenarios/validate", s.handleScenarioValidate)
		r.Post("/scenarios/chart", s.handleScenarioChart)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, common.GetVersionInfo())
}

// handleScenario handles POST /api/scenarios.
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScenario(w, r)
	if !ok {
		return
	}

	resp, err := s.scenarios.Run(r.Context(), req)
	if err != nil {
		s.writeScenarioError(w, r, http.StatusInternalServerError, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.ComparisonEnvelope{Comparison: resp})
}

// handleScenarioValidate handles POST /api/scenarios/validate. It checks the
// request without calling any collaborator.
func (s *Server) handleScenarioValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScenario(w, r)
	if !ok {
		return
	}

	if err := s.scenarios.Validate(req); err != nil {
		s.writeScenarioError(w, r, http.StatusBadRequest, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "valid"})
}

// handleScenarioChart handles POST /api/scenarios/chart. It runs the scenario
// and returns the projected equity chart as a PNG.
func (s *Server) handleScenarioChart(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScenario(w, r)
	if !ok {
		return
	}

	resp, err := s.scenarios.Run(r.Context(), req)
	if err != nil {
		s.writeScenarioError(w, r, http.StatusInternalServerError, err)
		return
	}

	// Render into a buffer so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := s.scenarios.RenderEquityChart(resp, &buf); err != nil {
		s.writeScenarioError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
