// Package scenario computes 1031 exchange, refinance and passive-investment
// comparisons over client portfolios
package scenario

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/interfaces"
	"github.com/bobmcallan/propex/internal/models"
)

// Compile-time interface check
var _ interfaces.ScenarioService = (*Service)(nil)

const DefaultMaxConcurrency = 8

// Service implements ScenarioService
type Service struct {
	forecast       interfaces.ForecastClient
	amortization   interfaces.AmortizationClient
	logger         *common.Logger
	maxConcurrency int
	runTimeout     time.Duration
}

// Option configures the service
type Option func(*Service)

// WithMaxConcurrency bounds in-flight collaborator calls per fan-out
func WithMaxConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrency = n
		}
	}
}

// WithRunTimeout sets a deadline for a whole run; zero means none
func WithRunTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.runTimeout = d
	}
}

// NewService creates a new scenario service
func NewService(forecast interfaces.ForecastClient, amortization interfaces.AmortizationClient, logger *common.Logger, opts ...Option) *Service {
	s := &Service{
		forecast:       forecast,
		amortization:   amortization,
		logger:         logger,
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run is the state of one invocation. It is built before any collaborator
// call and read concurrently afterwards, so it is never written once the
// fan-out starts.
type run struct {
	id        string
	req       *models.ScenarioRequest
	kind      models.ScenarioType
	tv        models.TempVariables
	target    models.Property
	hasTarget bool
	overlay   *models.PassiveInvestment

	// targetAmortization serves every synthetic property of the run
	targetAmortization *models.AmortizationResponse
}

func (s *Service) step(r *run, state string) {
	s.logger.Debug().Str("run", r.id).Str("scenario", string(r.kind)).Str("state", state).Msg("Scenario transition")
}

// Validate checks a request without contacting any collaborator
func (s *Service) Validate(req models.ScenarioRequest) error {
	_, err := validateRequest(&req)
	return err
}

func validateRequest(req *models.ScenarioRequest) (models.ScenarioType, error) {
	kind, ok := models.ParseScenarioType(req.ScenarioType)
	if !ok {
		return "", fmt.Errorf("%q: %w", req.ScenarioType, models.ErrScenarioTypeUnknown)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"new_downpaymment", req.NewDownPayment},
		{"new_downpayment_target", req.NewDownPaymentTarget},
		{"new_caprate", req.NewCapRate},
		{"new_loan_interest_rate", req.NewLoanInterestRate},
		{"new_expenseRatio", req.DefaultValues.ExpenseRatio},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return "", fmt.Errorf("%s must be a finite number: %w", f.name, models.ErrInvalidRequest)
		}
	}
	if req.NewDownPayment == 0 {
		return "", fmt.Errorf("new_downpaymment must not be zero: %w", models.ErrInvalidRequest)
	}
	if req.DefaultValues.ExpenseRatio == 1 {
		return "", fmt.Errorf("new_expenseRatio must not be 1: %w", models.ErrInvalidRequest)
	}

	return kind, nil
}

// Run validates the request, calls the collaborators and returns the
// comparison. Any failure aborts the whole run.
func (s *Service) Run(ctx context.Context, req models.ScenarioRequest) (*models.ComparisonResponse, error) {
	r := &run{id: uuid.New().String()[:8], req: &req}
	start := time.Now()

	kind, err := validateRequest(&req)
	if err != nil {
		s.logger.Warn().Str("run", r.id).Err(err).Msg("Scenario rejected")
		return nil, err
	}
	r.kind = kind
	s.step(r, "Validate")

	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	r.tv, err = DeriveTempVariables(&req, kind)
	if err != nil {
		s.step(r, "Failed")
		return nil, err
	}
	r.target, r.hasTarget = req.FindTarget()
	r.overlay = req.Overlay()

	var portfolios []models.PortfolioSummary
	switch kind {
	case models.ScenarioExchange:
		portfolios, err = s.runExchange(ctx, r)
	case models.ScenarioRefi:
		portfolios, err = s.runRefi(ctx, r)
	case models.ScenarioPI:
		portfolios, err = s.runPI(ctx, r)
	}
	if err != nil {
		s.step(r, "Failed")
		s.logger.Error().Str("run", r.id).Str("scenario", string(kind)).Err(err).Msg("Scenario failed")
		return nil, err
	}

	resp := &models.ComparisonResponse{
		ScenarioType:    string(kind),
		ScenarioLevel:   req.ScenarioLevel,
		TargetProperty:  req.TargetProperty,
		TargetPortfolio: req.TargetPortfolio,
		Portfolios:      portfolios,
	}
	switch kind {
	case models.ScenarioRefi:
		resp.RefinancedProperty = models.RefiTargetUID
		resp.NewInvestmentID = models.NewInvestmentUID
	case models.ScenarioExchange:
		resp.RefinancedProperty = req.TargetProperty
		resp.NewInvestmentID = req.TargetProperty
	case models.ScenarioPI:
		resp.RefinancedProperty = req.TargetProperty
		if r.overlay != nil {
			resp.NewInvestmentID = r.overlay.UID
		}
	}

	s.step(r, "Respond")
	s.logger.Info().
		Str("run", r.id).
		Str("scenario", string(kind)).
		Int("portfolios", len(portfolios)).
		Float64("available_equity", r.tv.AvailableEquity).
		Dur("elapsed", time.Since(start)).
		Msg("Scenario complete")

	return resp, nil
}
