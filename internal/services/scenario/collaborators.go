package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/propex/internal/models"
)

// forecastBatch forecasts each single-property request concurrently and
// returns the rows keyed by property uuid
func (s *Service) forecastBatch(ctx context.Context, reqs []models.ForecastRequest) (map[string][]models.ForecastYear, error) {
	results := make([][]models.ForecastYear, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, fr := range reqs {
		i, fr := i, fr
		g.Go(func() error {
			rows, err := s.forecast.Forecast(gctx, fr)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byUUID := make(map[string][]models.ForecastYear, len(reqs))
	for i, fr := range reqs {
		byUUID[fr.UUID()] = results[i]
	}
	return byUUID, nil
}

// amortizeTarget amortizes the new loan taken to buy a synthetic property:
// valuation minus available equity over 30 years at the new rate
func (s *Service) amortizeTarget(ctx context.Context, req *models.ScenarioRequest, tv models.TempVariables) (*models.AmortizationResponse, error) {
	principal := tv.Valuation - tv.AvailableEquity
	resp, err := s.amortization.Amortize(ctx, models.AmortizationRequest{
		Amount:          principal,
		StartingBalance: principal,
		InterestRate:    req.NewLoanInterestRate * 100,
		TermInMonths:    models.SyntheticLoanYears * 12,
	})
	if err != nil {
		return nil, fmt.Errorf("target amortization: %w", err)
	}
	return resp, nil
}

// amortizeNonTarget amortizes each property's primary loan concurrently.
// Unencumbered properties get a zero schedule without a call.
func (s *Service) amortizeNonTarget(ctx context.Context, properties []models.Property) (map[string]*models.AmortizationResponse, error) {
	results := make([]*models.AmortizationResponse, len(properties))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, p := range properties {
		i, p := i, p
		if len(p.Loans) == 0 {
			results[i] = &models.AmortizationResponse{}
			continue
		}
		loan := p.Loans[0]
		g.Go(func() error {
			resp, err := s.amortization.Amortize(gctx, models.AmortizationRequest{
				Amount:          loan.LoanBalance,
				StartingBalance: loan.StartingBalance,
				InterestRate:    loan.InterestRate * 100,
				TermInMonths:    loan.MortgageYears * 12,
			})
			if err != nil {
				return fmt.Errorf("amortization for %s: %w", p.UUID, err)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byUUID := make(map[string]*models.AmortizationResponse, len(properties))
	for i, p := range properties {
		byUUID[p.UUID] = results[i]
	}
	return byUUID, nil
}

// forecastFinal projects the whole portfolio in one call. It returns nil
// without calling out when there is nothing to project.
func (s *Service) forecastFinal(ctx context.Context, properties []models.PropertyMetrics, passives []models.PassiveInvestment) ([]models.ForecastYear, error) {
	if len(properties) == 0 && len(passives) == 0 {
		return nil, nil
	}
	rows, err := s.forecast.Forecast(ctx, BuildFinalForecastRequest(properties, passives))
	if err != nil {
		return nil, fmt.Errorf("final forecast: %w", err)
	}
	return rows, nil
}
