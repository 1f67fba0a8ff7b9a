// Package common provides shared test infrastructure
package common

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/bobmcallan/propex/internal/interfaces"
	"github.com/bobmcallan/propex/internal/models"
)

// MockForecastClient implements ForecastClient with a deterministic projection.
// Year y of a request reports a mortgage paydown of PaydownRate × the primary
// loan principal of each property, and each passive investment returns
// investment_value × its growth rates as output values.
type MockForecastClient struct {
	Years       int
	PaydownRate float64

	// Err fails every call; FailUUID fails only requests for that property
	Err      error
	FailUUID string

	// Empty makes single-property forecasts return no rows
	Empty bool

	// Delay holds every call until it elapses or ctx is done
	Delay time.Duration

	mu       sync.Mutex
	Requests []models.ForecastRequest
	Calls    int
}

// NewMockForecastClient creates a mock forecasting client projecting 3 years
func NewMockForecastClient() *MockForecastClient {
	return &MockForecastClient{Years: 3, PaydownRate: 0.01}
}

func (m *MockForecastClient) Forecast(ctx context.Context, req models.ForecastRequest) ([]models.ForecastYear, error) {
	m.mu.Lock()
	m.Calls++
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", models.ErrCollaboratorUnavailable, ctx.Err())
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.FailUUID != "" && req.UUID() == m.FailUUID {
		return nil, models.ErrCollaboratorUnavailable
	}
	if m.Empty && len(req.Array) == 1 {
		return []models.ForecastYear{}, nil
	}

	rows := make([]models.ForecastYear, 0, m.Years)
	for y := 1; y <= m.Years; y++ {
		row := models.ForecastYear{Year: y}
		for _, p := range req.Array {
			loan := p.PrimaryLoan()
			paydown := loan.LoanBalance * m.PaydownRate
			row.NOI += (p.AvgRent - p.AllExpenses.Sum()) * 12
			row.CumulativeAppreciations.MortgagePaydown += paydown
			row.CumulativeAppreciations.PropertyValue += p.CurrentValue
			row.CumulativeAppreciations.LoanBalance += loan.LoanBalance - paydown*float64(y)
			row.CumulativeAppreciations.TotalCumulativeEquity += p.CurrentValue - loan.BalanceCurrent + paydown*float64(y)
		}
		for _, pi := range req.PassiveInvestments {
			cf := pi.InvestmentValue * pi.CashflowGrow
			eg := pi.InvestmentValue * pi.EquityGrow
			row.PassiveInvestments = append(row.PassiveInvestments, models.PassiveYear{
				UID:              pi.UID,
				Name:             pi.Name,
				Year:             y,
				CashflowGrow:     pi.CashflowGrow,
				EquityGrow:       pi.EquityGrow,
				OutputCashflow:   &cf,
				OutputEquityGrow: &eg,
			})
			row.CumulativeAppreciations.TotalCumulativeEquity += pi.InvestmentValue + eg*float64(y)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CallCount returns the number of Forecast calls so far
func (m *MockForecastClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// RequestsFor returns the recorded single-property requests for uuid
func (m *MockForecastClient) RequestsFor(uuid string) []models.ForecastRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ForecastRequest
	for _, r := range m.Requests {
		if len(r.Array) == 1 && r.UUID() == uuid {
			out = append(out, r)
		}
	}
	return out
}

// FinalRequests returns the recorded requests that carried passive
// investments or more than one property
func (m *MockForecastClient) FinalRequests() []models.ForecastRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ForecastRequest
	for _, r := range m.Requests {
		if len(r.Array) != 1 || len(r.PassiveInvestments) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// MockAmortizationClient implements AmortizationClient with the standard
// fixed-rate payment formula
type MockAmortizationClient struct {
	Err error

	mu       sync.Mutex
	Requests []models.AmortizationRequest
	Calls    int
}

// NewMockAmortizationClient creates a mock amortization client
func NewMockAmortizationClient() *MockAmortizationClient {
	return &MockAmortizationClient{}
}

func (m *MockAmortizationClient) Amortize(ctx context.Context, req models.AmortizationRequest) (*models.AmortizationResponse, error) {
	m.mu.Lock()
	m.Calls++
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	payment := MonthlyPayment(req.Amount, req.InterestRate, req.TermInMonths)
	return &models.AmortizationResponse{
		Summary: models.AmortizationSummary{
			NumberOfPayments: req.TermInMonths,
			MonthlyPayment:   payment,
			TotalPrincipal:   req.Amount,
			TotalInterest:    payment*float64(req.TermInMonths) - req.Amount,
		},
	}, nil
}

// CallCount returns the number of Amortize calls so far
func (m *MockAmortizationClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MonthlyPayment returns the level payment for a loan; ratePct is in percent
func MonthlyPayment(principal, ratePct float64, months int) float64 {
	if months <= 0 || principal == 0 {
		return 0
	}
	r := ratePct / 100 / 12
	if r == 0 {
		return principal / float64(months)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(months)))
}

// Compile-time interface checks
var (
	_ interfaces.ForecastClient     = (*MockForecastClient)(nil)
	_ interfaces.AmortizationClient = (*MockAmortizationClient)(nil)
)
