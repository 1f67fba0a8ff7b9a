// Package interfaces defines service contracts for Propex
package interfaces

import (
	"context"

	"github.com/bobmcallan/propex/internal/models"
)

// ForecastClient projects one or more properties (and passive investments)
// year by year
type ForecastClient interface {
	// Forecast posts a request and returns the yearly rows in year order
	Forecast(ctx context.Context, req models.ForecastRequest) ([]models.ForecastYear, error)
}

// AmortizationClient computes a loan amortization schedule
type AmortizationClient interface {
	// Amortize returns the schedule and summary for a single loan
	Amortize(ctx context.Context, req models.AmortizationRequest) (*models.AmortizationResponse, error)
}
