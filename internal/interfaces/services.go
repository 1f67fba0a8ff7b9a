package interfaces

import (
	"context"
	"io"

	"github.com/bobmcallan/propex/internal/models"
)

// ScenarioService runs scenario comparisons
type ScenarioService interface {
	// Run validates the request, calls the collaborators, and returns the
	// comparison. The run is all-or-nothing.
	Run(ctx context.Context, req models.ScenarioRequest) (*models.ComparisonResponse, error)

	// Validate checks a request without contacting any collaborator
	Validate(req models.ScenarioRequest) error

	// RenderEquityChart writes a PNG of projected cumulative equity per portfolio
	RenderEquityChart(resp *models.ComparisonResponse, w io.Writer) error
}
