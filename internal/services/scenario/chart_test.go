package scenario

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/propex/internal/models"
)

func TestRenderEquityChart_PNG(t *testing.T) {
	svc, _, _ := newTestService()
	resp, err := svc.Run(context.Background(), withOverlayRequest(fixtureRequest("1031")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.RenderEquityChart(resp, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "not a PNG")
}

func TestRenderEquityChart_NothingToPlot(t *testing.T) {
	svc, _, _ := newTestService()

	var buf bytes.Buffer
	err := svc.RenderEquityChart(&models.ComparisonResponse{
		Portfolios: []models.PortfolioSummary{{UUID: "pf", Forecasting: []models.ForecastYear{{Year: 1}}}},
	}, &buf)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
	assert.Zero(t, buf.Len())

	assert.ErrorIs(t, svc.RenderEquityChart(nil, &buf), models.ErrInvalidRequest)
}
