package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/propex/internal/models"
)

var seriesPalette = []string{
	"2563eb", // blue-600
	"16a34a", // green-600
	"dc2626", // red-600
	"9333ea", // purple-600
	"ea580c", // orange-600
	"0891b2", // cyan-600
	"6b7280", // gray-500
}

// RenderEquityChart writes a PNG line chart of projected cumulative equity
// by year, one series per portfolio that carries a final forecast.
func (s *Service) RenderEquityChart(resp *models.ComparisonResponse, w io.Writer) error {
	if resp == nil {
		return fmt.Errorf("no comparison to chart: %w", models.ErrInvalidRequest)
	}

	var series []chart.Series
	for _, p := range resp.Portfolios {
		if len(p.Forecasting) < 2 {
			continue
		}

		xs := make([]float64, len(p.Forecasting))
		ys := make([]float64, len(p.Forecasting))
		for i, row := range p.Forecasting {
			xs[i] = float64(row.Year)
			ys[i] = row.CumulativeAppreciations.TotalCumulativeEquity
		}

		style := chart.Style{
			StrokeColor: drawing.ColorFromHex(seriesPalette[len(series)%len(seriesPalette)]),
			StrokeWidth: 2,
		}
		// The untouched clone is the baseline the scenario is compared against
		if strings.HasPrefix(p.UUID, "clone-") {
			style.StrokeDashArray = []float64{5.0, 3.0}
		}

		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s (%s)", p.Name, p.UUID),
			Style:   style,
			XValues: xs,
			YValues: ys,
		})
	}

	if len(series) == 0 {
		return fmt.Errorf("no portfolio has at least 2 forecast years: %w", models.ErrInvalidRequest)
	}

	graph := chart.Chart{
		Title:  "Projected Cumulative Equity",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Year",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
