package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/propex/internal/models"
)

// portfolioJob is one portfolio to process, with the label and passive
// investments its summary is built with
type portfolioJob struct {
	portfolio models.Portfolio
	label     string
	overlay   *models.PassiveInvestment // attached to the target element's forecast request
}

// clonePortfolio copies the target portfolio as clone-<id>, dropping the
// target property when remove_primary is set. ok is false if there is no
// target portfolio.
func clonePortfolio(req *models.ScenarioRequest) (models.Portfolio, bool) {
	target, ok := req.FindPortfolio(req.TargetPortfolio)
	if !ok {
		return models.Portfolio{}, false
	}

	clone := models.Portfolio{
		ID:                 "clone-" + target.ID,
		Name:               target.Name,
		PassiveInvestments: target.PassiveInvestments,
	}
	for _, p := range target.Properties {
		if req.RemovePrimary && p.UUID == req.TargetProperty {
			continue
		}
		clone.Properties = append(clone.Properties, p)
	}
	return clone, true
}

// assemble runs request building, forecasting, amortization and metrics
// assembly for one portfolio
func (s *Service) assemble(ctx context.Context, r *run, job portfolioJob) ([]models.PropertyMetrics, error) {
	plan := planPortfolio(r.req, r.kind, r.tv, job.portfolio, job.overlay)

	reqs := make([]models.ForecastRequest, len(plan))
	var plain []models.Property
	for i, pp := range plan {
		reqs[i] = pp.request
		if !pp.synthetic {
			plain = append(plain, pp.property)
		}
	}

	var (
		forecasts map[string][]models.ForecastYear
		amort     map[string]*models.AmortizationResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		forecasts, err = s.forecastBatch(gctx, reqs)
		return err
	})
	g.Go(func() error {
		var err error
		amort, err = s.amortizeNonTarget(gctx, plain)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("portfolio %s: %w", job.portfolio.ID, err)
	}

	metrics := make([]models.PropertyMetrics, 0, len(plan))
	for _, pp := range plan {
		in := PropertyInput{
			Property:        pp.property,
			Forecast:        forecasts[pp.property.UUID],
			Amortization:    amort[pp.property.UUID],
			Synthetic:       pp.synthetic,
			AvailableEquity: r.tv.AvailableEquity,
		}
		if pp.synthetic {
			in.Amortization = r.targetAmortization
		}

		m, err := AssembleProperty(in)
		if err != nil {
			return nil, fmt.Errorf("portfolio %s: %w", job.portfolio.ID, err)
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// summarize runs the final forecast for a set of assembled properties and
// passive investments and aggregates the result
func (s *Service) summarize(ctx context.Context, id, name string, metrics []models.PropertyMetrics, passives []models.PassiveInvestment) (models.PortfolioSummary, error) {
	rows, err := s.forecastFinal(ctx, metrics, passives)
	if err != nil {
		return models.PortfolioSummary{}, fmt.Errorf("portfolio %s: %w", id, err)
	}

	pi := BuildPassiveSummaries(rows, passives)
	summary := Aggregate(id, name, metrics, pi)
	summary.Forecasting = rows
	return summary, nil
}

// processAll runs every job concurrently and returns the summaries in job order
func (s *Service) processAll(ctx context.Context, r *run, jobs []portfolioJob) ([]models.PortfolioSummary, error) {
	s.step(r, "Forecast")
	out := make([]models.PortfolioSummary, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			metrics, err := s.assemble(gctx, r, job)
			if err != nil {
				return err
			}
			summary, err := s.summarize(gctx, job.portfolio.ID, job.label, metrics, job.portfolio.PassiveInvestments)
			if err != nil {
				return err
			}
			out[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.step(r, "AggregatePortfolio")
	return out, nil
}

// piExchange derives the "PI Exchange" comparison from an already summarised
// portfolio: the property funded by the available equity is removed and the
// overlay, valued at the available equity, takes its place.
func (s *Service) piExchange(ctx context.Context, r *run, base models.PortfolioSummary, id, stripUID string, passives []models.PassiveInvestment) (models.PortfolioSummary, error) {
	s.step(r, "SynthesizeComparisonPortfolio")

	kept := make([]models.PropertyMetrics, 0, len(base.Properties))
	for _, p := range base.Properties {
		if p.UID == stripUID {
			continue
		}
		kept = append(kept, p)
	}

	if r.overlay == nil {
		summary, err := s.summarize(ctx, id, models.LabelPIExchange, kept, passives)
		if err != nil {
			return models.PortfolioSummary{}, err
		}
		return AddCash(summary, r.tv.AvailableEquity), nil
	}

	return s.summarize(ctx, id, models.LabelPIExchange, kept, withOverlay(r.overlay, r.tv.AvailableEquity, passives))
}

// jobsFor lists the request's portfolios followed by the processed clone
func jobsFor(r *run, label string, expand func(models.Portfolio) models.Portfolio) []portfolioJob {
	jobs := make([]portfolioJob, 0, len(r.req.Portfolios)+1)
	for _, p := range r.req.Portfolios {
		job := portfolioJob{portfolio: p, label: p.Name}
		if p.ID == r.req.TargetPortfolio {
			job.label = label
			if expand != nil {
				job.portfolio = expand(p)
			}
		}
		jobs = append(jobs, job)
	}
	if clone, ok := clonePortfolio(r.req); ok {
		jobs = append(jobs, portfolioJob{portfolio: clone, label: clone.Name})
	}
	return jobs
}
