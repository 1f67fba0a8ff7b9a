package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/propex/internal/models"
)

// runPI compares selling the target and moving its equity into a passive
// investment. The target portfolio is replaced in place by its "PI Exchange"
// comparison; other portfolios and the clone are processed plainly.
func (s *Service) runPI(ctx context.Context, r *run) ([]models.PortfolioSummary, error) {
	s.step(r, "CloneTarget")
	jobs := jobsFor(r, models.LabelPIExchange, nil)

	s.step(r, "BuildRequests")
	out := make([]models.PortfolioSummary, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, job := range jobs {
		i, job := i, job
		isTarget := job.portfolio.ID == r.req.TargetPortfolio
		if isTarget {
			job.overlay = r.overlay
		}
		g.Go(func() error {
			metrics, err := s.assemble(gctx, r, job)
			if err != nil {
				return err
			}

			if !isTarget {
				summary, err := s.summarize(gctx, job.portfolio.ID, job.label, metrics, job.portfolio.PassiveInvestments)
				if err != nil {
					return err
				}
				out[i] = summary
				return nil
			}

			base := models.PortfolioSummary{UUID: job.portfolio.ID, Properties: metrics}
			summary, err := s.piExchange(gctx, r, base, job.portfolio.ID, r.req.TargetProperty, job.portfolio.PassiveInvestments)
			if err != nil {
				return fmt.Errorf("pi exchange: %w", err)
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
