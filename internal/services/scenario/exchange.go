package scenario

import (
	"context"

	"github.com/bobmcallan/propex/internal/models"
)

// runExchange sells the target and reinvests its available equity in a
// synthetic property. With an overlay, a "PI Exchange" variant that puts the
// equity into the passive investment instead is appended last.
func (s *Service) runExchange(ctx context.Context, r *run) ([]models.PortfolioSummary, error) {
	s.step(r, "CloneTarget")
	jobs := jobsFor(r, models.LabelExchange, nil)

	if r.hasTarget {
		s.step(r, "Amortize")
		amort, err := s.amortizeTarget(ctx, r.req, r.tv)
		if err != nil {
			return nil, err
		}
		r.targetAmortization = amort
	}

	s.step(r, "BuildRequests")
	portfolios, err := s.processAll(ctx, r, jobs)
	if err != nil {
		return nil, err
	}

	if r.overlay == nil || !r.hasTarget {
		return portfolios, nil
	}

	for i, job := range jobs {
		if job.portfolio.ID != r.req.TargetPortfolio {
			continue
		}
		derived, err := s.piExchange(ctx, r, portfolios[i], "pi_"+job.portfolio.ID, r.req.TargetProperty, job.portfolio.PassiveInvestments)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, derived)
		break
	}
	return portfolios, nil
}
