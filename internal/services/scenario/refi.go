package scenario

import (
	"context"

	"github.com/bobmcallan/propex/internal/models"
)

// runRefi compares keeping the target under a new loan plus buying a new
// property with the released equity. The target portfolio's target property
// is expanded into the refinanced target followed by the new investment;
// with remove_primary only the new investment takes its place.
func (s *Service) runRefi(ctx context.Context, r *run) ([]models.PortfolioSummary, error) {
	s.step(r, "CloneTarget")
	refinanced := RefinancedTarget(r.target, r.req)
	newInvestment := NewInvestment(r.target, r.req, r.tv)

	expand := func(p models.Portfolio) models.Portfolio {
		out := p
		out.Properties = make([]models.Property, 0, len(p.Properties)+1)
		for _, prop := range p.Properties {
			if prop.UUID == r.req.TargetProperty {
				if !r.req.RemovePrimary {
					out.Properties = append(out.Properties, refinanced)
				}
				out.Properties = append(out.Properties, newInvestment)
				continue
			}
			out.Properties = append(out.Properties, prop)
		}
		return out
	}
	jobs := jobsFor(r, models.LabelRefi, expand)

	s.step(r, "Amortize")
	amort, err := s.amortizeTarget(ctx, r.req, r.tv)
	if err != nil {
		return nil, err
	}
	r.targetAmortization = amort

	s.step(r, "BuildRequests")
	portfolios, err := s.processAll(ctx, r, jobs)
	if err != nil {
		return nil, err
	}

	if r.overlay == nil {
		return portfolios, nil
	}

	for i, job := range jobs {
		if job.portfolio.ID != r.req.TargetPortfolio {
			continue
		}
		derived, err := s.piExchange(ctx, r, portfolios[i], "pi_"+job.portfolio.ID, models.NewInvestmentUID, job.portfolio.PassiveInvestments)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, derived)
		break
	}
	return portfolios, nil
}
