package scenario

import (
	"fmt"

	"github.com/bobmcallan/propex/internal/models"
)

// DeriveTempVariables computes the available equity and the synthetic
// reinvestment figures for the target property. Exchange and PI runs with a
// missing target get a zero result; refinance runs fail with ErrTargetNotFound.
func DeriveTempVariables(req *models.ScenarioRequest, kind models.ScenarioType) (models.TempVariables, error) {
	target, ok := req.FindTarget()
	if !ok {
		if kind == models.ScenarioRefi {
			return models.TempVariables{}, fmt.Errorf("property %s in portfolio %s: %w",
				req.TargetProperty, req.TargetPortfolio, models.ErrTargetNotFound)
		}
		return models.TempVariables{}, nil
	}

	balance := target.PrimaryLoan().BalanceCurrent
	availableEquity := target.CurrentValue - balance
	if kind == models.ScenarioRefi {
		availableEquity -= target.CurrentValue * req.NewDownPaymentTarget
	}

	monthlyNOI := availableEquity * req.NewCapRate / 12 / req.NewDownPayment

	return models.TempVariables{
		AvailableEquity: availableEquity,
		MonthlyNOI:      monthlyNOI,
		MonthlyRents:    monthlyNOI / (1 - req.DefaultValues.ExpenseRatio),
		Valuation:       availableEquity / req.NewDownPayment,
	}, nil
}
