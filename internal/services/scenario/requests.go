package scenario

import "github.com/bobmcallan/propex/internal/models"

// plannedProperty pairs the forecast request for one property with the
// property record its metrics are built from
type plannedProperty struct {
	request   models.ForecastRequest
	property  models.Property
	synthetic bool
}

// planPortfolio walks the portfolio's properties in order. In an exchange the
// target (inside the target portfolio only) is replaced by SyntheticTarget.
// In a PI run the overlay, valued at the available equity, is attached ahead
// of the portfolio's own passive investments on the target element only.
func planPortfolio(req *models.ScenarioRequest, kind models.ScenarioType, tv models.TempVariables, portfolio models.Portfolio, overlay *models.PassiveInvestment) []plannedProperty {
	isTargetPortfolio := portfolio.ID == req.TargetPortfolio

	plan := make([]plannedProperty, 0, len(portfolio.Properties))
	for _, property := range portfolio.Properties {
		isTarget := isTargetPortfolio && property.UUID == req.TargetProperty

		payload := models.ForecastPayload{Property: property}
		synthetic := false

		switch {
		case isTarget && kind == models.ScenarioExchange:
			payload = SyntheticTarget(req, tv)
			synthetic = true
		case kind == models.ScenarioRefi && isTargetPortfolio && property.UUID == models.NewInvestmentUID:
			synthetic = true
		}

		fr := models.ForecastRequest{Array: []models.ForecastPayload{payload}}
		if isTarget && kind == models.ScenarioPI && overlay != nil {
			fr.PassiveInvestments = withOverlay(overlay, tv.AvailableEquity, portfolio.PassiveInvestments)
		}

		plan = append(plan, plannedProperty{
			request:   fr,
			property:  payload.Property,
			synthetic: synthetic,
		})
	}

	return plan
}

// BuildForecastRequests returns one single-property forecast request per
// property of portfolio, in input order
func BuildForecastRequests(req *models.ScenarioRequest, kind models.ScenarioType, tv models.TempVariables, portfolio models.Portfolio, overlay *models.PassiveInvestment) []models.ForecastRequest {
	plan := planPortfolio(req, kind, tv, portfolio, overlay)
	out := make([]models.ForecastRequest, len(plan))
	for i, p := range plan {
		out[i] = p.request
	}
	return out
}

// BuildFinalForecastRequest aggregates assembled properties and the
// portfolio's passive investments into one multi-year forecast body
func BuildFinalForecastRequest(properties []models.PropertyMetrics, passives []models.PassiveInvestment) models.ForecastRequest {
	array := make([]models.ForecastPayload, 0, len(properties))
	for _, m := range properties {
		array = append(array, models.ForecastPayload{Property: models.Property{
			UUID: m.UID,
			Name: m.Name,
			AllExpenses: models.Expenses{
				PropTaxes:  m.MonthlyExpenses.Taxes,
				Insurance:  m.MonthlyExpenses.Insurance,
				CapEx:      m.MonthlyExpenses.Maintenance,
				PropManage: m.MonthlyExpenses.Management,
				Utils:      m.MonthlyExpenses.Utils,
				HOA:        m.MonthlyExpenses.HOA,
			},
			Loans: []models.Loan{{
				StartingBalance: m.Loans.CurrentBalance,
				LoanBalance:     m.Loans.InitialBalance,
				InterestRate:    m.Loans.InterestRate,
				MortgageYears:   m.Loans.TotalYears,
			}},
			YearsNum:                       models.ForecastYears,
			VacancyLossPercentage:          m.Assumptions.Vacancy,
			AvgRent:                        m.MonthlyIncome.Rent,
			UnitsNum:                       1,
			OtherIncome:                    m.MonthlyIncome.OtherIncome,
			AnnualRevenueIncrease:          m.Assumptions.RentalGrowth,
			AnnualOperatingExpenseIncrease: m.Assumptions.ExpenseInflation,
			LandPerc:                       models.ForecastLandPerc,
			PropertyPerc:                   models.ForecastBuildPerc,
			PurchasePrice:                  m.Acquisition.PurchasePrice,
			ClosingCosts:                   m.Acquisition.ClosingCosts,
			RepairCosts:                    m.Acquisition.RepairCosts,
			CurrentValue:                   m.Valuation,
			AnnualAppreciationRate:         m.Assumptions.Appreciation,
			DownPaymentPerc:                1 - ratio(m.Loans.InitialBalance, m.Acquisition.PurchasePrice),
			TaxRate:                        m.TaxRate,
			CostToSell:                     models.ForecastCostToSell,
		}})
	}

	return models.ForecastRequest{Array: array, PassiveInvestments: passives}
}

// withOverlay prepends the overlay, revalued at investmentValue, to passives
func withOverlay(overlay *models.PassiveInvestment, investmentValue float64, passives []models.PassiveInvestment) []models.PassiveInvestment {
	out := make([]models.PassiveInvestment, 0, len(passives)+1)
	o := *overlay
	o.InvestmentValue = investmentValue
	out = append(out, o)
	for _, p := range passives {
		if p.UID == o.UID {
			continue
		}
		out = append(out, p)
	}
	return out
}
