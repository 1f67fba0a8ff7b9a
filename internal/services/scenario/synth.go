package scenario

import "github.com/bobmcallan/propex/internal/models"

// syntheticLoan builds the fresh 30-year loan carried by synthesized properties
func syntheticLoan(principal, rate float64) models.Loan {
	return models.Loan{
		StartingBalance: principal,
		BalanceCurrent:  principal,
		LoanBalance:     principal,
		InterestRate:    rate,
		MortgageYears:   models.SyntheticLoanYears,
	}
}

// SyntheticTarget builds the replacement property bought with the target's
// available equity in an exchange. It keeps the target's uuid so the rest
// of the portfolio is unaffected.
func SyntheticTarget(req *models.ScenarioRequest, tv models.TempVariables) models.ForecastPayload {
	d := req.DefaultValues
	rents := tv.MonthlyRents

	return models.ForecastPayload{
		Property: models.Property{
			UUID: req.TargetProperty,
			Name: "New Investment",
			AllExpenses: models.Expenses{
				PropTaxes:  rents * d.Taxes,
				Insurance:  rents * d.Insurance,
				CapEx:      rents * d.Maintenance,
				PropManage: rents * d.Management,
				Utils:      rents * d.Utils,
				HOA:        rents * d.HOA,
			},
			Loans:                          []models.Loan{syntheticLoan(tv.Valuation-tv.AvailableEquity, req.NewLoanInterestRate)},
			YearsNum:                       models.ForecastYears,
			VacancyLossPercentage:          d.Vacancy,
			AvgRent:                        rents,
			UnitsNum:                       1,
			AnnualRevenueIncrease:          d.RentalGrowth,
			AnnualOperatingExpenseIncrease: d.ExpenseInflation,
			LandPerc:                       models.ForecastLandPerc,
			PropertyPerc:                   models.ForecastBuildPerc,
			PurchasePrice:                  tv.Valuation,
			ClosingCosts:                   d.ClosingCosts / req.NewDownPayment * tv.AvailableEquity,
			CurrentValue:                   tv.Valuation,
			AnnualAppreciationRate:         d.Appreciation,
			DownPaymentPerc:                req.NewDownPayment,
			TaxRate:                        d.TaxRate,
			CostToSell:                     models.ForecastCostToSell,
		},
		AvailableEquity: tv.AvailableEquity,
		MonthlyNOI:      tv.MonthlyNOI,
		MonthlyRents:    tv.MonthlyRents,
	}
}

// RefinancedTarget is the keep-and-refinance side of a refinance: the target
// with its debt replaced by a new loan at new_downpayment_target equity.
func RefinancedTarget(target models.Property, req *models.ScenarioRequest) models.Property {
	p := target.Clone()
	p.UUID = models.RefiTargetUID
	p.Name = "Refinanced " + target.Name

	principal := target.CurrentValue * (1 - req.NewDownPaymentTarget)
	p.Loans = []models.Loan{syntheticLoan(principal, req.NewLoanInterestRate)}
	p.DownPaymentPerc = req.NewDownPaymentTarget

	return p
}

// NewInvestment is the property bought with the equity released by a refinance
func NewInvestment(target models.Property, req *models.ScenarioRequest, tv models.TempVariables) models.Property {
	d := req.DefaultValues
	rents := tv.MonthlyRents
	price := tv.AvailableEquity / req.NewDownPayment

	p := target.Clone()
	p.UUID = models.NewInvestmentUID
	p.Name = "New Investment"
	p.AllExpenses.PropTaxes = rents * d.Taxes
	p.AllExpenses.Insurance = rents * d.Insurance
	p.AllExpenses.CapEx = rents * d.Maintenance
	p.AllExpenses.PropManage = rents * d.Management
	p.Loans = []models.Loan{syntheticLoan(price-tv.AvailableEquity, req.NewLoanInterestRate)}
	p.VacancyLossPercentage = d.Vacancy
	p.AnnualAppreciationRate = d.Appreciation
	p.AnnualRevenueIncrease = d.RentalGrowth
	p.AnnualOperatingExpenseIncrease = d.ExpenseInflation
	p.AvgRent = rents
	p.OtherIncome = 0
	p.PurchasePrice = price
	p.CurrentValue = price
	p.ClosingCosts = d.ClosingCosts / req.NewDownPayment * tv.AvailableEquity
	p.RepairCosts = 0
	p.DownPaymentPerc = req.NewDownPayment
	p.TaxRate = d.TaxRate
	p.Picture = ""

	return p
}
