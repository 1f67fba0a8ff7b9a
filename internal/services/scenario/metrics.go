package scenario

import (
	"fmt"
	"math"

	"github.com/bobmcallan/propex/internal/models"
)

// Straight-line residential depreciation: 85% of the price is building,
// written off over 27.5 years
const (
	depreciableShare = 0.85
	depreciationLife = 27.5
)

// PropertyInput is everything needed to assemble one property's metrics
type PropertyInput struct {
	Property     models.Property
	Forecast     []models.ForecastYear
	Amortization *models.AmortizationResponse

	// Synthetic properties are bought with the available equity, which is
	// both their down payment and their equity
	Synthetic       bool
	AvailableEquity float64
}

// ratio divides a by b, returning 0 when the result is not finite
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// NOI returns annual net operating income. Vacancy loss is charged on rent only.
func NOI(p models.Property) float64 {
	return (p.AvgRent + p.OtherIncome - p.AllExpenses.Sum() - p.VacancyLossPercentage*p.AvgRent) * 12
}

// Depreciation returns the annual tax benefit of depreciating the building
func Depreciation(purchasePrice, taxRate float64) float64 {
	return purchasePrice * depreciableShare / depreciationLife * taxRate
}

// AssembleProperty builds the metrics record for one property
func AssembleProperty(in PropertyInput) (models.PropertyMetrics, error) {
	p := in.Property
	if len(in.Forecast) == 0 {
		return models.PropertyMetrics{}, fmt.Errorf("property %s: %w", p.UUID, models.ErrMissingForecastRow)
	}
	if in.Amortization == nil {
		return models.PropertyMetrics{}, fmt.Errorf("property %s: %w", p.UUID, models.ErrMissingAmortization)
	}

	loan := p.PrimaryLoan()
	monthlyPayment := in.Amortization.Summary.MonthlyPayment

	noi := NOI(p)
	cashFlow := noi - (monthlyPayment+loan.PMI+loan.ExtraPayment)*12

	downPayment := p.DownPaymentPerc * p.PurchasePrice
	if in.Synthetic {
		downPayment = in.AvailableEquity
	}
	totalCashOutlay := downPayment + p.ClosingCosts + p.RepairCosts

	valuation := p.CurrentValue
	loanBalance := p.CurrentLoanBalance()
	equity := valuation - loanBalance
	if in.Synthetic {
		equity = in.AvailableEquity
	}

	arb := models.Arb{
		CashOnCash:      ratio(cashFlow, totalCashOutlay) * 100,
		AverageCap:      ratio(noi, valuation) * 100,
		RentMultiplier:  ratio(valuation, p.AvgRent*12+p.OtherIncome*12),
		ArbAppreciation: valuation * p.AnnualAppreciationRate,
		ArbDepreciation: Depreciation(p.PurchasePrice, p.TaxRate),
		ArbDownPayment:  in.Forecast[0].CumulativeAppreciations.MortgagePaydown,
	}

	vacancy := p.AvgRent * p.VacancyLossPercentage
	e := p.AllExpenses

	return models.PropertyMetrics{
		UID:         p.UUID,
		Name:        p.Name,
		Valuation:   valuation,
		LoanBalance: loanBalance,
		Equity:      equity,
		CashFlow:    cashFlow,
		NOI:         noi,
		ROE:         ratio(arb.ArbAppreciation+arb.ArbDepreciation+arb.ArbDownPayment+cashFlow, equity),
		Arb:         arb,
		MonthlyIncome: models.MonthlyIncome{
			Rent:        p.AvgRent,
			OtherIncome: p.OtherIncome,
		},
		MonthlyExpenses: models.MonthlyExpenses{
			Vacancy:       vacancy,
			Taxes:         e.PropTaxes,
			Insurance:     e.Insurance,
			Management:    e.PropManage,
			HOA:           e.HOA,
			Maintenance:   e.CapEx,
			Utils:         e.Utils,
			OtherExpenses: e.OthersExpenses,
			Total:         vacancy + e.Sum(),
		},
		Loans: models.LoanSummary{
			TotalYears:     loan.MortgageYears,
			InitialBalance: loan.LoanBalance,
			CurrentBalance: loan.StartingBalance,
			InterestRate:   loan.InterestRate,
			PMI:            loan.PMI,
			ExtraPayments:  loan.ExtraPayment,
			MonthlyPayment: monthlyPayment,
		},
		Assumptions: models.Assumptions{
			ExpenseInflation: p.AnnualOperatingExpenseIncrease,
			RentalGrowth:     p.AnnualRevenueIncrease,
			Appreciation:     p.AnnualAppreciationRate,
			Maintenance:      ratio(e.CapEx, p.AvgRent),
			Vacancy:          p.VacancyLossPercentage,
			Management:       ratio(e.PropManage, p.AvgRent),
		},
		Acquisition: models.Acquisition{
			TotalCashOutlay: totalCashOutlay,
			PurchasePrice:   p.PurchasePrice,
			ClosingCosts:    p.ClosingCosts,
			DownPayment:     downPayment,
			RepairCosts:     p.RepairCosts,
		},
		TaxRate: p.TaxRate,
		Picture: p.Picture,
	}, nil
}
