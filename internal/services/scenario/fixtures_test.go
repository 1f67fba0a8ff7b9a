package scenario

import (
	"testing"

	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/models"
	testcommon "github.com/bobmcallan/propex/test/common"
)

const (
	mainPortfolio  = "pf-main"
	otherPortfolio = "pf-other"
	targetUUID     = "p-target"
	sideUUID       = "p-side"
	lakeUUID       = "p-lake"
	cashUUID       = "p-cash"
)

func targetProperty() models.Property {
	return models.Property{
		UUID:                           targetUUID,
		Name:                           "Oak St",
		CurrentValue:                   400000,
		PurchasePrice:                  300000,
		ClosingCosts:                   6000,
		RepairCosts:                    4000,
		DownPaymentPerc:                0.2,
		TaxRate:                        0.25,
		AnnualAppreciationRate:         0.03,
		AnnualRevenueIncrease:          0.03,
		AnnualOperatingExpenseIncrease: 0.02,
		AvgRent:                        2500,
		OtherIncome:                    100,
		VacancyLossPercentage:          0.05,
		AllExpenses: models.Expenses{
			PropTaxes:  300,
			Insurance:  100,
			CapEx:      150,
			PropManage: 200,
			HOA:        40,
			Utils:      60,
		},
		Loans: []models.Loan{{
			StartingBalance: 240000,
			BalanceCurrent:  100000,
			LoanBalance:     240000,
			InterestRate:    0.06,
			MortgageYears:   30,
			PMI:             20,
			ExtraPayment:    30,
		}},
		Picture: "oak.jpg",
	}
}

func fixtureRequest(scenarioType string) models.ScenarioRequest {
	return models.ScenarioRequest{
		ScenarioType:    scenarioType,
		TargetProperty:  targetUUID,
		TargetPortfolio: mainPortfolio,
		Portfolios: []models.Portfolio{
			{
				ID:   mainPortfolio,
				Name: "Main Street",
				Properties: []models.Property{
					targetProperty(),
					{
						UUID:                   sideUUID,
						Name:                   "Side St",
						CurrentValue:           250000,
						PurchasePrice:          200000,
						ClosingCosts:           4000,
						DownPaymentPerc:        0.25,
						TaxRate:                0.25,
						AnnualAppreciationRate: 0.03,
						AvgRent:                1800,
						VacancyLossPercentage:  0.05,
						AllExpenses:            models.Expenses{PropTaxes: 200, Insurance: 80, CapEx: 100, PropManage: 150},
						Loans: []models.Loan{{
							StartingBalance: 150000,
							BalanceCurrent:  140000,
							LoanBalance:     150000,
							InterestRate:    0.05,
							MortgageYears:   30,
						}},
					},
				},
				PassiveInvestments: []models.PassiveInvestment{
					{UID: "fund-a", Name: "Fund A", InvestmentValue: 50000, CashflowGrow: 0.05, EquityGrow: 0.02},
				},
			},
			{
				ID:   otherPortfolio,
				Name: "Lake Portfolio",
				Properties: []models.Property{
					{
						UUID:          lakeUUID,
						Name:          "Lake House",
						CurrentValue:  500000,
						PurchasePrice: 450000,
						TaxRate:       0.3,
						AvgRent:       3000,
						AllExpenses:   models.Expenses{PropTaxes: 400},
						Loans: []models.Loan{{
							StartingBalance: 360000,
							BalanceCurrent:  300000,
							LoanBalance:     360000,
							InterestRate:    0.045,
							MortgageYears:   15,
						}},
					},
					{
						UUID:          cashUUID,
						Name:          "Paid-off Condo",
						CurrentValue:  150000,
						PurchasePrice: 120000,
						AvgRent:       1100,
					},
				},
			},
		},
		DefaultValues: models.ScenarioDefaults{
			TaxRate:          0.25,
			Appreciation:     0.03,
			Vacancy:          0.05,
			Management:       0.08,
			Insurance:        0.05,
			Maintenance:      0.05,
			ClosingCosts:     0.03,
			ExpenseInflation: 0.02,
			RentalGrowth:     0.03,
			ExpenseRatio:     0.4,
			Utils:            0.02,
			HOA:              0.01,
			Taxes:            0.1,
		},
		NewDownPayment:       0.25,
		NewDownPaymentTarget: 0.5,
		NewCapRate:           0.06,
		NewLoanInterestRate:  0.06,
	}
}

// withTargetBalance sets the target's current loan balance
func withTargetBalance(req models.ScenarioRequest, balance float64) models.ScenarioRequest {
	props := append([]models.Property(nil), req.Portfolios[0].Properties...)
	props[0] = props[0].Clone()
	props[0].Loans[0].BalanceCurrent = balance

	portfolios := append([]models.Portfolio(nil), req.Portfolios...)
	portfolios[0].Properties = props
	req.Portfolios = portfolios
	return req
}

func withOverlayRequest(req models.ScenarioRequest) models.ScenarioRequest {
	req.PassiveInvestments = []models.PassiveInvestment{
		{UID: "note-x", Name: "Note X", InvestmentValue: 1, CashflowGrow: 0.08, EquityGrow: 0.01},
	}
	return req
}

func newTestService() (*Service, *testcommon.MockForecastClient, *testcommon.MockAmortizationClient) {
	fc := testcommon.NewMockForecastClient()
	ac := testcommon.NewMockAmortizationClient()
	return NewService(fc, ac, common.NewSilentLogger(), WithMaxConcurrency(4)), fc, ac
}

func findPortfolio(t *testing.T, resp *models.ComparisonResponse, uuid string) models.PortfolioSummary {
	for _, p := range resp.Portfolios {
		if p.UUID == uuid {
			return p
		}
	}
	t.Helper()
	t.Fatalf("portfolio %s not in response", uuid)
	return models.PortfolioSummary{}
}

func findProperty(s models.PortfolioSummary, uid string) (models.PropertyMetrics, bool) {
	for _, p := range s.Properties {
		if p.UID == uid {
			return p, true
		}
	}
	return models.PropertyMetrics{}, false
}

func uids(s models.PortfolioSummary) []string {
	out := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		out[i] = p.UID
	}
	return out
}
