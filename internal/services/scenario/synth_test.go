package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/propex/internal/models"
)

func TestSyntheticTarget_ExchangePayload(t *testing.T) {
	req := fixtureRequest("1031")
	tv, err := DeriveTempVariables(&req, models.ScenarioExchange)
	require.NoError(t, err)

	payload := SyntheticTarget(&req, tv)

	assert.Equal(t, targetUUID, payload.UUID)
	require.Len(t, payload.Loans, 1)
	loan := payload.Loans[0]
	assert.InDelta(t, 900000, loan.StartingBalance, 1e-6)
	assert.InDelta(t, 900000, loan.LoanBalance, 1e-6)
	assert.Equal(t, 30, loan.MortgageYears)
	assert.Equal(t, 0.06, loan.InterestRate)
	assert.Zero(t, loan.ExtraPayment)

	assert.Equal(t, 31, payload.YearsNum)
	assert.Equal(t, 0.07, payload.CostToSell)
	assert.Equal(t, 1, payload.UnitsNum)
	assert.Equal(t, 0.2, payload.LandPerc)
	assert.Equal(t, 0.8, payload.PropertyPerc)
	assert.InDelta(t, 1200000, payload.PurchasePrice, 1e-6)
	assert.InDelta(t, 1200000, payload.CurrentValue, 1e-6)
	// 0.03 / 0.25 × 300000
	assert.InDelta(t, 36000, payload.ClosingCosts, 1e-6)
	assert.Equal(t, 0.25, payload.DownPaymentPerc)
	assert.Equal(t, req.DefaultValues.TaxRate, payload.TaxRate)

	assert.InDelta(t, 10000, payload.AvgRent, 1e-6)
	assert.InDelta(t, 1000, payload.AllExpenses.PropTaxes, 1e-6)
	assert.InDelta(t, 500, payload.AllExpenses.Insurance, 1e-6)
	assert.InDelta(t, 500, payload.AllExpenses.CapEx, 1e-6)
	assert.InDelta(t, 800, payload.AllExpenses.PropManage, 1e-6)
	assert.InDelta(t, 200, payload.AllExpenses.Utils, 1e-6)
	assert.InDelta(t, 100, payload.AllExpenses.HOA, 1e-6)
	assert.Zero(t, payload.AllExpenses.OthersExpenses)
	assert.Zero(t, payload.OtherIncome)

	assert.InDelta(t, 300000, payload.AvailableEquity, 1e-6)
	assert.InDelta(t, 6000, payload.MonthlyNOI, 1e-6)
}

func TestRefinancedTarget(t *testing.T) {
	req := fixtureRequest("refi")
	target := targetProperty()

	p := RefinancedTarget(target, &req)

	assert.Equal(t, models.RefiTargetUID, p.UUID)
	assert.Equal(t, "Refinanced Oak St", p.Name)
	assert.Equal(t, 0.5, p.DownPaymentPerc)
	require.Len(t, p.Loans, 1)
	assert.InDelta(t, 200000, p.Loans[0].StartingBalance, 1e-6)
	assert.InDelta(t, 200000, p.Loans[0].LoanBalance, 1e-6)
	assert.InDelta(t, 200000, p.Loans[0].BalanceCurrent, 1e-6)
	assert.Equal(t, 30, p.Loans[0].MortgageYears)
	assert.Zero(t, p.Loans[0].PMI)

	// Operating figures are kept
	assert.Equal(t, target.AvgRent, p.AvgRent)
	assert.Equal(t, target.AllExpenses, p.AllExpenses)

	// The input is not touched
	assert.Equal(t, 100000.0, target.Loans[0].BalanceCurrent)
	assert.Equal(t, targetUUID, target.UUID)
}

func TestNewInvestment(t *testing.T) {
	req := withTargetBalance(fixtureRequest("refi"), 150000)
	tv, err := DeriveTempVariables(&req, models.ScenarioRefi)
	require.NoError(t, err)

	p := NewInvestment(targetProperty(), &req, tv)

	assert.Equal(t, models.NewInvestmentUID, p.UUID)
	assert.InDelta(t, 200000, p.PurchasePrice, 1e-6)
	assert.InDelta(t, 200000, p.CurrentValue, 1e-6)
	require.Len(t, p.Loans, 1)
	assert.InDelta(t, 150000, p.Loans[0].LoanBalance, 1e-6)
	// 0.03 / 0.25 × 50000
	assert.InDelta(t, 6000, p.ClosingCosts, 1e-6)
	assert.Zero(t, p.RepairCosts)
	assert.Zero(t, p.OtherIncome)
	assert.Equal(t, 0.25, p.DownPaymentPerc)
	assert.Equal(t, req.DefaultValues.TaxRate, p.TaxRate)
	assert.Equal(t, req.DefaultValues.Vacancy, p.VacancyLossPercentage)
	assert.Equal(t, req.DefaultValues.RentalGrowth, p.AnnualRevenueIncrease)
	assert.Equal(t, req.DefaultValues.ExpenseInflation, p.AnnualOperatingExpenseIncrease)

	rents := tv.MonthlyRents
	assert.InDelta(t, rents, p.AvgRent, 1e-9)
	assert.InDelta(t, rents*0.1, p.AllExpenses.PropTaxes, 1e-9)
	assert.InDelta(t, rents*0.08, p.AllExpenses.PropManage, 1e-9)
	// Lines without a default keep the target's values
	assert.Equal(t, 40.0, p.AllExpenses.HOA)
	assert.Equal(t, 60.0, p.AllExpenses.Utils)
}
