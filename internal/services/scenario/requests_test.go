package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/propex/internal/models"
)

func TestBuildForecastRequests_ExchangeSubstitutesTargetOnly(t *testing.T) {
	req := fixtureRequest("1031")
	tv, err := DeriveTempVariables(&req, models.ScenarioExchange)
	require.NoError(t, err)

	reqs := BuildForecastRequests(&req, models.ScenarioExchange, tv, req.Portfolios[0], nil)
	require.Len(t, reqs, 2)
	assert.Equal(t, targetUUID, reqs[0].UUID())
	assert.Equal(t, sideUUID, reqs[1].UUID())

	synth := reqs[0].Array[0]
	assert.Equal(t, "New Investment", synth.Name)
	assert.InDelta(t, 300000, synth.AvailableEquity, 1e-6)
	assert.InDelta(t, 1200000, synth.CurrentValue, 1e-6)
	assert.Empty(t, reqs[0].PassiveInvestments)

	side := reqs[1].Array[0]
	assert.Equal(t, "Side St", side.Name)
	assert.Zero(t, side.AvailableEquity)

	// Same uuid outside the target portfolio is left alone
	clone, ok := clonePortfolio(&req)
	require.True(t, ok)
	clone.ID = "clone-" + mainPortfolio
	plain := BuildForecastRequests(&req, models.ScenarioExchange, tv, clone, nil)
	assert.Equal(t, "Oak St", plain[0].Array[0].Name)
	assert.Equal(t, 400000.0, plain[0].Array[0].CurrentValue)
}

func TestBuildForecastRequests_PIOverlayOnTarget(t *testing.T) {
	req := withOverlayRequest(fixtureRequest("pi"))
	tv, err := DeriveTempVariables(&req, models.ScenarioPI)
	require.NoError(t, err)

	reqs := BuildForecastRequests(&req, models.ScenarioPI, tv, req.Portfolios[0], req.Overlay())
	require.Len(t, reqs, 2)

	passives := reqs[0].PassiveInvestments
	require.Len(t, passives, 2)
	assert.Equal(t, "note-x", passives[0].UID)
	assert.InDelta(t, 300000, passives[0].InvestmentValue, 1e-6)
	assert.Equal(t, "fund-a", passives[1].UID)

	// The target itself is forecast unchanged in a PI run
	assert.Equal(t, "Oak St", reqs[0].Array[0].Name)
	assert.Empty(t, reqs[1].PassiveInvestments)

	// The request's overlay keeps its submitted value
	assert.Equal(t, 1.0, req.PassiveInvestments[0].InvestmentValue)
}

func TestWithOverlay_SkipsDuplicate(t *testing.T) {
	overlay := &models.PassiveInvestment{UID: "fund-a", InvestmentValue: 1}
	out := withOverlay(overlay, 500, []models.PassiveInvestment{{UID: "fund-a", InvestmentValue: 9}, {UID: "b"}})

	require.Len(t, out, 2)
	assert.Equal(t, 500.0, out[0].InvestmentValue)
	assert.Equal(t, "b", out[1].UID)
	assert.Equal(t, 1.0, overlay.InvestmentValue)
}

func TestBuildFinalForecastRequest(t *testing.T) {
	m, err := AssembleProperty(PropertyInput{
		Property:     targetProperty(),
		Forecast:     paydownRows(0),
		Amortization: fixedPayment(1000),
	})
	require.NoError(t, err)

	passives := []models.PassiveInvestment{{UID: "fund-a", InvestmentValue: 50000}}
	fr := BuildFinalForecastRequest([]models.PropertyMetrics{m}, passives)

	require.Len(t, fr.Array, 1)
	p := fr.Array[0]
	assert.Equal(t, targetUUID, p.UUID)
	// 1 − 240000 / 300000
	assert.InDelta(t, 0.2, p.DownPaymentPerc, 1e-12)
	assert.Equal(t, models.ForecastYears, p.YearsNum)
	assert.Equal(t, models.ForecastCostToSell, p.CostToSell)
	assert.Equal(t, 400000.0, p.CurrentValue)
	assert.Equal(t, 2500.0, p.AvgRent)
	assert.Equal(t, 100.0, p.OtherIncome)
	assert.Equal(t, 0.05, p.VacancyLossPercentage)
	assert.Equal(t, 300.0, p.AllExpenses.PropTaxes)
	assert.Equal(t, 150.0, p.AllExpenses.CapEx)
	require.Len(t, p.Loans, 1)
	assert.Equal(t, 240000.0, p.Loans[0].LoanBalance)
	assert.Equal(t, 30, p.Loans[0].MortgageYears)
	assert.Equal(t, passives, fr.PassiveInvestments)
}

func TestClonePortfolio(t *testing.T) {
	req := fixtureRequest("1031")

	clone, ok := clonePortfolio(&req)
	require.True(t, ok)
	assert.Equal(t, "clone-"+mainPortfolio, clone.ID)
	assert.Len(t, clone.Properties, 2)
	assert.Len(t, clone.PassiveInvestments, 1)

	req.RemovePrimary = true
	clone, ok = clonePortfolio(&req)
	require.True(t, ok)
	require.Len(t, clone.Properties, 1)
	assert.Equal(t, sideUUID, clone.Properties[0].UUID)

	req.TargetPortfolio = "missing"
	_, ok = clonePortfolio(&req)
	assert.False(t, ok)
}
