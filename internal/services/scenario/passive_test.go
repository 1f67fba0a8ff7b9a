package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/propex/internal/models"
)

func TestBuildPassiveSummaries_FromForecastRows(t *testing.T) {
	passives := []models.PassiveInvestment{
		{UID: "note", Name: "Note", InvestmentValue: 300000},
		{UID: "fund", Name: "Fund", InvestmentValue: 50000},
	}
	rows := []models.ForecastYear{
		{Year: 1, PassiveInvestments: []models.PassiveYear{
			{UID: "note", Year: 1, OutputCashflow: ptr(24000)},
			{UID: "fund", Name: "Fund A", Year: 1},
		}},
		{Year: 2, PassiveInvestments: []models.PassiveYear{
			{UID: "note", Year: 2},
			{UID: "fund", Year: 2},
		}},
	}

	out := BuildPassiveSummaries(rows, passives)
	require.Len(t, out, 2)

	assert.Equal(t, "note", out[0].UID)
	assert.Equal(t, "Note", out[0].Name)
	assert.Equal(t, 300000.0, out[0].InvestmentValue)
	require.Len(t, out[0].Years, 2)
	assert.Equal(t, 1, out[0].Years[0].Year)
	assert.Equal(t, 2, out[0].Years[1].Year)

	assert.Equal(t, "Fund A", out[1].Name)
	assert.Equal(t, 50000.0, out[1].InvestmentValue)
}

func TestBuildPassiveSummaries_FallsBackToInputs(t *testing.T) {
	passives := []models.PassiveInvestment{
		{UID: "fund", Name: "Fund", InvestmentValue: 50000, CashflowGrow: 0.05, EquityGrow: 0.02},
		{UID: "bond", Name: "Bond", InvestmentValue: 1000, Years: []models.PassiveYear{{UID: "bond", Year: 1}, {UID: "bond", Year: 2}}},
	}

	out := BuildPassiveSummaries([]models.ForecastYear{{Year: 1}}, passives)
	require.Len(t, out, 2)

	require.Len(t, out[0].Years, 1)
	assert.Equal(t, 0.05, out[0].Years[0].CashflowGrow)
	assert.Equal(t, 0.02, out[0].Years[0].EquityGrow)
	assert.Len(t, out[1].Years, 2)
}

func TestBuildPassiveSummaries_None(t *testing.T) {
	assert.Nil(t, BuildPassiveSummaries(nil, nil))
}
