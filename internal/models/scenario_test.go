package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarioType(t *testing.T) {
	tests := []struct {
		input string
		want  ScenarioType
		ok    bool
	}{
		{"1031", ScenarioExchange, true},
		{"exchange", ScenarioExchange, true},
		{" REFI ", ScenarioRefi, true},
		{"pi", ScenarioPI, true},
		{"lease", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseScenarioType(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseScenarioType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestProperty_CloneDoesNotAliasLoans(t *testing.T) {
	orig := Property{UUID: "p1", Loans: []Loan{{BalanceCurrent: 100}}}
	c := orig.Clone()
	c.Loans[0].BalanceCurrent = 1

	assert.Equal(t, 100.0, orig.Loans[0].BalanceCurrent)
}

func TestProperty_LoanHelpers(t *testing.T) {
	var bare Property
	assert.Equal(t, Loan{}, bare.PrimaryLoan())
	assert.Zero(t, bare.CurrentLoanBalance())

	p := Property{Loans: []Loan{{BalanceCurrent: 150000}, {BalanceCurrent: 25000}}}
	assert.Equal(t, 175000.0, p.CurrentLoanBalance())
	assert.Equal(t, 150000.0, p.PrimaryLoan().BalanceCurrent)
}

func TestScenarioRequest_FindTarget(t *testing.T) {
	req := ScenarioRequest{
		TargetPortfolio: "pf-1",
		TargetProperty:  "p-2",
		Portfolios: []Portfolio{
			{ID: "pf-0", Properties: []Property{{UUID: "p-2", Name: "wrong portfolio"}}},
			{ID: "pf-1", Properties: []Property{{UUID: "p-1"}, {UUID: "p-2", Name: "Elm St"}}},
		},
	}

	target, ok := req.FindTarget()
	require.True(t, ok)
	assert.Equal(t, "Elm St", target.Name)

	req.TargetProperty = "missing"
	_, ok = req.FindTarget()
	assert.False(t, ok)
}

func TestScenarioRequest_WireNames(t *testing.T) {
	body := `{
		"scenario_type": "1031",
		"new_downpaymment": 0.25,
		"new_downpayment_target": 0.5,
		"default_values": {"new_expensInflation": 0.02, "new_closingCosts": 0.03},
		"passive_investments": [{"uid": "fund", "investment_value": 10}],
		"portfolios": [{"id": "pf", "properties": [{"uuid": "p", "loans": [{"extraPayement": 50}]}]}]
	}`

	var req ScenarioRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, 0.25, req.NewDownPayment)
	assert.Equal(t, 0.5, req.NewDownPaymentTarget)
	assert.Equal(t, 0.02, req.DefaultValues.ExpenseInflation)
	assert.Equal(t, 0.03, req.DefaultValues.ClosingCosts)
	assert.Equal(t, 50.0, req.Portfolios[0].Properties[0].Loans[0].ExtraPayment)
	require.NotNil(t, req.Overlay())
	assert.Equal(t, "fund", req.Overlay().UID)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("refi: %w", ErrTargetNotFound), "target_not_found"},
		{fmt.Errorf("forecast: %w", ErrCollaboratorUnavailable), "collaborator_unavailable"},
		{ErrMissingForecastRow, "missing_forecast_row"},
		{ErrMissingAmortization, "missing_amortization"},
		{ErrScenarioTypeUnknown, "scenario_type_unknown"},
		{ErrInvalidRequest, "invalid_request"},
		{fmt.Errorf("boom"), "internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err))
	}
}

func TestForecastPayload_FlattensProperty(t *testing.T) {
	payload := ForecastPayload{
		Property:        Property{UUID: "p", YearsNum: ForecastYears},
		AvailableEquity: 300000,
	}
	data, err := json.Marshal(ForecastRequest{Array: []ForecastPayload{payload}})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"uuid":"p"`)
	assert.Contains(t, string(data), `"yearsNum":31`)
	assert.Contains(t, string(data), `"available_equity":300000`)
	assert.NotContains(t, string(data), `"passive_investments"`)
}
