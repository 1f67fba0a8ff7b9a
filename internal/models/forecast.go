package models

// Forecast payload constants sent for synthetic and final-forecast properties
const (
	ForecastYears      = 31
	ForecastCostToSell = 0.07
	ForecastLandPerc   = 0.2
	ForecastBuildPerc  = 0.8
	SyntheticLoanYears = 30
)

// ForecastPayload is one property as sent to the forecasting service.
// Scenario fields are only set on the synthesized exchange target.
type ForecastPayload struct {
	Property
	AvailableEquity float64 `json:"available_equity,omitempty"`
	MonthlyNOI      float64 `json:"monthly_noi,omitempty"`
	MonthlyRents    float64 `json:"monthly_rents,omitempty"`
}

// ForecastRequest is the body of a forecasting call
type ForecastRequest struct {
	Array              []ForecastPayload   `json:"array"`
	PassiveInvestments []PassiveInvestment `json:"passive_investments,omitempty"`
}

// UUID returns the id of the first property in the request
func (r ForecastRequest) UUID() string {
	if len(r.Array) == 0 {
		return ""
	}
	return r.Array[0].UUID
}

// ForecastYear is one projected year returned by the forecasting service
type ForecastYear struct {
	Year                    int                     `json:"year"`
	Expenses                ForecastExpenses        `json:"expenses"`
	Revenue                 ForecastRevenue         `json:"revenue"`
	CashFlow                ForecastCashFlow        `json:"cashFlow"`
	NOI                     float64                 `json:"noi"`
	CumulativeAppreciations CumulativeAppreciations `json:"cumulativeAppreciations"`
	PassiveInvestments      []PassiveYear           `json:"passive_investments,omitempty"`
}

// ForecastExpenses is the expense block of a forecast year
type ForecastExpenses struct {
	TotalExpenses        float64            `json:"totalExpenses"`
	ExpenseObject        map[string]float64 `json:"expenseObject,omitempty"`
	ExpAsGrossPercentage float64            `json:"expAsGrossPercentage"`
}

// ForecastRevenue is the revenue block of a forecast year
type ForecastRevenue struct {
	Vacancy              float64 `json:"vacancy"`
	VacancyLossPerc      float64 `json:"vacancyLossPerc"`
	GrossIncome          float64 `json:"grossIncome"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
}

// ForecastCashFlow is the cash-flow block of a forecast year
type ForecastCashFlow struct {
	CashFlow        float64 `json:"cashFlow"`
	CashFlowVacancy float64 `json:"cashFlowVacancy"`
	TaxIncome       float64 `json:"taxIncome"`
	CashOutlayNOI   float64 `json:"cashOutlayNOI"`
	CashOutlayGI    float64 `json:"cashOutlayGI"`
}

// CumulativeAppreciations is the equity build-up block of a forecast year
type CumulativeAppreciations struct {
	PropertyValue         float64 `json:"propertyValue"`
	CurrentEquity         float64 `json:"currentEquity"`
	AppreciationEquity    float64 `json:"appreciationEquity"`
	MortgagePaydown       float64 `json:"mortgagePaydown"`
	TotalAnnualEquity     float64 `json:"totalAnnualEquity"`
	TotalCumulativeEquity float64 `json:"totalCumulativeEquity"`
	LoanBalance           float64 `json:"loanBalance"`
	CostToSell            float64 `json:"costToSell"`
	CashOutlay            float64 `json:"cashOutlay"`
}
