package models

// AmortizationRequest is the query sent to the amortization service.
// InterestRate is in percent (6 = 6%).
type AmortizationRequest struct {
	Amount          float64
	StartingBalance float64
	InterestRate    float64
	TermInMonths    int
}

// AmortizationResponse is the schedule returned by the amortization service
type AmortizationResponse struct {
	Amortization []AmortizationRow   `json:"amortization"`
	Summary      AmortizationSummary `json:"summary"`
}

// AmortizationRow is one month of the schedule
type AmortizationRow struct {
	Month         int     `json:"month"`
	Principal     float64 `json:"principal"`
	TotalPayment  float64 `json:"totalPayment"`
	Interest      float64 `json:"interest"`
	TotalInterest float64 `json:"totalInterest"`
	Balance       float64 `json:"balance"`
}

// AmortizationSummary carries the loan totals; MonthlyPayment feeds cash flow
type AmortizationSummary struct {
	NumberOfPayments int     `json:"numberOfPayments"`
	MonthlyPayment   float64 `json:"monthlyPayment"`
	InterestPerMonth float64 `json:"interestPerMonth"`
	TotalInterest    float64 `json:"totalInterest"`
	TotalPrincipal   float64 `json:"totalPrincipal"`
	TotalPaymentsSB  float64 `json:"totalPaymentsSB"`
	TotalPaymentsAMT float64 `json:"totalPaymentsAMT"`
}
