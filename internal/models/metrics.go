package models

// PropertyMetrics is the per-property result of a scenario run
type PropertyMetrics struct {
	UID             string          `json:"uid"`
	Name            string          `json:"name"`
	Valuation       float64         `json:"valuation"`
	LoanBalance     float64         `json:"loanBalance"`
	Equity          float64         `json:"equity"`
	CashFlow        float64         `json:"cashFlow"`
	NOI             float64         `json:"NOI"`
	ROE             float64         `json:"ROE"`
	Arb             Arb             `json:"arb"`
	MonthlyIncome   MonthlyIncome   `json:"monthlyIncome"`
	MonthlyExpenses MonthlyExpenses `json:"monthlyExpenses"`
	Loans           LoanSummary     `json:"loans"`
	Assumptions     Assumptions     `json:"assumptions"`
	Acquisition     Acquisition     `json:"acquisition"`
	TaxRate         float64         `json:"taxRate"`
	Picture         string          `json:"picture,omitempty"`
}

// Arb is the return breakdown of a property or portfolio. Percentages are
// in percent units (7.5 = 7.5%).
type Arb struct {
	CashOnCash      float64 `json:"cashOnCash"`
	AverageCap      float64 `json:"averageCap"`
	RentMultiplier  float64 `json:"rentMultiplier"`
	ArbAppreciation float64 `json:"arbAppreciation"`
	ArbDepreciation float64 `json:"arbDepreciation"`
	ArbDownPayment  float64 `json:"arbDownPayment"`
}

// MonthlyIncome is the monthly rent and other income
type MonthlyIncome struct {
	Rent        float64 `json:"rent"`
	OtherIncome float64 `json:"otherIncome"`
}

// MonthlyExpenses is the monthly expense breakdown including vacancy loss
type MonthlyExpenses struct {
	Vacancy       float64 `json:"vacancy"`
	Taxes         float64 `json:"taxes"`
	Insurance     float64 `json:"insurance"`
	Management    float64 `json:"management"`
	HOA           float64 `json:"hoa"`
	Maintenance   float64 `json:"maintenance"`
	Utils         float64 `json:"utils"`
	OtherExpenses float64 `json:"otherExpenses"`
	Total         float64 `json:"total"`
}

// LoanSummary describes the primary loan
type LoanSummary struct {
	TotalYears     int     `json:"totalYears"`
	InitialBalance float64 `json:"initialBalance"`
	CurrentBalance float64 `json:"currentBalance"`
	InterestRate   float64 `json:"interestRate"`
	PMI            float64 `json:"pmi"`
	ExtraPayments  float64 `json:"extraPayments"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// Assumptions is the growth and cost snapshot used for the property
type Assumptions struct {
	ExpenseInflation float64 `json:"expenseInflation"`
	RentalGrowth     float64 `json:"rentalGrowth"`
	Appreciation     float64 `json:"appreciation"`
	Maintenance      float64 `json:"maintenance"`
	Vacancy          float64 `json:"vacancy"`
	Management       float64 `json:"management"`
}

// Acquisition is the purchase breakdown
type Acquisition struct {
	TotalCashOutlay float64 `json:"totalCashOutlay"`
	PurchasePrice   float64 `json:"purchasePrice"`
	ClosingCosts    float64 `json:"closingCosts"`
	DownPayment     float64 `json:"downPayment"`
	RepairCosts     float64 `json:"repairCosts"`
}

// PassiveSummary is the per-investment year series attached to a portfolio
type PassiveSummary struct {
	UID             string        `json:"uid"`
	Name            string        `json:"name"`
	InvestmentValue float64       `json:"investment_value"`
	Years           []PassiveYear `json:"years"`
}

// PortfolioSummary is the aggregate result for one portfolio
type PortfolioSummary struct {
	Name        string            `json:"name"`
	UUID        string            `json:"uuid"`
	Valuation   float64           `json:"valuation"`
	Equity      float64           `json:"equity"`
	NOI         float64           `json:"NOI"`
	CashFlow    float64           `json:"cashFlow"`
	LTV         float64           `json:"LTV"`
	ROE         float64           `json:"ROE"`
	Arb         Arb               `json:"arb"`
	Properties  []PropertyMetrics `json:"properties"`
	Forecasting []ForecastYear    `json:"forecasting,omitempty"`
	PI          []PassiveSummary  `json:"pi,omitempty"`
}

// ComparisonResponse is the final output of a scenario run
type ComparisonResponse struct {
	ScenarioType       string             `json:"scenario_type"`
	ScenarioLevel      string             `json:"scenario_level,omitempty"`
	TargetProperty     string             `json:"target_property"`
	TargetPortfolio    string             `json:"target_portfolio"`
	RefinancedProperty string             `json:"refinanced_property,omitempty"`
	NewInvestmentID    string             `json:"new_investment_id,omitempty"`
	Portfolios         []PortfolioSummary `json:"portfolios"`
}

// ComparisonEnvelope wraps the response the way the front end expects it
type ComparisonEnvelope struct {
	Comparison *ComparisonResponse `json:"comparison"`
}
