// Package models defines data structures for Propex
package models

import "strings"

// ScenarioType selects which comparison the engine builds
type ScenarioType string

const (
	ScenarioExchange ScenarioType = "1031"
	ScenarioRefi     ScenarioType = "refi"
	ScenarioPI       ScenarioType = "pi"
)

// ParseScenarioType normalises the wire value. "exchange" is accepted as an
// alias of "1031". ok is false for anything else.
func ParseScenarioType(s string) (ScenarioType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1031", "exchange":
		return ScenarioExchange, true
	case "refi", "refinance":
		return ScenarioRefi, true
	case "pi":
		return ScenarioPI, true
	default:
		return "", false
	}
}

// Portfolio labels applied to the target portfolio by each scenario
const (
	LabelExchange   = "1031 Exchange"
	LabelPIExchange = "PI Exchange"
	LabelRefi       = "Refi"
)

// Synthetic property ids produced by the refinance scenario
const (
	RefiTargetUID    = "refi_target"
	NewInvestmentUID = "new_investment"
)

// ScenarioRequest is the inbound comparison request. JSON names match the
// front end's payload, including its historical spellings.
type ScenarioRequest struct {
	ScenarioType         string              `json:"scenario_type" yaml:"scenario_type"`
	TargetProperty       string              `json:"target_property" yaml:"target_property"`
	TargetPortfolio      string              `json:"target_portfolio" yaml:"target_portfolio"`
	ScenarioLevel        string              `json:"scenario_level,omitempty" yaml:"scenario_level"`
	UserID               string              `json:"user_id,omitempty" yaml:"user_id"`
	Portfolios           []Portfolio         `json:"portfolios" yaml:"portfolios"`
	DefaultValues        ScenarioDefaults    `json:"default_values" yaml:"default_values"`
	NewDownPayment       float64             `json:"new_downpaymment" yaml:"new_downpaymment"`
	NewDownPaymentTarget float64             `json:"new_downpayment_target" yaml:"new_downpayment_target"`
	NewCapRate           float64             `json:"new_caprate" yaml:"new_caprate"`
	NewLoanInterestRate  float64             `json:"new_loan_interest_rate" yaml:"new_loan_interest_rate"`
	RemovePrimary        bool                `json:"remove_primary,omitempty" yaml:"remove_primary"`
	PassiveInvestments   []PassiveInvestment `json:"passive_investments,omitempty" yaml:"passive_investments"`
}

// Overlay returns the newly originated passive investment, if any.
// Only the first element of passive_investments is used.
func (r *ScenarioRequest) Overlay() *PassiveInvestment {
	if len(r.PassiveInvestments) == 0 {
		return nil
	}
	pi := r.PassiveInvestments[0]
	return &pi
}

// FindPortfolio returns the portfolio with the given id
func (r *ScenarioRequest) FindPortfolio(id string) (Portfolio, bool) {
	for _, p := range r.Portfolios {
		if p.ID == id {
			return p, true
		}
	}
	return Portfolio{}, false
}

// FindTarget returns the target property inside the target portfolio
func (r *ScenarioRequest) FindTarget() (Property, bool) {
	p, ok := r.FindPortfolio(r.TargetPortfolio)
	if !ok {
		return Property{}, false
	}
	return p.FindProperty(r.TargetProperty)
}

// ScenarioDefaults holds scenario-wide assumptions applied to synthetic properties.
// Percentages of rent are fractions (0.08 = 8%).
type ScenarioDefaults struct {
	TaxRate          float64 `json:"new_taxRate" yaml:"new_taxRate"`
	Appreciation     float64 `json:"new_appreciation" yaml:"new_appreciation"`
	Vacancy          float64 `json:"new_vacancy" yaml:"new_vacancy"`
	Management       float64 `json:"new_management" yaml:"new_management"`
	Insurance        float64 `json:"new_insurance" yaml:"new_insurance"`
	Maintenance      float64 `json:"new_maintenance" yaml:"new_maintenance"`
	ClosingCosts     float64 `json:"new_closingCosts" yaml:"new_closingCosts"`
	ExpenseInflation float64 `json:"new_expensInflation" yaml:"new_expensInflation"`
	RentalGrowth     float64 `json:"new_rentalGrowth" yaml:"new_rentalGrowth"`
	ExpenseRatio     float64 `json:"new_expenseRatio" yaml:"new_expenseRatio"`
	Utils            float64 `json:"new_utils" yaml:"new_utils"`
	HOA              float64 `json:"new_hoa" yaml:"new_hoa"`
	Taxes            float64 `json:"new_taxes" yaml:"new_taxes"`
	PropertyType     string  `json:"new_prp_type,omitempty" yaml:"new_prp_type"`
}

// Portfolio is a client-owned group of properties
type Portfolio struct {
	ID                 string              `json:"id" yaml:"id"`
	Name               string              `json:"name" yaml:"name"`
	Properties         []Property          `json:"properties" yaml:"properties"`
	PassiveInvestments []PassiveInvestment `json:"passive_investments,omitempty" yaml:"passive_investments"`
}

// FindProperty returns the property with the given uuid
func (p Portfolio) FindProperty(uuid string) (Property, bool) {
	for _, prop := range p.Properties {
		if prop.UUID == uuid {
			return prop, true
		}
	}
	return Property{}, false
}

// Property is a single real-estate holding. Monetary amounts are in the
// portfolio currency; expenses and rent are monthly.
type Property struct {
	UUID                           string   `json:"uuid" yaml:"uuid"`
	Name                           string   `json:"name" yaml:"name"`
	CurrentValue                   float64  `json:"currentValue" yaml:"currentValue"`
	PurchasePrice                  float64  `json:"purchasePrice" yaml:"purchasePrice"`
	ClosingCosts                   float64  `json:"closingCosts" yaml:"closingCosts"`
	RepairCosts                    float64  `json:"repairCosts" yaml:"repairCosts"`
	DownPaymentPerc                float64  `json:"downPaymentPerc" yaml:"downPaymentPerc"`
	TaxRate                        float64  `json:"taxRate" yaml:"taxRate"`
	AnnualAppreciationRate         float64  `json:"annualAppreciationRate" yaml:"annualAppreciationRate"`
	AnnualRevenueIncrease          float64  `json:"annualRevenueIncrease" yaml:"annualRevenueIncrease"`
	AnnualOperatingExpenseIncrease float64  `json:"annualOperatingExpenseIncrease" yaml:"annualOperatingExpenseIncrease"`
	AvgRent                        float64  `json:"avgRent" yaml:"avgRent"`
	OtherIncome                    float64  `json:"otherIncome" yaml:"otherIncome"`
	VacancyLossPercentage          float64  `json:"vacancyLossPercentage" yaml:"vacancyLossPercentage"`
	AllExpenses                    Expenses `json:"allExpenses" yaml:"allExpenses"`
	Loans                          []Loan   `json:"loans" yaml:"loans"`
	UnitsNum                       int      `json:"unitsNum,omitempty" yaml:"unitsNum"`
	LandPerc                       float64  `json:"landPerc,omitempty" yaml:"landPerc"`
	PropertyPerc                   float64  `json:"propertyPerc,omitempty" yaml:"propertyPerc"`
	YearsNum                       int      `json:"yearsNum,omitempty" yaml:"yearsNum"`
	CostToSell                     float64  `json:"costToSell,omitempty" yaml:"costToSell"`
	Picture                        string   `json:"picture,omitempty" yaml:"picture"`
}

// Clone returns a deep copy so synthesized variants never alias input slices
func (p Property) Clone() Property {
	c := p
	if p.Loans != nil {
		c.Loans = append([]Loan(nil), p.Loans...)
	}
	return c
}

// PrimaryLoan returns loans[0], or a zero loan when the property is unencumbered
func (p Property) PrimaryLoan() Loan {
	if len(p.Loans) == 0 {
		return Loan{}
	}
	return p.Loans[0]
}

// CurrentLoanBalance sums balanceCurrent across all loans
func (p Property) CurrentLoanBalance() float64 {
	var total float64
	for _, l := range p.Loans {
		total += l.BalanceCurrent
	}
	return total
}

// Expenses is the monthly operating expense breakdown
type Expenses struct {
	PropTaxes      float64 `json:"propTaxes" yaml:"propTaxes"`
	Insurance      float64 `json:"insurance" yaml:"insurance"`
	CapEx          float64 `json:"capEx" yaml:"capEx"`
	PropManage     float64 `json:"propManage" yaml:"propManage"`
	HOA            float64 `json:"hoa" yaml:"hoa"`
	Utils          float64 `json:"utils" yaml:"utils"`
	OthersExpenses float64 `json:"othersExpenses" yaml:"othersExpenses"`
}

// Sum returns the total of all seven expense lines
func (e Expenses) Sum() float64 {
	return e.PropTaxes + e.Insurance + e.CapEx + e.PropManage + e.HOA + e.Utils + e.OthersExpenses
}

// Loan is a mortgage on a property. InterestRate is a fraction (0.06 = 6%).
type Loan struct {
	StartingBalance float64 `json:"startingBalance" yaml:"startingBalance"`
	BalanceCurrent  float64 `json:"balanceCurrent" yaml:"balanceCurrent"`
	LoanBalance     float64 `json:"loanBalance" yaml:"loanBalance"` // original principal
	InterestRate    float64 `json:"interestRate" yaml:"interestRate"`
	MortgageYears   int     `json:"mortgageYears" yaml:"mortgageYears"`
	ExtraPayment    float64 `json:"extraPayement" yaml:"extraPayement"`
	PMI             float64 `json:"pmi" yaml:"pmi"`
}

// PassiveInvestment is a non-property holding (fund, note, syndication)
// whose yearly returns come from the forecasting service.
type PassiveInvestment struct {
	UID             string        `json:"uid" yaml:"uid"`
	Name            string        `json:"name" yaml:"name"`
	InvestmentValue float64       `json:"investment_value" yaml:"investment_value"`
	CashflowGrow    float64       `json:"cashflow_grow,omitempty" yaml:"cashflow_grow"`
	EquityGrow      float64       `json:"equity_grow,omitempty" yaml:"equity_grow"`
	Years           []PassiveYear `json:"years,omitempty" yaml:"years"`
}

// PassiveYear is one projected year of a passive investment.
// Output values, when present, take precedence over the growth rates.
type PassiveYear struct {
	UID              string   `json:"uid" yaml:"uid"`
	Name             string   `json:"name,omitempty" yaml:"name"`
	Year             int      `json:"year" yaml:"year"`
	CashflowGrow     float64  `json:"cashflow_grow" yaml:"cashflow_grow"`
	EquityGrow       float64  `json:"equity_grow" yaml:"equity_grow"`
	OutputCashflow   *float64 `json:"output_cashflow,omitempty" yaml:"output_cashflow"`
	OutputEquityGrow *float64 `json:"output_equity_grow,omitempty" yaml:"output_equity_grow"`
}

// TempVariables are derived once per run from the target property
type TempVariables struct {
	AvailableEquity float64 `json:"available_equity"`
	MonthlyNOI      float64 `json:"monthly_noi"`
	MonthlyRents    float64 `json:"monthly_rents"`
	Valuation       float64 `json:"valuation"`
}
