package scenario

import "github.com/bobmcallan/propex/internal/models"

// Aggregate rolls property metrics and passive investments up into a
// portfolio summary. Ratio metrics are unweighted means over properties.
// LTV is taken from property sums before passive investments are folded in;
// each passive adds its first projected year to NOI, cash flow and
// appreciation, and its investment value to equity and valuation.
func Aggregate(id, name string, properties []models.PropertyMetrics, pi []models.PassiveSummary) models.PortfolioSummary {
	var (
		valuation, equity, loanBalance, noi, cashFlow float64
		arb                                           models.Arb
	)

	for _, p := range properties {
		valuation += p.Valuation
		equity += p.Equity
		loanBalance += p.LoanBalance
		noi += p.NOI
		cashFlow += p.CashFlow
		arb.ArbAppreciation += p.Arb.ArbAppreciation
		arb.ArbDepreciation += p.Arb.ArbDepreciation
		arb.ArbDownPayment += p.Arb.ArbDownPayment
		arb.CashOnCash += p.Arb.CashOnCash
		arb.AverageCap += p.Arb.AverageCap
		arb.RentMultiplier += p.Arb.RentMultiplier
	}

	n := float64(len(properties))
	arb.CashOnCash = ratio(arb.CashOnCash, n)
	arb.AverageCap = ratio(arb.AverageCap, n)
	arb.RentMultiplier = ratio(arb.RentMultiplier, n)

	ltv := ratio(loanBalance, valuation) * 100

	for _, inv := range pi {
		cf, eg := firstYear(inv)
		noi += cf
		cashFlow += cf
		arb.ArbAppreciation += eg
		equity += inv.InvestmentValue
		valuation += inv.InvestmentValue
	}

	if properties == nil {
		properties = []models.PropertyMetrics{}
	}

	return models.PortfolioSummary{
		Name:       name,
		UUID:       id,
		Valuation:  valuation,
		Equity:     equity,
		NOI:        noi,
		CashFlow:   cashFlow,
		LTV:        ltv,
		ROE:        returnOnEquity(arb, cashFlow, equity),
		Arb:        arb,
		Properties: properties,
		PI:         pi,
	}
}

// AddCash folds uninvested cash into a summary as equity and valuation
func AddCash(s models.PortfolioSummary, amount float64) models.PortfolioSummary {
	s.Equity += amount
	s.Valuation += amount
	s.ROE = returnOnEquity(s.Arb, s.CashFlow, s.Equity)
	return s
}

func returnOnEquity(arb models.Arb, cashFlow, equity float64) float64 {
	return ratio(arb.ArbAppreciation+arb.ArbDepreciation+arb.ArbDownPayment+cashFlow, equity)
}

// firstYear returns the first projected cash flow and equity growth of a
// passive investment. Projected output values win over growth rates.
func firstYear(inv models.PassiveSummary) (cashFlow, equityGrow float64) {
	if len(inv.Years) == 0 {
		return 0, 0
	}
	y := inv.Years[0]

	cashFlow = inv.InvestmentValue * y.CashflowGrow
	if y.OutputCashflow != nil {
		cashFlow = *y.OutputCashflow
	}
	equityGrow = inv.InvestmentValue * y.EquityGrow
	if y.OutputEquityGrow != nil {
		equityGrow = *y.OutputEquityGrow
	}
	return cashFlow, equityGrow
}
