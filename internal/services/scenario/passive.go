package scenario

import "github.com/bobmcallan/propex/internal/models"

// BuildPassiveSummaries splits the final forecast's per-year passive rows into
// one series per investment. Investment ids and their order come from the
// first row. Investment values are taken from passives, which already carry
// the overlay at its revalued amount.
//
// When the forecast returned no passive rows the series are built from the
// inputs themselves: their own years, or a single year from their rates.
func BuildPassiveSummaries(rows []models.ForecastYear, passives []models.PassiveInvestment) []models.PassiveSummary {
	values := make(map[string]models.PassiveInvestment, len(passives))
	for _, p := range passives {
		values[p.UID] = p
	}

	if len(rows) > 0 && len(rows[0].PassiveInvestments) > 0 {
		byUID := make(map[string][]models.PassiveYear)
		for _, row := range rows {
			for _, py := range row.PassiveInvestments {
				byUID[py.UID] = append(byUID[py.UID], py)
			}
		}

		out := make([]models.PassiveSummary, 0, len(rows[0].PassiveInvestments))
		for _, head := range rows[0].PassiveInvestments {
			name := head.Name
			if in, ok := values[head.UID]; ok && name == "" {
				name = in.Name
			}
			out = append(out, models.PassiveSummary{
				UID:             head.UID,
				Name:            name,
				InvestmentValue: values[head.UID].InvestmentValue,
				Years:           byUID[head.UID],
			})
		}
		return out
	}

	if len(passives) == 0 {
		return nil
	}

	out := make([]models.PassiveSummary, 0, len(passives))
	for _, p := range passives {
		years := p.Years
		if len(years) == 0 {
			years = []models.PassiveYear{{
				UID:          p.UID,
				Name:         p.Name,
				Year:         1,
				CashflowGrow: p.CashflowGrow,
				EquityGrow:   p.EquityGrow,
			}}
		}
		out = append(out, models.PassiveSummary{
			UID:             p.UID,
			Name:            p.Name,
			InvestmentValue: p.InvestmentValue,
			Years:           years,
		})
	}
	return out
}
