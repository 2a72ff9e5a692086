package processors

import "github.com/username/fopzvit/src/models"

// QuarterView projects a single quarter out of the aggregate. Pure:
// the aggregate is never mutated.
func QuarterView(data *models.AccumulatedData, quarter int) models.PeriodTotals {
	incomeUAH := data.QuarterlyIncomeUAH.Quarter(quarter)
	incomeForeign := data.QuarterlyIncomeForeign.Quarter(quarter)

	return models.PeriodTotals{
		IncomeUAH:           incomeUAH,
		IncomeForeign:       incomeForeign,
		IncomeTotal:         incomeUAH + incomeForeign,
		SingleTax:           data.Taxes.SingleTax.Quarter(quarter),
		MilitaryTax:         data.Taxes.MilitaryTax.Quarter(quarter),
		SocialContributions: data.Taxes.SocialContributions.Quarter(quarter),
	}
}

// CumulativeView sums quarters 1..throughQuarter inclusive.
// throughQuarter = 4 yields full-year totals.
func CumulativeView(data *models.AccumulatedData, throughQuarter int) models.PeriodTotals {
	incomeUAH := data.QuarterlyIncomeUAH.SumThrough(throughQuarter)
	incomeForeign := data.QuarterlyIncomeForeign.SumThrough(throughQuarter)

	return models.PeriodTotals{
		IncomeUAH:           incomeUAH,
		IncomeForeign:       incomeForeign,
		IncomeTotal:         incomeUAH + incomeForeign,
		SingleTax:           data.Taxes.SingleTax.SumThrough(throughQuarter),
		MilitaryTax:         data.Taxes.MilitaryTax.SumThrough(throughQuarter),
		SocialContributions: data.Taxes.SocialContributions.SumThrough(throughQuarter),
	}
}
