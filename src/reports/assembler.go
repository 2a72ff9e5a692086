package reports

import (
	"fmt"

	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/processors"
	"github.com/username/fopzvit/src/utils"
)

// CalculateQuarterly derives the report-ready view for one target
// quarter. The quarter-only and cumulative taxes are recomputed from
// income with the profile's own rates, not read back from the
// persisted slots; the persisted slots (engine defaults) feed the
// "paid" figures.
func CalculateQuarterly(data *models.AccumulatedData, profile *models.FOPProfile, targetQuarter int) models.QuarterlyCalculation {
	quarterTotals := processors.QuarterView(data, targetQuarter)
	cumulativeTotals := processors.CumulativeView(data, targetQuarter)

	quarterlyIncome := quarterTotals.IncomeTotal
	cumulativeIncome := cumulativeTotals.IncomeTotal

	calc := models.QuarterlyCalculation{
		Quarter: targetQuarter,
		Year:    data.Year,

		QuarterlyIncome:  quarterlyIncome,
		CumulativeIncome: cumulativeIncome,

		QuarterlySingleTax:      utils.Round2(quarterlyIncome * profile.SingleTaxRate),
		CumulativeSingleTax:     utils.Round2(cumulativeIncome * profile.SingleTaxRate),
		QuarterlySingleTaxPaid:  quarterTotals.SingleTax,
		CumulativeSingleTaxPaid: cumulativeTotals.SingleTax,

		QuarterlyMilitaryTax:      utils.Round2(quarterlyIncome * profile.MilitaryTaxRate),
		CumulativeMilitaryTax:     utils.Round2(cumulativeIncome * profile.MilitaryTaxRate),
		QuarterlyMilitaryTaxPaid:  quarterTotals.MilitaryTax,
		CumulativeMilitaryTaxPaid: cumulativeTotals.MilitaryTax,

		QuarterlySocialContributions:  quarterTotals.SocialContributions,
		CumulativeSocialContributions: cumulativeTotals.SocialContributions,
	}

	calc.SingleTaxToPay, calc.SingleTaxToReturn = TaxBalance(calc.CumulativeSingleTax, calc.CumulativeSingleTaxPaid)
	calc.MilitaryTaxToPay, calc.MilitaryTaxToReturn = TaxBalance(calc.CumulativeMilitaryTax, calc.CumulativeMilitaryTaxPaid)
	return calc
}

// BuildTaxReport assembles the F0103309 declaration content for one
// filing quarter.
//
// PreviouslyPaid is cumulative tax minus the current quarter's slice,
// so the declaration reports only the amount newly due this quarter;
// reporting the full year-to-date figure would double-count what
// prior quarters' filings already declared. With flat rates the
// identity toPay(q) = cumulativeTax(q) - cumulativeTax(q-1) holds
// exactly under the shared rounding rule.
func BuildTaxReport(profile *models.FOPProfile, data *models.AccumulatedData, quarter int) *models.TaxReport {
	cumulative := processors.CumulativeView(data, quarter)
	quarterOnly := processors.QuarterView(data, quarter)

	report := &models.TaxReport{
		ReportingPeriod: models.ReportingPeriod{
			Year:    data.Year,
			Quarter: quarter,
		},
	}

	report.IncomeSection.NationalCurrencyIncome = models.TwoColumnAmount{
		CurrentQuarter:          quarterOnly.IncomeUAH,
		CumulativeFromYearStart: cumulative.IncomeUAH,
	}
	report.IncomeSection.ForeignCurrencyIncome = models.TwoColumnAmount{
		CurrentQuarter:          quarterOnly.IncomeForeign,
		CumulativeFromYearStart: cumulative.IncomeForeign,
	}
	report.IncomeSection.TotalIncome = models.TwoColumnAmount{
		CurrentQuarter:          quarterOnly.IncomeTotal,
		CumulativeFromYearStart: cumulative.IncomeTotal,
	}

	report.SingleTaxSection = models.TaxSection{
		TaxableIncome:  cumulative.IncomeTotal,
		TaxRate:        profile.SingleTaxRate,
		CalculatedTax:  cumulative.SingleTax,
		PreviouslyPaid: cumulative.SingleTax - quarterOnly.SingleTax,
		ToPay:          quarterOnly.SingleTax,
	}
	report.MilitaryTaxSection = models.TaxSection{
		TaxableIncome:  cumulative.IncomeTotal,
		TaxRate:        profile.MilitaryTaxRate,
		CalculatedTax:  cumulative.MilitaryTax,
		PreviouslyPaid: cumulative.MilitaryTax - quarterOnly.MilitaryTax,
		ToPay:          quarterOnly.MilitaryTax,
	}

	return report
}

// LimitCheckResult is the softer UI-facing limit check, distinct from
// the validation error raised when the limit is actually exceeded.
type LimitCheckResult struct {
	WithinLimits   bool   `json:"withinLimits"`
	LimitExceeded  bool   `json:"limitExceeded,omitempty"`
	WarningMessage string `json:"warningMessage,omitempty"`
}

// CheckTaxLimits compares cumulative income against the profile's
// yearly ceiling and warns from 90% usage upward.
func CheckTaxLimits(calc models.QuarterlyCalculation, profile *models.FOPProfile) LimitCheckResult {
	yearlyLimit := profile.YearlyIncomeLimit
	currentIncome := calc.CumulativeIncome

	if currentIncome > yearlyLimit {
		return LimitCheckResult{
			WithinLimits:  false,
			LimitExceeded: true,
			WarningMessage: fmt.Sprintf(
				"Перевищено річний ліміт доходів для %d групи (%.2f грн). Поточний дохід: %.2f грн.",
				profile.TaxGroup, yearlyLimit, currentIncome),
		}
	}

	if currentIncome > yearlyLimit*0.9 {
		return LimitCheckResult{
			WithinLimits: true,
			WarningMessage: fmt.Sprintf(
				"Увага! Досягнуто 90%% річного ліміту доходів. Залишилось: %.2f грн.",
				yearlyLimit-currentIncome),
		}
	}

	return LimitCheckResult{WithinLimits: true}
}

// TaxBalance splits the difference between a calculated and an
// already-paid amount into the to-pay and to-refund components.
func TaxBalance(calculated, paid float64) (toPay, toReturn float64) {
	difference := calculated - paid
	if difference > 0 {
		return difference, 0
	}
	return 0, -difference
}
