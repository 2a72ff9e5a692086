package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/fopzvit/src/models"
)

// PopulateTemplate substitutes {{KEY}} placeholders. Plain string
// replacement; the templates carry no logic.
func PopulateTemplate(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// quarterPeriodName is the Ukrainian period name shown on the form.
func quarterPeriodName(quarter int) string {
	switch quarter {
	case 1:
		return "I квартал"
	case 2:
		return "півріччя"
	case 3:
		return "три квартали"
	case 4:
		return "рік"
	default:
		return fmt.Sprintf("%d квартал", quarter)
	}
}

// BuildDeclarationPreview renders the printable HTML version of the
// declaration.
func BuildDeclarationPreview(report *models.TaxReport, profile *models.FOPProfile, fillDate time.Time) string {
	return PopulateTemplate(declarationPreviewTemplate, map[string]string{
		"FULL_NAME":       profile.FullName,
		"TIN":             profile.TIN,
		"ADDRESS":         FormatAddress(profile.Address),
		"TAX_OFFICE_NAME": profile.TaxOffice.Name,
		"PERIOD_NAME":     quarterPeriodName(report.ReportingPeriod.Quarter),
		"YEAR":            fmt.Sprintf("%d", report.ReportingPeriod.Year),

		"INCOME_UAH_Q":       FormatMoney(report.IncomeSection.NationalCurrencyIncome.CurrentQuarter),
		"INCOME_UAH_CUM":     FormatMoney(report.IncomeSection.NationalCurrencyIncome.CumulativeFromYearStart),
		"INCOME_FOREIGN_Q":   FormatMoney(report.IncomeSection.ForeignCurrencyIncome.CurrentQuarter),
		"INCOME_FOREIGN_CUM": FormatMoney(report.IncomeSection.ForeignCurrencyIncome.CumulativeFromYearStart),
		"INCOME_TOTAL_Q":     FormatMoney(report.IncomeSection.TotalIncome.CurrentQuarter),
		"INCOME_TOTAL_CUM":   FormatMoney(report.IncomeSection.TotalIncome.CumulativeFromYearStart),

		"SINGLE_TAX_RATE":       FormatMoney(report.SingleTaxSection.TaxRate * 100),
		"SINGLE_TAX_CALCULATED": FormatMoney(report.SingleTaxSection.CalculatedTax),
		"SINGLE_TAX_PAID":       FormatMoney(report.SingleTaxSection.PreviouslyPaid),
		"SINGLE_TAX_TO_PAY":     FormatMoney(report.SingleTaxSection.ToPay),

		"MILITARY_TAX_RATE":       FormatMoney(report.MilitaryTaxSection.TaxRate * 100),
		"MILITARY_TAX_CALCULATED": FormatMoney(report.MilitaryTaxSection.CalculatedTax),
		"MILITARY_TAX_PAID":       FormatMoney(report.MilitaryTaxSection.PreviouslyPaid),
		"MILITARY_TAX_TO_PAY":     FormatMoney(report.MilitaryTaxSection.ToPay),

		"FILL_DATE": fillDate.Format("02.01.2006"),
	})
}

// BuildESVPreview renders the printable HTML version of the yearly
// social-contribution annex.
func BuildESVPreview(report *models.ESVReport, profile *models.FOPProfile, fillDate time.Time) string {
	var rows strings.Builder
	for _, monthData := range report.MonthlyData {
		rows.WriteString(fmt.Sprintf(
			"    <tr><td>%d</td><td class=\"amount\">%s</td><td class=\"amount\">%s</td><td class=\"amount\">%s</td></tr>\n",
			monthData.Month,
			FormatMoney(monthData.IncomeBase),
			FormatMoney(monthData.ContributionRate),
			FormatMoney(monthData.ContributionAmount)))
	}

	return PopulateTemplate(esvPreviewTemplate, map[string]string{
		"FULL_NAME":          profile.FullName,
		"TIN":                profile.TIN,
		"KVED_CODE":          profile.KVED.Primary.Code,
		"YEAR":               fmt.Sprintf("%d", report.Year),
		"MONTH_ROWS":         rows.String(),
		"TOTAL_BASE":         FormatMoney(report.Totals.TotalIncomeBase),
		"TOTAL_CONTRIBUTION": FormatMoney(report.Totals.TotalContributionAmount),
		"FILL_DATE":          fillDate.Format("02.01.2006"),
	})
}
