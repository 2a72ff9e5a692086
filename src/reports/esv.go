package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/utils"
)

// ESV defaults for a group-3 FOP: minimum-wage-based income base and
// the statutory 22% rate.
const (
	DefaultESVIncomeBase       = 8000
	DefaultESVContributionRate = 22
)

// NewDefaultESVSettings returns a full-year schedule at the defaults.
func NewDefaultESVSettings(year int) *models.ESVSettings {
	settings := &models.ESVSettings{Year: year}
	for month := 1; month <= 12; month++ {
		settings.MonthlySettings = append(settings.MonthlySettings, models.MonthESVSettings{
			Month:            month,
			IncomeBase:       DefaultESVIncomeBase,
			ContributionRate: DefaultESVContributionRate,
		})
	}
	return settings
}

// MonthContribution is the contribution owed for one month.
func MonthContribution(incomeBase, contributionRate float64) float64 {
	return utils.Round2(incomeBase * contributionRate / 100)
}

// BuildESVReport derives the twelve monthly rows and totals from the
// configured schedule.
func BuildESVReport(settings *models.ESVSettings) *models.ESVReport {
	report := &models.ESVReport{Year: settings.Year}

	var totalBase, totalContribution float64
	for _, monthSettings := range settings.MonthlySettings {
		contribution := MonthContribution(monthSettings.IncomeBase, monthSettings.ContributionRate)
		report.MonthlyData = append(report.MonthlyData, models.MonthESVData{
			Month:              monthSettings.Month,
			IncomeBase:         monthSettings.IncomeBase,
			ContributionRate:   monthSettings.ContributionRate,
			ContributionAmount: contribution,
		})
		totalBase += monthSettings.IncomeBase
		totalContribution += contribution
	}

	report.Totals.TotalIncomeBase = utils.Round2(totalBase)
	report.Totals.TotalContributionAmount = utils.Round2(totalContribution)
	return report
}

// QuarterlyContributions rolls the monthly schedule up into the four
// quarterly slots the accumulated aggregate carries.
func QuarterlyContributions(settings *models.ESVSettings) models.QuarterlyAmounts {
	var quarters models.QuarterlyAmounts
	for _, monthSettings := range settings.MonthlySettings {
		quarter := (monthSettings.Month-1)/3 + 1
		quarters.Add(quarter, MonthContribution(monthSettings.IncomeBase, monthSettings.ContributionRate))
	}
	for q := 1; q <= 4; q++ {
		quarters.Set(q, utils.Round2(quarters.Quarter(q)))
	}
	return quarters
}

// GenerateESVXML serializes the yearly F0133109 annex. It always
// cross-references the main declaration's filename; the annex is only
// filed together with the year's final quarter.
func GenerateESVXML(report *models.ESVReport, profile *models.FOPProfile, linkedMainFilename string, fillDate time.Time) (string, error) {
	region, district, err := ParseTaxOfficeCode(profile.TaxOffice.Code)
	if err != nil {
		return "", fmt.Errorf("cannot encode ESV report: %w", err)
	}

	currentDate := utils.FormatDateDDMMYYYY(fillDate)
	yearStart := time.Date(report.Year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(report.Year, 12, 31, 0, 0, 0, 0, time.UTC)

	var monthlyFields strings.Builder
	for i, monthData := range report.MonthlyData {
		monthNum := i + 1
		if i > 0 {
			monthlyFields.WriteString("\n")
		}
		monthlyFields.WriteString(fmt.Sprintf("    <R09%dG2>%s</R09%dG2>\n", monthNum, FormatMoney(monthData.IncomeBase), monthNum))
		monthlyFields.WriteString(fmt.Sprintf("    <R09%dG3>%s</R09%dG3>\n", monthNum, FormatMoney(monthData.ContributionRate), monthNum))
		monthlyFields.WriteString(fmt.Sprintf("    <R09%dG4>%s</R09%dG4>", monthNum, FormatMoney(monthData.ContributionAmount), monthNum))
	}

	xml := fmt.Sprintf(`<?xml version="1.0"?>
<DECLAR xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:noNamespaceSchemaLocation="F0133109.xsd">
  <DECLARHEAD>
    <TIN>%s</TIN>
    <C_DOC>F01</C_DOC>
    <C_DOC_SUB>331</C_DOC_SUB>
    <C_DOC_VER>9</C_DOC_VER>
    <C_DOC_TYPE>0</C_DOC_TYPE>
    <C_DOC_CNT>1</C_DOC_CNT>
    <C_REG>%s</C_REG>
    <C_RAJ>%s</C_RAJ>
    <PERIOD_MONTH>12</PERIOD_MONTH>
    <PERIOD_TYPE>5</PERIOD_TYPE>
    <PERIOD_YEAR>%d</PERIOD_YEAR>
    <C_STI_ORIG>%s</C_STI_ORIG>
    <C_DOC_STAN>1</C_DOC_STAN>
    <LINKED_DOCS>
      <DOC NUM="1" TYPE="2">
        <C_DOC>F01</C_DOC>
        <C_DOC_SUB>033</C_DOC_SUB>
        <C_DOC_VER>9</C_DOC_VER>
        <C_DOC_TYPE>0</C_DOC_TYPE>
        <C_DOC_CNT>1</C_DOC_CNT>
        <C_DOC_STAN>1</C_DOC_STAN>
        <FILENAME>%s</FILENAME>
      </DOC>
    </LINKED_DOCS>
    <D_FILL>%s</D_FILL>
    <SOFTWARE>%s</SOFTWARE>
  </DECLARHEAD>

  <DECLARBODY>
    <HZ>1</HZ>
    <HTIN>%s</HTIN>
    <HNAME>%s</HNAME>
    <HY>1</HY>
    <HZY>%d</HZY>
    <HKVED>%s</HKVED>
    <R08G1D>%s</R08G1D>
    <R08G2D>%s</R08G2D>
    <R081G1>%s</R081G1>
%s
    <R09G2>%s</R09G2>
    <R09G4>%s</R09G4>
    <HBOS>%s</HBOS>
  </DECLARBODY>
</DECLAR>`,
		profile.TIN,
		region,
		district,
		report.Year,
		profile.TaxOffice.Code,
		linkedMainFilename,
		currentDate,
		softwareName(),
		profile.TIN,
		profile.FullName,
		report.Year,
		profile.KVED.Primary.Code,
		utils.FormatDateDDMMYYYY(yearStart),
		utils.FormatDateDDMMYYYY(yearEnd),
		profile.InsuranceCategoryCode,
		monthlyFields.String(),
		FormatMoney(report.Totals.TotalIncomeBase),
		FormatMoney(report.Totals.TotalContributionAmount),
		profile.FullName,
	)

	return xml, nil
}
