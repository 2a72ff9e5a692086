package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/fopzvit/src/models"
)

func validReport() *models.TaxReport {
	report := &models.TaxReport{}
	report.ReportingPeriod = models.ReportingPeriod{Year: 2025, Quarter: 1}
	report.IncomeSection.TotalIncome = models.TwoColumnAmount{
		CurrentQuarter:          100000,
		CumulativeFromYearStart: 100000,
	}
	return report
}

func TestValidateReportAcceptsCompleteData(t *testing.T) {
	errs := ValidateReport(validReport(), testProfile())
	assert.Empty(t, errs)
}

func TestValidateReport(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(report *models.TaxReport, profile *models.FOPProfile)
		wantErr string
	}{
		{
			"short TIN",
			func(r *models.TaxReport, p *models.FOPProfile) { p.TIN = "12345" },
			"ІПН повинен містити 10 цифр",
		},
		{
			"non-numeric TIN",
			func(r *models.TaxReport, p *models.FOPProfile) { p.TIN = "12345abcde" },
			"ІПН повинен містити 10 цифр",
		},
		{
			"bad tax office code",
			func(r *models.TaxReport, p *models.FOPProfile) { p.TaxOffice.Code = "26" },
			"Код податкової повинен містити 4 цифри",
		},
		{
			"missing name",
			func(r *models.TaxReport, p *models.FOPProfile) { p.FullName = "  " },
			"ПІБ є обов'язковим",
		},
		{
			"missing KVED code",
			func(r *models.TaxReport, p *models.FOPProfile) { p.KVED.Primary.Code = "" },
			"Код основного КВЕДу є обов'язковим",
		},
		{
			"zero income",
			func(r *models.TaxReport, p *models.FOPProfile) {
				r.IncomeSection.TotalIncome.CumulativeFromYearStart = 0
			},
			"Сума доходів повинна бути більшою за 0",
		},
		{
			"income over limit",
			func(r *models.TaxReport, p *models.FOPProfile) {
				r.IncomeSection.TotalIncome.CumulativeFromYearStart = 12_000_000.01
			},
			"Доходи перевищують ліміт для 3-ї групи (12000000.00 грн)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := validReport()
			profile := testProfile()
			tt.mutate(report, profile)

			errs := ValidateReport(report, profile)
			assert.Contains(t, errs, tt.wantErr)
		})
	}
}

func TestValidateReportIncomeAtLimitIsAllowed(t *testing.T) {
	report := validReport()
	report.IncomeSection.TotalIncome.CumulativeFromYearStart = 12_000_000

	errs := ValidateReport(report, testProfile())
	assert.Empty(t, errs)
}

func TestValidateReportCollectsAllErrors(t *testing.T) {
	report := validReport()
	report.IncomeSection.TotalIncome.CumulativeFromYearStart = 0
	profile := testProfile()
	profile.TIN = ""
	profile.FullName = ""

	errs := ValidateReport(report, profile)
	assert.Len(t, errs, 3)
}

func TestValidateESVReport(t *testing.T) {
	settings := NewDefaultESVSettings(2025)
	report := BuildESVReport(settings)

	errs := ValidateESVReport(report, testProfile())
	assert.Empty(t, errs)

	short := BuildESVReport(&models.ESVSettings{Year: 2025})
	errs = ValidateESVReport(short, testProfile())
	assert.Contains(t, errs, "Звіт повинен містити дані за всі 12 місяців")

	settings.MonthlySettings[0].IncomeBase = -1
	settings.MonthlySettings[4].ContributionRate = 0
	report = BuildESVReport(settings)
	errs = ValidateESVReport(report, testProfile())
	assert.Contains(t, errs, "Сума доходу за 1 місяць не може бути від'ємною")
	assert.Contains(t, errs, "Ставка ЄСВ за 5 місяць повинна бути від 0 до 100%")
}

func TestValidateProfile(t *testing.T) {
	assert.Empty(t, ValidateProfile(testProfile()))

	profile := testProfile()
	profile.Address.PostalCode = "123"
	profile.Email = "not-an-email"
	errs := ValidateProfile(profile)
	assert.Contains(t, errs, "Поштовий індекс повинен містити 5 цифр")
	assert.Contains(t, errs, "Некоректний формат email")

	empty := &models.FOPProfile{}
	errs = ValidateProfile(empty)
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs, "ПІБ є обов'язковим")
	assert.Contains(t, errs, "ІПН є обов'язковим")
}

func TestIsProfileComplete(t *testing.T) {
	assert.True(t, IsProfileComplete(testProfile()))
	assert.False(t, IsProfileComplete(&models.FOPProfile{}))
	assert.False(t, IsProfileComplete(nil))
}
