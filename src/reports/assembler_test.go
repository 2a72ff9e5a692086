package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/fopzvit/src/models"
)

func testProfile() *models.FOPProfile {
	profile := models.NewDefaultFOPProfile()
	profile.FullName = "Шевченко Тарас Григорович"
	profile.TIN = "1234567890"
	profile.TaxOffice = models.TaxOffice{Code: "2659", Name: "ДПІ у Шевченківському районі м. Києва"}
	profile.KVED = models.KVEDList{
		Primary: models.KVED{Code: "62.01", Name: "Комп'ютерне програмування"},
	}
	profile.Address = models.Address{
		Region:     "Київська",
		City:       "Київ",
		Street:     "вул. Хрещатик",
		Building:   "1",
		PostalCode: "01001",
	}
	profile.Phone = "+380501234567"
	profile.Email = "fop@example.com"
	return profile
}

func testAggregate() *models.AccumulatedData {
	data := models.NewAccumulatedData(2025)
	data.QuarterlyIncomeUAH = models.QuarterlyAmounts{100000, 150000, 0, 0}
	data.QuarterlyIncomeForeign = models.QuarterlyAmounts{0, 50000, 0, 0}
	data.Taxes.SingleTax = models.QuarterlyAmounts{5000, 10000, 0, 0}
	data.Taxes.MilitaryTax = models.QuarterlyAmounts{1000, 2000, 0, 0}
	return data
}

func TestCalculateQuarterly(t *testing.T) {
	calc := CalculateQuarterly(testAggregate(), testProfile(), 2)

	assert.Equal(t, 2, calc.Quarter)
	assert.Equal(t, 2025, calc.Year)
	assert.InDelta(t, 200000, calc.QuarterlyIncome, 1e-9)
	assert.InDelta(t, 300000, calc.CumulativeIncome, 1e-9)

	assert.InDelta(t, 10000, calc.QuarterlySingleTax, 1e-9)
	assert.InDelta(t, 15000, calc.CumulativeSingleTax, 1e-9)
	assert.InDelta(t, 2000, calc.QuarterlyMilitaryTax, 1e-9)
	assert.InDelta(t, 3000, calc.CumulativeMilitaryTax, 1e-9)

	// paid figures come from the persisted slots, not from the rates
	assert.InDelta(t, 10000, calc.QuarterlySingleTaxPaid, 1e-9)
	assert.InDelta(t, 15000, calc.CumulativeSingleTaxPaid, 1e-9)

	// default rates match the persisted slots, so nothing is due
	assert.Zero(t, calc.SingleTaxToPay)
	assert.Zero(t, calc.SingleTaxToReturn)
	assert.Zero(t, calc.MilitaryTaxToPay)
	assert.Zero(t, calc.MilitaryTaxToReturn)
}

func TestCalculateQuarterlyBalancesCustomRates(t *testing.T) {
	profile := testProfile()
	profile.SingleTaxRate = 0.06
	profile.MilitaryTaxRate = 0.005

	calc := CalculateQuarterly(testAggregate(), profile, 2)

	// 6% of 300000 calculated vs 15000 settled at the default 5%
	assert.InDelta(t, 3000, calc.SingleTaxToPay, 1e-9)
	assert.Zero(t, calc.SingleTaxToReturn)

	// 0.5% of 300000 calculated vs 3000 settled at the default 1%
	assert.Zero(t, calc.MilitaryTaxToPay)
	assert.InDelta(t, 1500, calc.MilitaryTaxToReturn, 1e-9)
}

func TestBuildTaxReportTwoColumnIncome(t *testing.T) {
	report := BuildTaxReport(testProfile(), testAggregate(), 2)

	assert.Equal(t, 2025, report.ReportingPeriod.Year)
	assert.Equal(t, 2, report.ReportingPeriod.Quarter)

	assert.InDelta(t, 150000, report.IncomeSection.NationalCurrencyIncome.CurrentQuarter, 1e-9)
	assert.InDelta(t, 250000, report.IncomeSection.NationalCurrencyIncome.CumulativeFromYearStart, 1e-9)
	assert.InDelta(t, 50000, report.IncomeSection.ForeignCurrencyIncome.CurrentQuarter, 1e-9)
	assert.InDelta(t, 50000, report.IncomeSection.ForeignCurrencyIncome.CumulativeFromYearStart, 1e-9)
	assert.InDelta(t, 200000, report.IncomeSection.TotalIncome.CurrentQuarter, 1e-9)
	assert.InDelta(t, 300000, report.IncomeSection.TotalIncome.CumulativeFromYearStart, 1e-9)
}

func TestBuildTaxReportPreviouslyPaidDecomposition(t *testing.T) {
	data := testAggregate()

	for quarter := 1; quarter <= 4; quarter++ {
		report := BuildTaxReport(testProfile(), data, quarter)

		single := report.SingleTaxSection
		assert.InDelta(t, single.CalculatedTax, single.PreviouslyPaid+single.ToPay, 1e-9,
			"single tax decomposition must hold for quarter %d", quarter)

		military := report.MilitaryTaxSection
		assert.InDelta(t, military.CalculatedTax, military.PreviouslyPaid+military.ToPay, 1e-9,
			"military tax decomposition must hold for quarter %d", quarter)
	}
}

func TestBuildTaxReportFirstQuarterHasNothingPreviouslyPaid(t *testing.T) {
	report := BuildTaxReport(testProfile(), testAggregate(), 1)

	assert.InDelta(t, 0, report.SingleTaxSection.PreviouslyPaid, 1e-9)
	assert.InDelta(t, 5000, report.SingleTaxSection.ToPay, 1e-9)
	assert.InDelta(t, 0, report.MilitaryTaxSection.PreviouslyPaid, 1e-9)
}

func TestCheckTaxLimits(t *testing.T) {
	profile := testProfile()

	tests := []struct {
		name            string
		cumulative      float64
		withinLimits    bool
		limitExceeded   bool
		expectedWarning bool
	}{
		{"comfortably under", 1_000_000, true, false, false},
		{"just below warning threshold", 10_799_999, true, false, false},
		{"in warning band", 11_000_000, true, false, true},
		{"exactly at limit warns but passes", 12_000_000, true, false, true},
		{"over the limit", 12_000_000.01, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := models.QuarterlyCalculation{CumulativeIncome: tt.cumulative}
			result := CheckTaxLimits(calc, profile)

			assert.Equal(t, tt.withinLimits, result.WithinLimits)
			assert.Equal(t, tt.limitExceeded, result.LimitExceeded)
			if tt.expectedWarning {
				assert.NotEmpty(t, result.WarningMessage)
			} else {
				assert.Empty(t, result.WarningMessage)
			}
		})
	}
}

func TestTaxBalance(t *testing.T) {
	toPay, toReturn := TaxBalance(1500, 1000)
	assert.InDelta(t, 500, toPay, 1e-9)
	assert.Zero(t, toReturn)

	toPay, toReturn = TaxBalance(1000, 1500)
	assert.Zero(t, toPay)
	assert.InDelta(t, 500, toReturn, 1e-9)

	toPay, toReturn = TaxBalance(1000, 1000)
	assert.Zero(t, toPay)
	assert.Zero(t, toReturn)
}
