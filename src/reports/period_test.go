package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodTypeCode(t *testing.T) {
	assert.Equal(t, "2", PeriodTypeCode(1))
	assert.Equal(t, "3", PeriodTypeCode(2))
	assert.Equal(t, "4", PeriodTypeCode(3))
	assert.Equal(t, "5", PeriodTypeCode(4))
}

func TestPeriodMonth(t *testing.T) {
	assert.Equal(t, 3, PeriodMonth(1))
	assert.Equal(t, 6, PeriodMonth(2))
	assert.Equal(t, 9, PeriodMonth(3))
	assert.Equal(t, 12, PeriodMonth(4))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "1666.67", FormatMoney(1666.67))
	assert.Equal(t, "100000.00", FormatMoney(100000))
	assert.Equal(t, "0.10", FormatMoney(0.1))
}

func TestParseTaxOfficeCode(t *testing.T) {
	region, district, err := ParseTaxOfficeCode("2659")
	require.NoError(t, err)
	assert.Equal(t, "26", region)
	assert.Equal(t, "59", district)

	for _, invalid := range []string{"", "123", "12345", "26a9", "26 9"} {
		_, _, err := ParseTaxOfficeCode(invalid)
		assert.Error(t, err, "code %q must be rejected", invalid)
	}
}

func TestDeclarationFilename(t *testing.T) {
	profile := testProfile()

	// {C_STI_ORIG}{TIN}{C_DOC}{C_DOC_SUB}{C_DOC_VER}{C_DOC_STAN}{C_DOC_CNT}{PERIOD_TYPE}{PERIOD_MONTH}{PERIOD_YEAR}{C_STI_ORIG}.xml
	got := DeclarationFilename(profile, 2025, 1)
	assert.Equal(t, "26591234567890F0103309100000001203"+"2025"+"2659.xml", got)

	got = DeclarationFilename(profile, 2025, 4)
	assert.Equal(t, "26591234567890F0103309100000001512"+"2025"+"2659.xml", got)
}

func TestESVFilename(t *testing.T) {
	profile := testProfile()

	got := ESVFilename(profile, 2025)
	assert.Equal(t, "26591234567890F0133109100000001512"+"2025"+"2659.xml", got)

	// annex and final-quarter declaration differ only in the form code
	declaration := DeclarationFilename(profile, 2025, 4)
	assert.Len(t, got, len(declaration))
}
