package reports

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/username/fopzvit/src/config"
	"github.com/username/fopzvit/src/models"
)

// softwareName is what the SOFTWARE tag reports. Falls back to a
// fixed name when config was not loaded (tests).
func softwareName() string {
	if config.Cfg != nil && config.Cfg.SoftwareName != "" {
		return config.Cfg.SoftwareName
	}
	return "fopzvit v1.0"
}

// Document identifiers of the two supported DPS forms.
const (
	DocCode            = "F01"
	DeclarationDocSub  = "033" // F0103309, single tax declaration
	ESVDocSub          = "331" // F0133109, social contribution annex
	DocVersion         = "9"
	filenameDocVersion = "09"
	docStan            = "1"
	docCnt             = "00000001"
)

// PeriodTypeCode maps the filing quarter to the DPS period type:
// quarter 2, half-year 3, three-quarters 4, full-year 5.
func PeriodTypeCode(quarter int) string {
	switch quarter {
	case 1:
		return "2"
	case 2:
		return "3"
	case 3:
		return "4"
	case 4:
		return "5"
	default:
		return "2"
	}
}

// PeriodMonth is the last month of the filing period.
func PeriodMonth(quarter int) int {
	return quarter * 3
}

// FormatMoney renders a monetary value with exactly two decimals, the
// only representation the XML schema accepts.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

var taxOfficeCodePattern = regexp.MustCompile(`^\d{4}$`)

// ParseTaxOfficeCode splits a 4-digit tax office code into its region
// and district halves. A malformed code is a hard error: the encoder
// cannot emit C_REG/C_RAJ without it.
func ParseTaxOfficeCode(code string) (region, district string, err error) {
	if !taxOfficeCodePattern.MatchString(code) {
		return "", "", fmt.Errorf("tax office code must be exactly 4 digits, got %q", code)
	}
	return code[:2], code[2:4], nil
}

// GenerateDPSFilename builds the official filename the tax authority
// expects:
// {C_STI_ORIG}{TIN}{C_DOC}{C_DOC_SUB}{C_DOC_VER}{C_DOC_STAN}{C_DOC_CNT}{PERIOD_TYPE}{PERIOD_MONTH}{PERIOD_YEAR}{C_STI_ORIG}.xml
func GenerateDPSFilename(profile *models.FOPProfile, docSub, periodType string, periodMonth, year int) string {
	return profile.TaxOffice.Code +
		profile.TIN +
		DocCode +
		docSub +
		filenameDocVersion +
		docStan +
		docCnt +
		periodType +
		fmt.Sprintf("%02d", periodMonth) +
		strconv.Itoa(year) +
		profile.TaxOffice.Code +
		".xml"
}

// DeclarationFilename is the filename for the quarter's F0103309.
func DeclarationFilename(profile *models.FOPProfile, year, quarter int) string {
	return GenerateDPSFilename(profile, DeclarationDocSub, PeriodTypeCode(quarter), PeriodMonth(quarter), year)
}

// ESVFilename is the filename for the year's F0133109 annex.
func ESVFilename(profile *models.FOPProfile, year int) string {
	return GenerateDPSFilename(profile, ESVDocSub, PeriodTypeCode(4), PeriodMonth(4), year)
}
