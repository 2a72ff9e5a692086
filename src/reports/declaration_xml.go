package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/utils"
)

// GenerateDeclarationXML serializes the assembled F0103309 report
// into the fixed DPS schema. The tag surface is a byte-level contract
// with the receiving system; do not reformat it.
//
// linkedESVFilename, when non-empty, cross-references the year's
// F0133109 annex filed together with the final quarter.
func GenerateDeclarationXML(report *models.TaxReport, profile *models.FOPProfile, linkedESVFilename string, fillDate time.Time) (string, error) {
	region, district, err := ParseTaxOfficeCode(profile.TaxOffice.Code)
	if err != nil {
		return "", fmt.Errorf("cannot encode declaration: %w", err)
	}

	currentDate := utils.FormatDateDDMMYYYY(fillDate)

	linkedDocsXML := `<LINKED_DOCS xsi:nil="true"/>`
	if linkedESVFilename != "" {
		linkedDocsXML = `<LINKED_DOCS>
      <DOC NUM="1" TYPE="1">
        <C_DOC>F01</C_DOC>
        <C_DOC_SUB>331</C_DOC_SUB>
        <C_DOC_VER>9</C_DOC_VER>
        <C_DOC_TYPE>0</C_DOC_TYPE>
        <C_DOC_CNT>1</C_DOC_CNT>
        <C_DOC_STAN>1</C_DOC_STAN>
        <FILENAME>` + linkedESVFilename + `</FILENAME>
      </DOC>
    </LINKED_DOCS>`
	}

	quarter := report.ReportingPeriod.Quarter

	var periodFlag string
	switch quarter {
	case 1:
		periodFlag = "<H1KV>1</H1KV>"
	case 2:
		periodFlag = "<HHY>1</HHY>"
	case 3:
		periodFlag = "<H3KV>1</H3KV>"
	case 4:
		periodFlag = "<HY>1</HY>"
	}

	var kvedCodes, kvedNames strings.Builder
	kvedCodes.WriteString(fmt.Sprintf(`<T1RXXXXG1S ROWNUM="1">%s</T1RXXXXG1S>`, profile.KVED.Primary.Code))
	kvedNames.WriteString(fmt.Sprintf(`<T1RXXXXG2S ROWNUM="1">%s</T1RXXXXG2S>`, profile.KVED.Primary.Name))
	for i, kved := range profile.KVED.Additional {
		kvedCodes.WriteString(fmt.Sprintf(`<T1RXXXXG1S ROWNUM="%d">%s</T1RXXXXG1S>`, i+2, kved.Code))
		kvedNames.WriteString(fmt.Sprintf(`<T1RXXXXG2S ROWNUM="%d">%s</T1RXXXXG2S>`, i+2, kved.Name))
	}

	emailTag := ""
	if profile.Email != "" {
		emailTag = fmt.Sprintf("<HEMAIL>%s</HEMAIL>", profile.Email)
	}
	phoneTag := ""
	if profile.Phone != "" {
		phoneTag = fmt.Sprintf("<HTEL>%s</HTEL>", profile.Phone)
	}

	hd1Tag := `<HD1 xsi:nil="true"/>`
	if linkedESVFilename != "" {
		hd1Tag = "<HD1>1</HD1>"
	}

	xml := fmt.Sprintf(`<?xml version="1.0" encoding="windows-1251"?>
<DECLAR xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:noNamespaceSchemaLocation="F0103309.xsd">
  <DECLARHEAD>
    <TIN>%s</TIN>
    <C_DOC>F01</C_DOC>
    <C_DOC_SUB>033</C_DOC_SUB>
    <C_DOC_VER>9</C_DOC_VER>
    <C_DOC_TYPE>0</C_DOC_TYPE>
    <C_DOC_CNT>1</C_DOC_CNT>
    <C_REG>%s</C_REG>
    <C_RAJ>%s</C_RAJ>
    <PERIOD_MONTH>%d</PERIOD_MONTH>
    <PERIOD_TYPE>%s</PERIOD_TYPE>
    <PERIOD_YEAR>%d</PERIOD_YEAR>
    <C_STI_ORIG>%s</C_STI_ORIG>
    <C_DOC_STAN>1</C_DOC_STAN>
    %s
    <D_FILL>%s</D_FILL>
    <SOFTWARE>%s</SOFTWARE>
  </DECLARHEAD>

  <DECLARBODY>
    <HZ>1</HZ>
    %s
    <HZY>%d</HZY>
    <HSTI>%s</HSTI>
    <HNAME>%s</HNAME>
    <HLOC>%s</HLOC>
    %s
    %s
    <HTIN>%s</HTIN>
    <HNACTL>0</HNACTL>
    %s
    %s
    <R006G3>%s</R006G3>
    <R008G3>%s</R008G3>
    <R011G3>%s</R011G3>
    <R012G3>%s</R012G3>
    <R013G3>%s</R013G3>
    <R0141G3>%s</R0141G3>
    <R014G3>%s</R014G3>
    <R08G1 xsi:nil="true"/>
    <R08G2 xsi:nil="true"/>
    <R08G3 xsi:nil="true"/>
    <R08G4 xsi:nil="true"/>
    <R08G5 xsi:nil="true"/>
    <R08G6 xsi:nil="true"/>
    <R08G7 xsi:nil="true"/>
    <R08G8 xsi:nil="true"/>
    <R08G9 xsi:nil="true"/>
    <R08G10 xsi:nil="true"/>
    <R08G11 xsi:nil="true"/>
    <R08G12 xsi:nil="true"/>
    <R023G3>%s</R023G3>
    <R024G3>%s</R024G3>
    <R025G3>%s</R025G3>
    %s
    <HD2 xsi:nil="true"/>
    <HFILL>%s</HFILL>
    <HKEXECUTOR>%s</HKEXECUTOR>
    <HBOS>%s</HBOS>
  </DECLARBODY>
</DECLAR>`,
		profile.TIN,
		region,
		district,
		PeriodMonth(quarter),
		PeriodTypeCode(quarter),
		report.ReportingPeriod.Year,
		profile.TaxOffice.Code,
		linkedDocsXML,
		currentDate,
		softwareName(),
		periodFlag,
		report.ReportingPeriod.Year,
		profile.TaxOffice.Name,
		profile.FullName,
		FormatAddress(profile.Address),
		emailTag,
		phoneTag,
		profile.TIN,
		kvedCodes.String(),
		kvedNames.String(),
		FormatMoney(report.IncomeSection.TotalIncome.CumulativeFromYearStart),
		FormatMoney(report.IncomeSection.TotalIncome.CumulativeFromYearStart),
		FormatMoney(report.SingleTaxSection.CalculatedTax),
		FormatMoney(report.SingleTaxSection.CalculatedTax),
		FormatMoney(report.SingleTaxSection.PreviouslyPaid),
		FormatMoney(report.SingleTaxSection.ToPay),
		FormatMoney(report.SingleTaxSection.ToPay),
		FormatMoney(report.MilitaryTaxSection.CalculatedTax),
		FormatMoney(report.MilitaryTaxSection.PreviouslyPaid),
		FormatMoney(report.MilitaryTaxSection.ToPay),
		hd1Tag,
		currentDate,
		profile.TIN,
		profile.FullName,
	)

	return xml, nil
}

// FormatAddress joins the address parts into the single HLOC line.
func FormatAddress(address models.Address) string {
	streetLine := address.Street + ", " + address.Building
	if address.Apartment != "" {
		streetLine += ", кв. " + address.Apartment
	}

	parts := []string{
		address.PostalCode,
		address.Region,
		address.District,
		address.City,
		streetLine,
	}

	nonEmpty := parts[:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
