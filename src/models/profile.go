package models

import "time"

// Address of the entrepreneur, as it appears in the HLOC field.
type Address struct {
	Region     string `json:"region"`
	District   string `json:"district,omitempty"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postalCode"`
}

// TaxOffice identifies the receiving tax inspection. Code is four
// digits: two for the region, two for the district.
type TaxOffice struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// KVED is one activity classification entry.
type KVED struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// KVEDList holds the primary activity plus any additional ones.
type KVEDList struct {
	Primary    KVED   `json:"primary"`
	Additional []KVED `json:"additional"`
}

// FOPProfile is the taxpayer profile for a group-3 sole proprietor.
// The engine consumes it read-only: rates and the yearly limit are
// configuration, not derived state.
type FOPProfile struct {
	FullName string  `json:"fullName"`
	TIN      string  `json:"tin"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`

	TaxOffice        TaxOffice `json:"taxOffice"`
	RegistrationDate time.Time `json:"registrationDate"`
	KVED             KVEDList  `json:"kved"`

	TaxGroup   int  `json:"taxGroup"`
	IsVATPayer bool `json:"isVATpayer"`

	SingleTaxRate   float64 `json:"singleTaxRate"`
	MilitaryTaxRate float64 `json:"militaryTaxRate"`

	YearlyIncomeLimit float64 `json:"yearlyIncomeLimit"`

	// Insurance category code reported in the ESV annex (R081G1).
	InsuranceCategoryCode string `json:"insuranceCategoryCode,omitempty"`
}

// NewDefaultFOPProfile returns the fixed parameters of a group-3
// non-VAT payer: 5% single tax, 1% military levy, 12 million UAH
// yearly income ceiling.
func NewDefaultFOPProfile() *FOPProfile {
	return &FOPProfile{
		RegistrationDate:      time.Now(),
		TaxGroup:              3,
		IsVATPayer:            false,
		SingleTaxRate:         DefaultSingleTaxRate,
		MilitaryTaxRate:       DefaultMilitaryTaxRate,
		YearlyIncomeLimit:     YearlyIncomeLimit,
		InsuranceCategoryCode: "1",
	}
}

// Fixed system-wide rates and limits for simplified-tax group 3.
const (
	DefaultSingleTaxRate   = 0.05
	DefaultMilitaryTaxRate = 0.01
	YearlyIncomeLimit      = 12_000_000
)
