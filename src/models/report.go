package models

// TwoColumnAmount pairs the quarter-only figure with the cumulative
// year-to-date one, matching the declaration form's column layout.
type TwoColumnAmount struct {
	CurrentQuarter          float64 `json:"currentQuarter"`
	CumulativeFromYearStart float64 `json:"cumulativeFromYearStart"`
}

// TaxSection is one tax's slice of the declaration: the cumulative
// base and charge, what was already settled in prior filings, and
// the amount newly due this quarter.
type TaxSection struct {
	TaxableIncome  float64 `json:"taxableIncome"`
	TaxRate        float64 `json:"taxRate"`
	CalculatedTax  float64 `json:"calculatedTax"`
	PreviouslyPaid float64 `json:"previouslyPaid"`
	ToPay          float64 `json:"toPay"`
}

// ReportingPeriod identifies the filing period of a declaration.
type ReportingPeriod struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// TaxReport is the assembled F0103309 declaration content: income by
// origin and the single-tax and military-levy sections.
type TaxReport struct {
	ReportingPeriod ReportingPeriod `json:"reportingPeriod"`

	IncomeSection struct {
		NationalCurrencyIncome TwoColumnAmount `json:"nationalCurrencyIncome"`
		ForeignCurrencyIncome  TwoColumnAmount `json:"foreignCurrencyIncome"`
		TotalIncome            TwoColumnAmount `json:"totalIncome"`
	} `json:"incomeSection"`

	SingleTaxSection   TaxSection `json:"singleTaxSection"`
	MilitaryTaxSection TaxSection `json:"militaryTaxSection"`
}

// MonthESVSettings is the externally configured contribution base and
// rate for one month.
type MonthESVSettings struct {
	Month            int     `json:"month"`
	IncomeBase       float64 `json:"incomeBase"`
	ContributionRate float64 `json:"contributionRate"` // percent, e.g. 22
}

// ESVSettings is the full monthly schedule for one year.
type ESVSettings struct {
	Year            int                `json:"year"`
	MonthlySettings []MonthESVSettings `json:"monthlySettings"`
}

// MonthESVData is one month's settings plus the derived contribution.
type MonthESVData struct {
	Month              int     `json:"month"`
	IncomeBase         float64 `json:"incomeBase"`
	ContributionRate   float64 `json:"contributionRate"`
	ContributionAmount float64 `json:"contributionAmount"`
}

// ESVReport is the assembled F0133109 annex content: twelve monthly
// rows and their totals.
type ESVReport struct {
	Year        int            `json:"year"`
	MonthlyData []MonthESVData `json:"monthlyData"`

	Totals struct {
		TotalIncomeBase         float64 `json:"totalIncomeBase"`
		TotalContributionAmount float64 `json:"totalContributionAmount"`
	} `json:"totals"`
}
