package models

import "time"

// Currency codes known to the system. UAH is the local currency;
// everything else goes through NBU rate conversion at entry time.
const (
	CurrencyUAH = "UAH"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Payment is one incoming economic event. AmountUAH is computed once,
// at entry time, and is the only amount the accumulation engine
// trusts; it is never recomputed afterwards.
type Payment struct {
	ID                  string    `json:"id"`
	Date                time.Time `json:"date"`
	CurrencyCode        string    `json:"currencyCode"`
	Amount              float64   `json:"amount"`
	AmountUAH           float64   `json:"amountUAH"`
	Counterparty        string    `json:"counterparty"`
	CounterpartyAccount string    `json:"counterpartyAccount"`
	Description         string    `json:"description,omitempty"`
	ExchangeRate        float64   `json:"exchangeRate,omitempty"` // retained for audit/display only
}

// ParsedPayment is a spreadsheet row normalized by the importer:
// date, amount and currency are already resolved, direction is
// carried as IsIncoming.
type ParsedPayment struct {
	Date                time.Time `json:"date"`
	Amount              float64   `json:"amount"`
	CurrencyCode        string    `json:"currencyCode"`
	Counterparty        string    `json:"counterparty"`
	CounterpartyAccount string    `json:"counterpartyAccount"`
	Description         string    `json:"description,omitempty"`
	IsIncoming          bool      `json:"isIncoming"`
}

// QuarterlyAmounts holds one monetary figure per fiscal quarter,
// indexed by quarter number 1..4. A fixed-size array keeps quarter
// addressing compile-time checked.
type QuarterlyAmounts [4]float64

// Quarter returns the amount recognized in quarter q (1..4).
func (a QuarterlyAmounts) Quarter(q int) float64 {
	return a[q-1]
}

// Add folds v into quarter q (1..4).
func (a *QuarterlyAmounts) Add(q int, v float64) {
	a[q-1] += v
}

// Set overwrites quarter q (1..4) with v.
func (a *QuarterlyAmounts) Set(q int, v float64) {
	a[q-1] = v
}

// SumThrough sums quarters 1..q inclusive.
func (a QuarterlyAmounts) SumThrough(q int) float64 {
	var total float64
	for i := 0; i < q; i++ {
		total += a[i]
	}
	return total
}

// TaxTotals carries the per-quarter derived taxes. SingleTax and
// MilitaryTax are recomputed from income on every accumulation run;
// SocialContributions is fed by the separately configured monthly
// ESV schedule and survives recomputation untouched.
type TaxTotals struct {
	SingleTax           QuarterlyAmounts `json:"singleTax"`
	MilitaryTax         QuarterlyAmounts `json:"militaryTax"`
	SocialContributions QuarterlyAmounts `json:"socialContributions"`
}

// AccumulatedData is the year-scoped aggregate of recognized income
// and derived taxes, rebuilt from scratch on every payment-set change.
type AccumulatedData struct {
	Year                   int              `json:"year"`
	QuarterlyIncomeUAH     QuarterlyAmounts `json:"quarterlyIncomeUAH"`
	QuarterlyIncomeForeign QuarterlyAmounts `json:"quarterlyIncomeForeign"`
	Taxes                  TaxTotals        `json:"taxes"`
}

// NewAccumulatedData returns an all-zero structure for a year.
func NewAccumulatedData(year int) *AccumulatedData {
	return &AccumulatedData{Year: year}
}

// PeriodTotals is the projection of AccumulatedData over a single
// quarter or over quarters 1..q cumulatively.
type PeriodTotals struct {
	IncomeUAH           float64 `json:"incomeUAH"`
	IncomeForeign       float64 `json:"incomeForeign"`
	IncomeTotal         float64 `json:"incomeTotal"`
	SingleTax           float64 `json:"singleTax"`
	MilitaryTax         float64 `json:"militaryTax"`
	SocialContributions float64 `json:"socialContributions"`
}

// QuarterlyCalculation is the report-ready view for one target
// quarter: quarter-only and cumulative-through-quarter figures side
// by side, the way the declaration's two-column layout needs them.
// Always derived fresh, never persisted.
type QuarterlyCalculation struct {
	Quarter int `json:"quarter"`
	Year    int `json:"year"`

	QuarterlyIncome  float64 `json:"quarterlyIncome"`
	CumulativeIncome float64 `json:"cumulativeIncome"`

	QuarterlySingleTax      float64 `json:"quarterlySingleTax"`
	CumulativeSingleTax     float64 `json:"cumulativeSingleTax"`
	QuarterlySingleTaxPaid  float64 `json:"quarterlySingleTaxPaid"`
	CumulativeSingleTaxPaid float64 `json:"cumulativeSingleTaxPaid"`

	QuarterlyMilitaryTax      float64 `json:"quarterlyMilitaryTax"`
	CumulativeMilitaryTax     float64 `json:"cumulativeMilitaryTax"`
	QuarterlyMilitaryTaxPaid  float64 `json:"quarterlyMilitaryTaxPaid"`
	CumulativeMilitaryTaxPaid float64 `json:"cumulativeMilitaryTaxPaid"`

	QuarterlySocialContributions  float64 `json:"quarterlySocialContributions"`
	CumulativeSocialContributions float64 `json:"cumulativeSocialContributions"`

	// Balance of calculated vs. already-settled tax, cumulative through
	// the quarter. At most one side of each pair is non-zero.
	SingleTaxToPay      float64 `json:"singleTaxToPay"`
	SingleTaxToReturn   float64 `json:"singleTaxToReturn"`
	MilitaryTaxToPay    float64 `json:"militaryTaxToPay"`
	MilitaryTaxToReturn float64 `json:"militaryTaxToReturn"`
}
