package processors

import (
	"fmt"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/utils"
)

// AccumulationProcessor rebuilds the year-scoped income and tax
// aggregate from the complete payment list. It always recomputes from
// scratch: callers pass the full list, never a delta, which keeps the
// batch and "incremental" paths from ever diverging.
type AccumulationProcessor struct {
	store AccumulatedDataStore
}

func NewAccumulationProcessor(store AccumulatedDataStore) *AccumulationProcessor {
	return &AccumulationProcessor{store: store}
}

// Accumulate buckets the year's payments into fiscal quarters,
// separates hryvnia income from converted foreign-currency income,
// derives the single tax and military levy per quarter, and persists
// the result under the year key (full replace).
//
// The socialContributions slots are carried over from the previously
// persisted aggregate: they are fed by the ESV monthly schedule, not
// by payments.
func (p *AccumulationProcessor) Accumulate(payments []models.Payment, year int) (*models.AccumulatedData, error) {
	data, err := p.store.Load(year)
	if err != nil {
		return nil, fmt.Errorf("error loading prior accumulated data for year %d: %w", year, err)
	}

	data.QuarterlyIncomeUAH = models.QuarterlyAmounts{}
	data.QuarterlyIncomeForeign = models.QuarterlyAmounts{}

	counted := 0
	for _, payment := range payments {
		if payment.Date.Year() != year {
			continue
		}
		quarter := utils.QuarterOfDate(payment.Date)
		if payment.CurrencyCode == models.CurrencyUAH {
			data.QuarterlyIncomeUAH.Add(quarter, payment.AmountUAH)
		} else {
			data.QuarterlyIncomeForeign.Add(quarter, payment.AmountUAH)
		}
		counted++
	}

	for quarter := 1; quarter <= 4; quarter++ {
		totalIncome := data.QuarterlyIncomeUAH.Quarter(quarter) + data.QuarterlyIncomeForeign.Quarter(quarter)
		data.Taxes.SingleTax.Set(quarter, utils.Round2(totalIncome*models.DefaultSingleTaxRate))
		data.Taxes.MilitaryTax.Set(quarter, utils.Round2(totalIncome*models.DefaultMilitaryTaxRate))
	}

	if err := p.store.Save(data); err != nil {
		return nil, fmt.Errorf("error persisting accumulated data for year %d: %w", year, err)
	}

	logger.L.Info("Accumulated data rebuilt", "year", year, "paymentsCounted", counted)
	return data, nil
}
