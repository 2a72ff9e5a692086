package processors

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

// memoryStore is an in-memory stand-in for the SQLite-backed store.
type memoryStore struct {
	data map[int]*models.AccumulatedData
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[int]*models.AccumulatedData)}
}

func (s *memoryStore) Load(year int) (*models.AccumulatedData, error) {
	if stored, ok := s.data[year]; ok {
		copied := *stored
		return &copied, nil
	}
	return models.NewAccumulatedData(year), nil
}

func (s *memoryStore) Save(data *models.AccumulatedData) error {
	copied := *data
	s.data[data.Year] = &copied
	return nil
}

func uahPayment(date time.Time, amount float64) models.Payment {
	return models.Payment{
		Date:         date,
		CurrencyCode: models.CurrencyUAH,
		Amount:       amount,
		AmountUAH:    amount,
	}
}

func usdPayment(date time.Time, amount, amountUAH float64) models.Payment {
	return models.Payment{
		Date:         date,
		CurrencyCode: models.CurrencyUSD,
		Amount:       amount,
		AmountUAH:    amountUAH,
	}
}

func TestAccumulateBucketsByQuarterAndCurrency(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	payments := []models.Payment{
		uahPayment(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 10000),
		uahPayment(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 5000),
		usdPayment(time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), 1000, 41250),
		uahPayment(time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), 20000),
	}

	data, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	assert.InDelta(t, 15000, data.QuarterlyIncomeUAH.Quarter(1), 1e-9)
	assert.InDelta(t, 41250, data.QuarterlyIncomeForeign.Quarter(1), 1e-9)
	assert.InDelta(t, 20000, data.QuarterlyIncomeUAH.Quarter(2), 1e-9)
	assert.InDelta(t, 0, data.QuarterlyIncomeForeign.Quarter(2), 1e-9)
	assert.InDelta(t, 0, data.QuarterlyIncomeUAH.Quarter(3), 1e-9)
	assert.InDelta(t, 0, data.QuarterlyIncomeUAH.Quarter(4), 1e-9)
}

func TestAccumulateDerivesTaxesPerQuarter(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	payments := []models.Payment{
		uahPayment(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 33333.33),
	}

	data, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	assert.InDelta(t, 1666.67, data.Taxes.SingleTax.Quarter(1), 1e-9)
	assert.InDelta(t, 333.33, data.Taxes.MilitaryTax.Quarter(1), 1e-9)
	assert.InDelta(t, 0, data.Taxes.SingleTax.Quarter(2), 1e-9)
}

func TestAccumulateIgnoresOtherYears(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	payments := []models.Payment{
		uahPayment(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 99999),
		uahPayment(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 1000),
		uahPayment(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 88888),
	}

	data, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	assert.InDelta(t, 1000, data.QuarterlyIncomeUAH.Quarter(1), 1e-9)
	for q := 2; q <= 4; q++ {
		assert.InDelta(t, 0, data.QuarterlyIncomeUAH.Quarter(q), 1e-9)
	}
}

func TestAccumulateIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	payments := []models.Payment{
		uahPayment(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 7500.25),
		usdPayment(time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC), 200, 8250),
	}

	first, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)
	second, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestAccumulateRecomputesAfterRemoval(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	payments := []models.Payment{
		uahPayment(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 10000),
		uahPayment(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 5000),
	}

	_, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	data, err := processor.Accumulate(payments[:1], 2025)
	require.NoError(t, err)

	assert.InDelta(t, 10000, data.QuarterlyIncomeUAH.Quarter(1), 1e-9)
	assert.InDelta(t, 500, data.Taxes.SingleTax.Quarter(1), 1e-9)
}

func TestAccumulatePreservesSocialContributions(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	seeded := models.NewAccumulatedData(2025)
	seeded.Taxes.SocialContributions.Set(1, 5280)
	seeded.Taxes.SocialContributions.Set(2, 5280)
	require.NoError(t, store.Save(seeded))

	payments := []models.Payment{
		uahPayment(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 1000),
	}

	data, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	assert.InDelta(t, 5280, data.Taxes.SocialContributions.Quarter(1), 1e-9)
	assert.InDelta(t, 5280, data.Taxes.SocialContributions.Quarter(2), 1e-9)
}

func TestAccumulateEmptyPaymentListZeroesIncome(t *testing.T) {
	store := newMemoryStore()
	processor := NewAccumulationProcessor(store)

	payments := []models.Payment{
		uahPayment(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 10000),
	}
	_, err := processor.Accumulate(payments, 2025)
	require.NoError(t, err)

	data, err := processor.Accumulate(nil, 2025)
	require.NoError(t, err)

	for q := 1; q <= 4; q++ {
		assert.Zero(t, data.QuarterlyIncomeUAH.Quarter(q))
		assert.Zero(t, data.QuarterlyIncomeForeign.Quarter(q))
		assert.Zero(t, data.Taxes.SingleTax.Quarter(q))
	}
}
