package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/fopzvit/src/models"
)

func dataWithIncome(amounts models.QuarterlyAmounts) *models.AccumulatedData {
	data := models.NewAccumulatedData(2025)
	data.QuarterlyIncomeUAH = amounts
	return data
}

func TestWithinLimit(t *testing.T) {
	tests := []struct {
		name           string
		income         models.QuarterlyAmounts
		throughQuarter int
		expected       bool
	}{
		{"zero income", models.QuarterlyAmounts{}, 4, true},
		{"well under the limit", models.QuarterlyAmounts{1_000_000, 2_000_000, 0, 0}, 4, true},
		{"exactly at the limit still qualifies", models.QuarterlyAmounts{12_000_000, 0, 0, 0}, 1, true},
		{"one kopiyka over", models.QuarterlyAmounts{12_000_000.01, 0, 0, 0}, 1, false},
		{"over across quarters", models.QuarterlyAmounts{5_000_000, 5_000_000, 5_000_000, 0}, 3, false},
		{"over only counting later quarters", models.QuarterlyAmounts{5_000_000, 5_000_000, 5_000_000, 0}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := dataWithIncome(tt.income)
			assert.Equal(t, tt.expected, WithinLimit(data, tt.throughQuarter))
		})
	}
}

func TestWithinLimitCountsForeignIncome(t *testing.T) {
	data := models.NewAccumulatedData(2025)
	data.QuarterlyIncomeUAH.Set(1, 7_000_000)
	data.QuarterlyIncomeForeign.Set(2, 6_000_000)

	assert.True(t, WithinLimit(data, 1))
	assert.False(t, WithinLimit(data, 2))
}

func TestLimitUsagePercent(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expected int
	}{
		{"zero", 0, 0},
		{"half", 6_000_000, 50},
		{"ninety percent", 10_800_000, 90},
		{"full", 12_000_000, 100},
		{"exceeded", 15_000_000, 125},
		{"rounds to nearest", 1_250_000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := dataWithIncome(models.QuarterlyAmounts{tt.income, 0, 0, 0})
			assert.Equal(t, tt.expected, LimitUsagePercent(data, 4))
		})
	}
}
