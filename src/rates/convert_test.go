package rates

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestConvertToUAH(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		currencyCode string
		exchangeRate float64
		expected     float64
	}{
		{"hryvnia passes through", 1500.50, models.CurrencyUAH, 0, 1500.50},
		{"hryvnia ignores a stray rate", 1000, models.CurrencyUAH, 41.25, 1000},
		{"dollar converted at rate", 1000, models.CurrencyUSD, 41.25, 41250},
		{"euro converted and rounded", 333.33, models.CurrencyEUR, 43.567, 14522.19},
		{"missing rate falls back to raw amount", 500, models.CurrencyUSD, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertToUAH(tt.amount, tt.currencyCode, tt.exchangeRate)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}
