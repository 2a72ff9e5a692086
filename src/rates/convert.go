package rates

import (
	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/utils"
)

// ConvertToUAH converts an amount in its native currency to hryvnia.
// UAH amounts pass through untouched. A zero rate means "no rate
// available"; the amount then passes through unconverted so the
// payment can still be recorded. This is a deliberate fallback, not
// an error.
func ConvertToUAH(amount float64, currencyCode string, exchangeRate float64) float64 {
	if currencyCode == models.CurrencyUAH {
		return amount
	}

	if exchangeRate == 0 {
		logger.L.Warn("No exchange rate available, using raw amount", "currency", currencyCode, "amount", amount)
		return amount
	}

	return utils.Round2(amount * exchangeRate)
}
