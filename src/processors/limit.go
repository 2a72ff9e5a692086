package processors

import (
	"math"

	"github.com/username/fopzvit/src/models"
)

// WithinLimit reports whether cumulative income through a quarter
// stays inside the yearly simplified-system ceiling. The boundary is
// inclusive: income exactly at the limit still qualifies.
func WithinLimit(data *models.AccumulatedData, throughQuarter int) bool {
	return CumulativeView(data, throughQuarter).IncomeTotal <= models.YearlyIncomeLimit
}

// LimitUsagePercent returns cumulative income as a percentage of the
// yearly ceiling, rounded to the nearest integer. May exceed 100.
func LimitUsagePercent(data *models.AccumulatedData, throughQuarter int) int {
	usage := CumulativeView(data, throughQuarter).IncomeTotal / models.YearlyIncomeLimit
	return int(math.Round(usage * 100))
}
