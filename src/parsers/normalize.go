package parsers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/fopzvit/src/utils"
)

// dateLayouts maps the config's format notation to Go layouts, plus
// the fallbacks excelize may produce for date-typed cells.
var dateLayouts = map[string]string{
	"dd.MM.yyyy": "02.01.2006",
	"dd/MM/yyyy": "02/01/2006",
	"yyyy-MM-dd": "2006-01-02",
}

var fallbackLayouts = []string{
	"02.01.2006",
	"02/01/2006",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
	time.RFC3339,
}

func parseCellDate(value, format string) (time.Time, error) {
	layout, ok := dateLayouts[format]
	if !ok {
		layout = format
	}
	if layout != "" {
		if t, err := utils.ParseDate(value, layout); err == nil {
			return t, nil
		}
	}
	for _, fallback := range fallbackLayouts {
		if t, err := time.Parse(fallback, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date: %s", value)
}

// ParseAmount normalizes the amount notations seen in bank exports:
// thousands separated by spaces or commas, decimal comma or point.
func ParseAmount(value string) (float64, error) {
	amountString := strings.Join(strings.Fields(value), "")
	amountString = strings.ReplaceAll(amountString, " ", "")

	hasComma := strings.Contains(amountString, ",")
	hasPoint := strings.Contains(amountString, ".")

	switch {
	case hasComma && hasPoint:
		// 1,234.56: comma is a thousands separator
		amountString = strings.ReplaceAll(amountString, ",", "")
	case hasComma:
		commaIndex := strings.LastIndex(amountString, ",")
		afterComma := amountString[commaIndex+1:]
		if len(afterComma) <= 2 {
			// 123,45: decimal comma
			amountString = strings.Replace(amountString, ",", ".", 1)
		} else {
			// 1,234,567: thousands separators
			amountString = strings.ReplaceAll(amountString, ",", "")
		}
	}

	amount, err := strconv.ParseFloat(amountString, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse amount: %s", value)
	}
	return amount, nil
}

// NormalizeCurrency maps the currency spellings bank exports use onto
// ISO codes. Unknown non-empty values pass through uppercased; an
// empty cell means hryvnia.
func NormalizeCurrency(value string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	switch code {
	case "", "ГРИВНЯ", "ГРН", "UAH":
		return "UAH"
	case "ДОЛАР США", "ДОЛЛАР США", "USD":
		return "USD"
	case "ЄВРО", "EUR":
		return "EUR"
	default:
		return code
	}
}
