package utils

import (
	"fmt"
	"time"
)

const DefaultDateFormat = "02.01.2006"

// QuarterOfDate maps a calendar date to its civil quarter (1..4).
// Only the date's own month matters; time zone offsets are a concern
// of the storage boundary, not of bucketing.
func QuarterOfDate(date time.Time) int {
	return (int(date.Month())-1)/3 + 1
}

// QuarterBounds returns the closed interval covered by a quarter:
// first day of its first month at 00:00:00 through the last day of
// its last month at 23:59:59.999999999.
func QuarterBounds(year, quarter int) (time.Time, time.Time) {
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).Add(-time.Nanosecond)
	return start, end
}

// ParseDate parses a date string in the given layout, trying the
// default dd.MM.yyyy layout when none is supplied.
func ParseDate(dateStr, layout string) (time.Time, error) {
	if layout == "" {
		layout = DefaultDateFormat
	}
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse date %q with layout %q: %w", dateStr, layout, err)
	}
	return t, nil
}

// FormatDateDDMMYYYY renders a date as the fixed-width 8-digit form
// the tax authority schema expects (e.g. 01042025).
func FormatDateDDMMYYYY(date time.Time) string {
	return date.Format("02012006")
}
