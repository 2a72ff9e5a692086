package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarterOfDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{"first day of year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"end of March", time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), 1},
		{"start of April", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 2},
		{"mid June", time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), 2},
		{"July", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 3},
		{"September", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), 3},
		{"October", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 4},
		{"last day of year", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuarterOfDate(tt.date))
		})
	}
}

func TestQuarterBounds(t *testing.T) {
	start, end := QuarterBounds(2025, 2)

	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.June, end.Month())
	assert.Equal(t, 30, end.Day())
	assert.True(t, end.Before(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))

	// boundary dates bucket consistently with QuarterOfDate
	assert.Equal(t, 2, QuarterOfDate(start))
	assert.Equal(t, 2, QuarterOfDate(end))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("15.04.2025", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2025-04-15", "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, 15, parsed.Day())

	_, err = ParseDate("not a date", "")
	assert.Error(t, err)
}

func TestFormatDateDDMMYYYY(t *testing.T) {
	assert.Equal(t, "01042025", FormatDateDDMMYYYY(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31122024", FormatDateDDMMYYYY(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}
