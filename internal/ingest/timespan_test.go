package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysFromTimespan(t *testing.T) {
	tests := []struct {
		name     string
		timespan string
		expected []string
	}{
		{
			"same day",
			"1810291000-1810291300",
			[]string{"2018-10-29"},
		},
		{
			"three days",
			"1810261630-1810282359",
			[]string{"2018-10-26", "2018-10-27", "2018-10-28"},
		},
		{
			"stop at midnight excludes the stop day",
			"1810261630-1810270000",
			[]string{"2018-10-26"},
		},
		{
			"crosses a month boundary",
			"1810311200-1811011200",
			[]string{"2018-10-31", "2018-11-01"},
		},
		{
			"crosses a year boundary",
			"1812312300-1901010100",
			[]string{"2018-12-31", "2019-01-01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysFromTimespan(tt.timespan)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}

	t.Run("stop before start", func(t *testing.T) {
		// The walk begins at the start instant's midnight, which still
		// precedes the reversed stop, so the start day itself is kept.
		days, err := DaysFromTimespan("1810291300-1810291000")
		require.NoError(t, err)
		assert.Equal(t, []string{"2018-10-29"}, days)
	})

	invalid := []string{
		"",
		"1810291000",
		"1810291000-18102913",
		"october-november",
	}
	for _, timespan := range invalid {
		t.Run("malformed "+timespan, func(t *testing.T) {
			_, err := DaysFromTimespan(timespan)
			assert.ErrorIs(t, err, ErrMalformedTimespan)
		})
	}
}
