package ingest

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTimespan marks a validity window that fails the
// yymmddHHMM-yymmddHHMM grammar. The record it belongs to cannot be expanded
// across days; the caller decides whether to drop it or abort.
var ErrMalformedTimespan = errors.New("malformed timespan")

// timespanLayout parses the ten-digit UTC instants a validity window is made
// of, two-digit year first.
const timespanLayout = "0601021504"

// DaysFromTimespan returns each ISO calendar day (UTC) the validity window
// touches for at least one minute, in order. The window is half-open: a stop
// instant exactly at midnight does not pull in the following day.
func DaysFromTimespan(timespan string) ([]string, error) {
	m := timespanRe.FindStringSubmatch(timespan)
	if m == nil || m[0] != timespan {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTimespan, timespan)
	}

	start, err := time.Parse(timespanLayout, m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedTimespan, timespan, err)
	}
	stop, err := time.Parse(timespanLayout, m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedTimespan, timespan, err)
	}

	var days []string
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	for day.Before(stop) {
		days = append(days, day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}
	return days, nil
}
