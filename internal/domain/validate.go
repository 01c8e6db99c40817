package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field validation failures. Callers test with errors.Is; the wrapped
// message carries the offending raw value.
var (
	ErrInvalidIdent     = errors.New("invalid ident")
	ErrInvalidLatitude  = errors.New("invalid latitude")
	ErrInvalidLongitude = errors.New("invalid longitude")
	ErrInvalidRadius    = errors.New("invalid radius")
)

var (
	// identRe accepts any 1-20 character identifier.
	identRe = regexp.MustCompile(`^.{1,20}$`)

	// latRe matches DDMMSS plus a hemisphere letter, e.g. "393835N":
	// two-digit degrees, two-digit minutes, two-digit seconds, N or S.
	latRe = regexp.MustCompile(`^([0-9]{2})([0-9]{2})([0-9]{2})([NS])$`)

	// lonRe matches [D]DDMMSS plus a hemisphere letter, e.g. "1174702W":
	// two- or three-digit degrees (longitudes run to 180), then MMSS, E or W.
	lonRe = regexp.MustCompile(`^([0-9]{2,3})([0-9]{2})([0-9]{2})([EW])$`)

	// radiusRe matches a digit run with an optional NM unit label.
	radiusRe = regexp.MustCompile(`^([0-9]+)(NM)?$`)
)

const (
	maxLatitude      = 90.0
	maxLongitude     = 180.0
	minutesPerDegree = 60.0
	secondsPerDegree = 3600.0
)

// ValidateIdent returns the identifier unchanged if it is 1-20 characters
// long, or ErrInvalidIdent.
func ValidateIdent(s string) (string, error) {
	if !identRe.MatchString(s) {
		return "", fmt.Errorf("%w %q", ErrInvalidIdent, s)
	}
	return s, nil
}

// ValidateLatitude decodes a DDMMSS[N|S] token into signed decimal degrees,
// north positive. Minutes and seconds up to and including 60 are accepted;
// the absolute value must not exceed 90 degrees.
func ValidateLatitude(s string) (float64, error) {
	m := latRe.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLatitude, s)
	}
	deg, ok := dmsToDegrees(m[1], m[2], m[3], maxLatitude)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidLatitude, s)
	}
	if m[4] == "S" {
		deg = -deg
	}
	return deg, nil
}

// ValidateLongitude decodes a [D]DDMMSS[E|W] token into signed decimal
// degrees, east positive. The absolute value must not exceed 180 degrees.
func ValidateLongitude(s string) (float64, error) {
	m := lonRe.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLongitude, s)
	}
	deg, ok := dmsToDegrees(m[1], m[2], m[3], maxLongitude)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidLongitude, s)
	}
	if m[4] == "W" {
		deg = -deg
	}
	return deg, nil
}

// ValidateRadius decodes a digit run with optional NM suffix into whole
// nautical miles. Signs, decimals, and anything else fail the grammar.
func ValidateRadius(s string) (int, error) {
	m := radiusRe.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidRadius, s)
	}
	rad, err := strconv.Atoi(m[1])
	if err != nil {
		// digit run too long for int
		return 0, fmt.Errorf("%w %q", ErrInvalidRadius, s)
	}
	return rad, nil
}

// dmsToDegrees converts matched degree/minute/second digit groups to
// absolute decimal degrees. Minutes and seconds are range-checked on
// [0, 60]; 60 itself is accepted, a boundary the historical data relies on.
func dmsToDegrees(deg, min, sec string, maxDegrees float64) (float64, bool) {
	d, _ := strconv.Atoi(deg)
	mi, _ := strconv.Atoi(min)
	se, _ := strconv.Atoi(sec)
	if !validateRange(float64(mi), 0, minutesPerDegree) {
		return 0, false
	}
	if !validateRange(float64(se), 0, minutesPerDegree) {
		return 0, false
	}
	abs := float64(d) + float64(mi)/minutesPerDegree + float64(se)/secondsPerDegree
	if !validateRange(abs, 0, maxDegrees) {
		return 0, false
	}
	return abs, true
}

// validateRange reports whether min <= v <= max, inclusive on both ends.
func validateRange(v, min, max float64) bool {
	return v >= min && v <= max
}
