package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// identRe pulls the bolded NOTAM identifier out of a "!GPS" notice line,
	// e.g. `!GPS <b>10/155</b>` -> "10/155".
	identRe = regexp.MustCompile(`!GPS <b>([0-9/].*)</b>`)

	// latLonRe matches the combined position token, e.g. "352119N1163405W".
	latLonRe = regexp.MustCompile(`[0-9]{6}[NS][0-9]{6,7}[EW]`)

	// radiusRe matches each radius mention, e.g. "270NM" or "87 NM". A line
	// can state several radii for different flight levels; the largest wins.
	radiusRe = regexp.MustCompile(`([0-9]{1,4}) ?NM`)

	// timespanRe matches the validity window, e.g. "1810271830-1810272030".
	timespanRe = regexp.MustCompile(`([0-9]{10})-([0-9]{10})`)
)

// Key identifies one physical advisory. Several notice lines that agree on
// radius, position, and validity window describe the same advisory under
// different identifiers and collapse into one group.
type Key struct {
	Radius   string // largest radius on the line, with NM suffix
	LatLon   string // first position token on the line
	Timespan string // first validity window on the line
}

// Group collects every identifier seen for one Key, in scan order.
type Group struct {
	Key    Key
	Idents []string
}

// ParseLine extracts an advisory key and identifier from one notice line.
// Returns ok=false for lines that are not GPS-denial advisories; service
// outage notices, for instance, carry an ident but no radius or position.
func ParseLine(line string) (Key, string, bool) {
	im := identRe.FindStringSubmatch(line)
	if im == nil {
		return Key{}, "", false
	}
	ident := im[1]

	maxRadius := -1
	for _, m := range radiusRe.FindAllStringSubmatch(line, -1) {
		r, err := strconv.Atoi(m[1])
		if err == nil && r > maxRadius {
			maxRadius = r
		}
	}
	if maxRadius < 0 {
		return Key{}, "", false
	}

	latLon := latLonRe.FindString(line)
	if latLon == "" {
		return Key{}, "", false
	}

	timespan := timespanRe.FindString(line)
	if timespan == "" {
		return Key{}, "", false
	}

	key := Key{
		Radius:   strconv.Itoa(maxRadius) + "NM",
		LatLon:   latLon,
		Timespan: timespan,
	}
	return key, ident, true
}

// GroupLines scans notice lines and groups identifiers by advisory key,
// preserving first-seen order. Lines without "!GPS" or without a complete
// advisory are skipped.
func GroupLines(lines []string) []Group {
	var groups []Group
	index := make(map[Key]int)
	for _, line := range lines {
		if !strings.Contains(line, "!GPS") {
			continue
		}
		key, ident, ok := ParseLine(line)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Idents = append(groups[i].Idents, ident)
	}
	return groups
}

// SplitLatLon splits a combined position token at the fixed latitude width:
// "325413N1135609W" -> ("325413N", "1135609W").
func SplitLatLon(latLon string) (lat, lon string) {
	if len(latLon) < 7 {
		return latLon, ""
	}
	return latLon[:7], latLon[7:]
}
