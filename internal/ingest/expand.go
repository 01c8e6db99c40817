package ingest

import (
	"fmt"

	"github.com/gpswatch/notamview/internal/domain"
)

// ExpandGroup turns one advisory group into a raw record plus the list of
// calendar days it is valid on. Mixed identifier prefixes and malformed
// validity windows are fatal to this group and surfaced to the caller;
// neither can be patched up locally.
func ExpandGroup(g Group) (domain.RawRecord, []string, error) {
	ident, err := AbbreviateIdents(g.Idents)
	if err != nil {
		return nil, nil, fmt.Errorf("abbreviate idents: %w", err)
	}

	days, err := DaysFromTimespan(g.Key.Timespan)
	if err != nil {
		return nil, nil, err
	}

	lat, lon := SplitLatLon(g.Key.LatLon)
	rec := domain.RawRecord{
		"ident": ident,
		"lat":   lat,
		"lon":   lon,
		"rad":   g.Key.Radius,
	}
	return rec, days, nil
}
