package domain

import "fmt"

// Diagnostic templates. Positions are 1-based ordinals into the original
// input sequence so operators can find the offending record in the file.
const (
	msgMissingKey       = "ERROR: %s notam missing required key %s."
	msgInvalidIdent     = "ERROR: %s notam has invalid ident %s."
	msgInvalidLatitude  = "ERROR: %s notam has invalid latitude %s."
	msgInvalidLongitude = "ERROR: %s notam has invalid longitude %s."
	msgInvalidRadius    = "ERROR: %s notam has invalid radius %s."
)

// ValidateBatch validates raw records in input order and returns the
// accepted NOTAMs plus one diagnostic per failure. A record is accepted only
// when all four fields validate; any failure drops the whole record.
// Malformed input never panics; every exclusion is reported in the error
// list.
func ValidateBatch(raws []RawRecord) ([]Notam, []string) {
	accepted := make([]Notam, 0, len(raws))
	var errs []string
	for i, raw := range raws {
		notam, recErrs := validateRecord(i, raw)
		if len(recErrs) > 0 {
			errs = append(errs, recErrs...)
			continue
		}
		accepted = append(accepted, notam)
	}
	return accepted, errs
}

// validateRecord checks one raw record at zero-based position i. Field
// validators run independently so a record can report several problems at
// once; a missing key reports exactly once and skips that field's validator.
func validateRecord(i int, raw RawRecord) (Notam, []string) {
	pos := Ordinal(i + 1)
	var errs []string

	for _, key := range RequiredKeys {
		if _, ok := raw[key]; !ok {
			errs = append(errs, fmt.Sprintf(msgMissingKey, pos, key))
		}
	}

	var notam Notam
	if v, ok := raw["ident"]; ok {
		ident, err := ValidateIdent(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf(msgInvalidIdent, pos, v))
		}
		notam.Ident = ident
	}
	if v, ok := raw["lat"]; ok {
		lat, err := ValidateLatitude(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf(msgInvalidLatitude, pos, v))
		}
		notam.Lat = lat
	}
	if v, ok := raw["lon"]; ok {
		lon, err := ValidateLongitude(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf(msgInvalidLongitude, pos, v))
		}
		notam.Lon = lon
	}
	if v, ok := raw["rad"]; ok {
		rad, err := ValidateRadius(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf(msgInvalidRadius, pos, v))
		}
		notam.Rad = rad
	}
	return notam, errs
}

// BuildRenderSet validates a batch and computes the renderable output for
// the accepted records: label points and 360-point boundary circles,
// index-aligned, plus all diagnostics. Circles are computed fresh on every
// call and never cached.
func BuildRenderSet(raws []RawRecord) RenderSet {
	accepted, errs := ValidateBatch(raws)
	set := RenderSet{
		Points:  make([]LabelPoint, 0, len(accepted)),
		Circles: make([][]Point, 0, len(accepted)),
		Errors:  errs,
	}
	for _, n := range accepted {
		set.Points = append(set.Points, LabelPoint{Ident: n.Ident, Lat: n.Lat, Lon: n.Lon})
		set.Circles = append(set.Circles, Circle(n.Lat, n.Lon, float64(n.Rad)))
	}
	return set
}
