package domain

// RawRecord is one NOTAM as it arrives from the store, the scraper, or a
// user form: untrusted string fields keyed by name. The required keys are
// listed in RequiredKeys.
type RawRecord map[string]string

// RequiredKeys are the fields every raw record must carry before field
// validation is attempted.
var RequiredKeys = []string{"ident", "lat", "lon", "rad"}

// Notam is a fully validated GPS-interference notice. A Notam only exists
// when all four raw fields passed validation; partial records are never
// admitted.
type Notam struct {
	Ident string  `json:"ident"` // 1-20 characters
	Lat   float64 `json:"lat"`   // decimal degrees, north positive
	Lon   float64 `json:"lon"`   // decimal degrees, east positive
	Rad   int     `json:"rad"`   // nautical miles
}

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LabelPoint places a NOTAM's identifier at its center coordinate.
type LabelPoint struct {
	Ident string  `json:"ident"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// RenderSet is the complete renderable output for one batch of raw records:
// one label point and one boundary circle per accepted record, index-aligned
// and in input order, plus the diagnostics for every rejected record.
type RenderSet struct {
	Points  []LabelPoint
	Circles [][]Point
	Errors  []string
}
