// Package domain models GPS-interference NOTAMs (Notices to Airmen) and the
// geodesy used to draw them.
//
// # Data Source
//
// GPS NOTAMs are published as free text on the FAA PilotWeb notices page.
// The ingest package scrapes candidate records out of that text; users can
// also enter records by hand through the web app. Either way a record
// reaches this package as four untrusted strings: ident, lat, lon, rad.
//
// # Field Formats
//
// Identifier:
//
//	1-20 characters, content unrestricted. Scraped identifiers look like
//	"10/133" (month prefix, serial suffix) or a compressed range such as
//	"10/133-137".
//
// Latitude:
//
//	DDMMSS followed by N or S, e.g. "393835N" = 39°38'35" North.
//	Decimal degrees = DD + MM/60 + SS/3600, negated for S.
//
// Longitude:
//
//	DDMMSS or DDDMMSS followed by E or W, e.g. "1174702W". The third degree
//	digit carries values past 99° up to 180°. Negated for W.
//
// Minutes and seconds are accepted up to and including 60. The inclusive
// boundary is deliberate: historical daily files contain tokens with
// MM or SS == 60, and rejecting them now would drop previously valid data.
//
// Radius:
//
//	A digit run with an optional "NM" unit label, e.g. "400NM" or "400",
//	in whole nautical miles.
//
// # Validation Policy
//
// Records are validated in batch order. Each field validator runs
// independently, so one record can produce several diagnostics; a record is
// accepted only when every field validates. Diagnostics name the record's
// ordinal position ("3rd notam ...") and the raw value that failed.
// Validation never panics on malformed input.
//
// # Circles
//
// The affected area of a NOTAM is approximated by the great-circle of its
// radius around its center, sampled at 360 one-degree bearings on a sphere
// of radius 3440.07 NM. See [Circle].
package domain
