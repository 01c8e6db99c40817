package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// greatCircleNM is the haversine distance between two points in nautical
// miles, used to check the projection round-trips.
func greatCircleNM(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusNM * math.Asin(math.Sqrt(h))
}

func TestCircle_PointCount(t *testing.T) {
	for _, radius := range []float64{0, 1, 87, 400, 5000} {
		points := Circle(39.5, -117.8, radius)
		assert.Len(t, points, 360)
	}
}

func TestCircle_ZeroRadius(t *testing.T) {
	points := Circle(39.5, -117.8, 0)
	require.Len(t, points, 360)
	for _, p := range points {
		assert.InDelta(t, 39.5, p.Lat, 1e-9)
		assert.InDelta(t, -117.8, p.Lon, 1e-9)
	}
}

func TestCircle_DistanceRoundTrip(t *testing.T) {
	// Every boundary point must sit at the requested great-circle distance
	// from the center.
	centers := []Point{
		{Lat: 39.5, Lon: -117.8},
		{Lat: 0, Lon: 0},
		{Lat: -45.25, Lon: 170.9},
		{Lat: 71.0, Lon: -8.0},
	}
	for _, c := range centers {
		points := Circle(c.Lat, c.Lon, 270)
		for b, p := range points {
			d := greatCircleNM(c, p)
			assert.InDelta(t, 270.0, d, 1e-6, "center %+v bearing %d", c, b)
		}
	}
}

func TestCircle_BearingOrientation(t *testing.T) {
	center := Point{Lat: 35.0, Lon: -116.0}
	points := Circle(center.Lat, center.Lon, 60)

	// Bearing 0 heads due north, 90 east, 180 south, 270 west.
	assert.Greater(t, points[0].Lat, center.Lat)
	assert.InDelta(t, center.Lon, points[0].Lon, 1e-9)
	assert.Greater(t, points[90].Lon, center.Lon)
	assert.Less(t, points[180].Lat, center.Lat)
	assert.Less(t, points[270].Lon, center.Lon)

	// 60 NM is one degree of arc; the northern point lands one degree up.
	assert.InDelta(t, center.Lat+1.0, points[0].Lat, 1e-3)
}

func TestCircle_AntimeridianNotWrapped(t *testing.T) {
	// Longitudes are left as atan2 produced them, so a circle straddling the
	// antimeridian runs past 180 instead of jumping to -180.
	points := Circle(0, 179.9, 120)
	var maxLon float64
	for _, p := range points {
		maxLon = math.Max(maxLon, p.Lon)
	}
	assert.Greater(t, maxLon, 180.0)
}
