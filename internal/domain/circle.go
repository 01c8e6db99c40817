package domain

import "math"

// earthRadiusNM is the Earth's mean radius in nautical miles, matching the
// spherical model the circle projection assumes.
const earthRadiusNM = 3440.07

// circlePoints is the number of boundary samples per circle, one per whole
// bearing degree.
const circlePoints = 360

// Circle returns the boundary of a great-circle of radius radiusNM nautical
// miles around the given center, sampled at every integer bearing from 0 to
// 359 degrees. The Earth is modeled as a sphere.
//
// Longitudes are whatever atan2 yields: near the antimeridian they may fall
// outside ±180 and are not wrapped. A zero radius produces 360 copies of the
// center (up to floating-point noise).
func Circle(lat, lon, radiusNM float64) []Point {
	lat1 := lat * math.Pi / 180.0
	lon1 := lon * math.Pi / 180.0
	angular := radiusNM / earthRadiusNM

	points := make([]Point, circlePoints)
	for b := 0; b < circlePoints; b++ {
		bearing := (float64(b) / 90.0) * (math.Pi / 2.0)

		lat2 := math.Asin(
			math.Sin(lat1)*math.Cos(angular) +
				math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))

		lon2 := lon1 + math.Atan2(
			math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
			math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

		points[b] = Point{
			Lat: lat2 * 180.0 / math.Pi,
			Lon: lon2 * 180.0 / math.Pi,
		}
	}
	return points
}
