package go_sball

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used to turn angles into distances.
const EarthRadiusMeters = 6_371_000.0

// Haversine returns the great-circle angle between two points.
func Haversine(a, b Point) s1.Angle {
	return HaversineLatLng(a.LatLng(), b.LatLng())
}

// HaversineLatLng returns the great-circle angle between two latitude/longitude pairs on the unit sphere.
func HaversineLatLng(a, b s2.LatLng) s1.Angle {
	lat1, lat2 := a.Lat.Radians(), b.Lat.Radians()
	dlat := math.Sin(0.5 * (lat2 - lat1))
	dlng := math.Sin(0.5 * (b.Lng.Radians() - a.Lng.Radians()))
	h := dlat*dlat + math.Cos(lat1)*math.Cos(lat2)*dlng*dlng
	return s1.Angle(2 * math.Asin(math.Min(1, math.Sqrt(h))))
}

// AngleToMeters converts a great-circle angle into metres along the Earth's surface.
func AngleToMeters(a s1.Angle) float64 {
	return a.Radians() * EarthRadiusMeters
}

// MetersToAngle converts a surface distance in metres into a great-circle angle.
func MetersToAngle(m float64) s1.Angle {
	return s1.Angle(m / EarthRadiusMeters)
}
