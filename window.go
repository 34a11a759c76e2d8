package go_sball

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// DeltaLat returns the latitude span in degrees of meters along a meridian.
func DeltaLat(meters float64) float64 {
	return 180 * meters / (math.Pi * EarthRadiusMeters)
}

// DeltaLon returns the longitude span in degrees of meters along the parallel at lat.
func DeltaLon(lat, meters float64) float64 {
	return 180 * meters / (math.Pi * EarthRadiusMeters * math.Cos(lat*math.Pi/180))
}

// Window returns the latitude/longitude rectangle reaching meters north, south, east and west of center.
func Window(center Point, meters float64) s2.Rect {
	dLat := DeltaLat(meters)
	dLon := DeltaLon(center.Lat, meters)
	if math.IsInf(dLon, 0) || math.IsNaN(dLon) || dLon >= 180 {
		dLon = 180
	}
	size := s2.LatLng{Lat: s1.Angle(2*dLat) * s1.Degree, Lng: s1.Angle(2*dLon) * s1.Degree}
	return s2.RectFromCenterSize(center.LatLng().Normalized(), size)
}

// Within returns the indices of the points strictly inside rect.
func Within(points []Point, rect s2.Rect) []int {
	var inside []int
	for i, p := range points {
		ll := p.LatLng().Normalized()
		if rect.Lat.InteriorContains(ll.Lat.Radians()) && rect.Lng.InteriorContains(ll.Lng.Radians()) {
			inside = append(inside, i)
		}
	}
	return inside
}
