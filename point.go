package go_sball

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Point is a geographic location given as (longitude, latitude) in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// LatLng converts the point into the (latitude, longitude) radian pair used by all distance computations.
// This is the only place where the public (lon, lat) order is swapped.
func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// PointsFromArrays zips parallel longitude and latitude columns into points.
func PointsFromArrays(lons, lats []float64) ([]Point, error) {
	if len(lons) != len(lats) {
		return nil, invalidParam("coordinates", "got %d longitudes and %d latitudes", len(lons), len(lats))
	}
	points := make([]Point, len(lons))
	for i := range lons {
		points[i] = Point{Lon: lons[i], Lat: lats[i]}
	}
	return points, nil
}

// LonConvention describes which longitude range a point set uses.
type LonConvention int

const (
	// LonAmbiguous means all longitudes lie in [0, 180], valid under both conventions.
	LonAmbiguous LonConvention = iota
	// LonSigned means longitudes lie in [-180, 180].
	LonSigned
	// LonUnsigned means longitudes lie in [0, 360].
	LonUnsigned
)

func (c LonConvention) String() string {
	switch c {
	case LonSigned:
		return "[-180, 180]"
	case LonUnsigned:
		return "[0, 360]"
	default:
		return "ambiguous"
	}
}

// compatible reports whether two point sets may be compared under the same call.
func (c LonConvention) compatible(other LonConvention) bool {
	return c == LonAmbiguous || other == LonAmbiguous || c == other
}

// validatePoints checks every coordinate of the set and returns its longitude convention.
func validatePoints(set string, points []Point) ([]s2.LatLng, LonConvention, error) {
	if len(points) == 0 {
		return nil, LonAmbiguous, &InvalidInputError{Set: set, Index: -1, Reason: "point set is empty"}
	}
	firstSigned, firstUnsigned := -1, -1
	latLngs := make([]s2.LatLng, len(points))
	for i, p := range points {
		if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
			return nil, LonAmbiguous, &InvalidInputError{Set: set, Index: i,
				Reason: fmt.Sprintf("non-finite coordinate (lon %f, lat %f)", p.Lon, p.Lat)}
		}
		if p.Lat < -90 || p.Lat > 90 {
			return nil, LonAmbiguous, &InvalidInputError{Set: set, Index: i,
				Reason: fmt.Sprintf("latitude %f must be between -90 and 90", p.Lat)}
		}
		if p.Lon < -180 || p.Lon > 360 {
			return nil, LonAmbiguous, &InvalidInputError{Set: set, Index: i,
				Reason: fmt.Sprintf("longitude %f must be between -180 and 180 or between 0 and 360", p.Lon)}
		}
		switch {
		case p.Lon < 0 && firstSigned < 0:
			firstSigned = i
		case p.Lon > 180 && firstUnsigned < 0:
			firstUnsigned = i
		}
		latLngs[i] = p.LatLng()
	}
	convention := LonAmbiguous
	switch {
	case firstSigned >= 0 && firstUnsigned >= 0:
		return nil, LonAmbiguous, &InvalidInputError{Set: set, Index: max(firstSigned, firstUnsigned),
			Reason: fmt.Sprintf("mixed longitude conventions: point %d is negative and point %d is above 180", firstSigned, firstUnsigned)}
	case firstSigned >= 0:
		convention = LonSigned
	case firstUnsigned >= 0:
		convention = LonUnsigned
	}
	return latLngs, convention, nil
}
