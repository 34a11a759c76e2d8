package go_sball

import (
	"github.com/golang/geo/s1"
)

// Neighbor is a reference point found by a search.
type Neighbor struct {
	// Index is the position of the point in the reference set the tree was built from.
	Index int
	// Point is the reference point as it was passed to New.
	Point Point
	// Distance is the great-circle angle between the reference point and the search point.
	Distance s1.Angle
}

// Meters returns the distance along the Earth's surface.
func (n Neighbor) Meters() float64 {
	return AngleToMeters(n.Distance)
}

// less orders neighbours by distance and then by reference index.
func (n Neighbor) less(other Neighbor) bool {
	if n.Distance != other.Distance {
		return n.Distance < other.Distance
	}
	return n.Index < other.Index
}
