package go_sball

import (
	"fmt"
)

// Result holds the neighbours of every query point.
// Row i belongs to query point i and lists k reference indices sorted by ascending distance.
type Result struct {
	Indices [][]int
	// Distances holds great-circle angles in radians, or nil when distances were not requested.
	Distances [][]float64
	// References is the size of the reference set the indices point into.
	References int
}

func newResult(rows, k, references int, withDistances bool) *Result {
	r := &Result{
		Indices:    make([][]int, rows),
		References: references,
	}
	for i := range r.Indices {
		r.Indices[i] = make([]int, k)
	}
	if withDistances {
		r.Distances = make([][]float64, rows)
		for i := range r.Distances {
			r.Distances[i] = make([]float64, k)
		}
	}
	return r
}

// Rows returns the number of query points.
func (r *Result) Rows() int {
	return len(r.Indices)
}

// K returns the number of neighbours per query point.
func (r *Result) K() int {
	if len(r.Indices) == 0 {
		return 0
	}
	return len(r.Indices[0])
}

// Meters returns the distances converted to metres, or nil when distances were not requested.
func (r *Result) Meters() [][]float64 {
	if r.Distances == nil {
		return nil
	}
	meters := make([][]float64, len(r.Distances))
	for i, row := range r.Distances {
		meters[i] = make([]float64, len(row))
		for j, d := range row {
			meters[i][j] = d * EarthRadiusMeters
		}
	}
	return meters
}

// Gather looks up the column value of every neighbour, keeping the shape of the result.
// column holds one value per reference point, for example a flattened cloud mask.
func Gather[T any](column []T, r *Result) ([][]T, error) {
	if r == nil {
		return nil, invalidParam("result", "result is nil")
	}
	if len(column) != r.References {
		return nil, invalidParam("column", "column has %d values but the reference set has %d points", len(column), r.References)
	}
	values := make([][]T, len(r.Indices))
	for i, row := range r.Indices {
		values[i] = make([]T, len(row))
		for j, idx := range row {
			if idx < 0 || idx >= len(column) {
				return nil, &InvalidInputError{Set: "result", Index: i,
					Reason: fmt.Sprintf("neighbor index %d out of range [0, %d)", idx, len(column))}
			}
			values[i][j] = column[idx]
		}
	}
	return values, nil
}

// Attach returns the column value of the nearest neighbour of every query point.
func Attach[T any](column []T, r *Result) ([]T, error) {
	if r == nil {
		return nil, invalidParam("result", "result is nil")
	}
	if r.K() == 0 {
		return nil, invalidParam("result", "result has no neighbors")
	}
	values, err := Gather(column, r)
	if err != nil {
		return nil, err
	}
	attached := make([]T, len(values))
	for i, row := range values {
		attached[i] = row[0]
	}
	return attached, nil
}
