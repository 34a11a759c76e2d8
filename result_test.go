package go_sball

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Result_Attach(t *testing.T) {
	reference := []Point{{Lon: 0, Lat: 0}, {Lon: 10, Lat: 0}, {Lon: 0, Lat: 10}}
	cloudMask := []uint8{0, 3, 1}
	result, err := Associate(context.Background(), reference, []Point{{Lon: 9, Lat: 1}, {Lon: 1, Lat: 9}, {Lon: 1, Lat: 1}}, WithK(2))
	require.NoError(t, err)

	attached, err := Attach(cloudMask, result)
	require.NoError(t, err)
	assert.Equal(t, []uint8{3, 1, 0}, attached)

	gathered, err := Gather(cloudMask, result)
	require.NoError(t, err)
	require.Len(t, gathered, 3)
	for _, row := range gathered {
		assert.Len(t, row, 2)
	}
	assert.Equal(t, uint8(3), gathered[0][0])
}

func Test_Result_Attach_Error(t *testing.T) {
	result := &Result{Indices: [][]int{{0}, {5}}, References: 2}

	_, err := Attach([]string{"a"}, result)
	assert.EqualError(t, err, "invalid column: column has 1 values but the reference set has 2 points")

	_, err = Attach([]string{"a", "b"}, result)
	assert.EqualError(t, err, "invalid result point 1: neighbor index 5 out of range [0, 2)")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Attach([]string{"a", "b"}, &Result{References: 2})
	assert.EqualError(t, err, "invalid result: result has no neighbors")

	_, err = Attach([]string{"a", "b"}, nil)
	assert.EqualError(t, err, "invalid result: result is nil")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Gather([]string{"a", "b"}, nil)
	assert.EqualError(t, err, "invalid result: result is nil")
}

func Test_Result_Meters(t *testing.T) {
	result := newResult(1, 2, 4, true)
	result.Distances[0] = []float64{0, 1}
	assert.Equal(t, [][]float64{{0, EarthRadiusMeters}}, result.Meters())
	assert.Equal(t, 1, result.Rows())
	assert.Equal(t, 2, result.K())
	assert.Equal(t, 0, (&Result{}).K())
}

func Test_ShapeMismatchError(t *testing.T) {
	var err error = &ShapeMismatchError{Expected: 3, Actual: 2}
	assert.EqualError(t, err, "shape mismatch: expected 3 rows, got 2")
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}
