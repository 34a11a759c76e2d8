package go_sball

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Point_LatLng_Order(t *testing.T) {
	ll := Point{Lon: 30, Lat: -45}.LatLng()
	assert.InDelta(t, -45, ll.Lat.Degrees(), 1e-12)
	assert.InDelta(t, 30, ll.Lng.Degrees(), 1e-12)
}

func Test_PointsFromArrays(t *testing.T) {
	points, err := PointsFromArrays([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []Point{{Lon: 1, Lat: 3}, {Lon: 2, Lat: 4}}, points)

	points, err = PointsFromArrays([]float64{1, 2}, []float64{3})
	assert.EqualError(t, err, "invalid coordinates: got 2 longitudes and 1 latitudes")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, points)
}

func Test_ValidatePoints(t *testing.T) {
	tests := []struct {
		name       string
		points     []Point
		convention LonConvention
		err        string
	}{
		{name: "ambiguous", points: []Point{{Lon: 0, Lat: 0}, {Lon: 180, Lat: 90}}, convention: LonAmbiguous},
		{name: "signed", points: []Point{{Lon: -180, Lat: -90}, {Lon: 10, Lat: 0}}, convention: LonSigned},
		{name: "unsigned", points: []Point{{Lon: 360, Lat: 0}, {Lon: 10, Lat: 0}}, convention: LonUnsigned},
		{name: "nan", points: []Point{{Lon: math.NaN(), Lat: 0}}, err: "invalid test point 0: non-finite coordinate (lon NaN, lat 0.000000)"},
		{name: "inf", points: []Point{{Lon: 0, Lat: 0}, {Lon: 0, Lat: math.Inf(1)}}, err: "invalid test point 1: non-finite coordinate (lon 0.000000, lat +Inf)"},
		{name: "latitude", points: []Point{{Lon: 0, Lat: 90.5}}, err: "invalid test point 0: latitude 90.500000 must be between -90 and 90"},
		{name: "longitude", points: []Point{{Lon: 361, Lat: 0}}, err: "invalid test point 0: longitude 361.000000 must be between -180 and 180 or between 0 and 360"},
		{name: "mixed", points: []Point{{Lon: 200, Lat: 0}, {Lon: 0, Lat: 0}, {Lon: -1, Lat: 0}}, err: "invalid test point 2: mixed longitude conventions: point 2 is negative and point 0 is above 180"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latLngs, convention, err := validatePoints("test", tt.points)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, latLngs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.convention, convention)
			assert.Len(t, latLngs, len(tt.points))
		})
	}
}

func Test_LonConvention_Compatible(t *testing.T) {
	assert.True(t, LonAmbiguous.compatible(LonSigned))
	assert.True(t, LonUnsigned.compatible(LonAmbiguous))
	assert.True(t, LonSigned.compatible(LonSigned))
	assert.False(t, LonSigned.compatible(LonUnsigned))
	assert.False(t, LonUnsigned.compatible(LonSigned))
}
