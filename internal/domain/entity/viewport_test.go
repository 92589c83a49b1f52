package entity

import (
	"math"
	"testing"

	domainerrors "cafemap/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyoBounds = Bounds{
	NorthEast: Coordinate{Lat: 35.69, Lng: 139.78},
	SouthWest: Coordinate{Lat: 35.67, Lng: 139.75},
}

func cafeAt(lat, lng string) *Cafe {
	return &Cafe{
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lng),
	}
}

func TestBounds_Validate(t *testing.T) {
	require.NoError(t, tokyoBounds.Validate())

	tests := []struct {
		name   string
		bounds Bounds
	}{
		{name: "NaN corner", bounds: Bounds{NorthEast: Coordinate{Lat: math.NaN(), Lng: 1}, SouthWest: Coordinate{Lat: 0, Lng: 0}}},
		{name: "infinite corner", bounds: Bounds{NorthEast: Coordinate{Lat: 1, Lng: math.Inf(1)}, SouthWest: Coordinate{Lat: 0, Lng: 0}}},
		{name: "latitude out of range", bounds: Bounds{NorthEast: Coordinate{Lat: 91, Lng: 1}, SouthWest: Coordinate{Lat: 0, Lng: 0}}},
		{name: "longitude out of range", bounds: Bounds{NorthEast: Coordinate{Lat: 1, Lng: 1}, SouthWest: Coordinate{Lat: 0, Lng: -181}}},
		{name: "inverted latitude", bounds: Bounds{NorthEast: Coordinate{Lat: 35.67, Lng: 139.78}, SouthWest: Coordinate{Lat: 35.69, Lng: 139.75}}},
		{name: "antimeridian wrap", bounds: Bounds{NorthEast: Coordinate{Lat: 10, Lng: -170}, SouthWest: Coordinate{Lat: 0, Lng: 170}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBounds_ContainsClosedInterval(t *testing.T) {
	assert.True(t, tokyoBounds.Contains(cafeAt("35.6812", "139.7671")))

	// Corners and edges are inside.
	assert.True(t, tokyoBounds.Contains(cafeAt("35.69", "139.78")))
	assert.True(t, tokyoBounds.Contains(cafeAt("35.6700000", "139.7500000")))
	assert.True(t, tokyoBounds.Contains(cafeAt("35.6900000", "139.7600000")))

	// One unit of the stored scale past an edge is outside.
	assert.False(t, tokyoBounds.Contains(cafeAt("35.6900001", "139.76")))
	assert.False(t, tokyoBounds.Contains(cafeAt("35.6699999", "139.76")))
	assert.False(t, tokyoBounds.Contains(cafeAt("35.68", "139.7800001")))
	assert.False(t, tokyoBounds.Contains(cafeAt("35.68", "139.7499999")))
}

func TestBounds_DecimalRanges(t *testing.T) {
	latLo, latHi := tokyoBounds.LatRange()
	lngLo, lngHi := tokyoBounds.LngRange()

	assert.Equal(t, "35.67", latLo.String())
	assert.Equal(t, "35.69", latHi.String())
	assert.Equal(t, "139.75", lngLo.String())
	assert.Equal(t, "139.78", lngHi.String())
}

func TestViewportFilter_Matches(t *testing.T) {
	good := &Report{SeatStatus: SeatStatusAvailable, Quietness: QuietnessQuiet, Wifi: WifiFast, PowerOutlets: true}
	full := &Report{SeatStatus: SeatStatusFull, Quietness: QuietnessNoisy, Wifi: WifiNone, PowerOutlets: false}
	normalWifi := &Report{SeatStatus: SeatStatusCrowded, Quietness: QuietnessNormal, Wifi: WifiNormal, PowerOutlets: false}
	slowWifi := &Report{SeatStatus: SeatStatusAvailable, Quietness: QuietnessQuiet, Wifi: WifiSlow, PowerOutlets: true}

	var nilFilter *ViewportFilter
	assert.True(t, nilFilter.Matches(nil))
	assert.True(t, (&ViewportFilter{}).Matches(nil))
	assert.True(t, (&ViewportFilter{}).Matches(full))

	// Any active flag drops cafés without a report.
	assert.False(t, (&ViewportFilter{Power: true}).Matches(nil))

	assert.True(t, (&ViewportFilter{Seats: true}).Matches(good))
	assert.False(t, (&ViewportFilter{Seats: true}).Matches(full))

	assert.True(t, (&ViewportFilter{Quiet: true}).Matches(good))
	assert.False(t, (&ViewportFilter{Quiet: true}).Matches(normalWifi))

	assert.True(t, (&ViewportFilter{Wifi: true}).Matches(good))
	assert.True(t, (&ViewportFilter{Wifi: true}).Matches(normalWifi))
	assert.False(t, (&ViewportFilter{Wifi: true}).Matches(slowWifi))
	assert.False(t, (&ViewportFilter{Wifi: true}).Matches(full))

	assert.True(t, (&ViewportFilter{Power: true}).Matches(good))
	assert.False(t, (&ViewportFilter{Power: true}).Matches(normalWifi))

	all := &ViewportFilter{Seats: true, Quiet: true, Wifi: true, Power: true}
	assert.True(t, all.Matches(good))
	assert.False(t, all.Matches(slowWifi))
}
