package entity

import (
	"fmt"
	"math"

	domainerrors "cafemap/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Bounds is a map viewport given by its north-east and south-west corners.
// Viewports crossing the antimeridian are not supported.
type Bounds struct {
	NorthEast Coordinate
	SouthWest Coordinate
}

// Validate checks that every corner is finite, in range and that the
// rectangle is well ordered (swLat <= neLat, swLng <= neLng).
func (b Bounds) Validate() error {
	corners := []struct {
		name  string
		value float64
		limit float64
	}{
		{"neLat", b.NorthEast.Lat, 90},
		{"neLng", b.NorthEast.Lng, 180},
		{"swLat", b.SouthWest.Lat, 90},
		{"swLng", b.SouthWest.Lng, 180},
	}
	for _, c := range corners {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return domainerrors.ErrInvalidBounds.WithDetails(c.name + " must be a finite number")
		}
		if c.value < -c.limit || c.value > c.limit {
			return domainerrors.ErrInvalidBounds.WithDetails(fmt.Sprintf("%s must be within [-%g, %g]", c.name, c.limit, c.limit))
		}
	}

	if b.SouthWest.Lat > b.NorthEast.Lat {
		return domainerrors.ErrInvalidBounds.WithDetails("swLat must not exceed neLat")
	}
	if b.SouthWest.Lng > b.NorthEast.Lng {
		return domainerrors.ErrInvalidBounds.WithDetails("swLng must not exceed neLng (antimeridian-crossing viewports are not supported)")
	}

	return nil
}

// Bound converts the viewport to an orb.Bound (Min = south-west, Max = north-east).
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.SouthWest.Lng, b.SouthWest.Lat},
		Max: orb.Point{b.NorthEast.Lng, b.NorthEast.Lat},
	}
}

// Contains reports whether the café lies inside the closed rectangle.
func (b Bounds) Contains(c *Cafe) bool {
	return b.Bound().Contains(c.Point())
}

// LatRange returns the latitude interval as decimals for storage queries.
func (b Bounds) LatRange() (lo, hi decimal.Decimal) {
	return decimal.NewFromFloat(b.SouthWest.Lat), decimal.NewFromFloat(b.NorthEast.Lat)
}

// LngRange returns the longitude interval as decimals for storage queries.
func (b Bounds) LngRange() (lo, hi decimal.Decimal) {
	return decimal.NewFromFloat(b.SouthWest.Lng), decimal.NewFromFloat(b.NorthEast.Lng)
}

// ViewportFilter is a conjunctive set of predicates evaluated against a café's
// latest report only.
type ViewportFilter struct {
	Seats bool `json:"seats"` // latest seat status is available
	Quiet bool `json:"quiet"` // latest quietness is quiet
	Wifi  bool `json:"wifi"`  // latest Wi-Fi is fast or normal
	Power bool `json:"power"` // latest report saw power outlets
}

// Active reports whether at least one predicate is switched on.
func (f *ViewportFilter) Active() bool {
	return f != nil && (f.Seats || f.Quiet || f.Wifi || f.Power)
}

// Matches evaluates the filter against a latest report. With any predicate
// active a missing report never matches; an inactive filter matches everything.
func (f *ViewportFilter) Matches(latest *Report) bool {
	if !f.Active() {
		return true
	}
	if latest == nil {
		return false
	}

	if f.Seats && latest.SeatStatus != SeatStatusAvailable {
		return false
	}
	if f.Quiet && latest.Quietness != QuietnessQuiet {
		return false
	}
	if f.Wifi && !latest.Wifi.IsUsable() {
		return false
	}
	if f.Power && !latest.PowerOutlets {
		return false
	}

	return true
}
