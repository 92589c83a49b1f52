package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// Cafe is a place of interest on the map. Cafés are provisioned by the
// seeding process and never deleted by the core.
type Cafe struct {
	ID        uuid.UUID       // Stable identifier.
	Name      string          // Display name.
	Address   string          // Free-text postal address.
	Latitude  decimal.Decimal // Fixed-precision latitude, scale 7 in storage.
	Longitude decimal.Decimal // Fixed-precision longitude, scale 7 in storage.
	PlaceID   *string         // Optional external place identifier, unique when present.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Point returns the café location as an orb point (lng, lat).
func (c *Cafe) Point() orb.Point {
	return orb.Point{c.Longitude.InexactFloat64(), c.Latitude.InexactFloat64()}
}

// CafeWithLatest pairs a café with its single most recent report, if any.
type CafeWithLatest struct {
	Cafe         *Cafe
	LatestReport *Report // nil when the café has no reports.
}

// CafeDetail is a café plus its newest reports, newest first.
type CafeDetail struct {
	Cafe    *Cafe
	Reports []*Report
}
