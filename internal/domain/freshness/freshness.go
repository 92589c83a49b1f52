// Package freshness classifies how recent a report is.
//
// The classification is a pure function of the report timestamp and an
// evaluation instant supplied by the caller; nothing in this package reads
// the wall clock.
package freshness

import (
	"fmt"
	"time"
)

const (
	// FreshWindow is the inclusive upper bound of the Fresh tier.
	FreshWindow = 3 * time.Hour
	// StaleWindow is the inclusive upper bound of the Stale tier.
	StaleWindow = 24 * time.Hour
)

// Tier is an ordinal freshness level: Fresh < Stale < Expired.
type Tier int

const (
	Fresh Tier = iota
	Stale
	Expired
)

// Classify maps a report timestamp to a tier. A nil timestamp means the café
// has no report and is Expired. Timestamps in the future (clock skew) count
// as Fresh.
func Classify(createdAt *time.Time, now time.Time) Tier {
	if createdAt == nil {
		return Expired
	}

	age := now.Sub(*createdAt)
	switch {
	case age <= FreshWindow:
		return Fresh
	case age <= StaleWindow:
		return Stale
	default:
		return Expired
	}
}

// String returns the wire name of the tier.
func (t Tier) String() string {
	switch t {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	case Expired:
		return "expired"
	}

	panic(invariantViolation(t))
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Label returns the Japanese display label for the tier.
func (t Tier) Label() string {
	switch t {
	case Fresh:
		return "最新の情報"
	case Stale:
		return "少し前の情報"
	case Expired:
		return "古い情報"
	}

	panic(invariantViolation(t))
}

// MarkerColor returns the hex color used for map markers of this tier.
func (t Tier) MarkerColor() string {
	switch t {
	case Fresh:
		return "#10B981"
	case Stale:
		return "#F59E0B"
	case Expired:
		return "#9CA3AF"
	}

	panic(invariantViolation(t))
}

func invariantViolation(t Tier) string {
	return fmt.Sprintf("freshness: invariant violated, unknown tier %d", int(t))
}

// RelativeLabel renders the age of a report, e.g. "15分前の情報".
func RelativeLabel(createdAt time.Time, now time.Time) string {
	minutes := int(now.Sub(createdAt) / time.Minute)
	if minutes < 1 {
		return "たった今"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d分前の情報", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d時間前の情報", hours)
	}

	return fmt.Sprintf("%d日前の古い情報です", hours/24)
}

// Info is the presentation bundle for one report timestamp.
type Info struct {
	Tier          Tier   `json:"tier"`
	Label         string `json:"label"`
	MarkerColor   string `json:"markerColor"`
	RelativeLabel string `json:"relativeLabel,omitempty"`
}

// Describe classifies createdAt and fills in every presentation hint.
func Describe(createdAt *time.Time, now time.Time) Info {
	tier := Classify(createdAt, now)
	info := Info{
		Tier:        tier,
		Label:       tier.Label(),
		MarkerColor: tier.MarkerColor(),
	}
	if createdAt != nil {
		info.RelativeLabel = RelativeLabel(*createdAt, now)
	}

	return info
}
