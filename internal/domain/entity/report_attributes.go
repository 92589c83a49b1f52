// Package entity contains the core business objects of the project.
package entity

// SeatStatus is how easy it was to find a seat at the time of the report.
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusCrowded   SeatStatus = "crowded"
	SeatStatusFull      SeatStatus = "full"
)

// String returns the string representation of the SeatStatus.
func (s SeatStatus) String() string {
	return string(s)
}

// IsValid checks if the SeatStatus is a valid value.
func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatStatusAvailable, SeatStatusCrowded, SeatStatusFull:
		return true
	default:
		return false
	}
}

// Quietness is the observed noise level.
type Quietness string

const (
	QuietnessQuiet  Quietness = "quiet"
	QuietnessNormal Quietness = "normal"
	QuietnessNoisy  Quietness = "noisy"
)

// String returns the string representation of the Quietness.
func (q Quietness) String() string {
	return string(q)
}

// IsValid checks if the Quietness is a valid value.
func (q Quietness) IsValid() bool {
	switch q {
	case QuietnessQuiet, QuietnessNormal, QuietnessNoisy:
		return true
	default:
		return false
	}
}

// WifiSpeed is the observed Wi-Fi quality; WifiNone means no network offered.
type WifiSpeed string

const (
	WifiFast   WifiSpeed = "fast"
	WifiNormal WifiSpeed = "normal"
	WifiSlow   WifiSpeed = "slow"
	WifiNone   WifiSpeed = "none"
)

// String returns the string representation of the WifiSpeed.
func (w WifiSpeed) String() string {
	return string(w)
}

// IsValid checks if the WifiSpeed is a valid value.
func (w WifiSpeed) IsValid() bool {
	switch w {
	case WifiFast, WifiNormal, WifiSlow, WifiNone:
		return true
	default:
		return false
	}
}

// IsUsable reports whether the connection is good enough to work on.
func (w WifiSpeed) IsUsable() bool {
	return w == WifiFast || w == WifiNormal
}
