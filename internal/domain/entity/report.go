package entity

import (
	"bytes"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// CommentMaxLength is the upper bound of a report comment, counted in characters.
const CommentMaxLength = 50

// Report is one user's point-in-time observation of a café.
// Reports are append-only: created once, never edited.
type Report struct {
	ID           uuid.UUID    // Server-assigned identifier.
	CafeID       uuid.UUID    // The café the report is about.
	UserID       uuid.UUID    // The submitting user.
	SeatStatus   SeatStatus   // Seat availability.
	Quietness    Quietness    // Noise level.
	Wifi         WifiSpeed    // Wi-Fi quality.
	PowerOutlets bool         // Whether power outlets were available.
	Comment      *string      // Optional free text, at most CommentMaxLength characters.
	CreatedAt    time.Time    // Set by the store at write time.
	UpdatedAt    time.Time    // Equal to CreatedAt; reports are immutable.
	Author       *UserProfile // Submitter's public profile; populated on history reads only.
}

// CommentLength returns the comment length in characters (0 when absent).
func CommentLength(comment *string) int {
	if comment == nil {
		return 0
	}

	return utf8.RuneCountInString(*comment)
}

// NewerThan orders reports by creation time, breaking ties by the larger id.
// It is the single definition of "latest" shared by every store.
func (r *Report) NewerThan(other *Report) bool {
	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.After(other.CreatedAt)
	}

	return bytes.Compare(r.ID[:], other.ID[:]) > 0
}
