package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity provisioned by the external identity provider.
// The core only ever reads it as a reference plus a public profile.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login e-mail as given by the identity provider.
	Name      string    // Display name.
	Image     string    // Avatar URL.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfile is the minimal public view of a user attached to reports.
type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image"`
}

// Profile returns the public profile of the user.
func (u *User) Profile() *UserProfile {
	return &UserProfile{ID: u.ID, Name: u.Name, Image: u.Image}
}
