package service

import (
	"time"

	"cafemap/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that cannot be trusted.
var ErrInvalidToken = errors.New("invalid access token")

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID    uuid.UUID
	Issuer    string
	ExpiresAt time.Time
}

// TokenService verifies access tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken verifies signature, expiry and issuer and returns the
	// identity, or an error wrapping ErrInvalidToken.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateAccessToken signs a token for userID valid for ttl. Used by the
	// seeding CLI for demo sessions.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)
}
