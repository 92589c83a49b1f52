package repository

import (
	"context"

	"cafemap/internal/domain/entity"
	"cafemap/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads and provisions identities mirrored from the identity provider.
type UserRepository interface {
	// FindUserByID retrieves a user by id. Returns ErrUserNotFound if absent.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpsertUser inserts the user or refreshes its name and avatar.
	UpsertUser(ctx context.Context, user *entity.User) error
}
