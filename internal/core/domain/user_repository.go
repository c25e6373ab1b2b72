package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository is the abstraction for any kind of database intended to
// persist Users.
type UserRepository interface {
	// AddUser persists a new user. The email must be unique across the
	// whole repository.
	AddUser(ctx context.Context, user *User) error
	// GetUser returns the user with the given id, or nil if none matches.
	GetUser(ctx context.Context, userID uuid.UUID) (*User, error)
	// GetUserByEmail returns the user registered with the given email, or
	// nil if none matches.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// UpdateUser allows to commit multiple changes to the same user in a
	// transactional way.
	UpdateUser(
		ctx context.Context,
		userID uuid.UUID,
		updateFn func(u *User) (*User, error),
	) error
}
