package domain

import (
	"github.com/google/uuid"
)

// User is the data structure representing a registered user. Name and email
// are fixed at registration, only the password hash can change afterwards.
// The hash is omitted from public lookups.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash []byte
}

// NewUser returns a new user with the given profile data and an already
// hashed credential.
func NewUser(name, email string, passwordHash []byte) (*User, error) {
	if name == "" {
		return nil, ErrUserMissingName
	}
	if email == "" {
		return nil, ErrUserMissingEmail
	}
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}
