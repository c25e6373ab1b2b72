package application

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound ...
	ErrUserNotFound = errors.New("user not found")
	// ErrGameNotFound ...
	ErrGameNotFound = errors.New("game not found")
	// ErrExchangeNotFound ...
	ErrExchangeNotFound = errors.New("exchange not found")
	// ErrEmailAlreadyRegistered ...
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	// ErrInvalidCredentials ...
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// PersistenceError wraps any failure coming from the storage layer. The
// transition that hit it has been rolled back entirely, the caller observes
// exchanges and games unchanged.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %s", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(err error) error {
	return &PersistenceError{Err: err}
}
