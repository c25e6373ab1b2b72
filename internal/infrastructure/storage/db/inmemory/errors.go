package inmemory

import "errors"

// Game errors
var (
	// ErrGameNotFound ...
	ErrGameNotFound = errors.New("game not found")
	// ErrGameAlreadyExists ...
	ErrGameAlreadyExists = errors.New("game already exists")
)

// Exchange errors
var (
	// ErrExchangeNotFound ...
	ErrExchangeNotFound = errors.New("exchange not found")
	// ErrExchangeAlreadyExists ...
	ErrExchangeAlreadyExists = errors.New("exchange already exists")
)

// User errors
var (
	// ErrUserNotFound ...
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists ...
	ErrUserAlreadyExists = errors.New("user already exists")
)
