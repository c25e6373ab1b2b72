package dbbadger

import "errors"

var (
	// ErrGameNotFound ...
	ErrGameNotFound = errors.New("game not found")
	// ErrExchangeNotFound ...
	ErrExchangeNotFound = errors.New("exchange not found")
	// ErrUserNotFound ...
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists ...
	ErrUserAlreadyExists = errors.New("user already exists")
)
