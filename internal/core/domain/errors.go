package domain

import "errors"

// Exchange errors
var (
	// ErrExchangeSameUser is thrown when proposer and recipient are the same user.
	ErrExchangeSameUser = errors.New("proposer and recipient must be distinct users")
	// ErrExchangeNotRecipient is thrown when someone other than the recipient
	// attempts to resolve an exchange.
	ErrExchangeNotRecipient = errors.New("only the exchange recipient can perform this operation")
	// ErrExchangeMustBePending is thrown when accepting or rejecting an
	// exchange that already left the Pending status.
	ErrExchangeMustBePending = errors.New("exchange must be in pending status")
	// ErrExchangeNotCounterable is thrown when countering an exchange that is
	// not pending or already has a counter-proposal.
	ErrExchangeNotCounterable = errors.New("exchange cannot be counter-proposed")
	// ErrExchangeIdenticalCounter is thrown when a counter-proposal is the
	// exact reverse of its parent exchange.
	ErrExchangeIdenticalCounter = errors.New("counter-proposal is identical to the original exchange")
	// ErrExchangeAlreadyResolved is thrown when resolving an exchange that
	// already reached a terminal status.
	ErrExchangeAlreadyResolved = errors.New("exchange is already resolved")
)

// Game errors
var (
	// ErrGameNotOwned is thrown when a game does not belong to the stated owner.
	ErrGameNotOwned = errors.New("game is not owned by the stated user")
	// ErrGameNotAvailable is thrown when reserving a game that is not available.
	ErrGameNotAvailable = errors.New("game is not available for exchange")
	// ErrGameLocked is thrown when removing a game involved in an unresolved
	// exchange or already traded away.
	ErrGameLocked = errors.New("game is reserved or traded and cannot be removed")
	// ErrGameMissingTitle ...
	ErrGameMissingTitle = errors.New("game title must not be empty")
)

// User errors
var (
	// ErrUserMissingName ...
	ErrUserMissingName = errors.New("user name must not be empty")
	// ErrUserMissingEmail ...
	ErrUserMissingEmail = errors.New("user email must not be empty")
)
