package domain

import (
	"context"

	"github.com/google/uuid"
)

// ExchangeRepository is the abstraction for any kind of database intended
// to persist Exchanges. Exchanges are never deleted, terminal ones remain
// stored for history.
type ExchangeRepository interface {
	// AddExchange persists a new exchange.
	AddExchange(ctx context.Context, exchange *Exchange) error
	// GetExchange returns the exchange with the given id, or nil if none
	// matches.
	GetExchange(ctx context.Context, exchangeID uuid.UUID) (*Exchange, error)
	// GetExchangesForUser returns all exchanges where the given user is
	// proposer or recipient.
	GetExchangesForUser(ctx context.Context, userID uuid.UUID) ([]*Exchange, error)
	// GetAllExchanges returns all stored exchanges.
	GetAllExchanges(ctx context.Context) ([]*Exchange, error)
	// UpdateExchange allows to commit multiple changes to the same exchange
	// in a transactional way.
	UpdateExchange(
		ctx context.Context,
		exchangeID uuid.UUID,
		updateFn func(e *Exchange) (*Exchange, error),
	) error
}
