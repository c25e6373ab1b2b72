package inmemory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type exchangeRepositoryImpl struct {
	store *store
}

func newExchangeRepositoryImpl(store *store) domain.ExchangeRepository {
	return &exchangeRepositoryImpl{store}
}

func (r *exchangeRepositoryImpl) AddExchange(
	ctx context.Context, exchange *domain.Exchange,
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	if _, ok := r.store.exchanges[exchange.ID]; ok {
		return ErrExchangeAlreadyExists
	}
	r.store.exchanges[exchange.ID] = *exchange
	return nil
}

func (r *exchangeRepositoryImpl) GetExchange(
	ctx context.Context, exchangeID uuid.UUID,
) (*domain.Exchange, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	exchange, ok := r.store.exchanges[exchangeID]
	if !ok {
		return nil, nil
	}
	return &exchange, nil
}

func (r *exchangeRepositoryImpl) GetExchangesForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Exchange, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	exchanges := make([]*domain.Exchange, 0)
	for _, exchange := range r.store.exchanges {
		if exchange.Proposer == userID || exchange.Recipient == userID {
			e := exchange
			exchanges = append(exchanges, &e)
		}
	}
	return exchanges, nil
}

func (r *exchangeRepositoryImpl) GetAllExchanges(
	ctx context.Context,
) ([]*domain.Exchange, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	exchanges := make([]*domain.Exchange, 0, len(r.store.exchanges))
	for _, exchange := range r.store.exchanges {
		e := exchange
		exchanges = append(exchanges, &e)
	}
	return exchanges, nil
}

func (r *exchangeRepositoryImpl) UpdateExchange(
	ctx context.Context,
	exchangeID uuid.UUID,
	updateFn func(e *domain.Exchange) (*domain.Exchange, error),
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	exchange, ok := r.store.exchanges[exchangeID]
	if !ok {
		return ErrExchangeNotFound
	}

	updated, err := updateFn(&exchange)
	if err != nil {
		return err
	}
	r.store.exchanges[exchangeID] = *updated
	return nil
}
