package dbbadger

import (
	"context"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type exchangeRepositoryImpl struct {
	store *badgerhold.Store
}

// NewExchangeRepositoryImpl initializes a badger implementation of the
// domain.ExchangeRepository
func NewExchangeRepositoryImpl(store *badgerhold.Store) domain.ExchangeRepository {
	return exchangeRepositoryImpl{store}
}

func (r exchangeRepositoryImpl) AddExchange(
	ctx context.Context, exchange *domain.Exchange,
) error {
	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxInsert(tx, exchange.ID, exchange)
	}
	return r.store.Insert(exchange.ID, exchange)
}

func (r exchangeRepositoryImpl) GetExchange(
	ctx context.Context, exchangeID uuid.UUID,
) (*domain.Exchange, error) {
	var exchange domain.Exchange
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, exchangeID, &exchange)
	} else {
		err = r.store.Get(exchangeID, &exchange)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &exchange, nil
}

func (r exchangeRepositoryImpl) GetExchangesForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Exchange, error) {
	query := badgerhold.Where("Proposer").Eq(userID).
		Or(badgerhold.Where("Recipient").Eq(userID))
	return r.findExchanges(ctx, query)
}

func (r exchangeRepositoryImpl) GetAllExchanges(
	ctx context.Context,
) ([]*domain.Exchange, error) {
	return r.findExchanges(ctx, nil)
}

func (r exchangeRepositoryImpl) UpdateExchange(
	ctx context.Context,
	exchangeID uuid.UUID,
	updateFn func(e *domain.Exchange) (*domain.Exchange, error),
) error {
	currentExchange, err := r.GetExchange(ctx, exchangeID)
	if err != nil {
		return err
	}
	if currentExchange == nil {
		return ErrExchangeNotFound
	}

	updatedExchange, err := updateFn(currentExchange)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, exchangeID, *updatedExchange)
	}
	return r.store.Update(exchangeID, *updatedExchange)
}

func (r exchangeRepositoryImpl) findExchanges(
	ctx context.Context, query *badgerhold.Query,
) ([]*domain.Exchange, error) {
	var exchanges []domain.Exchange
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxFind(tx, &exchanges, query)
	} else {
		err = r.store.Find(&exchanges, query)
	}
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Exchange, 0, len(exchanges))
	for i := range exchanges {
		list = append(list, &exchanges[i])
	}
	return list, nil
}
