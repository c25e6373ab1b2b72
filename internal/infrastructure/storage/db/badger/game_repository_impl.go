package dbbadger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type gameRepositoryImpl struct {
	store *badgerhold.Store
}

// NewGameRepositoryImpl initializes a badger implementation of the
// domain.GameRepository
func NewGameRepositoryImpl(store *badgerhold.Store) domain.GameRepository {
	return gameRepositoryImpl{store}
}

func (r gameRepositoryImpl) AddGame(
	ctx context.Context, game *domain.Game,
) error {
	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxInsert(tx, game.ID, game)
	}
	return r.store.Insert(game.ID, game)
}

func (r gameRepositoryImpl) GetGame(
	ctx context.Context, gameID uuid.UUID,
) (*domain.Game, error) {
	var game domain.Game
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, gameID, &game)
	} else {
		err = r.store.Get(gameID, &game)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (r gameRepositoryImpl) GetGamesForOwner(
	ctx context.Context, ownerID uuid.UUID,
) ([]*domain.Game, error) {
	query := badgerhold.Where("OwnerID").Eq(ownerID)
	return r.findGames(ctx, query)
}

func (r gameRepositoryImpl) SearchGames(
	ctx context.Context, title, genre string, onlyAvailable bool,
) ([]*domain.Game, error) {
	games, err := r.findGames(ctx, nil)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.Game, 0, len(games))
	for _, game := range games {
		if onlyAvailable && !game.IsAvailable() {
			continue
		}
		if title != "" &&
			!strings.Contains(strings.ToLower(game.Title), strings.ToLower(title)) {
			continue
		}
		if genre != "" && !strings.EqualFold(game.Genre, genre) {
			continue
		}
		matches = append(matches, game)
	}
	return matches, nil
}

func (r gameRepositoryImpl) UpdateGame(
	ctx context.Context,
	gameID uuid.UUID,
	updateFn func(g *domain.Game) (*domain.Game, error),
) error {
	currentGame, err := r.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if currentGame == nil {
		return ErrGameNotFound
	}

	updatedGame, err := updateFn(currentGame)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, gameID, *updatedGame)
	}
	return r.store.Update(gameID, *updatedGame)
}

func (r gameRepositoryImpl) DeleteGame(
	ctx context.Context, gameID uuid.UUID,
) error {
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxDelete(tx, gameID, domain.Game{})
	} else {
		err = r.store.Delete(gameID, domain.Game{})
	}
	if err == badgerhold.ErrNotFound {
		return ErrGameNotFound
	}
	return err
}

func (r gameRepositoryImpl) findGames(
	ctx context.Context, query *badgerhold.Query,
) ([]*domain.Game, error) {
	var games []domain.Game
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxFind(tx, &games, query)
	} else {
		err = r.store.Find(&games, query)
	}
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Game, 0, len(games))
	for i := range games {
		list = append(list, &games[i])
	}
	return list, nil
}
