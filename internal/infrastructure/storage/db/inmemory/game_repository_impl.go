package inmemory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type gameRepositoryImpl struct {
	store *store
}

func newGameRepositoryImpl(store *store) domain.GameRepository {
	return &gameRepositoryImpl{store}
}

func (r *gameRepositoryImpl) AddGame(
	ctx context.Context, game *domain.Game,
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	if _, ok := r.store.games[game.ID]; ok {
		return ErrGameAlreadyExists
	}
	r.store.games[game.ID] = *game
	return nil
}

func (r *gameRepositoryImpl) GetGame(
	ctx context.Context, gameID uuid.UUID,
) (*domain.Game, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	game, ok := r.store.games[gameID]
	if !ok {
		return nil, nil
	}
	return &game, nil
}

func (r *gameRepositoryImpl) GetGamesForOwner(
	ctx context.Context, ownerID uuid.UUID,
) ([]*domain.Game, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	games := make([]*domain.Game, 0)
	for _, game := range r.store.games {
		if game.OwnerID == ownerID {
			g := game
			games = append(games, &g)
		}
	}
	return games, nil
}

func (r *gameRepositoryImpl) SearchGames(
	ctx context.Context, title, genre string, onlyAvailable bool,
) ([]*domain.Game, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	games := make([]*domain.Game, 0)
	for _, game := range r.store.games {
		if !matchGame(game, title, genre, onlyAvailable) {
			continue
		}
		g := game
		games = append(games, &g)
	}
	return games, nil
}

func (r *gameRepositoryImpl) UpdateGame(
	ctx context.Context,
	gameID uuid.UUID,
	updateFn func(g *domain.Game) (*domain.Game, error),
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	game, ok := r.store.games[gameID]
	if !ok {
		return ErrGameNotFound
	}

	updated, err := updateFn(&game)
	if err != nil {
		return err
	}
	r.store.games[gameID] = *updated
	return nil
}

func (r *gameRepositoryImpl) DeleteGame(
	ctx context.Context, gameID uuid.UUID,
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	if _, ok := r.store.games[gameID]; !ok {
		return ErrGameNotFound
	}
	delete(r.store.games, gameID)
	return nil
}

func matchGame(game domain.Game, title, genre string, onlyAvailable bool) bool {
	if onlyAvailable && !game.IsAvailable() {
		return false
	}
	if title != "" &&
		!strings.Contains(strings.ToLower(game.Title), strings.ToLower(title)) {
		return false
	}
	if genre != "" && !strings.EqualFold(game.Genre, genre) {
		return false
	}
	return true
}
