package application

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

// LibraryService manages the game collection of each user. Availability
// transitions are never performed here, those belong to the negotiation
// engine; the library only refuses to drop a game the engine still holds.
type LibraryService interface {
	AddGame(
		ctx context.Context, ownerID uuid.UUID, title, genre string,
	) (*domain.Game, error)
	RemoveGame(ctx context.Context, ownerID, gameID uuid.UUID) error
	GetGame(ctx context.Context, gameID uuid.UUID) (*domain.Game, error)
	GamesForUser(
		ctx context.Context, ownerID uuid.UUID, onlyAvailable bool,
	) ([]*domain.Game, error)
	SearchGames(
		ctx context.Context, title, genre string, onlyAvailable bool,
	) ([]*domain.Game, error)
}

type libraryService struct {
	repoManager ports.RepoManager
}

// NewLibraryService returns a LibraryService backed by the given
// repositories.
func NewLibraryService(repoManager ports.RepoManager) LibraryService {
	return &libraryService{repoManager: repoManager}
}

func (s *libraryService) AddGame(
	ctx context.Context, ownerID uuid.UUID, title, genre string,
) (*domain.Game, error) {
	owner, err := s.repoManager.UserRepository().GetUser(ctx, ownerID)
	if err != nil {
		return nil, persistenceError(err)
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	game, err := domain.NewGame(title, genre, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.repoManager.GameRepository().AddGame(ctx, game); err != nil {
		return nil, persistenceError(err)
	}

	log.WithFields(log.Fields{
		"game":  game.ID,
		"owner": ownerID,
	}).Debug("game added to library")
	return game, nil
}

func (s *libraryService) RemoveGame(
	ctx context.Context, ownerID, gameID uuid.UUID,
) error {
	// The availability check and the delete must see the same state of the
	// store, otherwise a concurrent proposal can reserve the game right
	// before it disappears.
	_, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			game, err := s.repoManager.GameRepository().GetGame(ctx, gameID)
			if err != nil {
				return nil, persistenceError(err)
			}
			if game == nil {
				return nil, ErrGameNotFound
			}
			if !game.IsOwnedBy(ownerID) {
				return nil, domain.ErrGameNotOwned
			}
			if !game.IsAvailable() {
				return nil, domain.ErrGameLocked
			}

			if err := s.repoManager.GameRepository().DeleteGame(
				ctx, gameID,
			); err != nil {
				return nil, persistenceError(err)
			}
			return nil, nil
		},
	)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"game":  gameID,
		"owner": ownerID,
	}).Debug("game removed from library")
	return nil
}

func (s *libraryService) GetGame(
	ctx context.Context, gameID uuid.UUID,
) (*domain.Game, error) {
	game, err := s.repoManager.GameRepository().GetGame(ctx, gameID)
	if err != nil {
		return nil, persistenceError(err)
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (s *libraryService) GamesForUser(
	ctx context.Context, ownerID uuid.UUID, onlyAvailable bool,
) ([]*domain.Game, error) {
	games, err := s.repoManager.GameRepository().GetGamesForOwner(ctx, ownerID)
	if err != nil {
		return nil, persistenceError(err)
	}
	if !onlyAvailable {
		return games, nil
	}

	available := make([]*domain.Game, 0, len(games))
	for _, g := range games {
		if g.IsAvailable() {
			available = append(available, g)
		}
	}
	return available, nil
}

func (s *libraryService) SearchGames(
	ctx context.Context, title, genre string, onlyAvailable bool,
) ([]*domain.Game, error) {
	games, err := s.repoManager.GameRepository().SearchGames(
		ctx, title, genre, onlyAvailable,
	)
	if err != nil {
		return nil, persistenceError(err)
	}
	return games, nil
}
