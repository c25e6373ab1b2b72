package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

// WishlistService manages the set of games each user wishes to obtain.
type WishlistService interface {
	AddToWishlist(ctx context.Context, userID, gameID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, userID, gameID uuid.UUID) error
	IsWished(ctx context.Context, userID, gameID uuid.UUID) (bool, error)
	// WishlistForUser resolves the wished game ids to full game records.
	// Games removed from their owner's library since they were wished are
	// skipped.
	WishlistForUser(
		ctx context.Context, userID uuid.UUID,
	) ([]*domain.Game, error)
}

type wishlistService struct {
	repoManager ports.RepoManager
}

// NewWishlistService returns a WishlistService backed by the given
// repositories.
func NewWishlistService(repoManager ports.RepoManager) WishlistService {
	return &wishlistService{repoManager: repoManager}
}

func (s *wishlistService) AddToWishlist(
	ctx context.Context, userID, gameID uuid.UUID,
) error {
	game, err := s.repoManager.GameRepository().GetGame(ctx, gameID)
	if err != nil {
		return persistenceError(err)
	}
	if game == nil {
		return ErrGameNotFound
	}

	if err := s.repoManager.WishlistRepository().UpdateWishlist(
		ctx, userID, func(w *domain.Wishlist) (*domain.Wishlist, error) {
			w.Add(gameID)
			return w, nil
		},
	); err != nil {
		return persistenceError(err)
	}
	return nil
}

func (s *wishlistService) RemoveFromWishlist(
	ctx context.Context, userID, gameID uuid.UUID,
) error {
	if err := s.repoManager.WishlistRepository().UpdateWishlist(
		ctx, userID, func(w *domain.Wishlist) (*domain.Wishlist, error) {
			w.Remove(gameID)
			return w, nil
		},
	); err != nil {
		return persistenceError(err)
	}
	return nil
}

func (s *wishlistService) IsWished(
	ctx context.Context, userID, gameID uuid.UUID,
) (bool, error) {
	wishlist, err := s.repoManager.WishlistRepository().GetOrCreateWishlist(
		ctx, userID,
	)
	if err != nil {
		return false, persistenceError(err)
	}
	return wishlist.Contains(gameID), nil
}

func (s *wishlistService) WishlistForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Game, error) {
	wishlist, err := s.repoManager.WishlistRepository().GetOrCreateWishlist(
		ctx, userID,
	)
	if err != nil {
		return nil, persistenceError(err)
	}

	games := make([]*domain.Game, 0, wishlist.Size())
	for _, gameID := range wishlist.GameIDs {
		game, err := s.repoManager.GameRepository().GetGame(ctx, gameID)
		if err != nil {
			return nil, persistenceError(err)
		}
		if game != nil {
			games = append(games, game)
		}
	}
	return games, nil
}
