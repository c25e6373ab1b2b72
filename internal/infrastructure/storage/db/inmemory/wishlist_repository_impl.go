package inmemory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type wishlistRepositoryImpl struct {
	store *store
}

func newWishlistRepositoryImpl(store *store) domain.WishlistRepository {
	return &wishlistRepositoryImpl{store}
}

func (r *wishlistRepositoryImpl) GetOrCreateWishlist(
	ctx context.Context, userID uuid.UUID,
) (*domain.Wishlist, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	wishlist := r.getOrCreateWishlist(userID)
	return &wishlist, nil
}

func (r *wishlistRepositoryImpl) UpdateWishlist(
	ctx context.Context,
	userID uuid.UUID,
	updateFn func(w *domain.Wishlist) (*domain.Wishlist, error),
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	wishlist := r.getOrCreateWishlist(userID)
	updated, err := updateFn(&wishlist)
	if err != nil {
		return err
	}
	r.store.wishlists[userID] = copyWishlist(*updated)
	return nil
}

func (r *wishlistRepositoryImpl) getOrCreateWishlist(
	userID uuid.UUID,
) domain.Wishlist {
	wishlist, ok := r.store.wishlists[userID]
	if !ok {
		wishlist = *domain.NewWishlist(userID)
		r.store.wishlists[userID] = wishlist
	}
	return copyWishlist(wishlist)
}
