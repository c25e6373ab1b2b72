package domain

import (
	"context"

	"github.com/google/uuid"
)

// WishlistRepository is the abstraction for any kind of database intended
// to persist Wishlists.
type WishlistRepository interface {
	// GetOrCreateWishlist returns the wishlist of the given user, creating
	// an empty one if the user never wished a game before.
	GetOrCreateWishlist(ctx context.Context, userID uuid.UUID) (*Wishlist, error)
	// UpdateWishlist allows to commit multiple changes to the same wishlist
	// in a transactional way.
	UpdateWishlist(
		ctx context.Context,
		userID uuid.UUID,
		updateFn func(w *Wishlist) (*Wishlist, error),
	) error
}
