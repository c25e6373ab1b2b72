package dbbadger

import (
	"context"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type wishlistRepositoryImpl struct {
	store *badgerhold.Store
}

// NewWishlistRepositoryImpl initializes a badger implementation of the
// domain.WishlistRepository
func NewWishlistRepositoryImpl(store *badgerhold.Store) domain.WishlistRepository {
	return wishlistRepositoryImpl{store}
}

func (r wishlistRepositoryImpl) GetOrCreateWishlist(
	ctx context.Context, userID uuid.UUID,
) (*domain.Wishlist, error) {
	return r.getOrCreateWishlist(ctx, userID)
}

func (r wishlistRepositoryImpl) UpdateWishlist(
	ctx context.Context,
	userID uuid.UUID,
	updateFn func(w *domain.Wishlist) (*domain.Wishlist, error),
) error {
	currentWishlist, err := r.getOrCreateWishlist(ctx, userID)
	if err != nil {
		return err
	}

	updatedWishlist, err := updateFn(currentWishlist)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, userID, *updatedWishlist)
	}
	return r.store.Update(userID, *updatedWishlist)
}

func (r wishlistRepositoryImpl) getOrCreateWishlist(
	ctx context.Context, userID uuid.UUID,
) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, userID, &wishlist)
	} else {
		err = r.store.Get(userID, &wishlist)
	}
	if err == nil {
		return &wishlist, nil
	}
	if err != badgerhold.ErrNotFound {
		return nil, err
	}

	newWishlist := domain.NewWishlist(userID)
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxInsert(tx, userID, newWishlist)
	} else {
		err = r.store.Insert(userID, newWishlist)
	}
	if err == nil {
		return newWishlist, nil
	}
	if err != badgerhold.ErrKeyExists {
		return nil, err
	}

	// Another writer created the record between the read and the insert.
	// Return the stored record, not the fresh empty one.
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, userID, &wishlist)
	} else {
		err = r.store.Get(userID, &wishlist)
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}
