package db_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

func TestWishlistRepositoryImplementations(t *testing.T) {
	repositories := createRepositories(t)

	for i := range repositories {
		repo := repositories[i]

		t.Run(repo.Name, func(t *testing.T) {
			t.Run("testGetOrCreateWishlist", func(t *testing.T) {
				testGetOrCreateWishlist(t, repo)
			})

			t.Run("testUpdateWishlist", func(t *testing.T) {
				testUpdateWishlist(t, repo)
			})

			t.Run("testConcurrentGetOrCreateWishlist", func(t *testing.T) {
				testConcurrentGetOrCreateWishlist(t, repo)
			})
		})
	}
}

func testGetOrCreateWishlist(t *testing.T, repo testRepository) {
	userID := uuid.New()

	iRes, err := repo.write(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.WishlistRepository().GetOrCreateWishlist(ctx, userID)
	})
	require.NoError(t, err)
	wishlist, ok := iRes.(*domain.Wishlist)
	require.True(t, ok)
	require.NotNil(t, wishlist)
	require.Equal(t, userID, wishlist.UserID)
	require.Zero(t, wishlist.Size())
}

func testUpdateWishlist(t *testing.T, repo testRepository) {
	userID := uuid.New()
	gameID := uuid.New()

	_, err := repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.WishlistRepository().UpdateWishlist(
			ctx, userID, func(w *domain.Wishlist) (*domain.Wishlist, error) {
				w.Add(gameID)
				return w, nil
			},
		)
	})
	require.NoError(t, err)

	iRes, err := repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.WishlistRepository().GetOrCreateWishlist(ctx, userID)
	})
	require.NoError(t, err)
	wishlist := iRes.(*domain.Wishlist)
	require.True(t, wishlist.Contains(gameID))
	require.Equal(t, 1, wishlist.Size())
}

// Concurrent first-time lookups race on creating the record. Every caller,
// including those losing the insert, must get the stored record back.
func testConcurrentGetOrCreateWishlist(t *testing.T, repo testRepository) {
	userID := uuid.New()

	const callers = 16
	wishlists := make([]*domain.Wishlist, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wishlists[i], errs[i] = repo.DBManager.WishlistRepository().
				GetOrCreateWishlist(context.Background(), userID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, wishlists[i])
		require.Equal(t, userID, wishlists[i].UserID)
	}
}
