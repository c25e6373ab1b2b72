package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

func TestWishlist(t *testing.T) {
	t.Parallel()

	wishlist := domain.NewWishlist(uuid.New())
	require.Zero(t, wishlist.Size())

	gameID := uuid.New()
	wishlist.Add(gameID)
	require.True(t, wishlist.Contains(gameID))
	require.Equal(t, 1, wishlist.Size())

	// Adding twice does not duplicate.
	wishlist.Add(gameID)
	require.Equal(t, 1, wishlist.Size())

	wishlist.Remove(gameID)
	require.False(t, wishlist.Contains(gameID))
	require.Zero(t, wishlist.Size())

	// Removing an absent game is a no-op.
	wishlist.Remove(gameID)
	require.Zero(t, wishlist.Size())
}
