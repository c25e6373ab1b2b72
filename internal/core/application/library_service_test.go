package application_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/application"
	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

func TestAddAndRemoveGame(t *testing.T) {
	t.Parallel()

	h := newTestHarness()
	alice := h.newUser(t, "alice")

	game, err := h.library.AddGame(ctx, alice.ID, "Azul", "boardgame")
	require.NoError(t, err)
	require.True(t, game.IsAvailable())

	found, err := h.library.GetGame(ctx, game.ID)
	require.NoError(t, err)
	require.Equal(t, game.ID, found.ID)

	err = h.library.RemoveGame(ctx, alice.ID, game.ID)
	require.NoError(t, err)

	_, err = h.library.GetGame(ctx, game.ID)
	require.ErrorIs(t, err, application.ErrGameNotFound)
}

func TestFailingAddGame(t *testing.T) {
	t.Parallel()

	h := newTestHarness()
	alice := h.newUser(t, "alice")

	t.Run("unknown_owner", func(t *testing.T) {
		_, err := h.library.AddGame(ctx, uuid.New(), "Azul", "boardgame")
		require.ErrorIs(t, err, application.ErrUserNotFound)
	})

	t.Run("missing_title", func(t *testing.T) {
		_, err := h.library.AddGame(ctx, alice.ID, "", "boardgame")
		require.ErrorIs(t, err, domain.ErrGameMissingTitle)
	})
}

func TestFailingRemoveGame(t *testing.T) {
	t.Parallel()

	h := newTestHarness()
	alice := h.newUser(t, "alice")
	bob := h.newUser(t, "bob")
	chess := h.newGame(t, alice, "Chess")
	catan := h.newGame(t, bob, "Catan")

	t.Run("unknown_game", func(t *testing.T) {
		err := h.library.RemoveGame(ctx, alice.ID, uuid.New())
		require.ErrorIs(t, err, application.ErrGameNotFound)
	})

	t.Run("not_owned", func(t *testing.T) {
		err := h.library.RemoveGame(ctx, bob.ID, chess.ID)
		require.ErrorIs(t, err, domain.ErrGameNotOwned)
	})

	t.Run("reserved_by_exchange", func(t *testing.T) {
		_, err := h.exchange.Propose(ctx, alice.ID, bob.ID, chess.ID, catan.ID)
		require.NoError(t, err)

		err = h.library.RemoveGame(ctx, alice.ID, chess.ID)
		require.ErrorIs(t, err, domain.ErrGameLocked)
	})
}

func TestRemoveGameSerializesWithPropose(t *testing.T) {
	t.Parallel()

	repoManager := &interceptingRepoManager{RepoManager: newInMemoryRepoManager()}
	h := newTestHarnessWithRepoManager(repoManager)
	alice := h.newUser(t, "alice")
	bob := h.newUser(t, "bob")
	chess := h.newGame(t, alice, "Chess")
	catan := h.newGame(t, bob, "Catan")

	// The first game read belongs to RemoveGame. Kick off a proposal for
	// the same game at that exact point and give it a moment to run before
	// the removal proceeds.
	var once sync.Once
	proposeDone := make(chan error, 1)
	repoManager.onGetGame = func() {
		once.Do(func() {
			go func() {
				_, err := h.exchange.Propose(
					ctx, alice.ID, bob.ID, chess.ID, catan.ID,
				)
				proposeDone <- err
			}()
			time.Sleep(50 * time.Millisecond)
		})
	}

	err := h.library.RemoveGame(ctx, alice.ID, chess.ID)
	require.NoError(t, err)

	// The removal committed first, so the proposal must observe the game
	// as gone instead of reserving it.
	require.ErrorIs(t, <-proposeDone, application.ErrGameNotFound)

	_, err = h.library.GetGame(ctx, chess.ID)
	require.ErrorIs(t, err, application.ErrGameNotFound)

	active, err := h.exchange.ActiveExchangesForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, active)

	require.Equal(
		t, domain.GameStatus(domain.GameStatusAvailable),
		h.gameStatus(t, catan.ID),
	)
}

func TestGamesForUser(t *testing.T) {
	t.Parallel()

	h := newTestHarness()
	alice := h.newUser(t, "alice")
	bob := h.newUser(t, "bob")
	chess := h.newGame(t, alice, "Chess")
	h.newGame(t, alice, "Risk")
	catan := h.newGame(t, bob, "Catan")

	games, err := h.library.GamesForUser(ctx, alice.ID, false)
	require.NoError(t, err)
	require.Len(t, games, 2)

	_, err = h.exchange.Propose(ctx, alice.ID, bob.ID, chess.ID, catan.ID)
	require.NoError(t, err)

	available, err := h.library.GamesForUser(ctx, alice.ID, true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, "Risk", available[0].Title)
}

func TestSearchGames(t *testing.T) {
	t.Parallel()

	h := newTestHarness()
	alice := h.newUser(t, "alice")
	bob := h.newUser(t, "bob")
	h.newGame(t, alice, "Star Realms")
	h.newGame(t, bob, "Starcraft")
	cards, err := h.library.AddGame(ctx, bob.ID, "Dominion", "cardgame")
	require.NoError(t, err)

	byTitle, err := h.library.SearchGames(ctx, "star", "", false)
	require.NoError(t, err)
	require.Len(t, byTitle, 2)

	byGenre, err := h.library.SearchGames(ctx, "", "cardgame", false)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	require.Equal(t, cards.ID, byGenre[0].ID)

	none, err := h.library.SearchGames(ctx, "chess", "", false)
	require.NoError(t, err)
	require.Empty(t, none)
}
