package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/application"
	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
	"github.com/gameswap-network/gameswapd/internal/infrastructure/storage/db/inmemory"
)

var ctx = context.Background()

type testHarness struct {
	repoManager ports.RepoManager
	account     application.AccountService
	library     application.LibraryService
	exchange    application.ExchangeService
	wishlist    application.WishlistService
}

func newTestHarness() *testHarness {
	repoManager := inmemory.NewRepoManager()
	return newTestHarnessWithRepoManager(repoManager)
}

func newTestHarnessWithRepoManager(repoManager ports.RepoManager) *testHarness {
	return &testHarness{
		repoManager: repoManager,
		account:     application.NewAccountService(repoManager),
		library:     application.NewLibraryService(repoManager),
		exchange:    application.NewExchangeService(repoManager),
		wishlist:    application.NewWishlistService(repoManager),
	}
}

func (h *testHarness) newUser(t *testing.T, name string) *domain.User {
	t.Helper()

	email := fmt.Sprintf("%s-%s@test.local", name, uuid.NewString()[:8])
	user, err := h.account.Register(ctx, name, email, "")
	require.NoError(t, err)
	return user
}

func (h *testHarness) newGame(
	t *testing.T, owner *domain.User, title string,
) *domain.Game {
	t.Helper()

	game, err := h.library.AddGame(ctx, owner.ID, title, "boardgame")
	require.NoError(t, err)
	return game
}

func (h *testHarness) gameStatus(
	t *testing.T, gameID uuid.UUID,
) domain.GameStatus {
	t.Helper()

	game, err := h.library.GetGame(ctx, gameID)
	require.NoError(t, err)
	return game.Status
}

func (h *testHarness) exchangeStatus(
	t *testing.T, exchangeID uuid.UUID,
) domain.ExchangeStatus {
	t.Helper()

	exchange, err := h.exchange.GetExchange(ctx, exchangeID)
	require.NoError(t, err)
	return exchange.Status
}

func newInMemoryRepoManager() ports.RepoManager {
	return inmemory.NewRepoManager()
}

// interceptingRepoManager lets a test run a callback on game reads to
// interleave another operation at a precise point.
type interceptingRepoManager struct {
	ports.RepoManager
	onGetGame func()
}

func (m *interceptingRepoManager) GameRepository() domain.GameRepository {
	return &interceptingGameRepository{m.RepoManager.GameRepository(), m}
}

type interceptingGameRepository struct {
	domain.GameRepository
	manager *interceptingRepoManager
}

func (r *interceptingGameRepository) GetGame(
	ctx context.Context, id uuid.UUID,
) (*domain.Game, error) {
	if r.manager.onGetGame != nil {
		r.manager.onGetGame()
	}
	return r.GameRepository.GetGame(ctx, id)
}

// flakyRepoManager lets a test make every game update fail to simulate a
// storage outage in the middle of a transition.
type flakyRepoManager struct {
	ports.RepoManager
	failGameUpdates bool
}

func (m *flakyRepoManager) GameRepository() domain.GameRepository {
	if m.failGameUpdates {
		return &failingGameRepository{m.RepoManager.GameRepository()}
	}
	return m.RepoManager.GameRepository()
}

type failingGameRepository struct {
	domain.GameRepository
}

func (r *failingGameRepository) UpdateGame(
	_ context.Context, _ uuid.UUID,
	_ func(*domain.Game) (*domain.Game, error),
) error {
	return errors.New("storage is down")
}
