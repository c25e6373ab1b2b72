package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

type txKey struct{}

// store holds every entity map behind a single locker. Entities are stored
// by value: reads hand out copies, writes replace whole records.
type store struct {
	locker    sync.Mutex
	users     map[uuid.UUID]domain.User
	games     map[uuid.UUID]domain.Game
	exchanges map[uuid.UUID]domain.Exchange
	wishlists map[uuid.UUID]domain.Wishlist
}

func newStore() *store {
	return &store{
		users:     make(map[uuid.UUID]domain.User),
		games:     make(map[uuid.UUID]domain.Game),
		exchanges: make(map[uuid.UUID]domain.Exchange),
		wishlists: make(map[uuid.UUID]domain.Wishlist),
	}
}

// lock acquires the store locker unless the context belongs to a running
// transaction, which already holds it for its whole duration.
func (s *store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.locker.Lock()
	return s.locker.Unlock
}

type snapshot struct {
	users     map[uuid.UUID]domain.User
	games     map[uuid.UUID]domain.Game
	exchanges map[uuid.UUID]domain.Exchange
	wishlists map[uuid.UUID]domain.Wishlist
}

func (s *store) snapshot() *snapshot {
	sn := &snapshot{
		users:     make(map[uuid.UUID]domain.User, len(s.users)),
		games:     make(map[uuid.UUID]domain.Game, len(s.games)),
		exchanges: make(map[uuid.UUID]domain.Exchange, len(s.exchanges)),
		wishlists: make(map[uuid.UUID]domain.Wishlist, len(s.wishlists)),
	}
	for k, v := range s.users {
		sn.users[k] = v
	}
	for k, v := range s.games {
		sn.games[k] = v
	}
	for k, v := range s.exchanges {
		sn.exchanges[k] = v
	}
	for k, v := range s.wishlists {
		sn.wishlists[k] = copyWishlist(v)
	}
	return sn
}

func (s *store) restore(sn *snapshot) {
	s.users = sn.users
	s.games = sn.games
	s.exchanges = sn.exchanges
	s.wishlists = sn.wishlists
}

func copyWishlist(w domain.Wishlist) domain.Wishlist {
	ids := make([]uuid.UUID, len(w.GameIDs))
	copy(ids, w.GameIDs)
	w.GameIDs = ids
	return w
}

// RepoManager is a volatile implementation of ports.RepoManager, used by
// tests and as a throwaway backend.
type RepoManager struct {
	store *store

	userRepository     domain.UserRepository
	gameRepository     domain.GameRepository
	exchangeRepository domain.ExchangeRepository
	wishlistRepository domain.WishlistRepository
}

// NewRepoManager returns an empty inmemory repository manager.
func NewRepoManager() ports.RepoManager {
	store := newStore()
	return &RepoManager{
		store:              store,
		userRepository:     newUserRepositoryImpl(store),
		gameRepository:     newGameRepositoryImpl(store),
		exchangeRepository: newExchangeRepositoryImpl(store),
		wishlistRepository: newWishlistRepositoryImpl(store),
	}
}

func (d *RepoManager) UserRepository() domain.UserRepository {
	return d.userRepository
}

func (d *RepoManager) GameRepository() domain.GameRepository {
	return d.gameRepository
}

func (d *RepoManager) ExchangeRepository() domain.ExchangeRepository {
	return d.exchangeRepository
}

func (d *RepoManager) WishlistRepository() domain.WishlistRepository {
	return d.wishlistRepository
}

// RunTransaction takes the store locker for the whole handler and restores
// a pre-handler snapshot if the handler fails, so that a failed transition
// leaves no partial writes behind.
func (d *RepoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	d.store.locker.Lock()
	defer d.store.locker.Unlock()

	var sn *snapshot
	if !readOnly {
		sn = d.store.snapshot()
	}

	res, err := handler(context.WithValue(ctx, txKey{}, struct{}{}))
	if err != nil {
		if !readOnly {
			d.store.restore(sn)
		}
		return nil, err
	}
	return res, nil
}

func (d *RepoManager) Close() {}
