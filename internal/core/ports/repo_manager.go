package ports

import (
	"context"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

// RepoManager gives access to every repository of the daemon and to the
// transactional boundary shared by all of them.
type RepoManager interface {
	UserRepository() domain.UserRepository
	GameRepository() domain.GameRepository
	ExchangeRepository() domain.ExchangeRepository
	WishlistRepository() domain.WishlistRepository

	// RunTransaction executes the handler within a single storage
	// transaction: every repository call made through the handler's context
	// is committed or discarded as one atomic unit. If the handler returns
	// an error nothing is persisted.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)

	Close()
}
