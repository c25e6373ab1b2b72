package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

// repoManager gives access to the badger implementation of every
// repository. Users, games, exchanges and wishlists share a single store so
// that one badger transaction can span a whole negotiation transition.
type repoManager struct {
	store *badgerhold.Store

	userRepository     domain.UserRepository
	gameRepository     domain.GameRepository
	exchangeRepository domain.ExchangeRepository
	wishlistRepository domain.WishlistRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk.
// It expects a base data dir and an optional logger. An empty data dir opens
// the store in memory, which is handy for tests.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	var dbDir string
	if baseDbDir != "" {
		dbDir = filepath.Join(baseDbDir, "gameswap")
	}
	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening gameswap db: %w", err)
	}

	rm := &repoManager{store: store}
	rm.userRepository = NewUserRepositoryImpl(store)
	rm.gameRepository = NewGameRepositoryImpl(store)
	rm.exchangeRepository = NewExchangeRepositoryImpl(store)
	rm.wishlistRepository = NewWishlistRepositoryImpl(store)
	return rm, nil
}

func (d *repoManager) UserRepository() domain.UserRepository {
	return d.userRepository
}

func (d *repoManager) GameRepository() domain.GameRepository {
	return d.gameRepository
}

func (d *repoManager) ExchangeRepository() domain.ExchangeRepository {
	return d.exchangeRepository
}

func (d *repoManager) WishlistRepository() domain.WishlistRepository {
	return d.wishlistRepository
}

// RunTransaction runs the handler within a single badger transaction,
// smuggled to the repositories through the context. The transaction is
// committed only if the handler succeeds.
func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	res, err := handler(context.WithValue(ctx, "tx", tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (d *repoManager) Close() {
	d.store.Close()
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	de := json.NewDecoder(bytes.NewReader(data))
	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	if dbDir == "" {
		opts.InMemory = true
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}

func txFromContext(ctx context.Context) *badger.Txn {
	if tx := ctx.Value("tx"); tx != nil {
		return tx.(*badger.Txn)
	}
	return nil
}
