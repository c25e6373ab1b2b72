package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

// ExchangeService is the negotiation engine. It validates and executes
// every lifecycle transition of an exchange and drives the side effects on
// game availability and chain linkage. Every transition runs as one atomic
// unit of work: either the exchange, its linked chain members and all the
// involved games are committed together, or nothing is.
type ExchangeService interface {
	Propose(
		ctx context.Context,
		proposerID, recipientID, offeredGameID, requestedGameID uuid.UUID,
	) (*domain.Exchange, error)
	Accept(
		ctx context.Context, exchangeID, actorID uuid.UUID,
	) (*domain.Exchange, error)
	Reject(
		ctx context.Context, exchangeID, actorID uuid.UUID,
	) (*domain.Exchange, error)
	CounterPropose(
		ctx context.Context,
		exchangeID, actorID, offeredGameID, requestedGameID uuid.UUID,
	) (*domain.Exchange, error)
	GetExchange(
		ctx context.Context, exchangeID uuid.UUID,
	) (*domain.Exchange, error)
	AllExchanges(ctx context.Context) ([]*domain.Exchange, error)
	ActiveExchangesForUser(
		ctx context.Context, userID uuid.UUID,
	) ([]*domain.Exchange, error)
	HistoryForUser(
		ctx context.Context, userID uuid.UUID,
	) ([]*domain.Exchange, error)
	PendingCounterProposalsForUser(
		ctx context.Context, userID uuid.UUID,
	) ([]*domain.Exchange, error)
}

type exchangeService struct {
	repoManager ports.RepoManager
	locker      *entityLocker
}

// NewExchangeService returns the negotiation engine backed by the given
// repositories.
func NewExchangeService(repoManager ports.RepoManager) ExchangeService {
	return &exchangeService{
		repoManager: repoManager,
		locker:      newEntityLocker(),
	}
}

func (s *exchangeService) Propose(
	ctx context.Context,
	proposerID, recipientID, offeredGameID, requestedGameID uuid.UUID,
) (*domain.Exchange, error) {
	if proposerID == recipientID {
		return nil, domain.ErrExchangeSameUser
	}

	unlock := s.locker.Lock(offeredGameID, requestedGameID)
	defer unlock()

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			offered, err := s.getGame(ctx, offeredGameID)
			if err != nil {
				return nil, err
			}
			requested, err := s.getGame(ctx, requestedGameID)
			if err != nil {
				return nil, err
			}

			if !offered.IsOwnedBy(proposerID) || !requested.IsOwnedBy(recipientID) {
				return nil, domain.ErrGameNotOwned
			}
			if !offered.IsAvailable() || !requested.IsAvailable() {
				return nil, domain.ErrGameNotAvailable
			}

			exchange, err := domain.NewExchange(
				proposerID, recipientID, offeredGameID, requestedGameID,
			)
			if err != nil {
				return nil, err
			}
			if err := offered.Reserve(); err != nil {
				return nil, err
			}
			if err := requested.Reserve(); err != nil {
				return nil, err
			}

			if err := s.repoManager.ExchangeRepository().AddExchange(
				ctx, exchange,
			); err != nil {
				return nil, persistenceError(err)
			}
			if err := s.saveGames(ctx, offered, requested); err != nil {
				return nil, err
			}
			return exchange, nil
		},
	)
	if err != nil {
		return nil, err
	}

	exchange := res.(*domain.Exchange)
	log.WithFields(log.Fields{
		"exchange": exchange.ID,
		"proposer": proposerID,
	}).Debug("exchange proposed")
	return exchange, nil
}

func (s *exchangeService) Accept(
	ctx context.Context, exchangeID, actorID uuid.UUID,
) (*domain.Exchange, error) {
	unlock, err := s.lockChain(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			exchange, err := s.getExchange(ctx, exchangeID)
			if err != nil {
				return nil, err
			}
			if exchange.Recipient != actorID {
				return nil, domain.ErrExchangeNotRecipient
			}
			if !exchange.IsPending() {
				return nil, domain.ErrExchangeMustBePending
			}

			chain, games, err := s.loadChain(ctx, exchange)
			if err != nil {
				return nil, err
			}

			now := time.Now()
			// Foreclose every other live member of the chain and release
			// its games first: a game shared with the accepted exchange
			// must end up traded, not released.
			foreclosed := s.forecloseChain(exchange, chain, games, now)

			if err := exchange.Accept(now); err != nil {
				return nil, err
			}
			games[exchange.OfferedGame].Finalize()
			games[exchange.RequestedGame].Finalize()

			if err := s.saveExchanges(
				ctx, append(foreclosed, exchange)...,
			); err != nil {
				return nil, err
			}
			if err := s.saveGameSet(ctx, games); err != nil {
				return nil, err
			}
			return exchange, nil
		},
	)
	if err != nil {
		return nil, err
	}

	exchange := res.(*domain.Exchange)
	log.WithField("exchange", exchange.ID).Debug("exchange accepted")
	return exchange, nil
}

func (s *exchangeService) Reject(
	ctx context.Context, exchangeID, actorID uuid.UUID,
) (*domain.Exchange, error) {
	unlock, err := s.lockChain(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			exchange, err := s.getExchange(ctx, exchangeID)
			if err != nil {
				return nil, err
			}
			if exchange.Recipient != actorID {
				return nil, domain.ErrExchangeNotRecipient
			}
			if !exchange.IsPending() {
				return nil, domain.ErrExchangeMustBePending
			}

			chain, games, err := s.loadChain(ctx, exchange)
			if err != nil {
				return nil, err
			}

			now := time.Now()
			foreclosed := s.forecloseChain(exchange, chain, games, now)

			if err := exchange.Reject(now); err != nil {
				return nil, err
			}
			games[exchange.OfferedGame].Release()
			games[exchange.RequestedGame].Release()

			if err := s.saveExchanges(
				ctx, append(foreclosed, exchange)...,
			); err != nil {
				return nil, err
			}
			if err := s.saveGameSet(ctx, games); err != nil {
				return nil, err
			}
			return exchange, nil
		},
	)
	if err != nil {
		return nil, err
	}

	exchange := res.(*domain.Exchange)
	log.WithField("exchange", exchange.ID).Debug("exchange rejected")
	return exchange, nil
}

func (s *exchangeService) CounterPropose(
	ctx context.Context,
	exchangeID, actorID, offeredGameID, requestedGameID uuid.UUID,
) (*domain.Exchange, error) {
	unlock, err := s.lockChain(ctx, exchangeID, offeredGameID, requestedGameID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			parent, err := s.getExchange(ctx, exchangeID)
			if err != nil {
				return nil, err
			}
			if parent.Recipient != actorID {
				return nil, domain.ErrExchangeNotRecipient
			}
			if !parent.CanBeCountered() {
				return nil, domain.ErrExchangeNotCounterable
			}

			offered, err := s.getGame(ctx, offeredGameID)
			if err != nil {
				return nil, err
			}
			requested, err := s.getGame(ctx, requestedGameID)
			if err != nil {
				return nil, err
			}
			if !offered.IsOwnedBy(actorID) || !requested.IsOwnedBy(parent.Proposer) {
				return nil, domain.ErrGameNotOwned
			}
			if err := s.checkCounterAvailability(parent, offered); err != nil {
				return nil, err
			}
			if err := s.checkCounterAvailability(parent, requested); err != nil {
				return nil, err
			}

			child, err := domain.NewCounterProposal(
				parent, offeredGameID, requestedGameID,
			)
			if err != nil {
				return nil, err
			}
			if err := parent.MarkCountered(child.ID); err != nil {
				return nil, err
			}
			// A game already reserved by the parent keeps its reservation,
			// it simply carries over to the child.
			if offered.IsAvailable() {
				if err := offered.Reserve(); err != nil {
					return nil, err
				}
			}
			if requested.IsAvailable() {
				if err := requested.Reserve(); err != nil {
					return nil, err
				}
			}

			if err := s.repoManager.ExchangeRepository().AddExchange(
				ctx, child,
			); err != nil {
				return nil, persistenceError(err)
			}
			if err := s.saveExchanges(ctx, parent); err != nil {
				return nil, err
			}
			if err := s.saveGames(ctx, offered, requested); err != nil {
				return nil, err
			}
			return child, nil
		},
	)
	if err != nil {
		return nil, err
	}

	child := res.(*domain.Exchange)
	log.WithFields(log.Fields{
		"exchange": child.ID,
		"parent":   exchangeID,
	}).Debug("counter-proposal created")
	return child, nil
}

func (s *exchangeService) GetExchange(
	ctx context.Context, exchangeID uuid.UUID,
) (*domain.Exchange, error) {
	return s.getExchange(ctx, exchangeID)
}

func (s *exchangeService) AllExchanges(
	ctx context.Context,
) ([]*domain.Exchange, error) {
	exchanges, err := s.repoManager.ExchangeRepository().GetAllExchanges(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}
	return exchanges, nil
}

func (s *exchangeService) ActiveExchangesForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Exchange, error) {
	exchanges, err := s.exchangesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Exchange, 0, len(exchanges))
	for _, e := range exchanges {
		if !e.IsFinal() {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *exchangeService) HistoryForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Exchange, error) {
	exchanges, err := s.exchangesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]*domain.Exchange, 0, len(exchanges))
	for _, e := range exchanges {
		if e.IsFinal() {
			history = append(history, e)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].ResolvedAt.After(*history[j].ResolvedAt)
	})
	return history, nil
}

func (s *exchangeService) PendingCounterProposalsForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Exchange, error) {
	exchanges, err := s.exchangesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := make([]*domain.Exchange, 0, len(exchanges))
	for _, e := range exchanges {
		if e.Recipient == userID && e.IsPending() && e.IsCounterProposal() {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

// lockChain locks the exchange, both its games, any linked parent or child
// exchange and any extra ids for the duration of a transition. The lock set
// is read before locking, then the transition re-reads everything inside
// its own transaction.
func (s *exchangeService) lockChain(
	ctx context.Context, exchangeID uuid.UUID, extra ...uuid.UUID,
) (func(), error) {
	exchange, err := s.getExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	ids := []uuid.UUID{
		exchange.ID, exchange.OfferedGame, exchange.RequestedGame,
	}
	if exchange.ParentID != nil {
		ids = append(ids, *exchange.ParentID)
	}
	if exchange.ChildID != nil {
		ids = append(ids, *exchange.ChildID)
	}
	ids = append(ids, extra...)
	return s.locker.Lock(ids...), nil
}

// loadChain returns the live linked exchanges of the given one together
// with every game touched by the chain, keyed by id. Each game is loaded
// exactly once so that a game shared between chain members is mutated on a
// single instance.
func (s *exchangeService) loadChain(
	ctx context.Context, exchange *domain.Exchange,
) ([]*domain.Exchange, map[uuid.UUID]*domain.Game, error) {
	linked := make([]*domain.Exchange, 0, 2)
	for _, id := range []*uuid.UUID{exchange.ParentID, exchange.ChildID} {
		if id == nil {
			continue
		}
		e, err := s.getExchange(ctx, *id)
		if err != nil {
			return nil, nil, err
		}
		linked = append(linked, e)
	}

	games := make(map[uuid.UUID]*domain.Game)
	for _, e := range append([]*domain.Exchange{exchange}, linked...) {
		for _, gameID := range []uuid.UUID{e.OfferedGame, e.RequestedGame} {
			if _, ok := games[gameID]; ok {
				continue
			}
			game, err := s.getGame(ctx, gameID)
			if err != nil {
				return nil, nil, err
			}
			games[gameID] = game
		}
	}
	return linked, games, nil
}

// forecloseChain force-rejects every live linked exchange and releases its
// games, all stamped with the same resolution time as the transition that
// triggered it. It returns the exchanges it mutated.
func (s *exchangeService) forecloseChain(
	exchange *domain.Exchange, linked []*domain.Exchange,
	games map[uuid.UUID]*domain.Game, now time.Time,
) []*domain.Exchange {
	foreclosed := make([]*domain.Exchange, 0, len(linked))
	for _, e := range linked {
		if e.IsFinal() {
			continue
		}
		if err := e.ForceReject(now); err != nil {
			continue
		}
		games[e.OfferedGame].Release()
		games[e.RequestedGame].Release()
		foreclosed = append(foreclosed, e)
	}
	return foreclosed
}

// checkCounterAvailability validates a game picked for a counter-proposal.
// A game reserved by the parent exchange itself passes: its reservation
// carries over to the child.
func (s *exchangeService) checkCounterAvailability(
	parent *domain.Exchange, game *domain.Game,
) error {
	if game.IsAvailable() {
		return nil
	}
	if game.IsReserved() && parent.ContainsGame(game.ID) {
		return nil
	}
	return domain.ErrGameNotAvailable
}

func (s *exchangeService) exchangesForUser(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Exchange, error) {
	exchanges, err := s.repoManager.ExchangeRepository().GetExchangesForUser(
		ctx, userID,
	)
	if err != nil {
		return nil, persistenceError(err)
	}
	return exchanges, nil
}

func (s *exchangeService) getExchange(
	ctx context.Context, exchangeID uuid.UUID,
) (*domain.Exchange, error) {
	exchange, err := s.repoManager.ExchangeRepository().GetExchange(
		ctx, exchangeID,
	)
	if err != nil {
		return nil, persistenceError(err)
	}
	if exchange == nil {
		return nil, ErrExchangeNotFound
	}
	return exchange, nil
}

func (s *exchangeService) getGame(
	ctx context.Context, gameID uuid.UUID,
) (*domain.Game, error) {
	game, err := s.repoManager.GameRepository().GetGame(ctx, gameID)
	if err != nil {
		return nil, persistenceError(err)
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (s *exchangeService) saveExchanges(
	ctx context.Context, exchanges ...*domain.Exchange,
) error {
	repo := s.repoManager.ExchangeRepository()
	for _, exchange := range exchanges {
		updated := exchange
		if err := repo.UpdateExchange(
			ctx, exchange.ID,
			func(_ *domain.Exchange) (*domain.Exchange, error) {
				return updated, nil
			},
		); err != nil {
			return persistenceError(err)
		}
	}
	return nil
}

func (s *exchangeService) saveGames(
	ctx context.Context, games ...*domain.Game,
) error {
	repo := s.repoManager.GameRepository()
	for _, game := range games {
		updated := game
		if err := repo.UpdateGame(
			ctx, game.ID,
			func(_ *domain.Game) (*domain.Game, error) {
				return updated, nil
			},
		); err != nil {
			return persistenceError(err)
		}
	}
	return nil
}

func (s *exchangeService) saveGameSet(
	ctx context.Context, games map[uuid.UUID]*domain.Game,
) error {
	list := make([]*domain.Game, 0, len(games))
	for _, game := range games {
		list = append(list, game)
	}
	return s.saveGames(ctx, list...)
}
