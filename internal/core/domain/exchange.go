package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ExchangeStatusPending is the initial status of every exchange.
	ExchangeStatusPending = iota
	// ExchangeStatusAccepted marks an exchange accepted by its recipient.
	ExchangeStatusAccepted
	// ExchangeStatusRejected marks an exchange rejected by its recipient or
	// foreclosed by the acceptance of another exchange of the same chain.
	ExchangeStatusRejected
	// ExchangeStatusCountered marks an exchange whose recipient answered
	// with a counter-proposal. Resolution flows through the child.
	ExchangeStatusCountered
	// ExchangeStatusCompleted is reserved for a post-acceptance fulfillment
	// step. No engine transition drives it.
	ExchangeStatusCompleted
	// ExchangeStatusFailed is reserved for a post-acceptance fulfillment
	// step. No engine transition drives it.
	ExchangeStatusFailed
)

// ExchangeStatus represents the lifecycle status of an exchange.
type ExchangeStatus int

func (s ExchangeStatus) String() string {
	switch s {
	case ExchangeStatusPending:
		return "pending"
	case ExchangeStatusAccepted:
		return "accepted"
	case ExchangeStatusRejected:
		return "rejected"
	case ExchangeStatusCountered:
		return "countered"
	case ExchangeStatusCompleted:
		return "completed"
	case ExchangeStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsFinal returns whether the status is terminal, ie. no transition can
// leave it.
func (s ExchangeStatus) IsFinal() bool {
	return s == ExchangeStatusAccepted || s == ExchangeStatusRejected ||
		s == ExchangeStatusCompleted || s == ExchangeStatusFailed
}

// Exchange is the data structure representing a proposal to swap one game
// for another between two users. Parent and child exchanges reference each
// other by id, never by pointer, so that a chain can be persisted and
// reloaded without cycles.
type Exchange struct {
	ID            uuid.UUID
	Proposer      uuid.UUID
	Recipient     uuid.UUID
	OfferedGame   uuid.UUID
	RequestedGame uuid.UUID
	ProposedAt    time.Time
	Status        ExchangeStatus
	ResolvedAt    *time.Time
	ParentID      *uuid.UUID
	ChildID       *uuid.UUID
}

// NewExchange returns a pending exchange between two distinct users.
func NewExchange(
	proposer, recipient, offeredGame, requestedGame uuid.UUID,
) (*Exchange, error) {
	if proposer == recipient {
		return nil, ErrExchangeSameUser
	}
	return &Exchange{
		ID:            uuid.New(),
		Proposer:      proposer,
		Recipient:     recipient,
		OfferedGame:   offeredGame,
		RequestedGame: requestedGame,
		ProposedAt:    time.Now(),
		Status:        ExchangeStatusPending,
	}, nil
}

// NewCounterProposal returns a pending exchange answering the given parent
// with swapped roles: the parent's recipient offers a new pair of games to
// the parent's proposer. The parent is not mutated here, the engine marks
// it countered atomically with the child's creation.
func NewCounterProposal(
	parent *Exchange, offeredGame, requestedGame uuid.UUID,
) (*Exchange, error) {
	if !parent.CanBeCountered() {
		return nil, ErrExchangeNotCounterable
	}
	if offeredGame == parent.RequestedGame && requestedGame == parent.OfferedGame {
		return nil, ErrExchangeIdenticalCounter
	}

	child, err := NewExchange(
		parent.Recipient, parent.Proposer, offeredGame, requestedGame,
	)
	if err != nil {
		return nil, err
	}
	parentID := parent.ID
	child.ParentID = &parentID
	return child, nil
}

// Accept brings a pending exchange to the Accepted status and records its
// resolution time.
func (e *Exchange) Accept(now time.Time) error {
	if e.Status != ExchangeStatusPending {
		return ErrExchangeMustBePending
	}
	e.Status = ExchangeStatusAccepted
	e.ResolvedAt = &now
	return nil
}

// Reject brings a pending exchange to the Rejected status and records its
// resolution time.
func (e *Exchange) Reject(now time.Time) error {
	if e.Status != ExchangeStatusPending {
		return ErrExchangeMustBePending
	}
	e.Status = ExchangeStatusRejected
	e.ResolvedAt = &now
	return nil
}

// ForceReject rejects a live exchange regardless of whether it is pending
// or countered. It is used when the acceptance or rejection of another
// exchange of the same chain forecloses this one.
func (e *Exchange) ForceReject(now time.Time) error {
	if e.IsFinal() {
		return ErrExchangeAlreadyResolved
	}
	e.Status = ExchangeStatusRejected
	e.ResolvedAt = &now
	return nil
}

// MarkCountered brings a pending exchange to the Countered status, linking
// it to the counter-proposal spawned from it. A countered exchange is not
// terminal and carries no resolution time: its fate follows the child's.
func (e *Exchange) MarkCountered(childID uuid.UUID) error {
	if !e.CanBeCountered() {
		return ErrExchangeNotCounterable
	}
	e.Status = ExchangeStatusCountered
	e.ChildID = &childID
	return nil
}

// IsFinal returns whether the exchange reached a terminal status.
func (e *Exchange) IsFinal() bool {
	return e.Status.IsFinal()
}

// IsPending returns whether the exchange is in Pending status.
func (e *Exchange) IsPending() bool {
	return e.Status == ExchangeStatusPending
}

// IsCountered returns whether the exchange is in Countered status.
func (e *Exchange) IsCountered() bool {
	return e.Status == ExchangeStatusCountered
}

// IsCounterProposal returns whether this exchange was spawned as the
// counter-proposal of another one.
func (e *Exchange) IsCounterProposal() bool {
	return e.ParentID != nil
}

// CanBeCountered returns whether the recipient can still answer with a
// counter-proposal: the exchange must be pending and must not already have
// spawned one.
func (e *Exchange) CanBeCountered() bool {
	return e.Status == ExchangeStatusPending && e.ChildID == nil
}

// IsParticipant returns whether the given user is the proposer or the
// recipient of the exchange.
func (e *Exchange) IsParticipant(userID uuid.UUID) bool {
	return e.Proposer == userID || e.Recipient == userID
}

// ContainsGame returns whether the given game is one of the two games held
// by the exchange.
func (e *Exchange) ContainsGame(gameID uuid.UUID) bool {
	return e.OfferedGame == gameID || e.RequestedGame == gameID
}
