package domain

import (
	"github.com/google/uuid"
)

const (
	// GameStatusAvailable marks a game that can be offered in an exchange.
	GameStatusAvailable = iota
	// GameStatusReserved marks a game held by an unresolved exchange.
	GameStatusReserved
	// GameStatusTraded marks a game that was swapped away in an accepted
	// exchange.
	GameStatusTraded
)

// GameStatus represents the availability of a game within the exchange flow.
type GameStatus int

func (s GameStatus) String() string {
	switch s {
	case GameStatusAvailable:
		return "available"
	case GameStatusReserved:
		return "reserved"
	case GameStatusTraded:
		return "traded"
	default:
		return "unknown"
	}
}

// Game is the data structure representing a swappable game of a user's
// library.
type Game struct {
	ID      uuid.UUID
	Title   string
	Genre   string
	OwnerID uuid.UUID
	Status  GameStatus
}

// NewGame returns a new available game owned by the given user.
func NewGame(title, genre string, ownerID uuid.UUID) (*Game, error) {
	if title == "" {
		return nil, ErrGameMissingTitle
	}
	return &Game{
		ID:      uuid.New(),
		Title:   title,
		Genre:   genre,
		OwnerID: ownerID,
		Status:  GameStatusAvailable,
	}, nil
}

// IsAvailable returns whether the game can be put into a new exchange.
func (g *Game) IsAvailable() bool {
	return g.Status == GameStatusAvailable
}

// IsReserved returns whether the game is held by an unresolved exchange.
func (g *Game) IsReserved() bool {
	return g.Status == GameStatusReserved
}

// IsTraded returns whether the game was swapped away.
func (g *Game) IsTraded() bool {
	return g.Status == GameStatusTraded
}

// IsOwnedBy returns whether the game belongs to the given user.
func (g *Game) IsOwnedBy(userID uuid.UUID) bool {
	return g.OwnerID == userID
}

// Reserve holds the game for an unresolved exchange. Only an available game
// can be reserved.
func (g *Game) Reserve() error {
	if g.Status != GameStatusAvailable {
		return ErrGameNotAvailable
	}
	g.Status = GameStatusReserved
	return nil
}

// Release puts the game back into the available state, used when the
// exchange holding it is rejected.
func (g *Game) Release() {
	g.Status = GameStatusAvailable
}

// Finalize marks the game as traded away by an accepted exchange.
func (g *Game) Finalize() {
	g.Status = GameStatusTraded
}
