package domain

import (
	"context"

	"github.com/google/uuid"
)

// GameRepository is the abstraction for any kind of database intended to
// persist Games.
type GameRepository interface {
	// AddGame persists a new game.
	AddGame(ctx context.Context, game *Game) error
	// GetGame returns the game with the given id, or nil if none matches.
	GetGame(ctx context.Context, gameID uuid.UUID) (*Game, error)
	// GetGamesForOwner returns all games of a user's library.
	GetGamesForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Game, error)
	// SearchGames returns games matching the given title and genre
	// substrings. Empty filters match everything, onlyAvailable restricts
	// the result to available games.
	SearchGames(ctx context.Context, title, genre string, onlyAvailable bool) ([]*Game, error)
	// UpdateGame allows to commit multiple changes to the same game in a
	// transactional way.
	UpdateGame(
		ctx context.Context,
		gameID uuid.UUID,
		updateFn func(g *Game) (*Game, error),
	) error
	// DeleteGame removes a game from its owner's library.
	DeleteGame(ctx context.Context, gameID uuid.UUID) error
}
