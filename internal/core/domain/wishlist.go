package domain

import (
	"github.com/google/uuid"
)

// Wishlist holds the set of games a user wishes to obtain through an
// exchange. It never interacts with the negotiation engine, it is plain
// bookkeeping a user curates by hand.
type Wishlist struct {
	UserID  uuid.UUID
	GameIDs []uuid.UUID
}

// NewWishlist returns an empty wishlist for the given user.
func NewWishlist(userID uuid.UUID) *Wishlist {
	return &Wishlist{UserID: userID, GameIDs: make([]uuid.UUID, 0)}
}

// Add inserts a game into the wishlist. Adding a game twice is a no-op.
func (w *Wishlist) Add(gameID uuid.UUID) {
	if w.Contains(gameID) {
		return
	}
	w.GameIDs = append(w.GameIDs, gameID)
}

// Remove drops a game from the wishlist. Removing an absent game is a no-op.
func (w *Wishlist) Remove(gameID uuid.UUID) {
	for i, id := range w.GameIDs {
		if id == gameID {
			w.GameIDs = append(w.GameIDs[:i], w.GameIDs[i+1:]...)
			return
		}
	}
}

// Contains returns whether the wishlist holds the given game.
func (w *Wishlist) Contains(gameID uuid.UUID) bool {
	for _, id := range w.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// Size returns the number of wished games.
func (w *Wishlist) Size() int {
	return len(w.GameIDs)
}
