package httpinterface

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/application"
)

type wishlistHandler struct {
	wishlistSvc application.WishlistService
}

func newWishlistHandler(wishlistSvc application.WishlistService) *wishlistHandler {
	return &wishlistHandler{wishlistSvc}
}

func (h *wishlistHandler) wishlistForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}
	games, err := h.wishlistSvc.WishlistForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameListResponse(games))
}

func (h *wishlistHandler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := wishlistParams(w, r)
	if !ok {
		return
	}
	if err := h.wishlistSvc.AddToWishlist(r.Context(), userID, gameID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *wishlistHandler) removeFromWishlist(
	w http.ResponseWriter, r *http.Request,
) {
	userID, gameID, ok := wishlistParams(w, r)
	if !ok {
		return
	}
	if err := h.wishlistSvc.RemoveFromWishlist(r.Context(), userID, gameID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func wishlistParams(
	w http.ResponseWriter, r *http.Request,
) (userID, gameID uuid.UUID, ok bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return uuid.Nil, uuid.Nil, false
	}
	gameID, err = uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		writeBadRequest(w, "invalid game id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, gameID, true
}
