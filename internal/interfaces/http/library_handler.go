package httpinterface

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/application"
)

type libraryHandler struct {
	librarySvc application.LibraryService
}

func newLibraryHandler(librarySvc application.LibraryService) *libraryHandler {
	return &libraryHandler{librarySvc}
}

func (h *libraryHandler) addGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID string `json:"ownerId"`
		Title   string `json:"title"`
		Genre   string `json:"genre"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		writeBadRequest(w, "invalid owner id")
		return
	}

	game, err := h.librarySvc.AddGame(r.Context(), ownerID, req.Title, req.Genre)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (h *libraryHandler) getGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		writeBadRequest(w, "invalid game id")
		return
	}
	game, err := h.librarySvc.GetGame(r.Context(), gameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (h *libraryHandler) removeGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		writeBadRequest(w, "invalid game id")
		return
	}
	ownerID, err := uuid.Parse(r.URL.Query().Get("ownerId"))
	if err != nil {
		writeBadRequest(w, "invalid owner id")
		return
	}
	if err := h.librarySvc.RemoveGame(r.Context(), ownerID, gameID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *libraryHandler) gamesForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}
	onlyAvailable := r.URL.Query().Get("available") == "true"
	games, err := h.librarySvc.GamesForUser(r.Context(), userID, onlyAvailable)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameListResponse(games))
}

func (h *libraryHandler) searchGames(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	games, err := h.librarySvc.SearchGames(
		r.Context(),
		query.Get("title"),
		query.Get("genre"),
		query.Get("available") == "true",
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameListResponse(games))
}
