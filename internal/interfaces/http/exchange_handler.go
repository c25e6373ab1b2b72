package httpinterface

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/application"
	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type exchangeHandler struct {
	exchangeSvc application.ExchangeService
}

func newExchangeHandler(exchangeSvc application.ExchangeService) *exchangeHandler {
	return &exchangeHandler{exchangeSvc}
}

func (h *exchangeHandler) propose(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProposerID      string `json:"proposerId"`
		RecipientID     string `json:"recipientId"`
		OfferedGameID   string `json:"offeredGameId"`
		RequestedGameID string `json:"requestedGameId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	proposerID, err := uuid.Parse(req.ProposerID)
	if err != nil {
		writeBadRequest(w, "invalid proposer id")
		return
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		writeBadRequest(w, "invalid recipient id")
		return
	}
	offeredGameID, err := uuid.Parse(req.OfferedGameID)
	if err != nil {
		writeBadRequest(w, "invalid offered game id")
		return
	}
	requestedGameID, err := uuid.Parse(req.RequestedGameID)
	if err != nil {
		writeBadRequest(w, "invalid requested game id")
		return
	}

	exchange, err := h.exchangeSvc.Propose(
		r.Context(), proposerID, recipientID, offeredGameID, requestedGameID,
	)
	countExchangeOp("propose", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newExchangeResponse(exchange))
}

func (h *exchangeHandler) listAll(w http.ResponseWriter, r *http.Request) {
	exchanges, err := h.exchangeSvc.AllExchanges(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newExchangeListResponse(exchanges))
}

func (h *exchangeHandler) getExchange(w http.ResponseWriter, r *http.Request) {
	exchangeID, err := uuid.Parse(chi.URLParam(r, "exchangeID"))
	if err != nil {
		writeBadRequest(w, "invalid exchange id")
		return
	}
	exchange, err := h.exchangeSvc.GetExchange(r.Context(), exchangeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newExchangeResponse(exchange))
}

func (h *exchangeHandler) accept(w http.ResponseWriter, r *http.Request) {
	exchangeID, actorID, ok := h.resolutionParams(w, r)
	if !ok {
		return
	}
	exchange, err := h.exchangeSvc.Accept(r.Context(), exchangeID, actorID)
	countExchangeOp("accept", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newExchangeResponse(exchange))
}

func (h *exchangeHandler) reject(w http.ResponseWriter, r *http.Request) {
	exchangeID, actorID, ok := h.resolutionParams(w, r)
	if !ok {
		return
	}
	exchange, err := h.exchangeSvc.Reject(r.Context(), exchangeID, actorID)
	countExchangeOp("reject", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newExchangeResponse(exchange))
}

func (h *exchangeHandler) counterPropose(w http.ResponseWriter, r *http.Request) {
	exchangeID, err := uuid.Parse(chi.URLParam(r, "exchangeID"))
	if err != nil {
		writeBadRequest(w, "invalid exchange id")
		return
	}
	var req struct {
		ActorID         string `json:"actorId"`
		OfferedGameID   string `json:"offeredGameId"`
		RequestedGameID string `json:"requestedGameId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		writeBadRequest(w, "invalid actor id")
		return
	}
	offeredGameID, err := uuid.Parse(req.OfferedGameID)
	if err != nil {
		writeBadRequest(w, "invalid offered game id")
		return
	}
	requestedGameID, err := uuid.Parse(req.RequestedGameID)
	if err != nil {
		writeBadRequest(w, "invalid requested game id")
		return
	}

	counter, err := h.exchangeSvc.CounterPropose(
		r.Context(), exchangeID, actorID, offeredGameID, requestedGameID,
	)
	countExchangeOp("counter", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newExchangeResponse(counter))
}

func (h *exchangeHandler) activeForUser(w http.ResponseWriter, r *http.Request) {
	h.listForUser(w, r, h.exchangeSvc.ActiveExchangesForUser)
}

func (h *exchangeHandler) historyForUser(w http.ResponseWriter, r *http.Request) {
	h.listForUser(w, r, h.exchangeSvc.HistoryForUser)
}

func (h *exchangeHandler) pendingCountersForUser(
	w http.ResponseWriter, r *http.Request,
) {
	h.listForUser(w, r, h.exchangeSvc.PendingCounterProposalsForUser)
}

func (h *exchangeHandler) listForUser(
	w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context, userID uuid.UUID) ([]*domain.Exchange, error),
) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}
	exchanges, err := list(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newExchangeListResponse(exchanges))
}

func (h *exchangeHandler) resolutionParams(
	w http.ResponseWriter, r *http.Request,
) (exchangeID, actorID uuid.UUID, ok bool) {
	exchangeID, err := uuid.Parse(chi.URLParam(r, "exchangeID"))
	if err != nil {
		writeBadRequest(w, "invalid exchange id")
		return uuid.Nil, uuid.Nil, false
	}
	var req struct {
		ActorID string `json:"actorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return uuid.Nil, uuid.Nil, false
	}
	actorID, err = uuid.Parse(req.ActorID)
	if err != nil {
		writeBadRequest(w, "invalid actor id")
		return uuid.Nil, uuid.Nil, false
	}
	return exchangeID, actorID, true
}
