package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gameswap-network/gameswapd/internal/core/application"
	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.WithError(err).Warn("failed to encode response body")
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func statusForError(err error) int {
	var persistenceErr *application.PersistenceError
	if errors.As(err, &persistenceErr) {
		log.WithError(persistenceErr).Error("persistence failure")
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrGameNotFound),
		errors.Is(err, application.ErrExchangeNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrEmailAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, domain.ErrExchangeNotRecipient),
		errors.Is(err, domain.ErrGameNotOwned):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrExchangeMustBePending),
		errors.Is(err, domain.ErrExchangeNotCounterable),
		errors.Is(err, domain.ErrExchangeAlreadyResolved),
		errors.Is(err, domain.ErrGameNotAvailable),
		errors.Is(err, domain.ErrGameLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrExchangeSameUser),
		errors.Is(err, domain.ErrExchangeIdenticalCounter),
		errors.Is(err, domain.ErrGameMissingTitle),
		errors.Is(err, domain.ErrUserMissingName),
		errors.Is(err, domain.ErrUserMissingEmail):
		return http.StatusBadRequest
	default:
		log.WithError(err).Error("unhandled error")
		return http.StatusInternalServerError
	}
}
