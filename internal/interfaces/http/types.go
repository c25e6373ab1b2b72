package httpinterface

import (
	"time"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

type gameResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Genre   string `json:"genre,omitempty"`
	OwnerID string `json:"ownerId"`
	Status  string `json:"status"`
}

func newGameResponse(game *domain.Game) gameResponse {
	return gameResponse{
		ID:      game.ID.String(),
		Title:   game.Title,
		Genre:   game.Genre,
		OwnerID: game.OwnerID.String(),
		Status:  game.Status.String(),
	}
}

func newGameListResponse(games []*domain.Game) []gameResponse {
	list := make([]gameResponse, 0, len(games))
	for _, g := range games {
		list = append(list, newGameResponse(g))
	}
	return list
}

type exchangeResponse struct {
	ID              string     `json:"id"`
	ProposerID      string     `json:"proposerId"`
	RecipientID     string     `json:"recipientId"`
	OfferedGameID   string     `json:"offeredGameId"`
	RequestedGameID string     `json:"requestedGameId"`
	Status          string     `json:"status"`
	ProposedAt      time.Time  `json:"proposedAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ParentID        string     `json:"parentId,omitempty"`
	ChildID         string     `json:"childId,omitempty"`
}

func newExchangeResponse(exchange *domain.Exchange) exchangeResponse {
	res := exchangeResponse{
		ID:              exchange.ID.String(),
		ProposerID:      exchange.Proposer.String(),
		RecipientID:     exchange.Recipient.String(),
		OfferedGameID:   exchange.OfferedGame.String(),
		RequestedGameID: exchange.RequestedGame.String(),
		Status:          exchange.Status.String(),
		ProposedAt:      exchange.ProposedAt,
		ResolvedAt:      exchange.ResolvedAt,
	}
	if exchange.ParentID != nil {
		res.ParentID = exchange.ParentID.String()
	}
	if exchange.ChildID != nil {
		res.ChildID = exchange.ChildID.String()
	}
	return res
}

func newExchangeListResponse(exchanges []*domain.Exchange) []exchangeResponse {
	list := make([]exchangeResponse, 0, len(exchanges))
	for _, e := range exchanges {
		list = append(list, newExchangeResponse(e))
	}
	return list
}
