package db_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

func makeRandomUser() *domain.User {
	name := randomString(8)
	user, _ := domain.NewUser(
		name, fmt.Sprintf("%s@test.local", uuid.NewString()[:13]), nil,
	)
	return user
}

func makeRandomGame(ownerID uuid.UUID) *domain.Game {
	game, _ := domain.NewGame(randomString(12), randomString(6), ownerID)
	return game
}

func makeRandomExchange() *domain.Exchange {
	exchange, _ := domain.NewExchange(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
	)
	return exchange
}

func randomString(length int) string {
	return uuid.NewString()[:length]
}

type testRepository struct {
	Name      string
	DBManager ports.RepoManager
}

func (r testRepository) read(
	query func(context.Context) (interface{}, error),
) (interface{}, error) {
	return r.DBManager.RunTransaction(context.Background(), true, query)
}

func (r testRepository) write(
	query func(context.Context) (interface{}, error),
) (interface{}, error) {
	return r.DBManager.RunTransaction(context.Background(), false, query)
}
