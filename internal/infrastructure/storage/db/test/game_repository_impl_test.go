package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

func TestGameRepositoryImplementations(t *testing.T) {
	repositories := createRepositories(t)

	for i := range repositories {
		repo := repositories[i]

		t.Run(repo.Name, func(t *testing.T) {
			t.Run("testAddAndGetGame", func(t *testing.T) {
				testAddAndGetGame(t, repo)
			})

			t.Run("testGetGamesForOwner", func(t *testing.T) {
				testGetGamesForOwner(t, repo)
			})

			t.Run("testSearchGames", func(t *testing.T) {
				testSearchGames(t, repo)
			})

			t.Run("testUpdateGame", func(t *testing.T) {
				testUpdateGame(t, repo)
			})

			t.Run("testDeleteGame", func(t *testing.T) {
				testDeleteGame(t, repo)
			})
		})
	}
}

func testAddAndGetGame(t *testing.T, repo testRepository) {
	game := makeRandomGame(uuid.New())

	iRes, err := repo.write(func(ctx context.Context) (interface{}, error) {
		if err := repo.DBManager.GameRepository().AddGame(ctx, game); err != nil {
			return nil, err
		}
		return repo.DBManager.GameRepository().GetGame(ctx, game.ID)
	})
	require.NoError(t, err)
	found, ok := iRes.(*domain.Game)
	require.True(t, ok)
	require.NotNil(t, found)
	require.Equal(t, game.Title, found.Title)
	require.True(t, found.IsAvailable())

	iRes, err = repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.GameRepository().GetGame(ctx, uuid.New())
	})
	require.NoError(t, err)
	missing, _ := iRes.(*domain.Game)
	require.Nil(t, missing)
}

func testGetGamesForOwner(t *testing.T, repo testRepository) {
	ownerID := uuid.New()

	_, err := repo.write(func(ctx context.Context) (interface{}, error) {
		for i := 0; i < 3; i++ {
			if err := repo.DBManager.GameRepository().AddGame(
				ctx, makeRandomGame(ownerID),
			); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	require.NoError(t, err)

	iRes, err := repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.GameRepository().GetGamesForOwner(ctx, ownerID)
	})
	require.NoError(t, err)
	games, ok := iRes.([]*domain.Game)
	require.True(t, ok)
	require.Len(t, games, 3)
}

func testSearchGames(t *testing.T, repo testRepository) {
	ownerID := uuid.New()
	game, err := domain.NewGame("Twilight Struggle", "wargame", ownerID)
	require.NoError(t, err)

	_, err = repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.GameRepository().AddGame(ctx, game)
	})
	require.NoError(t, err)

	iRes, err := repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.GameRepository().SearchGames(
			ctx, "twilight", "", false,
		)
	})
	require.NoError(t, err)
	byTitle, ok := iRes.([]*domain.Game)
	require.True(t, ok)
	require.Len(t, byTitle, 1)
	require.Equal(t, game.ID, byTitle[0].ID)

	iRes, err = repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.GameRepository().SearchGames(
			ctx, "", "wargame", true,
		)
	})
	require.NoError(t, err)
	byGenre, ok := iRes.([]*domain.Game)
	require.True(t, ok)
	require.Len(t, byGenre, 1)
}

func testUpdateGame(t *testing.T, repo testRepository) {
	game := makeRandomGame(uuid.New())

	_, err := repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.GameRepository().AddGame(ctx, game)
	})
	require.NoError(t, err)

	_, err = repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.GameRepository().UpdateGame(
			ctx, game.ID, func(g *domain.Game) (*domain.Game, error) {
				if err := g.Reserve(); err != nil {
					return nil, err
				}
				return g, nil
			},
		)
	})
	require.NoError(t, err)

	iRes, err := repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.GameRepository().GetGame(ctx, game.ID)
	})
	require.NoError(t, err)
	updated := iRes.(*domain.Game)
	require.True(t, updated.IsReserved())
}

func testDeleteGame(t *testing.T, repo testRepository) {
	game := makeRandomGame(uuid.New())

	_, err := repo.write(func(ctx context.Context) (interface{}, error) {
		if err := repo.DBManager.GameRepository().AddGame(ctx, game); err != nil {
			return nil, err
		}
		return nil, repo.DBManager.GameRepository().DeleteGame(ctx, game.ID)
	})
	require.NoError(t, err)

	iRes, err := repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.GameRepository().GetGame(ctx, game.ID)
	})
	require.NoError(t, err)
	deleted, _ := iRes.(*domain.Game)
	require.Nil(t, deleted)
}
