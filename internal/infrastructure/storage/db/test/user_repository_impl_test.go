package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

func TestUserRepositoryImplementations(t *testing.T) {
	repositories := createRepositories(t)

	for i := range repositories {
		repo := repositories[i]

		t.Run(repo.Name, func(t *testing.T) {
			t.Run("testAddAndGetUser", func(t *testing.T) {
				testAddAndGetUser(t, repo)
			})

			t.Run("testAddUserDuplicatedEmail", func(t *testing.T) {
				testAddUserDuplicatedEmail(t, repo)
			})

			t.Run("testUpdateUser", func(t *testing.T) {
				testUpdateUser(t, repo)
			})
		})
	}
}

func testAddAndGetUser(t *testing.T, repo testRepository) {
	user := makeRandomUser()

	iRes, err := repo.write(func(ctx context.Context) (interface{}, error) {
		if err := repo.DBManager.UserRepository().AddUser(ctx, user); err != nil {
			return nil, err
		}
		return repo.DBManager.UserRepository().GetUser(ctx, user.ID)
	})
	require.NoError(t, err)
	found, ok := iRes.(*domain.User)
	require.True(t, ok)
	require.NotNil(t, found)
	require.Equal(t, user.Email, found.Email)

	iRes, err = repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.UserRepository().GetUserByEmail(ctx, user.Email)
	})
	require.NoError(t, err)
	byEmail, ok := iRes.(*domain.User)
	require.True(t, ok)
	require.Equal(t, user.ID, byEmail.ID)

	iRes, err = repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.UserRepository().GetUser(ctx, uuid.New())
	})
	require.NoError(t, err)
	missing, _ := iRes.(*domain.User)
	require.Nil(t, missing)
}

func testAddUserDuplicatedEmail(t *testing.T, repo testRepository) {
	user := makeRandomUser()

	_, err := repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.UserRepository().AddUser(ctx, user)
	})
	require.NoError(t, err)

	impostor := makeRandomUser()
	impostor.Email = user.Email

	_, err = repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.UserRepository().AddUser(ctx, impostor)
	})
	require.Error(t, err)
}

func testUpdateUser(t *testing.T, repo testRepository) {
	user := makeRandomUser()

	_, err := repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.UserRepository().AddUser(ctx, user)
	})
	require.NoError(t, err)

	newName := randomString(10)
	_, err = repo.write(func(ctx context.Context) (interface{}, error) {
		return nil, repo.DBManager.UserRepository().UpdateUser(
			ctx, user.ID, func(u *domain.User) (*domain.User, error) {
				u.Name = newName
				return u, nil
			},
		)
	})
	require.NoError(t, err)

	iRes, err := repo.read(func(ctx context.Context) (interface{}, error) {
		return repo.DBManager.UserRepository().GetUser(ctx, user.ID)
	})
	require.NoError(t, err)
	updated := iRes.(*domain.User)
	require.Equal(t, newName, updated.Name)
}
