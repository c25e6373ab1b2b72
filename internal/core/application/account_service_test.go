package application_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gameswap-network/gameswapd/internal/core/application"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()

	h := newTestHarness()

	user, err := h.account.Register(
		ctx, "alice", "alice@test.local", "S3cr3t!",
	)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.NotEmpty(t, user.PasswordHash)

	found, err := h.account.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, found.Email)

	byEmail, err := h.account.GetUserByEmail(ctx, "alice@test.local")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	authed, err := h.account.Authenticate(ctx, "alice@test.local", "S3cr3t!")
	require.NoError(t, err)
	require.Equal(t, user.ID, authed.ID)
}

func TestFailingRegister(t *testing.T) {
	t.Parallel()

	h := newTestHarness()

	_, err := h.account.Register(ctx, "alice", "alice@test.local", "S3cr3t!")
	require.NoError(t, err)

	_, err = h.account.Register(ctx, "impostor", "alice@test.local", "0ther!")
	require.ErrorIs(t, err, application.ErrEmailAlreadyRegistered)
}

func TestFailingAuthenticate(t *testing.T) {
	t.Parallel()

	h := newTestHarness()

	_, err := h.account.Register(ctx, "alice", "alice@test.local", "S3cr3t!")
	require.NoError(t, err)

	t.Run("wrong_password", func(t *testing.T) {
		_, err := h.account.Authenticate(ctx, "alice@test.local", "nope")
		require.ErrorIs(t, err, application.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := h.account.Authenticate(ctx, "ghost@test.local", "S3cr3t!")
		require.ErrorIs(t, err, application.ErrInvalidCredentials)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := h.account.GetUser(ctx, uuid.New())
		require.ErrorIs(t, err, application.ErrUserNotFound)
	})
}
