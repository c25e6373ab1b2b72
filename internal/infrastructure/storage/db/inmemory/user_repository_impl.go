package inmemory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type userRepositoryImpl struct {
	store *store
}

func newUserRepositoryImpl(store *store) domain.UserRepository {
	return &userRepositoryImpl{store}
}

func (r *userRepositoryImpl) AddUser(
	ctx context.Context, user *domain.User,
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	if _, ok := r.store.users[user.ID]; ok {
		return ErrUserAlreadyExists
	}
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrUserAlreadyExists
		}
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepositoryImpl) GetUser(
	ctx context.Context, userID uuid.UUID,
) (*domain.User, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepositoryImpl) GetUserByEmail(
	ctx context.Context, email string,
) (*domain.User, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepositoryImpl) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	updateFn func(u *domain.User) (*domain.User, error),
) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	user, ok := r.store.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	updated, err := updateFn(&user)
	if err != nil {
		return err
	}
	r.store.users[userID] = *updated
	return nil
}
