package dbbadger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
)

type userRepositoryImpl struct {
	store *badgerhold.Store
}

// NewUserRepositoryImpl initializes a badger implementation of the
// domain.UserRepository
func NewUserRepositoryImpl(store *badgerhold.Store) domain.UserRepository {
	return userRepositoryImpl{store}
}

func (r userRepositoryImpl) AddUser(
	ctx context.Context, user *domain.User,
) error {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxInsert(tx, user.ID, user)
	}
	return r.store.Insert(user.ID, user)
}

func (r userRepositoryImpl) GetUser(
	ctx context.Context, userID uuid.UUID,
) (*domain.User, error) {
	var user domain.User
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, userID, &user)
	} else {
		err = r.store.Get(userID, &user)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r userRepositoryImpl) GetUserByEmail(
	ctx context.Context, email string,
) (*domain.User, error) {
	query := badgerhold.Where("Email").Eq(email)

	var users []domain.User
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxFind(tx, &users, query)
	} else {
		err = r.store.Find(&users, query)
	}
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r userRepositoryImpl) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	updateFn func(u *domain.User) (*domain.User, error),
) error {
	currentUser, err := r.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if currentUser == nil {
		return ErrUserNotFound
	}

	updatedUser, err := updateFn(currentUser)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, userID, *updatedUser)
	}
	return r.store.Update(userID, *updatedUser)
}
