package application

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gameswap-network/gameswapd/internal/core/domain"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
)

// AccountService manages user registration and credential checks. It is
// plain bookkeeping around the negotiation engine: the engine itself only
// ever sees user ids.
type AccountService interface {
	Register(
		ctx context.Context, name, email, password string,
	) (*domain.User, error)
	Authenticate(
		ctx context.Context, email, password string,
	) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type accountService struct {
	repoManager ports.RepoManager
}

// NewAccountService returns an AccountService backed by the given
// repositories.
func NewAccountService(repoManager ports.RepoManager) AccountService {
	return &accountService{repoManager: repoManager}
}

func (s *accountService) Register(
	ctx context.Context, name, email, password string,
) (*domain.User, error) {
	existing, err := s.repoManager.UserRepository().GetUserByEmail(ctx, email)
	if err != nil {
		return nil, persistenceError(err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	var hash []byte
	if password != "" {
		if hash, err = hashPassword(password); err != nil {
			return nil, err
		}
	}

	user, err := domain.NewUser(name, email, hash)
	if err != nil {
		return nil, err
	}
	if err := s.repoManager.UserRepository().AddUser(ctx, user); err != nil {
		return nil, persistenceError(err)
	}

	log.WithField("user", user.ID).Debug("user registered")
	return user, nil
}

func (s *accountService) Authenticate(
	ctx context.Context, email, password string,
) (*domain.User, error) {
	user, err := s.repoManager.UserRepository().GetUserByEmail(ctx, email)
	if err != nil {
		return nil, persistenceError(err)
	}
	if user == nil || !verifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *accountService) GetUser(
	ctx context.Context, userID uuid.UUID,
) (*domain.User, error) {
	user, err := s.repoManager.UserRepository().GetUser(ctx, userID)
	if err != nil {
		return nil, persistenceError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *accountService) GetUserByEmail(
	ctx context.Context, email string,
) (*domain.User, error) {
	user, err := s.repoManager.UserRepository().GetUserByEmail(ctx, email)
	if err != nil {
		return nil, persistenceError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
