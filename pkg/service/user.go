package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/google/uuid"
)

// UserService provides registration and user management.
type UserService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(uow repository.UnitOfWork, logger *slog.Logger) *UserService {
	return &UserService{uow: uow, logger: logger}
}

// UpdateUserInput carries a partial profile update.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Currency *string
}

// Register creates a user with a hashed password. Username and email must
// both be unused.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	var created *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if _, err := users.GetByEmail(ctx, email); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		if _, err := users.GetByUsername(ctx, username); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		u, err := domain.NewUser(username, email, password)
		if err != nil {
			return err
		}
		if err := users.Create(ctx, u); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user_id", created.ID, "username", created.Username)
	return created, nil
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	users, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	return users.Get(ctx, id)
}

// List returns all users. Admin only; enforced at the HTTP layer.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	return users.List(ctx)
}

// Update applies a partial profile update.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	var updated *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, id)
		if err != nil {
			return err
		}
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Password != nil {
			if err := u.SetPassword(*in.Password); err != nil {
				return err
			}
		}
		if in.Currency != nil {
			u.Currency = *in.Currency
		}
		u.Updated = time.Now().UTC()
		if err := users.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateRole changes a user's role. Admin only; enforced at the HTTP layer.
func (s *UserService) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	var updated *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, id)
		if err != nil {
			return err
		}
		u.Role = role
		u.Updated = time.Now().UTC()
		if err := users.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user role updated", "user_id", id, "role", role)
	return updated, nil
}

// Delete removes a user. Accounts and their transactions cascade at the store.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		return users.Delete(ctx, id)
	})
}
