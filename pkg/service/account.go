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

// AccountService provides account CRUD scoped to the owning user.
type AccountService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(uow repository.UnitOfWork, logger *slog.Logger) *AccountService {
	return &AccountService{uow: uow, logger: logger}
}

// CreateAccountInput carries a validated create request.
// Balance is the opening balance in minor units.
type CreateAccountInput struct {
	Name        string
	Description string
	Type        domain.AccountType
	Balance     int64
	Currency    string
}

// UpdateAccountInput carries a partial update; nil fields keep their value.
// Balance is deliberately absent: balances only move through the ledger.
type UpdateAccountInput struct {
	Name        *string
	Description *string
	Type        *domain.AccountType
	Currency    *string
}

// CreateAccount creates an account. The name must be unique among the
// user's accounts.
func (s *AccountService) CreateAccount(ctx context.Context, userID uuid.UUID, in CreateAccountInput) (*domain.Account, error) {
	var created *domain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accounts.GetByName(ctx, userID, in.Name); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		a := domain.NewAccount(userID, in.Name, in.Description, in.Type, in.Balance, in.Currency)
		if err := accounts.Create(ctx, a); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account created", "account_id", created.ID, "user_id", userID, "type", created.Type)
	return created, nil
}

// GetAccount returns one of the user's accounts.
func (s *AccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*domain.Account, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	a, err := accounts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// ListAccounts returns all of the user's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return accounts.ListByUser(ctx, userID)
}

// UpdateAccount applies a partial update to one of the user's accounts.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, id uuid.UUID, in UpdateAccountInput) (*domain.Account, error) {
	var updated *domain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if a.UserID != userID {
			return domain.ErrAccountNotFound
		}
		if in.Name != nil && *in.Name != a.Name {
			if _, err := accounts.GetByName(ctx, userID, *in.Name); err == nil {
				return domain.ErrAlreadyExists
			} else if !errors.Is(err, domain.ErrAccountNotFound) {
				return err
			}
			a.Name = *in.Name
		}
		if in.Description != nil {
			a.Description = *in.Description
		}
		if in.Type != nil {
			a.Type = *in.Type
		}
		if in.Currency != nil {
			a.Currency = *in.Currency
		}
		a.Updated = time.Now().UTC()
		if err := accounts.Update(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAccount removes one of the user's accounts. Transactions referencing
// it are removed by the store's cascade.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.Get(ctx, id)
		if err != nil {
			return err
		}
		if a.UserID != userID {
			return domain.ErrAccountNotFound
		}
		return accounts.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("account deleted", "account_id", id, "user_id", userID)
	return nil
}
