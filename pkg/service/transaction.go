package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/google/uuid"
)

// TransactionService owns the composite ledger operations: posting a
// transaction together with its balance effect, and reversing/reapplying
// that effect under update and delete. Every operation runs inside one unit
// of work; source accounts are read with a row-level write lock so
// concurrent mutations of the same account serialize at the store.
type TransactionService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewTransactionService creates a TransactionService.
func NewTransactionService(uow repository.UnitOfWork, logger *slog.Logger) *TransactionService {
	return &TransactionService{uow: uow, logger: logger}
}

// CreateTransactionInput carries a validated create request.
// Amount is in minor units and must be positive.
type CreateTransactionInput struct {
	Name        string
	Amount      int64
	Type        domain.TransactionType
	AccountID   uuid.UUID
	ToAccountID *uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
}

// UpdateTransactionInput carries a partial update; nil fields keep their
// current value. Setting Type away from TRANSFER clears the destination.
type UpdateTransactionInput struct {
	Name        *string
	Amount      *int64
	Type        *domain.TransactionType
	AccountID   *uuid.UUID
	ToAccountID *uuid.UUID
	CategoryID  *uuid.UUID
	Description *string
	Date        *time.Time
}

// Create posts a transaction: it validates the references, applies the
// balance effect and persists the record plus mutated balances atomically.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, in CreateTransactionInput) (*domain.Transaction, error) {
	var created *domain.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		src, err := accounts.GetForUpdate(ctx, in.AccountID)
		if err != nil {
			return err
		}
		if src.UserID != userID {
			return domain.ErrAccountNotFound
		}

		var dst *domain.Account
		if in.Type == domain.TransactionTypeTransfer {
			if in.ToAccountID == nil {
				return domain.ErrInvalidTransfer
			}
			if *in.ToAccountID == in.AccountID {
				return domain.ErrInvalidTransfer
			}
			dst, err = accounts.GetForUpdate(ctx, *in.ToAccountID)
			if err != nil {
				return err
			}
			if dst.UserID != userID {
				return domain.ErrAccountNotFound
			}
		}

		if _, err = categories.Get(ctx, in.CategoryID); err != nil {
			return err
		}

		t := domain.NewTransaction(
			userID, in.Name, in.AccountID, in.ToAccountID, in.CategoryID,
			in.Amount, in.Type, in.Description, in.Date,
		)
		if err = domain.Apply(t, src, dst); err != nil {
			return err
		}

		if err = accounts.Update(ctx, src); err != nil {
			return err
		}
		if dst != nil {
			if err = accounts.Update(ctx, dst); err != nil {
				return err
			}
		}
		if err = transactions.Create(ctx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("transaction created",
		"transaction_id", created.ID,
		"user_id", userID,
		"type", created.Type,
		"amount", created.Amount,
	)
	return created, nil
}

// Update edits a transaction: the original effect is reversed using a
// snapshot taken before any change, new references are resolved, and the
// merged state is applied. Any failure after the reverse re-applies the
// snapshot before surfacing, so balances never drift on errors.
func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, in UpdateTransactionInput) (*domain.Transaction, error) {
	if in.Amount != nil && *in.Amount <= 0 {
		return nil, domain.ErrAmountMustBePositive
	}

	var updated *domain.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		existing, err := transactions.Get(ctx, userID, id)
		if err != nil {
			return err
		}

		// Snapshot the original effect before anything changes: the update
		// may swap the account, amount, type or destination.
		snapshot := *existing

		origSrc, err := accounts.GetForUpdate(ctx, snapshot.AccountID)
		if err != nil {
			return err
		}
		var origDst *domain.Account
		if snapshot.Type == domain.TransactionTypeTransfer && snapshot.ToAccountID != nil {
			origDst, err = accounts.GetForUpdate(ctx, *snapshot.ToAccountID)
			if err != nil {
				return err
			}
		}

		domain.Reverse(&snapshot, origSrc, origDst)
		restore := func() error {
			if restoreErr := domain.Apply(&snapshot, origSrc, origDst); restoreErr != nil {
				return fmt.Errorf("%w: %v", domain.ErrCorruptionRisk, restoreErr)
			}
			return nil
		}

		// resolve reuses the in-memory copies for accounts already loaded in
		// this unit of work; their balances carry the reverse that the store
		// has not seen yet.
		resolve := func(id uuid.UUID) (*domain.Account, error) {
			if id == origSrc.ID {
				return origSrc, nil
			}
			if origDst != nil && id == origDst.ID {
				return origDst, nil
			}
			a, err := accounts.GetForUpdate(ctx, id)
			if err != nil {
				return nil, err
			}
			if a.UserID != userID {
				return nil, domain.ErrAccountNotFound
			}
			return a, nil
		}

		next := mergeChanges(existing, in)

		if next.Type == domain.TransactionTypeTransfer {
			if next.ToAccountID == nil || *next.ToAccountID == next.AccountID {
				if err = restore(); err != nil {
					return err
				}
				return domain.ErrInvalidTransfer
			}
		} else {
			next.ToAccountID = nil
		}

		newSrc, err := resolve(next.AccountID)
		if err != nil {
			if restoreErr := restore(); restoreErr != nil {
				return restoreErr
			}
			return err
		}

		var newDst *domain.Account
		if next.ToAccountID != nil {
			newDst, err = resolve(*next.ToAccountID)
			if err != nil {
				if restoreErr := restore(); restoreErr != nil {
					return restoreErr
				}
				return err
			}
		}

		if next.CategoryID != snapshot.CategoryID {
			if _, err = categories.Get(ctx, next.CategoryID); err != nil {
				if restoreErr := restore(); restoreErr != nil {
					return restoreErr
				}
				return err
			}
		}

		if err = domain.Apply(next, newSrc, newDst); err != nil {
			if restoreErr := restore(); restoreErr != nil {
				return restoreErr
			}
			return err
		}

		for _, a := range uniqueAccounts(origSrc, origDst, newSrc, newDst) {
			if err = accounts.Update(ctx, a); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrStorageConflict, err)
			}
		}
		if err = transactions.Update(ctx, next); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorageConflict, err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("transaction updated", "transaction_id", updated.ID, "user_id", userID)
	return updated, nil
}

// Delete reverses the transaction's effect and removes the record. If the
// removal fails the reverse is undone before the error surfaces.
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		existing, err := transactions.Get(ctx, userID, id)
		if err != nil {
			return err
		}

		src, err := accounts.GetForUpdate(ctx, existing.AccountID)
		if err != nil {
			return err
		}
		var dst *domain.Account
		if existing.Type == domain.TransactionTypeTransfer && existing.ToAccountID != nil {
			dst, err = accounts.GetForUpdate(ctx, *existing.ToAccountID)
			if err != nil {
				return err
			}
		}

		domain.Reverse(existing, src, dst)

		if err = accounts.Update(ctx, src); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorageConflict, err)
		}
		if dst != nil {
			if err = accounts.Update(ctx, dst); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrStorageConflict, err)
			}
		}
		if err = transactions.Delete(ctx, existing.ID); err != nil {
			if restoreErr := domain.Apply(existing, src, dst); restoreErr != nil {
				return fmt.Errorf("%w: %v", domain.ErrCorruptionRisk, restoreErr)
			}
			return fmt.Errorf("%w: %v", domain.ErrStorageConflict, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("transaction deleted", "transaction_id", id, "user_id", userID)
	return nil
}

// Get returns one of the user's transactions.
func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return transactions.Get(ctx, userID, id)
}

// List returns the user's transactions, filtered and paginated, newest
// first. An account filter must reference one of the caller's accounts.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filter repository.TransactionFilter) ([]*domain.Transaction, error) {
	if filter.AccountID != nil {
		accounts, err := s.uow.AccountRepository()
		if err != nil {
			return nil, err
		}
		a, err := accounts.Get(ctx, *filter.AccountID)
		if err != nil {
			return nil, err
		}
		if a.UserID != userID {
			return nil, domain.ErrAccountNotFound
		}
	}
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return transactions.List(ctx, userID, filter)
}

func mergeChanges(existing *domain.Transaction, in UpdateTransactionInput) *domain.Transaction {
	next := *existing
	if in.Name != nil {
		next.Name = *in.Name
	}
	if in.Amount != nil {
		next.Amount = *in.Amount
	}
	if in.Type != nil {
		next.Type = *in.Type
	}
	if in.AccountID != nil {
		next.AccountID = *in.AccountID
	}
	if in.ToAccountID != nil {
		next.ToAccountID = in.ToAccountID
	}
	if in.CategoryID != nil {
		next.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.Date != nil {
		next.Date = *in.Date
	}
	next.Updated = time.Now().UTC()
	return &next
}

func uniqueAccounts(accounts ...*domain.Account) []*domain.Account {
	seen := make(map[uuid.UUID]bool, len(accounts))
	out := make([]*domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a == nil || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}
