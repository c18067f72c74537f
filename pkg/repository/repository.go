// Package repository defines persistence contracts for the tracker.
// Implementations live under infra/repository; services depend only on
// these interfaces so every composite operation can run inside one
// UnitOfWork against the same DB session.
package repository

import (
	"context"
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
)

// AccountRepository persists accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	// Get returns the account or domain.ErrAccountNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// GetForUpdate is Get with a row-level write lock; it must only be used
	// inside a unit of work so concurrent balance mutations serialize.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository persists categories and user assignments.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	ListSystem(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error

	Assign(ctx context.Context, a *domain.CategoryAssignment) error
	GetAssignment(ctx context.Context, userID, categoryID uuid.UUID) (*domain.CategoryAssignment, error)
	UpdateAssignment(ctx context.Context, a *domain.CategoryAssignment) error
	ListAssigned(ctx context.Context, userID uuid.UUID) ([]*domain.UserCategory, error)
}

// TransactionFilter narrows and pages transaction listings.
// Zero values mean "no filter"; results are newest-first by date.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       domain.TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
	Skip       int
	Limit      int
}

// TransactionRepository persists ledger records.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	// Get returns the user's transaction or domain.ErrTransactionNotFound.
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error)
	Update(ctx context.Context, t *domain.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*domain.Transaction, error)
}

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
