package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common domain errors
var (
	// ErrAccountNotFound is returned when an account does not exist or is not owned by the caller.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTransactionNotFound is returned when a transaction does not exist or is not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientBalance is returned when an outgoing transaction exceeds the source account balance.
	ErrInsufficientBalance = errors.New("insufficient balance in source account")
	// ErrInvalidTransfer is returned when a transfer is missing a destination or targets its own source.
	ErrInvalidTransfer = errors.New("invalid transfer destination")
	// ErrAmountMustBePositive is returned when a transaction amount is not positive.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")
	// ErrStorageConflict is returned when a commit fails due to concurrent modification.
	ErrStorageConflict = errors.New("storage conflict")
	// ErrCorruptionRisk is returned when restoring pre-operation balances itself failed.
	// Stored balances can no longer be guaranteed to match applied transaction effects.
	ErrCorruptionRisk = errors.New("balance restore failed, ledger consistency at risk")
	// ErrUserUnauthorized is returned when the caller identity cannot be verified.
	ErrUserUnauthorized = errors.New("user unauthorized")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyExists is returned when creating a resource that already exists.
	ErrAlreadyExists = errors.New("resource already exists")
)

// InsufficientBalanceError carries enough context to render a precise message:
// which account was short, what was required and what was available.
// It matches ErrInsufficientBalance under errors.Is.
type InsufficientBalanceError struct {
	AccountID uuid.UUID
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf(
		"insufficient balance in account %s: required %d, available %d",
		e.AccountID, e.Required, e.Available,
	)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }
