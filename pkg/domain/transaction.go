package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TransactionType determines the direction of a transaction's balance effect.
// Amounts are always stored positive; the type carries the sign.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is an immutable ledger record. AccountID is the source account;
// ToAccountID is set only for transfers.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Name        string          `json:"transaction_name"`
	AccountID   uuid.UUID       `json:"account_id"`
	ToAccountID *uuid.UUID      `json:"to_account_id,omitempty"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"transaction_type"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"transaction_date"`
	Created     time.Time       `json:"created_at"`
	Updated     time.Time       `json:"updated_at"`
}

// NewTransaction creates a transaction record. The amount must already be
// validated positive at the boundary; date defaults to now when zero.
func NewTransaction(
	userID uuid.UUID,
	name string,
	accountID uuid.UUID,
	toAccountID *uuid.UUID,
	categoryID uuid.UUID,
	amount int64,
	transactionType TransactionType,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		AccountID:   accountID,
		ToAccountID: toAccountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		Date:        date,
		Created:     now,
		Updated:     now,
	}
}

// ToMinorUnits converts a boundary float amount (e.g. 12.34) to minor units.
// Domain and storage only ever see minor units so reversal is exact.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToMajorUnits converts minor units back to the boundary representation.
func ToMajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
