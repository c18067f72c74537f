package transaction

import (
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
)

// CreateTransactionRequest carries a new transaction. Amount is in major
// units and must be positive; the type carries the direction.
type CreateTransactionRequest struct {
	Name        string     `json:"transaction_name" validate:"required,min=1,max=100"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Type        string     `json:"transaction_type" validate:"required,oneof=INCOME EXPENSE TRANSFER"`
	AccountID   uuid.UUID  `json:"account_id" validate:"required"`
	ToAccountID *uuid.UUID `json:"to_account_id,omitempty"`
	CategoryID  uuid.UUID  `json:"category_id" validate:"required"`
	Description string     `json:"description,omitempty" validate:"max=500"`
	Date        *time.Time `json:"transaction_date,omitempty"`
}

// UpdateTransactionRequest is a partial update; absent fields keep their
// value.
type UpdateTransactionRequest struct {
	Name        *string    `json:"transaction_name,omitempty" validate:"omitempty,min=1,max=100"`
	Amount      *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Type        *string    `json:"transaction_type,omitempty" validate:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	AccountID   *uuid.UUID `json:"account_id,omitempty"`
	ToAccountID *uuid.UUID `json:"to_account_id,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Date        *time.Time `json:"transaction_date,omitempty"`
}

// TransactionResponse presents a transaction with its amount in major units.
type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"transaction_name"`
	AccountID   uuid.UUID  `json:"account_id"`
	ToAccountID *uuid.UUID `json:"to_account_id,omitempty"`
	CategoryID  uuid.UUID  `json:"category_id"`
	Amount      float64    `json:"amount"`
	Type        string     `json:"transaction_type"`
	Description string     `json:"description,omitempty"`
	Date        time.Time  `json:"transaction_date"`
	Created     time.Time  `json:"created_at"`
	Updated     time.Time  `json:"updated_at"`
}

func toResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		AccountID:   t.AccountID,
		ToAccountID: t.ToAccountID,
		CategoryID:  t.CategoryID,
		Amount:      domain.ToMajorUnits(t.Amount),
		Type:        string(t.Type),
		Description: t.Description,
		Date:        t.Date,
		Created:     t.Created,
		Updated:     t.Updated,
	}
}

func toResponseList(transactions []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toResponse(t))
	}
	return out
}
