package account

import (
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
)

// CreateAccountRequest carries a new account. Balance is the opening
// balance in major units (e.g. 12.34).
type CreateAccountRequest struct {
	Name        string  `json:"account_name" validate:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	Type        string  `json:"account_type,omitempty" validate:"omitempty,oneof=CHECKING SAVINGS CASH INVESTMENT PROPERTY CREDIT_CARD LOAN"`
	Balance     float64 `json:"balance,omitempty"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// UpdateAccountRequest is a partial update; absent fields keep their value.
// There is no balance field: balances only move through transactions.
type UpdateAccountRequest struct {
	Name        *string `json:"account_name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Type        *string `json:"account_type,omitempty" validate:"omitempty,oneof=CHECKING SAVINGS CASH INVESTMENT PROPERTY CREDIT_CARD LOAN"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// AccountResponse presents an account with its balance in major units.
type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"account_name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"account_type"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency"`
	Created     time.Time `json:"created_at"`
	Updated     time.Time `json:"updated_at"`
}

func toResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Description: a.Description,
		Type:        string(a.Type),
		Balance:     domain.ToMajorUnits(a.Balance),
		Currency:    a.Currency,
		Created:     a.Created,
		Updated:     a.Updated,
	}
}

func toResponseList(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toResponse(a))
	}
	return out
}
