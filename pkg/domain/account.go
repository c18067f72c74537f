package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountType classifies an account as an asset (something owned) or a
// liability (money owed). Only asset accounts enforce a non-negative balance.
type AccountType string

const (
	// Asset accounts
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeProperty   AccountType = "PROPERTY"

	// Liability accounts
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeLoan       AccountType = "LOAN"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash,
		AccountTypeInvestment, AccountTypeProperty,
		AccountTypeCreditCard, AccountTypeLoan:
		return true
	}
	return false
}

// IsAsset reports whether t represents something owned.
func (t AccountType) IsAsset() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash,
		AccountTypeInvestment, AccountTypeProperty:
		return true
	}
	return false
}

// IsLiability reports whether t represents money owed.
func (t AccountType) IsLiability() bool { return t.IsValid() && !t.IsAsset() }

// Account represents a user's financial account.
//
// Balance is a derived-but-cached value in minor units: it must always equal
// the initial balance plus the sum of all currently-applied transaction
// effects touching this account.
type Account struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Name        string      `json:"account_name"`
	Description string      `json:"description,omitempty"`
	Type        AccountType `json:"account_type"`
	Balance     int64       `json:"balance"`
	Currency    string      `json:"currency"`
	Created     time.Time   `json:"created_at"`
	Updated     time.Time   `json:"updated_at"`
}

// NewAccount creates an account owned by userID with the given opening balance.
func NewAccount(userID uuid.UUID, name, description string, accountType AccountType, balance int64, currency string) *Account {
	now := time.Now().UTC()
	if currency == "" {
		currency = "USD"
	}
	if accountType == "" {
		accountType = AccountTypeSavings
	}
	return &Account{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Type:        accountType,
		Balance:     balance,
		Currency:    currency,
		Created:     now,
		Updated:     now,
	}
}
