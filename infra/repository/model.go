// Package repository provides GORM-backed implementations of the
// persistence contracts in pkg/repository.
package repository

import (
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
)

// Account is the accounts table row.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_user_name"`
	Name        string    `gorm:"not null;uniqueIndex:idx_accounts_user_name"`
	Description string
	Type        string `gorm:"type:varchar(16);not null;default:'SAVINGS'"`
	Balance     int64  `gorm:"not null;default:0"`
	Currency    string `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Account) TableName() string { return "accounts" }

// Category is the categories table row. Name is globally unique.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;uniqueIndex"`
	Description string
	Type        string `gorm:"type:varchar(16);not null;default:'EXPENSE'"`
	Icon        string
	IsSystem    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Category) TableName() string { return "categories" }

// UserCategory is the bridge table attaching categories to users.
type UserCategory struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomName string
	IsActive   bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

func (UserCategory) TableName() string { return "user_categories" }

// Transaction is the transactions table row.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"column:transaction_name;not null"`
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ToAccountID *uuid.UUID
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount      int64     `gorm:"not null"`
	Type        string    `gorm:"column:transaction_type;type:varchar(16);not null"`
	Description string
	Date        time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Transaction) TableName() string { return "transactions" }

// User is the users table row.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"not null;uniqueIndex"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Password  string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(8);not null;default:'USER'"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

func accountToDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Type:        domain.AccountType(m.Type),
		Balance:     m.Balance,
		Currency:    m.Currency,
		Created:     m.CreatedAt,
		Updated:     m.UpdatedAt,
	}
}

func accountToModel(a *domain.Account) *Account {
	return &Account{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Description: a.Description,
		Type:        string(a.Type),
		Balance:     a.Balance,
		Currency:    a.Currency,
		CreatedAt:   a.Created,
		UpdatedAt:   a.Updated,
	}
}

func categoryToDomain(m *Category) *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Type:        domain.CategoryType(m.Type),
		Icon:        m.Icon,
		IsSystem:    m.IsSystem,
		Created:     m.CreatedAt,
		Updated:     m.UpdatedAt,
	}
}

func categoryToModel(c *domain.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Type:        string(c.Type),
		Icon:        c.Icon,
		IsSystem:    c.IsSystem,
		CreatedAt:   c.Created,
		UpdatedAt:   c.Updated,
	}
}

func assignmentToDomain(m *UserCategory) *domain.CategoryAssignment {
	return &domain.CategoryAssignment{
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		CustomName: m.CustomName,
		IsActive:   m.IsActive,
		Created:    m.CreatedAt,
	}
}

func transactionToDomain(m *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		AccountID:   m.AccountID,
		ToAccountID: m.ToAccountID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Type:        domain.TransactionType(m.Type),
		Description: m.Description,
		Date:        m.Date,
		Created:     m.CreatedAt,
		Updated:     m.UpdatedAt,
	}
}

func transactionToModel(t *domain.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		AccountID:   t.AccountID,
		ToAccountID: t.ToAccountID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.Created,
		UpdatedAt:   t.Updated,
	}
}

func userToDomain(m *User) *domain.User {
	return domain.NewUserFromData(
		m.ID, m.Username, m.Email, m.Password,
		domain.Role(m.Role), m.Currency, m.CreatedAt, m.UpdatedAt,
	)
}

func userToModel(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Currency:  u.Currency,
		CreatedAt: u.Created,
		UpdatedAt: u.Updated,
	}
}
