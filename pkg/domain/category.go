package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType tells which side of the ledger a category belongs to.
type CategoryType string

const (
	CategoryTypeIncome   CategoryType = "INCOME"
	CategoryTypeExpense  CategoryType = "EXPENSE"
	CategoryTypeTransfer CategoryType = "TRANSFER"
)

// IsValid reports whether t is one of the known category types.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeTransfer:
		return true
	}
	return false
}

// Category is a globally-unique transaction category. System categories are
// created by admins and shared; users attach them via CategoryAssignment.
type Category struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        CategoryType `json:"category_type"`
	Icon        string       `json:"icon,omitempty"`
	IsSystem    bool         `json:"is_system_category"`
	Created     time.Time    `json:"created_at"`
	Updated     time.Time    `json:"updated_at"`
}

// NewCategory creates a category. System categories carry isSystem=true.
func NewCategory(name, description string, categoryType CategoryType, icon string, isSystem bool) *Category {
	now := time.Now().UTC()
	if categoryType == "" {
		categoryType = CategoryTypeExpense
	}
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Type:        categoryType,
		Icon:        icon,
		IsSystem:    isSystem,
		Created:     now,
		Updated:     now,
	}
}

// CategoryAssignment attaches a category to a user with a custom display
// name and an active flag. Removal is soft: the row stays, is_active flips.
type CategoryAssignment struct {
	UserID     uuid.UUID `json:"user_id"`
	CategoryID uuid.UUID `json:"category_id"`
	CustomName string    `json:"custom_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	Created    time.Time `json:"created_at"`
}

// UserCategory is the user-facing view of an assigned category.
type UserCategory struct {
	Category
	CustomName string    `json:"custom_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	AssignedAt time.Time `json:"assigned_at"`
}
