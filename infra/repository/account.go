package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db.
func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	return r.db.WithContext(ctx).Create(accountToModel(a)).Error
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&m), nil
}

// GetForUpdate takes a row-level write lock so concurrent ledger operations
// touching the same account serialize at the store.
func (r *accountRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		First(&m, "user_id = ? AND name = ?", userID, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	var models []Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, accountToDomain(&models[i]))
	}
	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"name":        a.Name,
			"description": a.Description,
			"type":        string(a.Type),
			"balance":     a.Balance,
			"currency":    a.Currency,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
