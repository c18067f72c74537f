package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/fintrack/pkg/domain"
	repo "github.com/amirasaad/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository bound to db.
func NewTransactionRepository(db *gorm.DB) *transactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(transactionToModel(t)).Error
}

func (r *transactionRepository) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transactionToDomain(&m), nil
}

func (r *transactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	res := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"transaction_name": t.Name,
			"account_id":       t.AccountID,
			"to_account_id":    t.ToAccountID,
			"category_id":      t.CategoryID,
			"amount":           t.Amount,
			"transaction_type": string(t.Type),
			"description":      t.Description,
			"date":             t.Date,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) List(ctx context.Context, userID uuid.UUID, filter repo.TransactionFilter) ([]*domain.Transaction, error) {
	q := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("user_id = ?", userID)

	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != "" {
		q = q.Where("transaction_type = ?", string(filter.Type))
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var models []Transaction
	err := q.Order("date DESC").
		Offset(filter.Skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	transactions := make([]*domain.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToDomain(&models[i]))
	}
	return transactions, nil
}
