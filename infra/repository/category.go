package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository bound to db.
func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(categoryToModel(c)).Error
}

func (r *categoryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var m Category
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return categoryToDomain(&m), nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var m Category
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return categoryToDomain(&m), nil
}

func (r *categoryRepository) ListSystem(ctx context.Context) ([]*domain.Category, error) {
	var models []Category
	err := r.db.WithContext(ctx).
		Where("is_system = ?", true).
		Order("name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(models))
	for i := range models {
		categories = append(categories, categoryToDomain(&models[i]))
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res := r.db.WithContext(ctx).
		Model(&Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"type":        string(c.Type),
			"icon":        c.Icon,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) Assign(ctx context.Context, a *domain.CategoryAssignment) error {
	return r.db.WithContext(ctx).Create(&UserCategory{
		UserID:     a.UserID,
		CategoryID: a.CategoryID,
		CustomName: a.CustomName,
		IsActive:   a.IsActive,
		CreatedAt:  a.Created,
	}).Error
}

func (r *categoryRepository) GetAssignment(ctx context.Context, userID, categoryID uuid.UUID) (*domain.CategoryAssignment, error) {
	var m UserCategory
	err := r.db.WithContext(ctx).
		First(&m, "user_id = ? AND category_id = ?", userID, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return assignmentToDomain(&m), nil
}

func (r *categoryRepository) UpdateAssignment(ctx context.Context, a *domain.CategoryAssignment) error {
	res := r.db.WithContext(ctx).
		Model(&UserCategory{}).
		Where("user_id = ? AND category_id = ?", a.UserID, a.CategoryID).
		Updates(map[string]any{
			"custom_name": a.CustomName,
			"is_active":   a.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// assignedRow flattens the categories/user_categories join.
type assignedRow struct {
	ID          uuid.UUID
	Name        string
	Description string
	Type        string
	Icon        string
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CustomName  string
	IsActive    bool
	AssignedAt  time.Time
}

func (r *categoryRepository) ListAssigned(ctx context.Context, userID uuid.UUID) ([]*domain.UserCategory, error) {
	var rows []assignedRow
	err := r.db.WithContext(ctx).
		Model(&Category{}).
		Select("categories.*, uc.custom_name, uc.is_active, uc.created_at AS assigned_at").
		Joins("JOIN user_categories uc ON uc.category_id = categories.id").
		Where("uc.user_id = ? AND uc.is_active = ?", userID, true).
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	categories := make([]*domain.UserCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, &domain.UserCategory{
			Category: domain.Category{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Type:        domain.CategoryType(row.Type),
				Icon:        row.Icon,
				IsSystem:    row.IsSystem,
				Created:     row.CreatedAt,
				Updated:     row.UpdatedAt,
			},
			CustomName: row.CustomName,
			IsActive:   row.IsActive,
			AssignedAt: row.AssignedAt,
		})
	}
	return categories, nil
}
