package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/google/uuid"
)

// CategoryService manages global categories and per-user assignments.
// Role checks for admin-only operations happen at the HTTP layer; the
// service only enforces data rules.
type CategoryService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(uow repository.UnitOfWork, logger *slog.Logger) *CategoryService {
	return &CategoryService{uow: uow, logger: logger}
}

// CreateCategoryInput carries a validated system-category create request.
type CreateCategoryInput struct {
	Name        string
	Description string
	Type        domain.CategoryType
	Icon        string
}

// UpdateCategoryInput carries a partial system-category update.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Type        *domain.CategoryType
	Icon        *string
}

// AssignCategoryInput attaches a category to a user.
type AssignCategoryInput struct {
	CategoryID uuid.UUID
	CustomName string
	IsActive   bool
}

// CreateSystemCategory creates a globally-unique system category.
func (s *CategoryService) CreateSystemCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error) {
	var created *domain.Category
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		if _, err := categories.GetByName(ctx, in.Name); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		c := domain.NewCategory(in.Name, in.Description, in.Type, in.Icon, true)
		if err := categories.Create(ctx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("system category created", "category_id", created.ID, "name", created.Name)
	return created, nil
}

// ListSystemCategories returns all system categories.
func (s *CategoryService) ListSystemCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return categories.ListSystem(ctx)
}

// UpdateSystemCategory applies a partial update to a system category.
func (s *CategoryService) UpdateSystemCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*domain.Category, error) {
	var updated *domain.Category
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		c, err := categories.Get(ctx, id)
		if err != nil {
			return err
		}
		if !c.IsSystem {
			return domain.ErrCategoryNotFound
		}
		if in.Name != nil && *in.Name != c.Name {
			if _, err := categories.GetByName(ctx, *in.Name); err == nil {
				return domain.ErrAlreadyExists
			} else if !errors.Is(err, domain.ErrCategoryNotFound) {
				return err
			}
			c.Name = *in.Name
		}
		if in.Description != nil {
			c.Description = *in.Description
		}
		if in.Type != nil {
			c.Type = *in.Type
		}
		if in.Icon != nil {
			c.Icon = *in.Icon
		}
		c.Updated = time.Now().UTC()
		if err := categories.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AssignCategory attaches a category to the user with an optional custom
// display name.
func (s *CategoryService) AssignCategory(ctx context.Context, userID uuid.UUID, in AssignCategoryInput) (*domain.UserCategory, error) {
	var assigned *domain.UserCategory
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		c, err := categories.Get(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if _, err := categories.GetAssignment(ctx, userID, in.CategoryID); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		a := &domain.CategoryAssignment{
			UserID:     userID,
			CategoryID: in.CategoryID,
			CustomName: in.CustomName,
			IsActive:   in.IsActive,
			Created:    time.Now().UTC(),
		}
		if err := categories.Assign(ctx, a); err != nil {
			return err
		}
		assigned = &domain.UserCategory{
			Category:   *c,
			CustomName: a.CustomName,
			IsActive:   a.IsActive,
			AssignedAt: a.Created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// ListMyCategories returns the user's active category assignments.
func (s *CategoryService) ListMyCategories(ctx context.Context, userID uuid.UUID) ([]*domain.UserCategory, error) {
	categories, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return categories.ListAssigned(ctx, userID)
}

// UpdateMyCategory changes the custom name or active flag of an assignment.
func (s *CategoryService) UpdateMyCategory(ctx context.Context, userID, categoryID uuid.UUID, customName string, isActive bool) (*domain.UserCategory, error) {
	var updated *domain.UserCategory
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		a, err := categories.GetAssignment(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		a.CustomName = customName
		a.IsActive = isActive
		if err := categories.UpdateAssignment(ctx, a); err != nil {
			return err
		}
		c, err := categories.Get(ctx, categoryID)
		if err != nil {
			return err
		}
		updated = &domain.UserCategory{
			Category:   *c,
			CustomName: a.CustomName,
			IsActive:   a.IsActive,
			AssignedAt: a.Created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveMyCategory soft-removes an assignment by flipping is_active off.
func (s *CategoryService) RemoveMyCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		a, err := categories.GetAssignment(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		a.IsActive = false
		return categories.UpdateAssignment(ctx, a)
	})
}
