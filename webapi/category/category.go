// Package category exposes system-category management and per-user
// category assignment endpoints.
package category

import (
	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/middleware"
	"github.com/amirasaad/fintrack/pkg/service"
	"github.com/amirasaad/fintrack/webapi/auth"
	"github.com/amirasaad/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the /categories endpoints. Mutating system categories
// requires the ADMIN role; assignments are per-user.
func Routes(app *fiber.App, categorySvc *service.CategoryService, authSvc *service.AuthService, cfg *config.AppConfig) {
	grp := app.Group("/categories", middleware.JwtProtected(cfg.Jwt))
	grp.Get("/system", ListSystemCategories(categorySvc, authSvc))
	grp.Post("/system", CreateSystemCategory(categorySvc, authSvc))
	grp.Put("/system/:id", UpdateSystemCategory(categorySvc, authSvc))
	grp.Get("/my", ListMyCategories(categorySvc, authSvc))
	grp.Post("/assign", AssignCategory(categorySvc, authSvc))
	grp.Put("/my/:id", UpdateMyCategory(categorySvc, authSvc))
	grp.Delete("/my/:id", RemoveMyCategory(categorySvc, authSvc))
}

func requireAdmin(c *fiber.Ctx, authSvc *service.AuthService) (*domain.User, error) {
	u, err := auth.CurrentUser(c, authSvc)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

// ListSystemCategories returns all system categories.
// @Summary List system categories
// @Tags categories
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /categories/system [get]
// @Security Bearer
func ListSystemCategories(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentUser(c, authSvc); err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		categories, err := categorySvc.ListSystemCategories(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list categories", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories found", categories)
	}
}

// CreateSystemCategory creates a system category. Admin only.
// @Summary Create system category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /categories/system [post]
// @Security Bearer
func CreateSystemCategory(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := requireAdmin(c, authSvc); err != nil {
			return common.ProblemDetailsJSON(c, "Forbidden", err)
		}
		input, err := common.BindAndValidate[CreateCategoryRequest](c)
		if input == nil {
			return err
		}
		created, err := categorySvc.CreateSystemCategory(c.Context(), service.CreateCategoryInput{
			Name:        input.Name,
			Description: input.Description,
			Type:        domain.CategoryType(input.Type),
			Icon:        input.Icon,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Category created", created)
	}
}

// UpdateSystemCategory partially updates a system category. Admin only.
// @Summary Update system category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Category changes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /categories/system/{id} [put]
// @Security Bearer
func UpdateSystemCategory(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := requireAdmin(c, authSvc); err != nil {
			return common.ProblemDetailsJSON(c, "Forbidden", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err, "Category ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateCategoryRequest](c)
		if input == nil {
			return err
		}
		in := service.UpdateCategoryInput{
			Name:        input.Name,
			Description: input.Description,
			Icon:        input.Icon,
		}
		if input.Type != nil {
			categoryType := domain.CategoryType(*input.Type)
			in.Type = &categoryType
		}
		updated, err := categorySvc.UpdateSystemCategory(c.Context(), id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category updated", updated)
	}
}

// ListMyCategories returns the user's active category assignments.
// @Summary List my categories
// @Tags categories
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /categories/my [get]
// @Security Bearer
func ListMyCategories(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		mine, err := categorySvc.ListMyCategories(c.Context(), u.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list categories", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories found", mine)
	}
}

// AssignCategory attaches a category to the authenticated user.
// @Summary Assign category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body AssignCategoryRequest true "Assignment data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /categories/assign [post]
// @Security Bearer
func AssignCategory(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[AssignCategoryRequest](c)
		if input == nil {
			return err
		}
		categoryID, err := uuid.Parse(input.CategoryID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err, fiber.StatusBadRequest)
		}
		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}
		assigned, err := categorySvc.AssignCategory(c.Context(), u.ID, service.AssignCategoryInput{
			CategoryID: categoryID,
			CustomName: input.CustomName,
			IsActive:   isActive,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't assign category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Category assigned", assigned)
	}
}

// UpdateMyCategory changes an assignment's custom name or active flag.
// @Summary Update my category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body UpdateAssignmentRequest true "Assignment changes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /categories/my/{id} [put]
// @Security Bearer
func UpdateMyCategory(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err, "Category ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAssignmentRequest](c)
		if input == nil {
			return err
		}
		updated, err := categorySvc.UpdateMyCategory(c.Context(), u.ID, id, input.CustomName, input.IsActive)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update assignment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Assignment updated", updated)
	}
}

// RemoveMyCategory soft-removes an assignment.
// @Summary Remove my category
// @Description Deactivates the assignment; the row is kept
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /categories/my/{id} [delete]
// @Security Bearer
func RemoveMyCategory(categorySvc *service.CategoryService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err, "Category ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := categorySvc.RemoveMyCategory(c.Context(), u.ID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't remove assignment", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
