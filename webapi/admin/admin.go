// Package admin exposes user administration endpoints. Every route
// requires the ADMIN role; the role claim is re-checked against the store.
package admin

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

// UpdateRoleRequest changes a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

// Routes registers the /admin endpoints.
func Routes(app *fiber.App, userSvc *service.UserService, authSvc *service.AuthService, cfg *config.AppConfig) {
	grp := app.Group("/admin", middleware.JwtProtected(cfg.Jwt))
	grp.Get("/users", ListUsers(userSvc, authSvc))
	grp.Put("/users/:id/role", UpdateUserRole(userSvc, authSvc))
	grp.Delete("/users/:id", DeleteUser(userSvc, authSvc))
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

// ListUsers returns all registered users.
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/users [get]
// @Security Bearer
func ListUsers(userSvc *service.UserService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := requireAdmin(c, authSvc); err != nil {
			return common.ProblemDetailsJSON(c, "Forbidden", err)
		}
		users, err := userSvc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users found", users)
	}
}

// UpdateUserRole changes a user's role.
// @Summary Change user role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateRoleRequest true "New role"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/users/{id}/role [put]
// @Security Bearer
func UpdateUserRole(userSvc *service.UserService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := requireAdmin(c, authSvc); err != nil {
			return common.ProblemDetailsJSON(c, "Forbidden", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateRoleRequest](c)
		if input == nil {
			return err
		}
		updated, err := userSvc.UpdateRole(c.Context(), id, domain.Role(input.Role))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update role", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Role updated", updated)
	}
}

// DeleteUser removes a user and all owned data.
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/users/{id} [delete]
// @Security Bearer
func DeleteUser(userSvc *service.UserService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := requireAdmin(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Forbidden", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if id == admin.ID {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", nil, "Admins cannot delete themselves", fiber.StatusBadRequest)
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
