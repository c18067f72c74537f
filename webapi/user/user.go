// Package user exposes the authenticated user's profile endpoints.
package user

import (
	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/middleware"
	"github.com/amirasaad/fintrack/pkg/service"
	"github.com/amirasaad/fintrack/webapi/auth"
	"github.com/amirasaad/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the /user/me endpoints.
func Routes(app *fiber.App, userSvc *service.UserService, authSvc *service.AuthService, cfg *config.AppConfig) {
	me := app.Group("/user/me", middleware.JwtProtected(cfg.Jwt))
	me.Get("/", Me(authSvc))
	me.Put("/", UpdateMe(userSvc, authSvc))
	me.Delete("/", DeleteMe(userSvc, authSvc))
}

// Me returns the authenticated user's profile.
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [get]
// @Security Bearer
func Me(authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// UpdateMe updates the authenticated user's profile.
// @Summary Update current user
// @Description Partially update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserInput true "Profile changes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [put]
// @Security Bearer
func UpdateMe(userSvc *service.UserService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[UpdateUserInput](c)
		if input == nil {
			return err
		}
		updated, err := userSvc.Update(c.Context(), u.ID, service.UpdateUserInput{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Currency: input.Currency,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", updated)
	}
}

// DeleteMe deletes the authenticated user's account.
// @Summary Delete current user
// @Description Delete the authenticated user and all owned data
// @Tags users
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [delete]
// @Security Bearer
func DeleteMe(userSvc *service.UserService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		if err := userSvc.Delete(c.Context(), u.ID); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
