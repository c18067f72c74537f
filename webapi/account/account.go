// Package account exposes account CRUD endpoints.
package account

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

// Routes registers the /account endpoints. All of them require auth.
func Routes(app *fiber.App, accountSvc *service.AccountService, authSvc *service.AuthService, cfg *config.AppConfig) {
	grp := app.Group("/account", middleware.JwtProtected(cfg.Jwt))
	grp.Post("/create", CreateAccount(accountSvc, authSvc))
	grp.Get("/get_all", ListAccounts(accountSvc, authSvc))
	grp.Get("/get/:id", GetAccount(accountSvc, authSvc))
	grp.Put("/update/:id", UpdateAccount(accountSvc, authSvc))
	grp.Patch("/update/:id", UpdateAccount(accountSvc, authSvc))
	grp.Delete("/delete/:id", DeleteAccount(accountSvc, authSvc))
}

// CreateAccount creates an account for the authenticated user.
// @Summary Create account
// @Description Create a financial account with an opening balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /account/create [post]
// @Security Bearer
func CreateAccount(accountSvc *service.AccountService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreateAccount(c.Context(), u.ID, service.CreateAccountInput{
			Name:        input.Name,
			Description: input.Description,
			Type:        domain.AccountType(input.Type),
			Balance:     domain.ToMinorUnits(input.Balance),
			Currency:    input.Currency,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toResponse(a))
	}
}

// ListAccounts returns all accounts of the authenticated user.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /account/get_all [get]
// @Security Bearer
func ListAccounts(accountSvc *service.AccountService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accounts, err := accountSvc.ListAccounts(c.Context(), u.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts found", toResponseList(accounts))
	}
}

// GetAccount returns one account by ID.
// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account/get/{id} [get]
// @Security Bearer
func GetAccount(accountSvc *service.AccountService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		a, err := accountSvc.GetAccount(c.Context(), u.ID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Account not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", toResponse(a))
	}
}

// UpdateAccount partially updates an account.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "Account changes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /account/update/{id} [put]
// @Security Bearer
func UpdateAccount(accountSvc *service.AccountService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		in := service.UpdateAccountInput{
			Name:        input.Name,
			Description: input.Description,
			Currency:    input.Currency,
		}
		if input.Type != nil {
			accountType := domain.AccountType(*input.Type)
			in.Type = &accountType
		}
		a, err := accountSvc.UpdateAccount(c.Context(), u.ID, id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", toResponse(a))
	}
}

// DeleteAccount deletes an account and its transactions.
// @Summary Delete account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account/delete/{id} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *service.AccountService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := accountSvc.DeleteAccount(c.Context(), u.ID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
