// Package transaction exposes the ledger endpoints: posting transactions
// and editing or deleting them with their balance effects.
package transaction

import (
	"errors"
	"time"

	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/middleware"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/amirasaad/fintrack/pkg/service"
	"github.com/amirasaad/fintrack/webapi/auth"
	"github.com/amirasaad/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errDateInFuture = errors.New("transaction date cannot be in the future")

// Routes registers the /transaction endpoints. All of them require auth.
func Routes(app *fiber.App, transactionSvc *service.TransactionService, authSvc *service.AuthService, cfg *config.AppConfig) {
	grp := app.Group("/transaction", middleware.JwtProtected(cfg.Jwt))
	grp.Post("/create", CreateTransaction(transactionSvc, authSvc))
	grp.Get("/get_all", ListTransactions(transactionSvc, authSvc))
	grp.Get("/get/:id", GetTransaction(transactionSvc, authSvc))
	grp.Put("/:id", UpdateTransaction(transactionSvc, authSvc))
	grp.Delete("/:id", DeleteTransaction(transactionSvc, authSvc))
}

// CreateTransaction posts a transaction and applies its balance effect.
// @Summary Create transaction
// @Description Post a transaction; the account balance moves atomically
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transaction/create [post]
// @Security Bearer
func CreateTransaction(transactionSvc *service.TransactionService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		if input.Date != nil && input.Date.After(time.Now()) {
			return common.ProblemDetailsJSON(c, "Invalid transaction date",
				errDateInFuture, fiber.StatusBadRequest)
		}
		in := service.CreateTransactionInput{
			Name:        input.Name,
			Amount:      domain.ToMinorUnits(input.Amount),
			Type:        domain.TransactionType(input.Type),
			AccountID:   input.AccountID,
			ToAccountID: input.ToAccountID,
			CategoryID:  input.CategoryID,
			Description: input.Description,
		}
		if input.Date != nil {
			in.Date = *input.Date
		}
		t, err := transactionSvc.Create(c.Context(), u.ID, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", toResponse(t))
	}
}

// ListTransactions returns the user's transactions, filtered and paginated.
// @Summary List transactions
// @Description Newest first; filterable by account, category, type and date range
// @Tags transactions
// @Produce json
// @Param skip query int false "Records to skip"
// @Param limit query int false "Max records (default 100)"
// @Param account_id query string false "Filter by account"
// @Param category_id query string false "Filter by category"
// @Param transaction_type query string false "INCOME, EXPENSE or TRANSFER"
// @Param start_date query string false "RFC 3339 lower bound"
// @Param end_date query string false "RFC 3339 upper bound"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /transaction/get_all [get]
// @Security Bearer
func ListTransactions(transactionSvc *service.TransactionService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		filter, err := parseFilter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		transactions, err := transactionSvc.List(c.Context(), u.ID, filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions found", toResponseList(transactions))
	}
}

// GetTransaction returns one transaction by ID.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transaction/get/{id} [get]
// @Security Bearer
func GetTransaction(transactionSvc *service.TransactionService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, "Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		t, err := transactionSvc.Get(c.Context(), u.ID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transaction not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction found", toResponse(t))
	}
}

// UpdateTransaction edits a transaction; its old effect is reversed and the
// new one applied.
// @Summary Update transaction
// @Description Reverses the original balance effect and applies the edited one
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Transaction changes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /transaction/{id} [put]
// @Security Bearer
func UpdateTransaction(transactionSvc *service.TransactionService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, "Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateTransactionRequest](c)
		if input == nil {
			return err
		}
		if input.Date != nil && input.Date.After(time.Now()) {
			return common.ProblemDetailsJSON(c, "Invalid transaction date",
				errDateInFuture, fiber.StatusBadRequest)
		}
		in := service.UpdateTransactionInput{
			Name:        input.Name,
			AccountID:   input.AccountID,
			ToAccountID: input.ToAccountID,
			CategoryID:  input.CategoryID,
			Description: input.Description,
			Date:        input.Date,
		}
		if input.Amount != nil {
			amount := domain.ToMinorUnits(*input.Amount)
			in.Amount = &amount
		}
		if input.Type != nil {
			txType := domain.TransactionType(*input.Type)
			in.Type = &txType
		}
		t, err := transactionSvc.Update(c.Context(), u.ID, id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", toResponse(t))
	}
}

// DeleteTransaction removes a transaction, reversing its balance effect.
// @Summary Delete transaction
// @Description Reverses the balance effect and removes the record
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transaction/{id} [delete]
// @Security Bearer
func DeleteTransaction(transactionSvc *service.TransactionService, authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, "Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := transactionSvc.Delete(c.Context(), u.ID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete transaction", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func parseFilter(c *fiber.Ctx) (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", 0),
	}
	if raw := c.Query("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.AccountID = &id
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}
	filter.Type = domain.TransactionType(c.Query("transaction_type"))
	if raw := c.Query("start_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &ts
	}
	if raw := c.Query("end_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &ts
	}
	return filter, nil
}
