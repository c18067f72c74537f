// Package app wires configuration, dependencies and services together.
package app

import (
	"log/slog"

	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/amirasaad/fintrack/pkg/service"
)

// Deps contains the infrastructure dependencies the services run on.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the configured service graph.
type App struct {
	Deps   *Deps
	Config *config.AppConfig

	AuthService        *service.AuthService
	UserService        *service.UserService
	AccountService     *service.AccountService
	CategoryService    *service.CategoryService
	TransactionService *service.TransactionService
}

// New builds the service graph from its dependencies.
func New(deps *Deps, cfg *config.AppConfig) *App {
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        service.NewAuthService(deps.Uow, cfg.Jwt, deps.Logger),
		UserService:        service.NewUserService(deps.Uow, deps.Logger),
		AccountService:     service.NewAccountService(deps.Uow, deps.Logger),
		CategoryService:    service.NewCategoryService(deps.Uow, deps.Logger),
		TransactionService: service.NewTransactionService(deps.Uow, deps.Logger),
	}
}
