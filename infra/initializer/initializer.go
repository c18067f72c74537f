// Package initializer builds the application's infrastructure dependencies.
package initializer

import (
	"fmt"

	"github.com/amirasaad/fintrack/infra"
	infrarepo "github.com/amirasaad/fintrack/infra/repository"
	"github.com/amirasaad/fintrack/pkg/app"
	"github.com/amirasaad/fintrack/pkg/config"
)

// InitializeDependencies sets up logging, the database connection and the
// unit of work.
func InitializeDependencies(cfg *config.AppConfig) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
	}, nil
}
