// Package testutils provides an end-to-end test suite backed by a real
// Postgres database running in a Testcontainers container.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"time"

	infrarepo "github.com/amirasaad/fintrack/infra/repository"
	"github.com/amirasaad/fintrack/pkg/app"
	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/webapi"
	"github.com/amirasaad/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// E2ETestSuite boots the full HTTP stack against a migrated Postgres
// instance. Embed it in a suite and use MakeRequest / LoginUser.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
	app         *fiber.App
	cfg         *config.AppConfig
}

// TestUser carries the plaintext credentials of a user registered
// through the API, for use in subsequent login calls.
type TestUser struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Env: "test",
		Jwt: config.JwtConfig{
			Secret: "e2e-test-secret",
			Expiry: time.Hour,
		},
		RateLimit: config.RateLimitConfig{
			MaxRequests: 1000,
			Window:      time.Second,
		},
	}
}

func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

func (s *E2ETestSuite) runMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return err
	}

	_, filename, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(filename), "../../internal/migrations")

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// SetupSuite starts Postgres, migrates it and assembles the Fiber app.
func (s *E2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.runMigrations(s.db))

	s.cfg = testConfig()
	s.cfg.DB.Url = dsn

	deps := &app.Deps{
		Uow:    infrarepo.NewUoW(s.db),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.app = webapi.SetupApp(app.New(deps, s.cfg))
}

// TearDownSuite terminates the Postgres container.
func (s *E2ETestSuite) TearDownSuite() {
	ctx := context.Background()
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(ctx)
	}
}

// MakeRequest performs an HTTP request against the in-process app. An
// empty token leaves the request unauthenticated.
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, 1000000)
	s.Require().NoError(err)
	return resp
}

// RegisterTestUser creates a user with random credentials via
// POST /auth/register.
func (s *E2ETestSuite) RegisterTestUser() *TestUser {
	randomID := uuid.New().String()[:8]
	u := &TestUser{
		Username: fmt.Sprintf("testuser_%s", randomID),
		Email:    fmt.Sprintf("test_%s@example.com", randomID),
		Password: "password123",
	}

	body := fmt.Sprintf(`{"username":"%s","email":"%s","password":"%s"}`,
		u.Username, u.Email, u.Password)
	resp := s.MakeRequest("POST", "/auth/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok, "register response should carry the user")
	idStr, ok := data["id"].(string)
	s.Require().True(ok, "register response should carry the user id")
	id, err := uuid.Parse(idStr)
	s.Require().NoError(err)
	u.ID = id
	return u
}

// LoginUser logs the user in via POST /auth/login and returns the JWT.
func (s *E2ETestSuite) LoginUser(u *TestUser) string {
	body := fmt.Sprintf(`{"identity":"%s","password":"%s"}`, u.Email, u.Password)
	resp := s.MakeRequest("POST", "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok, "login response should carry the token")
	token, _ := data["token"].(string)
	s.Require().NotEmpty(token, "login response should carry the token")
	return token
}

// PromoteToAdmin flips the stored role directly in the database. A fresh
// login is needed afterwards so the token claim matches.
func (s *E2ETestSuite) PromoteToAdmin(u *TestUser) {
	err := s.db.Model(&infrarepo.User{}).
		Where("id = ?", u.ID).
		Update("role", domain.RoleAdmin).Error
	s.Require().NoError(err)
}
