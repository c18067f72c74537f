package account

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/fintrack/internal/fixtures"
	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/service"
	"github.com/amirasaad/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *fiber.App
	uow   *fixtures.MemoryUnitOfWork
	token string
	user  *domain.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uow := fixtures.NewMemoryUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.AppConfig{
		Jwt: config.JwtConfig{Secret: "test-secret", Expiry: time.Hour},
	}
	authSvc := service.NewAuthService(uow, cfg.Jwt, logger)

	u, err := domain.NewUser("alice", "alice@example.com", "s3cret1")
	require.NoError(t, err)
	uow.SeedUser(u)
	token, err := authSvc.GenerateToken(u)
	require.NoError(t, err)

	app := fiber.New()
	Routes(app, service.NewAccountService(uow, logger), authSvc, cfg)
	return &testEnv{app: app, uow: uow, token: token, user: u}
}

func (e *testEnv) request(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+e.token)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var response common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	return data
}

func TestCreateAccount(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/account/create",
		`{"account_name":"checking","account_type":"CHECKING","balance":100.5,"currency":"USD"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "checking", data["account_name"])
	assert.Equal(t, "CHECKING", data["account_type"])
	assert.Equal(t, 100.5, data["balance"])
	assert.Equal(t, env.user.ID.String(), data["user_id"])
}

func TestCreateAccount_MissingToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("POST", "/account/create",
		bytes.NewBufferString(`{"account_name":"checking"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateAccount_DuplicateName(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/account/create", `{"account_name":"checking"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = env.request(t, "POST", "/account/create", `{"account_name":"checking"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestGetAccount(t *testing.T) {
	env := newTestEnv(t)
	a := domain.NewAccount(env.user.ID, "savings", "", domain.AccountTypeSavings, 2500, "USD")
	env.uow.SeedAccount(a)

	resp := env.request(t, "GET", "/account/get/"+a.ID.String(), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "savings", data["account_name"])
	assert.Equal(t, 25.0, data["balance"])
}

func TestGetAccount_NotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "GET", "/account/get/"+uuid.NewString(), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAccount_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "GET", "/account/get/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateAccount(t *testing.T) {
	env := newTestEnv(t)
	a := domain.NewAccount(env.user.ID, "savings", "", domain.AccountTypeSavings, 2500, "USD")
	env.uow.SeedAccount(a)

	resp := env.request(t, "PUT", "/account/update/"+a.ID.String(),
		`{"account_name":"emergency fund"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "emergency fund", data["account_name"])
	assert.Equal(t, 25.0, data["balance"])
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	a := domain.NewAccount(env.user.ID, "savings", "", domain.AccountTypeSavings, 0, "USD")
	env.uow.SeedAccount(a)

	resp := env.request(t, "DELETE", "/account/delete/"+a.ID.String(), "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = env.request(t, "GET", "/account/get/"+a.ID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListAccounts(t *testing.T) {
	env := newTestEnv(t)
	env.uow.SeedAccount(domain.NewAccount(env.user.ID, "checking", "", domain.AccountTypeChecking, 0, "USD"))
	env.uow.SeedAccount(domain.NewAccount(env.user.ID, "savings", "", domain.AccountTypeSavings, 0, "USD"))
	env.uow.SeedAccount(domain.NewAccount(uuid.New(), "other", "", domain.AccountTypeChecking, 0, "USD"))

	resp := env.request(t, "GET", "/account/get_all", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	list, ok := response.Data.([]any)
	require.True(t, ok)
	assert.Len(t, list, 2)
}
