package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/fintrack/internal/fixtures"
	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *fixtures.MemoryUnitOfWork, *domain.User) {
	t.Helper()
	uow := fixtures.NewMemoryUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.JwtConfig{Secret: "test-secret", Expiry: time.Hour}
	svc := NewAuthService(uow, cfg, logger)

	u, err := domain.NewUser("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	uow.SeedUser(u)
	return svc, uow, u
}

func TestLogin_ByEmail(t *testing.T) {
	t.Parallel()
	svc, _, seeded := newAuthService(t)

	u, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, u.ID)
}

func TestLogin_ByUsername(t *testing.T) {
	t.Parallel()
	svc, _, seeded := newAuthService(t)

	u, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, domain.ErrUserUnauthorized)
}

func TestLogin_UnknownIdentity(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, domain.ErrUserUnauthorized)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, _, seeded := newAuthService(t)

	signed, err := svc.GenerateToken(seeded)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	u, err := svc.CurrentUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, u.ID)
	assert.Equal(t, seeded.Email, u.Email)
}

func TestCurrentUser_StaleRoleClaim(t *testing.T) {
	t.Parallel()
	svc, uow, seeded := newAuthService(t)

	signed, err := svc.GenerateToken(seeded)
	require.NoError(t, err)
	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	// Demotion after issuance invalidates the token's role claim.
	seeded.Role = domain.RoleAdmin
	require.NoError(t, uow.Users.Update(context.Background(), seeded))

	_, err = svc.CurrentUser(context.Background(), token)
	require.ErrorIs(t, err, domain.ErrUserUnauthorized)
}

func TestCurrentUser_DeletedUser(t *testing.T) {
	t.Parallel()
	svc, uow, seeded := newAuthService(t)

	signed, err := svc.GenerateToken(seeded)
	require.NoError(t, err)
	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	require.NoError(t, uow.Users.Delete(context.Background(), seeded.ID))

	_, err = svc.CurrentUser(context.Background(), token)
	require.ErrorIs(t, err, domain.ErrUserUnauthorized)
}

func TestCurrentUser_NilToken(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthService(t)

	_, err := svc.CurrentUser(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrUserUnauthorized)
}
