package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/fintrack/internal/fixtures"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService() (*AccountService, *fixtures.MemoryUnitOfWork) {
	uow := fixtures.NewMemoryUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAccountService(uow, logger), uow
}

func TestCreateAccount(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()
	userID := uuid.New()

	a, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{
		Name:    "checking",
		Type:    domain.AccountTypeChecking,
		Balance: 10000,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, a.UserID)
	assert.Equal(t, int64(10000), a.Balance)
	assert.Equal(t, "USD", a.Currency)
}

func TestCreateAccount_DuplicateName(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()
	userID := uuid.New()

	_, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "checking"})
	require.NoError(t, err)
	_, err = svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "checking"})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	// The same name under another user is fine.
	_, err = svc.CreateAccount(context.Background(), uuid.New(), CreateAccountInput{Name: "checking"})
	require.NoError(t, err)
}

func TestGetAccount_ForeignUser(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()

	a, err := svc.CreateAccount(context.Background(), uuid.New(), CreateAccountInput{Name: "checking"})
	require.NoError(t, err)

	_, err = svc.GetAccount(context.Background(), uuid.New(), a.ID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdateAccount_Partial(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()
	userID := uuid.New()

	a, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{
		Name:    "checking",
		Type:    domain.AccountTypeChecking,
		Balance: 10000,
	})
	require.NoError(t, err)

	name := "main checking"
	updated, err := svc.UpdateAccount(context.Background(), userID, a.ID, UpdateAccountInput{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "main checking", updated.Name)
	assert.Equal(t, domain.AccountTypeChecking, updated.Type)
	// Balances never move through account updates.
	assert.Equal(t, int64(10000), updated.Balance)
}

func TestUpdateAccount_DuplicateName(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()
	userID := uuid.New()

	_, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "checking"})
	require.NoError(t, err)
	b, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "savings"})
	require.NoError(t, err)

	name := "checking"
	_, err = svc.UpdateAccount(context.Background(), userID, b.ID, UpdateAccountInput{Name: &name})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()
	userID := uuid.New()

	a, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "checking"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteAccount(context.Background(), uuid.New(), a.ID), domain.ErrAccountNotFound)
	require.NoError(t, svc.DeleteAccount(context.Background(), userID, a.ID))

	_, err = svc.GetAccount(context.Background(), userID, a.ID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListAccounts(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService()
	userID := uuid.New()

	_, err := svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "checking"})
	require.NoError(t, err)
	_, err = svc.CreateAccount(context.Background(), userID, CreateAccountInput{Name: "savings"})
	require.NoError(t, err)
	_, err = svc.CreateAccount(context.Background(), uuid.New(), CreateAccountInput{Name: "other"})
	require.NoError(t, err)

	list, err := svc.ListAccounts(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
