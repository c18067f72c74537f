package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAccountRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	accountID := uuid.New()
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "currency", "created_at", "updated_at"}).
		AddRow(accountID, userID, "checking", "CHECKING", int64(1500), "USD", time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(accountID, 1).WillReturnRows(rows)

	a, err := repo.Get(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, a.ID)
	assert.Equal(t, int64(1500), a.Balance)
	assert.Equal(t, domain.AccountTypeChecking, a.Type)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(sqlmock.AnyArg(), 1).WillReturnError(gorm.ErrRecordNotFound)

	_, err = repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	accountID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "balance"}).AddRow(accountID, int64(100))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+) FOR UPDATE`).
		WithArgs(accountID, 1).WillReturnRows(rows)

	a, err := repo.GetForUpdate(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, a.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	a := domain.NewAccount(uuid.New(), "gone", "", domain.AccountTypeChecking, 0, "USD")
	err := repo.Update(context.Background(), a)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	accountID := uuid.New()

	mock.ExpectExec(`DELETE FROM "accounts"`).
		WithArgs(accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), accountID))

	mock.ExpectExec(`DELETE FROM "accounts"`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	u, err := domain.NewUser("testuser", "test@example.com", "password")
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), u))

	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))

	require.Error(t, repo.Create(context.Background(), u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	txn := domain.NewTransaction(
		uuid.New(), "salary", uuid.New(), nil, uuid.New(),
		10000, domain.TransactionTypeIncome, "", time.Now().UTC(),
	)

	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), txn))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.Get(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByName_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1`).
		WithArgs("Nope", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByName(context.Background(), "Nope")
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
