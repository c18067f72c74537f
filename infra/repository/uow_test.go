package repository

import (
	"reflect"
	"testing"

	repo "github.com/amirasaad/fintrack/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_TypedAccessors(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	accounts, err := uow.AccountRepository()
	require.NoError(t, err)
	assert.NotNil(t, accounts)

	categories, err := uow.CategoryRepository()
	require.NoError(t, err)
	assert.NotNil(t, categories)

	transactions, err := uow.TransactionRepository()
	require.NoError(t, err)
	assert.NotNil(t, transactions)

	users, err := uow.UserRepository()
	require.NoError(t, err)
	assert.NotNil(t, users)
}

func TestUoW_GetRepository_Unregistered(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository(reflect.TypeOf((*error)(nil)).Elem())
	require.Error(t, err)
}

func TestUoW_GetRepository_Registered(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	repoAny, err := uow.GetRepository(reflect.TypeOf((*repo.AccountRepository)(nil)).Elem())
	require.NoError(t, err)
	_, ok := repoAny.(repo.AccountRepository)
	assert.True(t, ok)
}
