package repository

import (
	"context"
	"fmt"
	"reflect"

	repo "github.com/amirasaad/fintrack/pkg/repository"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork over a *gorm.DB. All repositories
// handed out inside Do are bound to the same DB transaction, so a ledger
// operation's balance writes and record writes commit or roll back together.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a unit of work for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repo.AccountRepository)(nil)).Elem():     func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*repo.CategoryRepository)(nil)).Elem():    func(db *gorm.DB) any { return NewCategoryRepository(db) },
			reflect.TypeOf((*repo.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
			reflect.TypeOf((*repo.UserRepository)(nil)).Elem():        func(db *gorm.DB) any { return NewUserRepository(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UoW bound to it.
func (u *UoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns a repository of the requested interface type bound to
// the current session (the open transaction inside Do, the base DB otherwise).
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository for the current session.
func (u *UoW) AccountRepository() (repo.AccountRepository, error) {
	r, err := u.GetRepository(reflect.TypeOf((*repo.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return r.(repo.AccountRepository), nil
}

// CategoryRepository returns the category repository for the current session.
func (u *UoW) CategoryRepository() (repo.CategoryRepository, error) {
	r, err := u.GetRepository(reflect.TypeOf((*repo.CategoryRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return r.(repo.CategoryRepository), nil
}

// TransactionRepository returns the transaction repository for the current session.
func (u *UoW) TransactionRepository() (repo.TransactionRepository, error) {
	r, err := u.GetRepository(reflect.TypeOf((*repo.TransactionRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return r.(repo.TransactionRepository), nil
}

// UserRepository returns the user repository for the current session.
func (u *UoW) UserRepository() (repo.UserRepository, error) {
	r, err := u.GetRepository(reflect.TypeOf((*repo.UserRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return r.(repo.UserRepository), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
