package repository

import (
	"context"
	"reflect"
)

// UnitOfWork is the transaction boundary plus repository access in one
// abstraction. All repositories obtained from a UnitOfWork inside Do share
// the same DB session, so the ledger's balance mutation and the transaction
// record write commit or roll back together.
//
// GetRepository gives generic, type-safe access:
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*AccountRepository)(nil)).Elem())
//	repo := repoAny.(AccountRepository)
//
// The typed accessors are convenience wrappers over the same registry.
type UnitOfWork interface {
	// Do executes fn within one transaction boundary. A returned error
	// rolls the whole unit back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current session.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (AccountRepository, error)
	CategoryRepository() (CategoryRepository, error)
	TransactionRepository() (TransactionRepository, error)
	UserRepository() (UserRepository, error)
}
