// Package fixtures provides in-memory repository fakes for service tests.
// Stores hold values, not pointers, so a mutation only becomes visible
// through Update, matching how a real store behaves.
package fixtures

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/google/uuid"
)

// MemoryUnitOfWork wires the in-memory repositories together. Do snapshots
// every store before invoking fn and rolls back on error, mirroring the
// transaction semantics of the real unit of work. Error paths are driven by
// per-repository failure injection.
type MemoryUnitOfWork struct {
	Accounts     *MemoryAccountRepository
	Categories   *MemoryCategoryRepository
	Transactions *MemoryTransactionRepository
	Users        *MemoryUserRepository
}

// NewMemoryUnitOfWork creates an empty in-memory unit of work.
func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		Accounts:     &MemoryAccountRepository{store: map[uuid.UUID]domain.Account{}},
		Categories:   &MemoryCategoryRepository{store: map[uuid.UUID]domain.Category{}},
		Transactions: &MemoryTransactionRepository{store: map[uuid.UUID]domain.Transaction{}},
		Users:        &MemoryUserRepository{store: map[uuid.UUID]domain.User{}},
	}
}

type memorySnapshot struct {
	accounts     map[uuid.UUID]domain.Account
	categories   map[uuid.UUID]domain.Category
	assignments  []domain.CategoryAssignment
	transactions map[uuid.UUID]domain.Transaction
	users        map[uuid.UUID]domain.User
}

func (u *MemoryUnitOfWork) snapshot() memorySnapshot {
	u.lockAll()
	defer u.unlockAll()
	return memorySnapshot{
		accounts:     maps.Clone(u.Accounts.store),
		categories:   maps.Clone(u.Categories.store),
		assignments:  slices.Clone(u.Categories.assignments),
		transactions: maps.Clone(u.Transactions.store),
		users:        maps.Clone(u.Users.store),
	}
}

func (u *MemoryUnitOfWork) rollback(s memorySnapshot) {
	u.lockAll()
	defer u.unlockAll()
	u.Accounts.store = s.accounts
	u.Categories.store = s.categories
	u.Categories.assignments = s.assignments
	u.Transactions.store = s.transactions
	u.Users.store = s.users
}

func (u *MemoryUnitOfWork) lockAll() {
	u.Accounts.mu.Lock()
	u.Categories.mu.Lock()
	u.Transactions.mu.Lock()
	u.Users.mu.Lock()
}

func (u *MemoryUnitOfWork) unlockAll() {
	u.Users.mu.Unlock()
	u.Transactions.mu.Unlock()
	u.Categories.mu.Unlock()
	u.Accounts.mu.Unlock()
}

func (u *MemoryUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	snap := u.snapshot()
	if err := fn(u); err != nil {
		u.rollback(snap)
		return err
	}
	return nil
}

func (u *MemoryUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():
		return u.Accounts, nil
	case reflect.TypeOf((*repository.CategoryRepository)(nil)).Elem():
		return u.Categories, nil
	case reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem():
		return u.Transactions, nil
	case reflect.TypeOf((*repository.UserRepository)(nil)).Elem():
		return u.Users, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

func (u *MemoryUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return u.Accounts, nil
}

func (u *MemoryUnitOfWork) CategoryRepository() (repository.CategoryRepository, error) {
	return u.Categories, nil
}

func (u *MemoryUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return u.Transactions, nil
}

func (u *MemoryUnitOfWork) UserRepository() (repository.UserRepository, error) {
	return u.Users, nil
}

// SeedAccount stores an account and returns its ID.
func (u *MemoryUnitOfWork) SeedAccount(a *domain.Account) uuid.UUID {
	u.Accounts.mu.Lock()
	defer u.Accounts.mu.Unlock()
	u.Accounts.store[a.ID] = *a
	return a.ID
}

// SeedCategory stores a category and returns its ID.
func (u *MemoryUnitOfWork) SeedCategory(c *domain.Category) uuid.UUID {
	u.Categories.mu.Lock()
	defer u.Categories.mu.Unlock()
	u.Categories.store[c.ID] = *c
	return c.ID
}

// SeedTransaction stores a transaction record without any balance effect.
func (u *MemoryUnitOfWork) SeedTransaction(t *domain.Transaction) uuid.UUID {
	u.Transactions.mu.Lock()
	defer u.Transactions.mu.Unlock()
	u.Transactions.store[t.ID] = *t
	return t.ID
}

// SeedUser stores a user and returns its ID.
func (u *MemoryUnitOfWork) SeedUser(usr *domain.User) uuid.UUID {
	u.Users.mu.Lock()
	defer u.Users.mu.Unlock()
	u.Users.store[usr.ID] = *usr
	return usr.ID
}

// MemoryAccountRepository is an in-memory AccountRepository.
// FailUpdate and FailDelete, when set, are returned by the matching method.
type MemoryAccountRepository struct {
	mu         sync.Mutex
	store      map[uuid.UUID]domain.Account
	FailUpdate error
	FailDelete error
}

func (r *MemoryAccountRepository) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[a.ID] = *a
	return nil
}

func (r *MemoryAccountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.store[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (r *MemoryAccountRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.Get(ctx, id)
}

func (r *MemoryAccountRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.store {
		if a.UserID == userID && a.Name == name {
			out := a
			return &out, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *MemoryAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Account
	for _, a := range r.store {
		if a.UserID == userID {
			cp := a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryAccountRepository) Update(ctx context.Context, a *domain.Account) error {
	if r.FailUpdate != nil {
		return r.FailUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[a.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.store[a.ID] = *a
	return nil
}

func (r *MemoryAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.FailDelete != nil {
		return r.FailDelete
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.store, id)
	return nil
}

// Balance reads a stored balance directly, bypassing the repository API.
func (r *MemoryAccountRepository) Balance(id uuid.UUID) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store[id].Balance
}

// MemoryCategoryRepository is an in-memory CategoryRepository.
type MemoryCategoryRepository struct {
	mu          sync.Mutex
	store       map[uuid.UUID]domain.Category
	assignments []domain.CategoryAssignment
}

func (r *MemoryCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[c.ID] = *c
	return nil
}

func (r *MemoryCategoryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.store[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *MemoryCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.store {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *MemoryCategoryRepository) ListSystem(ctx context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Category
	for _, c := range r.store {
		if c.IsSystem {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.store[c.ID] = *c
	return nil
}

func (r *MemoryCategoryRepository) Assign(ctx context.Context, a *domain.CategoryAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = append(r.assignments, *a)
	return nil
}

func (r *MemoryCategoryRepository) GetAssignment(ctx context.Context, userID, categoryID uuid.UUID) (*domain.CategoryAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.assignments {
		if a.UserID == userID && a.CategoryID == categoryID {
			out := a
			return &out, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *MemoryCategoryRepository) UpdateAssignment(ctx context.Context, a *domain.CategoryAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.assignments {
		if r.assignments[i].UserID == a.UserID && r.assignments[i].CategoryID == a.CategoryID {
			r.assignments[i] = *a
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (r *MemoryCategoryRepository) ListAssigned(ctx context.Context, userID uuid.UUID) ([]*domain.UserCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.UserCategory
	for _, a := range r.assignments {
		if a.UserID != userID || !a.IsActive {
			continue
		}
		c, ok := r.store[a.CategoryID]
		if !ok {
			continue
		}
		out = append(out, &domain.UserCategory{
			Category:   c,
			CustomName: a.CustomName,
			IsActive:   a.IsActive,
			AssignedAt: a.Created,
		})
	}
	return out, nil
}

// MemoryTransactionRepository is an in-memory TransactionRepository.
// FailUpdate and FailDelete, when set, are returned by the matching method.
type MemoryTransactionRepository struct {
	mu         sync.Mutex
	store      map[uuid.UUID]domain.Transaction
	FailUpdate error
	FailDelete error
}

func (r *MemoryTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[t.ID] = *t
	return nil
}

func (r *MemoryTransactionRepository) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.store[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return &t, nil
}

func (r *MemoryTransactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	if r.FailUpdate != nil {
		return r.FailUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[t.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	r.store[t.ID] = *t
	return nil
}

func (r *MemoryTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.FailDelete != nil {
		return r.FailDelete
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *MemoryTransactionRepository) List(ctx context.Context, userID uuid.UUID, filter repository.TransactionFilter) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Transaction
	for _, t := range r.store {
		if t.UserID != userID {
			continue
		}
		if filter.AccountID != nil && t.AccountID != *filter.AccountID {
			continue
		}
		if filter.CategoryID != nil && t.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		cp := t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return nil, nil
		}
		out = out[filter.Skip:]
	}
	// Zero means unset; the store caps unbounded listings at 100.
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len reports how many transaction records are stored.
func (r *MemoryTransactionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.store)
}

// MemoryUserRepository is an in-memory UserRepository.
type MemoryUserRepository struct {
	mu    sync.Mutex
	store map[uuid.UUID]domain.User
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.store {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.store {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.store {
		cp := u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.store[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.store, id)
	return nil
}
