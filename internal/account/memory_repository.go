package account

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
	byEmail  map[string]string
	byName   map[string]string
}

// NewMemoryRepository builds an in-memory account store. It backs the
// service in development when no database is configured, and the tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		accounts: make(map[string]Account),
		byEmail:  make(map[string]string),
		byName:   make(map[string]string),
	}
}

func (r *memoryRepository) Create(_ context.Context, acct Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	emailKey := strings.ToLower(acct.Email)
	if _, exists := r.byEmail[emailKey]; exists {
		return ErrDuplicate
	}
	if _, exists := r.byName[acct.Username]; exists {
		return ErrDuplicate
	}
	r.accounts[acct.ID] = acct
	r.byEmail[emailKey] = acct.ID
	r.byName[acct.Username] = acct.ID
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return Account{}, ErrNotFound
	}
	return r.accounts[id], nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.accounts[id]
	if !ok {
		return Account{}, ErrNotFound
	}
	return acct, nil
}

func (r *memoryRepository) UpdateProfile(_ context.Context, id string, patch ProfilePatch) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acct, ok := r.accounts[id]
	if !ok {
		return Account{}, ErrNotFound
	}
	updated := Merge(acct, patch, time.Now().UTC())
	r.accounts[id] = updated
	return updated, nil
}
