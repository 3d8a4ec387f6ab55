package storage

import (
	"sync"
	"sync/atomic"

	"github.com/mcjojos/money-transfers/internal/core/domain"
)

// AccountStore is an in-memory, process-lifetime mapping from account id to
// account. Every operation is individually safe under concurrent use; the
// engine layers its own lock on top to make a transfer's pair of updates
// atomic as a whole.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[int64]domain.Account
	nextID   atomic.Int64
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[int64]domain.Account),
	}
}

// Create stores the account under a freshly allocated id and returns the id.
// Ids are strictly increasing and never reused, even if an insert fails.
// Should the allocated id already be present (impossible unless the counter
// is broken), the existing account is retained and the insert is a no-op.
func (s *AccountStore) Create(account domain.Account) int64 {
	id := s.nextID.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[id]; !exists {
		s.accounts[id] = account
	}
	return id
}

// Get returns the account stored under id. An absent id is not an error;
// the second return value reports presence.
func (s *AccountStore) Get(id int64) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	return account, ok
}

func (s *AccountStore) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[id]
	return ok
}

// Update replaces the account stored under id. Replace-only: if no account
// exists for id the store is left untouched and Update returns false. An
// update can never fabricate an account out of a mistyped id.
func (s *AccountStore) Update(id int64, account domain.Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[id]; !exists {
		return false
	}
	s.accounts[id] = account
	return true
}

// Count returns the number of stored accounts.
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
