package logic

import (
	"sync"

	"ghscout/internal/domain"
	"ghscout/internal/lifecycle"
)

type unit = struct{}

// MemorySearchStore is an in-memory implementation of SearchState
type MemorySearchStore struct {
	mu    sync.RWMutex
	query string
	lc    *lifecycle.Store[unit, []domain.Account]
}

// NewMemorySearchStore creates a search store with no search submitted yet
func NewMemorySearchStore() *MemorySearchStore {
	return &MemorySearchStore{
		lc: lifecycle.NewStore[unit, []domain.Account](),
	}
}

func (s *MemorySearchStore) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Results returns the accounts of the last successful search, never nil
func (s *MemorySearchStore) Results() []domain.Account {
	res := s.lc.Get(unit{}).Value
	if res == nil {
		return []domain.Account{}
	}
	return res
}

func (s *MemorySearchStore) IsLoading() bool {
	return s.lc.Get(unit{}).Loading
}

func (s *MemorySearchStore) Error() string {
	return s.lc.Get(unit{}).Err
}

// Searched reports whether any search has been submitted
func (s *MemorySearchStore) Searched() bool {
	return s.Query() != ""
}

// Lifecycle returns the raw lifecycle entry of the search
func (s *MemorySearchStore) Lifecycle() lifecycle.Lifecycle[[]domain.Account] {
	return s.lc.Get(unit{})
}

// Start records a new search: query set, loading, error and results cleared
func (s *MemorySearchStore) Start(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	s.lc.Begin(unit{})
	s.lc.Reset(unit{}, []domain.Account{})
}

// Resolve applies a search outcome and clears the loading flag
func (s *MemorySearchStore) Resolve(o lifecycle.Outcome[[]domain.Account]) {
	if o.Err == nil && o.Value == nil {
		o.Value = []domain.Account{}
	}
	s.lc.Resolve(unit{}, o)
}

// MemoryRepositoryStore is an in-memory implementation of RepositoryState
// keyed by account id
type MemoryRepositoryStore struct {
	lc *lifecycle.Store[int64, []domain.Repository]
}

// NewMemoryRepositoryStore creates a new memory-based repository store
func NewMemoryRepositoryStore() *MemoryRepositoryStore {
	return &MemoryRepositoryStore{
		lc: lifecycle.NewStore[int64, []domain.Repository](),
	}
}

func (s *MemoryRepositoryStore) Get(accountID int64) lifecycle.Lifecycle[[]domain.Repository] {
	return s.lc.Get(accountID)
}

// NeedsFetch reports whether expanding the account should trigger a fetch:
// it has never been fetched, or its last attempt failed
func (s *MemoryRepositoryStore) NeedsFetch(accountID int64) bool {
	if !s.lc.Has(accountID) {
		return true
	}
	return s.lc.Get(accountID).HasError()
}

// Start marks the account as loading and clears its error
func (s *MemoryRepositoryStore) Start(accountID int64) {
	s.lc.Begin(accountID)
}

// Resolve applies a listing outcome to the account and clears its loading flag
func (s *MemoryRepositoryStore) Resolve(accountID int64, o lifecycle.Outcome[[]domain.Repository]) {
	if o.Err == nil && o.Value == nil {
		o.Value = []domain.Repository{}
	}
	s.lc.Resolve(accountID, o)
}

// AccountIDs returns the ids of every account with an entry, in first-expanded order
func (s *MemoryRepositoryStore) AccountIDs() []int64 {
	return s.lc.Keys()
}
