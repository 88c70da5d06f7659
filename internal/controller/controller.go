// Package controller turns user commands into remote fetches and applies
// their outcomes to the search and repository stores.
//
// Every operation is split in three steps so callers can keep all store
// mutation on one goroutine: a synchronous start that records the loading
// state and returns a pending request, a Fetch that only talks to the
// network, and a Resolve that applies the outcome. Run chains the three for
// callers that are happy to block.
package controller

import (
	"context"

	"ghscout/internal/domain"
)

// AccountSearcher performs account searches
type AccountSearcher interface {
	SearchAccounts(ctx context.Context, query string, limit int) ([]domain.Account, error)
}

// RepositoryLister fetches an account's repositories
type RepositoryLister interface {
	ListRepositories(ctx context.Context, reposURL string) ([]domain.Repository, error)
}

// DefaultResultLimit caps the number of accounts returned by one search
const DefaultResultLimit = 5
