package logic

import (
	"ghscout/internal/domain"
	"ghscout/internal/lifecycle"
)

// SearchState provides read access to the current account search
type SearchState interface {
	Query() string
	Results() []domain.Account
	IsLoading() bool
	Error() string
	Searched() bool
}

// RepositoryState provides read access to per-account repository listings
type RepositoryState interface {
	Get(accountID int64) lifecycle.Lifecycle[[]domain.Repository]
	NeedsFetch(accountID int64) bool
}

// SearchOutcome is the result of one account search request
type SearchOutcome struct {
	Query string
	lifecycle.Outcome[[]domain.Account]
}

// RepositoryOutcome is the result of one repository listing request
type RepositoryOutcome struct {
	AccountID int64
	lifecycle.Outcome[[]domain.Repository]
}
