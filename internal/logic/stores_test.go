package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ghscout/internal/domain"
	"ghscout/internal/lifecycle"
)

func TestSearchStoreInitialState(t *testing.T) {
	s := NewMemorySearchStore()

	assert.Equal(t, "", s.Query())
	assert.False(t, s.Searched())
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Error())
	assert.NotNil(t, s.Results())
	assert.Empty(t, s.Results())
}

func TestSearchStoreStartClearsPreviousState(t *testing.T) {
	s := NewMemorySearchStore()
	s.Start("old")
	s.Resolve(lifecycle.Outcome[[]domain.Account]{Value: []domain.Account{{ID: 1, Login: "a"}}})
	s.Start("older")
	s.Resolve(lifecycle.Outcome[[]domain.Account]{Err: errors.New("boom")})

	s.Start("new")
	assert.Equal(t, "new", s.Query())
	assert.True(t, s.IsLoading())
	assert.Empty(t, s.Error())
	assert.Empty(t, s.Results())
}

func TestSearchStoreResolveNilValue(t *testing.T) {
	s := NewMemorySearchStore()
	s.Start("q")
	s.Resolve(lifecycle.Outcome[[]domain.Account]{})

	assert.False(t, s.IsLoading())
	assert.True(t, s.Lifecycle().Loaded)
	assert.NotNil(t, s.Results())
}

func TestRepositoryStoreNeedsFetch(t *testing.T) {
	s := NewMemoryRepositoryStore()
	assert.True(t, s.NeedsFetch(1))

	s.Start(1)
	assert.False(t, s.NeedsFetch(1), "in-flight entry must not refetch")

	s.Resolve(1, lifecycle.Outcome[[]domain.Repository]{Err: errors.New("nope")})
	assert.True(t, s.NeedsFetch(1))

	s.Start(1)
	s.Resolve(1, lifecycle.Outcome[[]domain.Repository]{})
	assert.False(t, s.NeedsFetch(1))
	assert.Equal(t, lifecycle.Loaded, s.Get(1).State())
	assert.NotNil(t, s.Get(1).Value)
}

func TestRepositoryStoreAbsentKeyIsDefault(t *testing.T) {
	s := NewMemoryRepositoryStore()
	l := s.Get(99)
	assert.False(t, l.Loaded)
	assert.False(t, l.Loading)
	assert.Empty(t, l.Err)
	assert.Empty(t, s.AccountIDs())
}
