package controller

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ghscout/internal/domain"
	"ghscout/internal/eventbus"
	"ghscout/internal/lifecycle"
	"ghscout/internal/logic"
)

// SearchRequest is a search that has been started but not fetched yet
type SearchRequest struct {
	Query string
	Limit int
}

// SearchController runs account searches against the search store
type SearchController struct {
	store    *logic.MemorySearchStore
	searcher AccountSearcher
	limit    int
	bus      eventbus.EventBus
	log      *zap.Logger
}

// SearchOption configures a SearchController
type SearchOption func(*SearchController)

// WithResultLimit overrides the per-search result cap
func WithResultLimit(limit int) SearchOption {
	return func(c *SearchController) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithSearchBus publishes search lifecycle events on bus
func WithSearchBus(bus eventbus.EventBus) SearchOption {
	return func(c *SearchController) { c.bus = bus }
}

// WithSearchLogger sets the logger
func WithSearchLogger(log *zap.Logger) SearchOption {
	return func(c *SearchController) {
		if log != nil {
			c.log = log
		}
	}
}

// NewSearchController creates a controller writing into store
func NewSearchController(store *logic.MemorySearchStore, searcher AccountSearcher, opts ...SearchOption) *SearchController {
	c := &SearchController{
		store:    store,
		searcher: searcher,
		limit:    DefaultResultLimit,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("search")
	return c
}

// Store returns the store the controller writes to
func (c *SearchController) Store() *logic.MemorySearchStore {
	return c.store
}

// Search starts a new search. A blank query is ignored and returns nil,
// leaving the store untouched.
func (c *SearchController) Search(query string) *SearchRequest {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	c.store.Start(query)
	c.log.Debug("search started", zap.String("query", query))
	c.publish(eventbus.SearchStartedEvent{Query: query})

	return &SearchRequest{Query: query, Limit: c.limit}
}

// Fetch performs the remote call for req. It does not touch the store.
func (c *SearchController) Fetch(ctx context.Context, req *SearchRequest) logic.SearchOutcome {
	accounts, err := c.searcher.SearchAccounts(ctx, req.Query, req.Limit)
	return logic.SearchOutcome{
		Query:   req.Query,
		Outcome: lifecycle.Outcome[[]domain.Account]{Value: accounts, Err: err},
	}
}

// Resolve applies a search outcome. Outcomes are applied in the order they
// arrive: a response to an older query still overwrites the state of a newer
// one, since in-flight requests are never cancelled.
func (c *SearchController) Resolve(out logic.SearchOutcome) {
	stale := out.Query != c.store.Query()
	if stale {
		c.log.Debug("applying stale search response",
			zap.String("query", out.Query),
			zap.String("current", c.store.Query()))
	}

	c.store.Resolve(out.Outcome)

	ev := eventbus.SearchResolvedEvent{Query: out.Query, Stale: stale}
	if out.Err != nil {
		ev.Error = c.store.Error()
		c.log.Info("search failed", zap.String("query", out.Query), zap.Error(out.Err))
	} else {
		ev.Count = len(out.Value)
	}
	c.publish(ev)
}

// Run starts, fetches and resolves a search in one blocking call. It reports
// whether a search was issued.
func (c *SearchController) Run(ctx context.Context, query string) bool {
	req := c.Search(query)
	if req == nil {
		return false
	}
	c.Resolve(c.Fetch(ctx, req))
	return true
}

func (c *SearchController) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
