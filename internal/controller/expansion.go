package controller

import (
	"context"

	"go.uber.org/zap"

	"ghscout/internal/domain"
	"ghscout/internal/eventbus"
	"ghscout/internal/lifecycle"
	"ghscout/internal/logic"
)

// Card is the presentation-local state of one account row
type Card struct {
	Account  domain.Account
	Expanded bool
}

// NewCards builds collapsed cards for accounts, preserving order
func NewCards(accounts []domain.Account) []*Card {
	cards := make([]*Card, 0, len(accounts))
	for _, a := range accounts {
		cards = append(cards, &Card{Account: a})
	}
	return cards
}

// RepositoryRequest is a repository listing that has been started but not
// fetched yet
type RepositoryRequest struct {
	Account domain.Account
}

// ExpansionController loads repositories when account cards are expanded
type ExpansionController struct {
	store  *logic.MemoryRepositoryStore
	lister RepositoryLister
	bus    eventbus.EventBus
	log    *zap.Logger
}

// NewExpansionController creates a controller writing into store
func NewExpansionController(store *logic.MemoryRepositoryStore, lister RepositoryLister, bus eventbus.EventBus, log *zap.Logger) *ExpansionController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpansionController{
		store:  store,
		lister: lister,
		bus:    bus,
		log:    log.Named("expansion"),
	}
}

// Store returns the store the controller writes to
func (c *ExpansionController) Store() *logic.MemoryRepositoryStore {
	return c.store
}

// ToggleExpand flips card's expanded flag. When a collapsed card is opened
// and its account was never fetched or last failed, the account's lifecycle
// is started first and the pending request is returned; otherwise nil.
func (c *ExpansionController) ToggleExpand(card *Card) *RepositoryRequest {
	var req *RepositoryRequest
	id := card.Account.ID

	if !card.Expanded && c.store.NeedsFetch(id) {
		retry := c.store.Get(id).HasError()
		c.store.Start(id)
		req = &RepositoryRequest{Account: card.Account}

		c.log.Debug("repositories requested", zap.Int64("account", id), zap.Bool("retry", retry))
		c.publish(eventbus.RepositoriesRequestedEvent{AccountID: id, Login: card.Account.Login, Retry: retry})
	}

	card.Expanded = !card.Expanded
	return req
}

// Fetch performs the remote call for req. It does not touch the store.
func (c *ExpansionController) Fetch(ctx context.Context, req *RepositoryRequest) logic.RepositoryOutcome {
	repos, err := c.lister.ListRepositories(ctx, req.Account.RepositoriesURL)
	return logic.RepositoryOutcome{
		AccountID: req.Account.ID,
		Outcome:   lifecycle.Outcome[[]domain.Repository]{Value: repos, Err: err},
	}
}

// Resolve applies an outcome to its own account's entry only
func (c *ExpansionController) Resolve(out logic.RepositoryOutcome) {
	c.store.Resolve(out.AccountID, out.Outcome)

	ev := eventbus.RepositoriesResolvedEvent{AccountID: out.AccountID}
	if out.Err != nil {
		ev.Error = c.store.Get(out.AccountID).Err
		c.log.Info("repository listing failed", zap.Int64("account", out.AccountID), zap.Error(out.Err))
	} else {
		ev.Count = len(out.Value)
	}
	c.publish(ev)
}

// Run toggles card and, if that started a fetch, performs and resolves it
// before returning. It reports whether a fetch was issued.
func (c *ExpansionController) Run(ctx context.Context, card *Card) bool {
	req := c.ToggleExpand(card)
	if req == nil {
		return false
	}
	out := c.Fetch(ctx, req)
	c.Resolve(out)
	return true
}

func (c *ExpansionController) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
