package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted         EventType = "SearchStarted"
	EventSearchResolved        EventType = "SearchResolved"
	EventRepositoriesRequested EventType = "RepositoriesRequested"
	EventRepositoriesResolved  EventType = "RepositoriesResolved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a non-blank search is submitted
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchResolvedEvent is emitted when an account search response arrives
type SearchResolvedEvent struct {
	Query string
	Count int
	Error string // empty on success
	Stale bool   // a newer search was submitted before this one resolved
}

func (e SearchResolvedEvent) Type() EventType { return EventSearchResolved }

// RepositoriesRequestedEvent is emitted when an account's repositories are fetched
type RepositoriesRequestedEvent struct {
	AccountID int64
	Login     string
	Retry     bool // previous attempt for this account failed
}

func (e RepositoriesRequestedEvent) Type() EventType { return EventRepositoriesRequested }

// RepositoriesResolvedEvent is emitted when a repository listing response arrives
type RepositoriesResolvedEvent struct {
	AccountID int64
	Count     int
	Error     string // empty on success
}

func (e RepositoriesResolvedEvent) Type() EventType { return EventRepositoriesResolved }
